package cart

import (
	"context"

	"github.com/google/uuid"
)

// ItemDetails is the inventory system's view of an item
type ItemDetails struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int64     `json:"quantity"`
}

// InventoryService is the capability an external inventory system
// exposes. Both operations may block on I/O. A non-nil error means the
// service itself was unreachable (shared.ErrInventoryUnavailable) and
// is distinct from the business answers "item not found" and "not
// enough stock".
type InventoryService interface {
	// GetItem looks up an item by ID. found is false when the
	// inventory system does not know the item.
	GetItem(ctx context.Context, itemID uuid.UUID) (details *ItemDetails, found bool, err error)

	// CheckStock reports whether the item exists and at least the
	// requested quantity is available.
	CheckStock(ctx context.Context, itemID uuid.UUID, quantity int64) (bool, error)
}
