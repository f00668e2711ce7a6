package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for item persistence.
// Implementations store a copy of the item at the boundary, so later
// mutation of the caller's value never changes stored state.
type ItemRepository interface {
	// Save creates or updates an item by ID
	Save(ctx context.Context, item *Item) error

	// FindByName finds an item by its exact, case-sensitive name.
	// Returns (nil, nil) when no item matches.
	FindByName(ctx context.Context, name string) (*Item, error)

	// FindByID finds an item by its ID.
	// Returns (nil, nil) when no item matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// GetAll returns all items. Order is implementation-defined and
	// an empty store yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]Item, error)
}
