package cart

import (
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartItem represents one line in a user's shopping cart.
// Its identity is the (UserID, ItemID) pair and it has no lifecycle of
// its own: it is created, persisted and deleted only as part of saving
// its owning User aggregate.
type CartItem struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a new cart line for the given user and item
func NewCartItem(userID, itemID uuid.UUID, quantity int64) (*CartItem, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	return &CartItem{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
	}, nil
}
