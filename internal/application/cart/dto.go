package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
)

// CreateUserRequest represents a request to register a new user
type CreateUserRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	ShippingAddress string `json:"shipping_address"`
}

// UserResponse represents a user in API responses.
// Neither the raw password nor the stored hash is ever exposed.
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ShippingAddress string    `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// AddToCartRequest represents a request to add an item to a cart
type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int64     `json:"quantity"`
}

// CartLineResponse represents one line of a cart in API responses
type CartLineResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int64     `json:"quantity"`
}

// CartResponse represents the full contents of a user's cart
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
}

func toUserResponse(user *cart.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ShippingAddress: user.ShippingAddress,
		CreatedAt:       user.CreatedAt,
	}
}

func toCartResponse(lines []cart.CartItem) *CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineResponse{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}
	return &CartResponse{Items: items}
}
