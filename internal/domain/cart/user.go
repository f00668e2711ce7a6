package cart

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// User represents a shopper and is the aggregate root owning the cart.
// The whole aggregate, cart lines included, is persisted and retrieved
// as one unit; Version backs the repository's optimistic-locking save.
type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName       string     `gorm:"type:varchar(100);not null"`
	LastName        string     `gorm:"type:varchar(100);not null"`
	HashedPassword  string     `gorm:"type:varchar(255);not null"`
	ShippingAddress string     `gorm:"type:text"`
	CartItems       []CartItem `gorm:"foreignKey:UserID"`
	Version         int        `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with an empty cart.
// The password arrives already hashed; deriving the hash is an
// infrastructure concern.
func NewUser(email, firstName, lastName, hashedPassword, shippingAddress string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "First and last name are required")
	}
	if hashedPassword == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}

	now := time.Now()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		HashedPassword:  hashedPassword,
		ShippingAddress: shippingAddress,
		CartItems:       make([]CartItem, 0),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// HasItemInCart reports whether the user's cart already holds a line
// for the given item
func (u *User) HasItemInCart(itemID uuid.UUID) bool {
	for _, line := range u.CartItems {
		if line.ItemID == itemID {
			return true
		}
	}
	return false
}

// AddCartItem appends a new line to the cart. Adding a second line for
// the same item is a business rule violation.
func (u *User) AddCartItem(itemID uuid.UUID, quantity int64) error {
	if u.HasItemInCart(itemID) {
		return shared.NewDomainError("ITEM_ALREADY_IN_CART", "Item already in cart")
	}

	line, err := NewCartItem(u.ID, itemID, quantity)
	if err != nil {
		return err
	}

	u.CartItems = append(u.CartItems, *line)
	u.UpdatedAt = time.Now()
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return shared.NewDomainError("INVALID_INPUT", "Invalid email format")
	}
	return nil
}
