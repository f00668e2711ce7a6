package cart

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence.
// The User aggregate is saved and loaded as one unit: a save replaces
// every scalar field and the entire cart-item collection, and finds
// return the cart eagerly populated.
type UserRepository interface {
	// Save upserts a user by ID, fully replacing the stored cart lines
	// (delete-all-then-insert). The write is a compare-and-swap on the
	// aggregate's Version: saving a stale aggregate returns
	// shared.ErrConcurrencyConflict and writes nothing. On success the
	// in-memory Version is advanced to the stored one.
	Save(ctx context.Context, user *User) error

	// FindByEmail finds a user by exact email match, cart items
	// populated. Returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByID finds a user by ID, cart items populated.
	// Returns (nil, nil) when no user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindCartItems returns the user's cart lines. Both an empty cart
	// and an unknown user yield an empty slice, never an error.
	FindCartItems(ctx context.Context, userID uuid.UUID) ([]CartItem, error)
}
