package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// UserRepository implements cart.UserRepository backed by a map.
// Saves compare-and-swap on the aggregate version under a single lock,
// matching the transactional behavior of the GORM implementation.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]cart.User
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]cart.User),
	}
}

// Save upserts the user aggregate with a full cart replacement.
// A stale Version returns shared.ErrConcurrencyConflict.
func (r *UserRepository) Save(ctx context.Context, user *cart.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := copyUser(user)
	if existing, ok := r.users[user.ID]; ok {
		if existing.Version != user.Version {
			return shared.ErrConcurrencyConflict
		}
		stored.Version = user.Version + 1
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.users[user.ID] = stored
	user.Version = stored.Version
	return nil
}

// FindByEmail finds a user by exact email, (nil, nil) when absent
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*cart.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			found := copyUser(&user)
			return &found, nil
		}
	}
	return nil, nil
}

// FindByID finds a user by ID, (nil, nil) when absent
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := copyUser(&user)
	return &found, nil
}

// FindCartItems returns the user's cart lines, empty for unknown users
func (r *UserRepository) FindCartItems(ctx context.Context, userID uuid.UUID) ([]cart.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return []cart.CartItem{}, nil
	}
	lines := make([]cart.CartItem, len(user.CartItems))
	copy(lines, user.CartItems)
	return lines, nil
}

// copyUser deep-copies a user so stored state and returned values
// never alias the caller's slices
func copyUser(user *cart.User) cart.User {
	c := *user
	c.CartItems = make([]cart.CartItem, len(user.CartItems))
	copy(c.CartItems, user.CartItems)
	return c
}

// Ensure UserRepository implements cart.UserRepository
var _ cart.UserRepository = (*UserRepository)(nil)
