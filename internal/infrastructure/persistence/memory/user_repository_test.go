package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, email string) *cart.User {
	t.Helper()
	user, err := cart.NewUser(email, "Ada", "Lovelace", "hash", "1 Analytical Way")
	require.NoError(t, err)
	return user
}

func TestUserRepository_SaveAndFindByID(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, 1, found.Version)
	assert.Empty(t, found.CartItems)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "grace@example.com")
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	miss, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestUserRepository_SaveReplacesCart(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	itemA, itemB := uuid.New(), uuid.New()
	require.NoError(t, user.AddCartItem(itemA, 2))
	require.NoError(t, repo.Save(ctx, user))

	// Second save carries only itemB, the stored cart follows
	user.CartItems = []cart.CartItem{{UserID: user.ID, ItemID: itemB, Quantity: 1}}
	require.NoError(t, repo.Save(ctx, user))

	lines, err := repo.FindCartItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, itemB, lines[0].ItemID)
}

func TestUserRepository_SaveAdvancesVersion(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Save(ctx, user))
	assert.Equal(t, 1, user.Version)

	require.NoError(t, repo.Save(ctx, user))
	assert.Equal(t, 2, user.Version)

	require.NoError(t, repo.Save(ctx, user))
	assert.Equal(t, 3, user.Version)
}

func TestUserRepository_SaveStaleVersionConflicts(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Save(ctx, user))

	stale := *user
	require.NoError(t, repo.Save(ctx, user)) // advances to version 2

	stale.FirstName = "Stale"
	err := repo.Save(ctx, &stale)
	require.ErrorIs(t, err, shared.ErrConcurrencyConflict)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.FirstName)
}

func TestUserRepository_FindReturnsCopy(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, user.AddCartItem(uuid.New(), 1))
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	found.CartItems[0].Quantity = 99

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.CartItems[0].Quantity)
}

func TestUserRepository_FindCartItems_UnknownUser(t *testing.T) {
	repo := NewUserRepository()

	lines, err := repo.FindCartItems(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestUserRepository_ConcurrentSaves_OneWinner(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := newTestUser(t, "ada@example.com")
	require.NoError(t, repo.Save(ctx, user))

	// Two writers load the same version and race their saves.
	// Exactly one must win, the other gets a conflict.
	first := *user
	first.CartItems = []cart.CartItem{{UserID: user.ID, ItemID: uuid.New(), Quantity: 1}}
	second := *user
	second.CartItems = []cart.CartItem{{UserID: user.ID, ItemID: uuid.New(), Quantity: 2}}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, u := range []*cart.User{&first, &second} {
		wg.Add(1)
		go func(i int, u *cart.User) {
			defer wg.Done()
			errs[i] = repo.Save(ctx, u)
		}(i, u)
	}
	wg.Wait()

	conflicts := 0
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, shared.ErrConcurrencyConflict)
			conflicts++
		}
	}
	assert.Equal(t, 1, conflicts)

	lines, err := repo.FindCartItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
