package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, name string) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, "a test item", decimal.NewFromFloat(9.99), 5)
	require.NoError(t, err)
	return item
}

func TestItemRepository_SaveAndFindByID(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	item := newTestItem(t, "Hammer")
	require.NoError(t, repo.Save(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, "Hammer", found.Name)
	assert.True(t, item.Price.Equal(found.Price))
	assert.Equal(t, int64(5), found.Quantity)
}

func TestItemRepository_FindByID_Absent(t *testing.T) {
	repo := NewItemRepository()

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestItemRepository_FindByName(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	item := newTestItem(t, "Screwdriver")
	require.NoError(t, repo.Save(ctx, item))

	found, err := repo.FindByName(ctx, "Screwdriver")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, item.ID, found.ID)

	// Exact, case-sensitive match
	miss, err := repo.FindByName(ctx, "screwdriver")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestItemRepository_SaveStoresCopy(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	item := newTestItem(t, "Wrench")
	require.NoError(t, repo.Save(ctx, item))

	// Mutating the caller's value must not change stored state
	item.Name = "Mutated"

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Wrench", found.Name)
}

func TestItemRepository_SaveUpdatesExisting(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	item := newTestItem(t, "Drill")
	require.NoError(t, repo.Save(ctx, item))

	first, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)

	item.Quantity = 42
	require.NoError(t, repo.Save(ctx, item))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(42), all[0].Quantity)
	assert.True(t, all[0].CreatedAt.Equal(first.CreatedAt))
}

func TestItemRepository_GetAll_Empty(t *testing.T) {
	repo := NewItemRepository()

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestItemRepository_GetAll(t *testing.T) {
	repo := NewItemRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newTestItem(t, "A")))
	require.NoError(t, repo.Save(ctx, newTestItem(t, "B")))
	require.NoError(t, repo.Save(ctx, newTestItem(t, "C")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
