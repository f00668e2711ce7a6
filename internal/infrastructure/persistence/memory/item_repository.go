// Package memory provides in-memory repository implementations with
// the same observable semantics as the GORM-backed ones. They are used
// by the memory repository backend and in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
)

// ItemRepository implements catalog.ItemRepository backed by a map
type ItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]catalog.Item
}

// NewItemRepository creates an empty in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[uuid.UUID]catalog.Item),
	}
}

// Save creates or updates an item by ID, storing a copy
func (r *ItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	now := time.Now()
	if existing, ok := r.items[item.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.items[item.ID] = stored
	return nil
}

// FindByName finds an item by its exact name, (nil, nil) when absent
func (r *ItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// FindByID finds an item by ID, (nil, nil) when absent
func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	found := item
	return &found, nil
}

// GetAll returns all items ordered by creation time
func (r *ItemRepository) GetAll(ctx context.Context) ([]catalog.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]catalog.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// Ensure ItemRepository implements catalog.ItemRepository
var _ catalog.ItemRepository = (*ItemRepository)(nil)
