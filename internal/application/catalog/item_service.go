package catalog

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ItemService handles item-related business operations
type ItemService struct {
	itemRepo catalog.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new item. Item names are unique across the catalog;
// invalid input and duplicate names both fail before anything is
// written, and invalid input fails before the repository is consulted.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this name already exists")
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}

// List returns every item in the catalog, unfiltered and unpaginated
func (s *ItemService) List(ctx context.Context) (*ItemListResponse, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *toItemResponse(&items[i]))
	}

	return &ItemListResponse{Items: responses}, nil
}
