package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
)

// MockInventoryService is a fixed-response implementation of the
// inventory capability for development and testing. Every item exists
// with a stock of mockStockLevel; production wiring swaps in
// HTTPInventoryService behind the same interface.
type MockInventoryService struct{}

const mockStockLevel = 12

// NewMockInventoryService creates a MockInventoryService
func NewMockInventoryService() *MockInventoryService {
	return &MockInventoryService{}
}

// GetItem returns a canned item for any ID
func (s *MockInventoryService) GetItem(_ context.Context, itemID uuid.UUID) (*cart.ItemDetails, bool, error) {
	return &cart.ItemDetails{
		ID:       itemID,
		Name:     "Mock Item",
		Quantity: mockStockLevel,
	}, true, nil
}

// CheckStock reports whether the canned stock level covers the request
func (s *MockInventoryService) CheckStock(ctx context.Context, itemID uuid.UUID, quantity int64) (bool, error) {
	details, found, err := s.GetItem(ctx, itemID)
	if err != nil || !found {
		return false, err
	}
	return details.Quantity >= quantity, nil
}
