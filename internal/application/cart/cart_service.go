package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartService handles cart mutations and reads
type CartService struct {
	userRepo  cart.UserRepository
	inventory cart.InventoryService
}

// NewCartService creates a new CartService
func NewCartService(userRepo cart.UserRepository, inventory cart.InventoryService) *CartService {
	return &CartService{
		userRepo:  userRepo,
		inventory: inventory,
	}
}

// AddItem adds an item to a user's cart. The checks run in order and
// short-circuit at the first failure: user exists, item exists in the
// inventory system, stock suffices, line is not already in the cart.
// Any failure leaves the store untouched; only step five writes, and it
// persists the whole aggregate. Inventory outages surface as
// shared.ErrInventoryUnavailable rather than as a business answer.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddToCartRequest) (*CartResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User does not exist")
	}

	_, found, err := s.inventory.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, shared.ErrInventoryUnavailable
	}
	if !found {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Item does not exist")
	}

	inStock, err := s.inventory.CheckStock(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return nil, shared.ErrInventoryUnavailable
	}
	if !inStock {
		return nil, shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough items in stock")
	}

	if err := user.AddCartItem(req.ItemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return toCartResponse(user.CartItems), nil
}

// ListItems returns the cart contents for a user. An unknown user
// yields an empty cart, never an error.
func (s *CartService) ListItems(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	lines, err := s.userRepo.FindCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}
