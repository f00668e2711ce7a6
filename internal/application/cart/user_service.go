package cart

import (
	"context"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// PasswordHasher derives a stored hash from a raw password.
// This decouples UserService from the concrete hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService handles user registration
type UserService struct {
	userRepo cart.UserRepository
	hasher   PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo cart.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Create registers a new user with an empty cart. Emails are unique; a
// duplicate fails before anything is written. The response carries
// neither the raw password nor the derived hash.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := cart.NewUser(req.Email, req.FirstName, req.LastName, hash, req.ShippingAddress)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}
