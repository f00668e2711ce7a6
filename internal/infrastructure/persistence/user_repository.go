package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormUserRepository implements cart.UserRepository using GORM.
// The User aggregate is written transactionally: scalar fields are
// updated with a compare-and-swap on the version column, and the cart
// line collection is fully replaced.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save upserts the user aggregate. A stale Version returns
// shared.ErrConcurrencyConflict and leaves the store untouched.
func (r *GormUserRepository) Save(ctx context.Context, user *cart.User) error {
	newVersion := user.Version
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&cart.User{}).
			Where("id = ? AND version = ?", user.ID, user.Version).
			Updates(map[string]any{
				"email":            user.Email,
				"first_name":       user.FirstName,
				"last_name":        user.LastName,
				"hashed_password":  user.HashedPassword,
				"shipping_address": user.ShippingAddress,
				"version":          user.Version + 1,
				"updated_at":       now,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&cart.User{}).
				Where("id = ?", user.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return shared.ErrConcurrencyConflict
			}
			stored := *user
			stored.CartItems = nil
			if err := tx.Create(&stored).Error; err != nil {
				return err
			}
		} else {
			newVersion = user.Version + 1
		}

		// Full cart replacement, delete then insert
		if err := tx.Where("user_id = ?", user.ID).
			Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		if len(user.CartItems) > 0 {
			lines := make([]cart.CartItem, len(user.CartItems))
			copy(lines, user.CartItems)
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	user.Version = newVersion
	return nil
}

// FindByEmail finds a user by exact email, cart eagerly loaded.
// Returns (nil, nil) when no user matches.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*cart.User, error) {
	var user cart.User
	if err := r.db.WithContext(ctx).
		Preload("CartItems").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by ID, cart eagerly loaded.
// Returns (nil, nil) when no user matches.
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.User, error) {
	var user cart.User
	if err := r.db.WithContext(ctx).
		Preload("CartItems").
		First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindCartItems returns the user's cart lines. An unknown user yields
// an empty slice.
func (r *GormUserRepository) FindCartItems(ctx context.Context, userID uuid.UUID) ([]cart.CartItem, error) {
	lines := []cart.CartItem{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Ensure GormUserRepository implements UserRepository
var _ cart.UserRepository = (*GormUserRepository)(nil)
