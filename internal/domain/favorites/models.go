package favorites

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// FavoriteRestaurant marks a restaurant saved by a user.
type FavoriteRestaurant struct {
	ID           string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating FavoriteRestaurant struct
func (f *FavoriteRestaurant) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// FavoriteMenuItem marks a menu item saved by a user. The restaurant
// id is denormalized from the item for per-restaurant listings.
type FavoriteMenuItem struct {
	ID           string `validate:"required,uuid4"`
	UserID       string `validate:"required,uuid4"`
	MenuItemID   string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating FavoriteMenuItem struct
func (f *FavoriteMenuItem) Validate() error {
	validate := validator.New()
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
