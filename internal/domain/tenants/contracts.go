package tenants

import (
	"context"

	"github.com/shopspring/decimal"
)

// RestaurantUpdate carries the mutable fields of a restaurant. Nil
// pointers leave the current value untouched.
type RestaurantUpdate struct {
	Name          *string
	TaxRate       *decimal.Decimal
	ServiceCharge *decimal.Decimal
}

// RestaurantService defines tenant lifecycle operations.
type RestaurantService interface {
	// Register creates a new restaurant owned by the given user.
	Register(ctx context.Context, ownerID, name, slug string) (*Restaurant, error)

	// GetBySlug resolves an active restaurant by its slug. Inactive
	// restaurants resolve as not found.
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)

	// GetByID retrieves a restaurant regardless of active state.
	GetByID(ctx context.Context, restaurantID string) (*Restaurant, error)

	// List retrieves restaurants considering a query filter when set.
	List(ctx context.Context, query *RestaurantQuery) ([]*Restaurant, error)

	// Update applies the non-nil fields of the update to the restaurant.
	Update(ctx context.Context, restaurantID string, update *RestaurantUpdate) (*Restaurant, error)

	// Deactivate removes the restaurant from tenant resolution without
	// deleting its data.
	Deactivate(ctx context.Context, restaurantID string) error
}

// RestaurantRepository defines the interface for Restaurant-related operations
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	List(ctx context.Context, query *RestaurantQuery) ([]*Restaurant, error)
	GetByID(ctx context.Context, restaurantID string) (*Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)
	UpdateByID(ctx context.Context, restaurant *Restaurant) error
}
