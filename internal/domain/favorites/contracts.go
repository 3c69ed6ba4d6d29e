package favorites

import "context"

// FavoriteService manages a user's saved restaurants and menu items.
// Adding an existing favorite is idempotent.
type FavoriteService interface {
	AddRestaurant(ctx context.Context, userID, restaurantID string) (*FavoriteRestaurant, error)
	RemoveRestaurant(ctx context.Context, userID, restaurantID string) error
	ListRestaurants(ctx context.Context, userID string) ([]*FavoriteRestaurant, error)

	AddMenuItem(ctx context.Context, userID, menuItemID string) (*FavoriteMenuItem, error)
	RemoveMenuItem(ctx context.Context, userID, menuItemID string) error
	ListMenuItems(ctx context.Context, userID string) ([]*FavoriteMenuItem, error)
}

// FavoriteRepository defines the interface for favorite-related operations
type FavoriteRepository interface {
	AddRestaurant(ctx context.Context, favorite *FavoriteRestaurant) error
	GetRestaurant(ctx context.Context, userID, restaurantID string) (*FavoriteRestaurant, error)
	RemoveRestaurant(ctx context.Context, userID, restaurantID string) error
	ListRestaurants(ctx context.Context, userID string) ([]*FavoriteRestaurant, error)

	AddMenuItem(ctx context.Context, favorite *FavoriteMenuItem) error
	GetMenuItem(ctx context.Context, userID, menuItemID string) (*FavoriteMenuItem, error)
	RemoveMenuItem(ctx context.Context, userID, menuItemID string) error
	ListMenuItems(ctx context.Context, userID string) ([]*FavoriteMenuItem, error)
}
