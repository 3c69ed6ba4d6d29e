package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"
)

// FavoriteRestaurantModel is the GORM database model for favorite restaurants
type FavoriteRestaurantModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	UserID       string    `gorm:"not null;index:idx_fav_restaurants_user_restaurant,unique;type:uuid"`
	RestaurantID string    `gorm:"not null;index:idx_fav_restaurants_user_restaurant,unique;type:uuid"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FavoriteRestaurantModel) TableName() string {
	return "favorite_restaurants"
}

// ToDomain converts GORM model to domain entity
func (m *FavoriteRestaurantModel) ToDomain() *favorites.FavoriteRestaurant {
	return &favorites.FavoriteRestaurant{
		ID:           m.ID,
		UserID:       m.UserID,
		RestaurantID: m.RestaurantID,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FavoriteRestaurantModel) FromDomain(f *favorites.FavoriteRestaurant) {
	m.ID = f.ID
	m.UserID = f.UserID
	m.RestaurantID = f.RestaurantID
	m.CreatedAt = f.CreatedAt
}

// FavoriteMenuItemModel is the GORM database model for favorite menu items
type FavoriteMenuItemModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	UserID       string    `gorm:"not null;index:idx_fav_items_user_item,unique;type:uuid"`
	MenuItemID   string    `gorm:"not null;index:idx_fav_items_user_item,unique;type:uuid"`
	RestaurantID string    `gorm:"not null;index;type:uuid"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FavoriteMenuItemModel) TableName() string {
	return "favorite_menu_items"
}

// ToDomain converts GORM model to domain entity
func (m *FavoriteMenuItemModel) ToDomain() *favorites.FavoriteMenuItem {
	return &favorites.FavoriteMenuItem{
		ID:           m.ID,
		UserID:       m.UserID,
		MenuItemID:   m.MenuItemID,
		RestaurantID: m.RestaurantID,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FavoriteMenuItemModel) FromDomain(f *favorites.FavoriteMenuItem) {
	m.ID = f.ID
	m.UserID = f.UserID
	m.MenuItemID = f.MenuItemID
	m.RestaurantID = f.RestaurantID
	m.CreatedAt = f.CreatedAt
}
