package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFavoriteRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFavoriteRepository creates a new GORM-based FavoriteRepository implementation
func NewGormFavoriteRepository(db *gorm.DB, logger logger.Logger) (favorites.FavoriteRepository, error) {
	return &gormFavoriteRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFavoriteRepository) AddRestaurant(ctx context.Context, favorite *favorites.FavoriteRestaurant) error {
	if err := favorite.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FavoriteRestaurantModel{}
	model.FromDomain(favorite)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add favorite restaurant: %w", err)
	}

	return nil
}

func (r *gormFavoriteRepository) GetRestaurant(ctx context.Context, userID, restaurantID string) (*favorites.FavoriteRestaurant, error) {
	var model models.FavoriteRestaurantModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite restaurant not found")
		}
		return nil, fmt.Errorf("failed to fetch favorite restaurant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormFavoriteRepository) RemoveRestaurant(ctx context.Context, userID, restaurantID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&models.FavoriteRestaurantModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite restaurant: %w", err)
	}
	return nil
}

func (r *gormFavoriteRepository) ListRestaurants(ctx context.Context, userID string) ([]*favorites.FavoriteRestaurant, error) {
	var modelList []*models.FavoriteRestaurantModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorite restaurants: %w", err)
	}

	domainList := make([]*favorites.FavoriteRestaurant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormFavoriteRepository) AddMenuItem(ctx context.Context, favorite *favorites.FavoriteMenuItem) error {
	if err := favorite.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.FavoriteMenuItemModel{}
	model.FromDomain(favorite)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add favorite menu item: %w", err)
	}

	return nil
}

func (r *gormFavoriteRepository) GetMenuItem(ctx context.Context, userID, menuItemID string) (*favorites.FavoriteMenuItem, error) {
	var model models.FavoriteMenuItemModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite menu item not found")
		}
		return nil, fmt.Errorf("failed to fetch favorite menu item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormFavoriteRepository) RemoveMenuItem(ctx context.Context, userID, menuItemID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&models.FavoriteMenuItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite menu item: %w", err)
	}
	return nil
}

func (r *gormFavoriteRepository) ListMenuItems(ctx context.Context, userID string) ([]*favorites.FavoriteMenuItem, error) {
	var modelList []*models.FavoriteMenuItemModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorite menu items: %w", err)
	}

	domainList := make([]*favorites.FavoriteMenuItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
