package app

import (
	"context"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
)

// favoriteService implements the FavoriteService interface. Adds are
// idempotent so repeated taps in a client do not error.
type favoriteService struct {
	favoriteRepo   favorites.FavoriteRepository
	restaurantRepo tenants.RestaurantRepository
	itemRepo       menu.MenuItemRepository
	logger         logger.Logger
}

// NewFavoriteService creates a new instance of FavoriteService
func NewFavoriteService(
	favoriteRepo favorites.FavoriteRepository,
	restaurantRepo tenants.RestaurantRepository,
	itemRepo menu.MenuItemRepository,
	logger logger.Logger,
) (favorites.FavoriteService, error) {
	return &favoriteService{
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
		itemRepo:       itemRepo,
		logger:         logger,
	}, nil
}

func (s *favoriteService) AddRestaurant(ctx context.Context, userID, restaurantID string) (*favorites.FavoriteRestaurant, error) {
	if existing, err := s.favoriteRepo.GetRestaurant(ctx, userID, restaurantID); err == nil {
		return existing, nil
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	favorite := &favorites.FavoriteRestaurant{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.favoriteRepo.AddRestaurant(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) RemoveRestaurant(ctx context.Context, userID, restaurantID string) error {
	return s.favoriteRepo.RemoveRestaurant(ctx, userID, restaurantID)
}

func (s *favoriteService) ListRestaurants(ctx context.Context, userID string) ([]*favorites.FavoriteRestaurant, error) {
	return s.favoriteRepo.ListRestaurants(ctx, userID)
}

func (s *favoriteService) AddMenuItem(ctx context.Context, userID, menuItemID string) (*favorites.FavoriteMenuItem, error) {
	if existing, err := s.favoriteRepo.GetMenuItem(ctx, userID, menuItemID); err == nil {
		return existing, nil
	}

	item, err := s.itemRepo.GetByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	favorite := &favorites.FavoriteMenuItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		MenuItemID:   menuItemID,
		RestaurantID: item.RestaurantID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.favoriteRepo.AddMenuItem(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) RemoveMenuItem(ctx context.Context, userID, menuItemID string) error {
	return s.favoriteRepo.RemoveMenuItem(ctx, userID, menuItemID)
}

func (s *favoriteService) ListMenuItems(ctx context.Context, userID string) ([]*favorites.FavoriteMenuItem, error) {
	return s.favoriteRepo.ListMenuItems(ctx, userID)
}
