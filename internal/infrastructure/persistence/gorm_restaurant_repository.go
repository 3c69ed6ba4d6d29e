package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRestaurantRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRestaurantRepository creates a new GORM-based RestaurantRepository implementation
func NewGormRestaurantRepository(db *gorm.DB, logger logger.Logger) (tenants.RestaurantRepository, error) {
	return &gormRestaurantRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRestaurantRepository) Create(ctx context.Context, restaurant *tenants.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RestaurantModel{}
	model.FromDomain(restaurant)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	r.logger.Info("Created restaurant with id ", restaurant.ID)
	return nil
}

func (r *gormRestaurantRepository) List(ctx context.Context, query *tenants.RestaurantQuery) ([]*tenants.Restaurant, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.RestaurantModel
	dbQuery := r.db.WithContext(ctx).Model(&models.RestaurantModel{})

	if query.OnlyActive {
		dbQuery = dbQuery.Where("is_active = ?", true)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		dbQuery = dbQuery.Where("name LIKE ? OR slug LIKE ?", pattern, pattern)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch restaurants: %w", err)
	}

	domainList := make([]*tenants.Restaurant, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormRestaurantRepository) GetByID(ctx context.Context, restaurantID string) (*tenants.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.db.WithContext(ctx).Where("id = ?", restaurantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with ID %s not found", restaurantID)
		}
		return nil, fmt.Errorf("failed to fetch restaurant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRestaurantRepository) GetBySlug(ctx context.Context, slug string) (*tenants.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to fetch restaurant: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRestaurantRepository) UpdateByID(ctx context.Context, restaurant *tenants.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RestaurantModel{}
	model.FromDomain(restaurant)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	r.logger.Info("Updated restaurant with id ", restaurant.ID)
	return nil
}
