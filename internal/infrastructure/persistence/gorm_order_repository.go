package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	// Items and their modifiers are inserted in the same transaction
	// through the association.
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Info("Created order ", order.OrderNumber, " with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID string) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Modifiers").
		Where("id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s not found", orderID)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) List(ctx context.Context, restaurantID string, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Preload("Items").
		Preload("Items.Modifiers").
		Where("restaurant_id = ?", restaurantID)

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.OrderType != "" {
		dbQuery = dbQuery.Where("order_type = ?", query.OrderType)
	}
	if query.TableID != "" {
		dbQuery = dbQuery.Where("table_id = ?", query.TableID)
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.Since)
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
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) CountSince(ctx context.Context, restaurantID string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, since).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *gormOrderRepository) AddStatusChange(ctx context.Context, change *orders.StatusChange) error {
	if err := change.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderStatusChangeModel{}
	model.FromDomain(change)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}

	return nil
}

func (r *gormOrderRepository) ListStatusChanges(ctx context.Context, orderID string) ([]*orders.StatusChange, error) {
	var modelList []*models.OrderStatusChangeModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at desc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch status changes: %w", err)
	}

	domainList := make([]*orders.StatusChange, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
