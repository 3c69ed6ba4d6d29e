package persistence

import (
	"context"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAuditEntryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuditEntryRepository creates a new GORM-based audit EntryRepository implementation
func NewGormAuditEntryRepository(db *gorm.DB, logger logger.Logger) (audit.EntryRepository, error) {
	return &gormAuditEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuditEntryRepository) Create(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuditEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	return nil
}

func (r *gormAuditEntryRepository) List(ctx context.Context, restaurantID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AuditEntryModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.AuditEntryModel{}).
		Where("restaurant_id = ?", restaurantID)

	if query.Action != "" {
		dbQuery = dbQuery.Where("action = ?", query.Action)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}
	if query.TargetModel != "" {
		dbQuery = dbQuery.Where("target_model = ?", query.TargetModel)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.Since)
	}

	order := query.SortOrder
	if order == "" {
		order = "desc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("created_at %s", order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch audit entries: %w", err)
	}

	domainList := make([]*audit.Entry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
