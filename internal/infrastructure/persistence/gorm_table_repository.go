package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTableSectionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTableSectionRepository creates a new GORM-based TableSectionRepository implementation
func NewGormTableSectionRepository(db *gorm.DB, logger logger.Logger) (tables.TableSectionRepository, error) {
	return &gormTableSectionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTableSectionRepository) Create(ctx context.Context, section *tables.TableSection) error {
	if err := section.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableSectionModel{}
	model.FromDomain(section)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create table section: %w", err)
	}

	r.logger.Info("Created table section with id ", section.ID)
	return nil
}

func (r *gormTableSectionRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*tables.TableSection, error) {
	var modelList []*models.TableSectionModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("display_order asc, name asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch table sections: %w", err)
	}

	domainList := make([]*tables.TableSection, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormTableRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTableRepository creates a new GORM-based TableRepository implementation
func NewGormTableRepository(db *gorm.DB, logger logger.Logger) (tables.TableRepository, error) {
	return &gormTableRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTableRepository) Create(ctx context.Context, table *tables.Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableModel{}
	model.FromDomain(table)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	r.logger.Info("Created table ", table.Number, " with id ", table.ID)
	return nil
}

func (r *gormTableRepository) GetByID(ctx context.Context, tableID string) (*tables.Table, error) {
	var model models.TableModel
	if err := r.db.WithContext(ctx).Where("id = ?", tableID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("table with ID %s not found", tableID)
		}
		return nil, fmt.Errorf("failed to fetch table: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTableRepository) GetByNumber(ctx context.Context, restaurantID, number string) (*tables.Table, error) {
	var model models.TableModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND number = ?", restaurantID, number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("table %s not found", number)
		}
		return nil, fmt.Errorf("failed to fetch table: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTableRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*tables.Table, error) {
	var modelList []*models.TableModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("number asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}

	domainList := make([]*tables.Table, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTableRepository) UpdateByID(ctx context.Context, table *tables.Table) error {
	if err := table.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableModel{}
	model.FromDomain(table)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}

	r.logger.Info("Updated table with id ", table.ID)
	return nil
}

type gormQRCodeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormQRCodeRepository creates a new GORM-based QRCodeRepository implementation
func NewGormQRCodeRepository(db *gorm.DB, logger logger.Logger) (tables.QRCodeRepository, error) {
	return &gormQRCodeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormQRCodeRepository) Create(ctx context.Context, qr *tables.TableQRCode) error {
	if err := qr.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableQRCodeModel{}
	model.FromDomain(qr)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}

	r.logger.Info("Created QR code with id ", qr.ID, " for table ", qr.TableID)
	return nil
}

func (r *gormQRCodeRepository) GetByCode(ctx context.Context, code string) (*tables.TableQRCode, error) {
	var model models.TableQRCodeModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("QR code not found")
		}
		return nil, fmt.Errorf("failed to fetch QR code: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormQRCodeRepository) ListByTable(ctx context.Context, tableID string) ([]*tables.TableQRCode, error) {
	var modelList []*models.TableQRCodeModel
	if err := r.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch QR codes: %w", err)
	}

	domainList := make([]*tables.TableQRCode, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormQRCodeRepository) UpdateByID(ctx context.Context, qr *tables.TableQRCode) error {
	if err := qr.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableQRCodeModel{}
	model.FromDomain(qr)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update QR code: %w", err)
	}

	return nil
}

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (tables.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, session *tables.TableSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableSessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create table session: %w", err)
	}

	r.logger.Info("Started session ", session.ID, " on table ", session.TableID)
	return nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*tables.TableSession, error) {
	var model models.TableSessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("session with ID %s not found", sessionID)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) GetByInviteCode(ctx context.Context, inviteCode string) (*tables.TableSession, error) {
	var model models.TableSessionModel
	if err := r.db.WithContext(ctx).
		Where("invite_code = ? AND status = ?", inviteCode, tables.SessionActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no active session for invite code")
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) GetActiveByTable(ctx context.Context, tableID string) (*tables.TableSession, error) {
	var model models.TableSessionModel
	if err := r.db.WithContext(ctx).
		Where("table_id = ? AND status = ?", tableID, tables.SessionActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no active session for table %s", tableID)
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) ListStale(ctx context.Context, cutoff time.Time) ([]*tables.TableSession, error) {
	var modelList []*models.TableSessionModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", tables.SessionActive, cutoff).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch stale sessions: %w", err)
	}

	domainList := make([]*tables.TableSession, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSessionRepository) UpdateByID(ctx context.Context, session *tables.TableSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TableSessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

func (r *gormSessionRepository) AddGuest(ctx context.Context, guest *tables.SessionGuest) error {
	if err := guest.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionGuestModel{}
	model.FromDomain(guest)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add session guest: %w", err)
	}

	return nil
}

func (r *gormSessionRepository) GetGuestByUser(ctx context.Context, sessionID, userID string) (*tables.SessionGuest, error) {
	var model models.SessionGuestModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("guest not found in session %s", sessionID)
		}
		return nil, fmt.Errorf("failed to fetch session guest: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) GetGuestByID(ctx context.Context, guestID string) (*tables.SessionGuest, error) {
	var model models.SessionGuestModel
	if err := r.db.WithContext(ctx).Where("id = ?", guestID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("guest with ID %s not found", guestID)
		}
		return nil, fmt.Errorf("failed to fetch session guest: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSessionRepository) ListGuests(ctx context.Context, sessionID string) ([]*tables.SessionGuest, error) {
	var modelList []*models.SessionGuestModel
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("joined_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch session guests: %w", err)
	}

	domainList := make([]*tables.SessionGuest, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSessionRepository) UpdateGuestByID(ctx context.Context, guest *tables.SessionGuest) error {
	if err := guest.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionGuestModel{}
	model.FromDomain(guest)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update session guest: %w", err)
	}

	return nil
}
