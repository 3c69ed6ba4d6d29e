package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReservationSettingsRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReservationSettingsRepository creates a new GORM-based SettingsRepository implementation
func NewGormReservationSettingsRepository(db *gorm.DB, logger logger.Logger) (reservations.SettingsRepository, error) {
	return &gormReservationSettingsRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReservationSettingsRepository) Create(ctx context.Context, settings *reservations.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationSettingsModel{}
	model.FromDomain(settings)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reservation settings: %w", err)
	}

	r.logger.Info("Created reservation settings for restaurant ", settings.RestaurantID)
	return nil
}

func (r *gormReservationSettingsRepository) GetByRestaurant(ctx context.Context, restaurantID string) (*reservations.Settings, error) {
	var model models.ReservationSettingsModel
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reservation settings for restaurant %s not found", restaurantID)
		}
		return nil, fmt.Errorf("failed to fetch reservation settings: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReservationSettingsRepository) UpdateByID(ctx context.Context, settings *reservations.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationSettingsModel{}
	model.FromDomain(settings)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update reservation settings: %w", err)
	}

	r.logger.Info("Updated reservation settings for restaurant ", settings.RestaurantID)
	return nil
}

type gormReservationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReservationRepository creates a new GORM-based ReservationRepository implementation
func NewGormReservationRepository(db *gorm.DB, logger logger.Logger) (reservations.ReservationRepository, error) {
	return &gormReservationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReservationRepository) Create(ctx context.Context, reservation *reservations.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationModel{}
	model.FromDomain(reservation)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	r.logger.Info("Created reservation ", reservation.ConfirmationCode, " with id ", reservation.ID)
	return nil
}

func (r *gormReservationRepository) GetByID(ctx context.Context, reservationID string) (*reservations.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).Where("id = ?", reservationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reservation with ID %s not found", reservationID)
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReservationRepository) GetByConfirmationCode(ctx context.Context, restaurantID, code string) (*reservations.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND confirmation_code = ?", restaurantID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reservation with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormReservationRepository) List(ctx context.Context, restaurantID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("restaurant_id = ?", restaurantID)

	return r.list(dbQuery, query)
}

func (r *gormReservationRepository) ListByCustomer(ctx context.Context, customerID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("customer_id = ?", customerID)

	return r.list(dbQuery, query)
}

func (r *gormReservationRepository) list(dbQuery *gorm.DB, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if !query.Date.IsZero() {
		day := query.Date.Truncate(24 * time.Hour)
		dbQuery = dbQuery.Where("date >= ? AND date < ?", day, day.Add(24*time.Hour))
	}
	if query.CustomerID != "" {
		dbQuery = dbQuery.Where("customer_id = ?", query.CustomerID)
	}
	if query.Upcoming {
		dbQuery = dbQuery.Where("date >= ?", time.Now().UTC().Truncate(24*time.Hour))
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

	var modelList []*models.ReservationModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	domainList := make([]*reservations.Reservation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormReservationRepository) UpdateByID(ctx context.Context, reservation *reservations.Reservation) error {
	if err := reservation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationModel{}
	model.FromDomain(reservation)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	r.logger.Info("Updated reservation with id ", reservation.ID)
	return nil
}

func (r *gormReservationRepository) ListWindow(ctx context.Context, restaurantID string, start, end time.Time) ([]*reservations.Reservation, error) {
	// The window filter is coarse on the date column; exact overlap with
	// start times is resolved in the service.
	var modelList []*models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("status NOT IN ?", []string{reservations.StatusCancelled, reservations.StatusNoShow}).
		Where("date >= ? AND date <= ?", start.Truncate(24*time.Hour), end).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservations in window: %w", err)
	}

	var domainList []*reservations.Reservation
	for _, model := range modelList {
		reservation := model.ToDomain()
		if reservation.StartsAt().Before(end) && reservation.EndsAt().After(start) {
			domainList = append(domainList, reservation)
		}
	}
	return domainList, nil
}

func (r *gormReservationRepository) CountByDay(ctx context.Context, restaurantID string, day time.Time) (int64, error) {
	dayStart := day.Truncate(24 * time.Hour)
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Where("restaurant_id = ?", restaurantID).
		Where("status NOT IN ?", []string{reservations.StatusCancelled, reservations.StatusNoShow}).
		Where("date >= ? AND date < ?", dayStart, dayStart.Add(24*time.Hour)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

func (r *gormReservationRepository) ListDueReminders(ctx context.Context, now time.Time) ([]*reservations.Reservation, error) {
	// Candidates are confirmed, unsent, and start within the next two
	// days; the per-restaurant reminder window is applied in the service.
	var modelList []*models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND reminder_sent = ?", reservations.StatusConfirmed, false).
		Where("date >= ? AND date <= ?", now.Truncate(24*time.Hour), now.Add(48*time.Hour)).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch due reminders: %w", err)
	}

	domainList := make([]*reservations.Reservation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormReservationRepository) ListOverdue(ctx context.Context, cutoff time.Time) ([]*reservations.Reservation, error) {
	var modelList []*models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []string{reservations.StatusPending, reservations.StatusConfirmed}).
		Where("date <= ?", cutoff).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch overdue reservations: %w", err)
	}

	var domainList []*reservations.Reservation
	for _, model := range modelList {
		reservation := model.ToDomain()
		if reservation.StartsAt().Before(cutoff) {
			domainList = append(domainList, reservation)
		}
	}
	return domainList, nil
}

func (r *gormReservationRepository) Stats(ctx context.Context, restaurantID string, day time.Time) (*reservations.Stats, error) {
	dayStart := day.Truncate(24 * time.Hour)

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	if err := r.db.WithContext(ctx).
		Model(&models.ReservationModel{}).
		Select("status, count(*) as count").
		Where("restaurant_id = ?", restaurantID).
		Where("date >= ? AND date < ?", dayStart, dayStart.Add(24*time.Hour)).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate reservation stats: %w", err)
	}

	stats := &reservations.Stats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case reservations.StatusPending:
			stats.Pending = row.Count
		case reservations.StatusConfirmed:
			stats.Confirmed = row.Count
		case reservations.StatusSeated:
			stats.Seated = row.Count
		case reservations.StatusCompleted:
			stats.Completed = row.Count
		case reservations.StatusCancelled:
			stats.Cancelled = row.Count
		case reservations.StatusNoShow:
			stats.NoShow = row.Count
		}
	}
	return stats, nil
}

func (r *gormReservationRepository) AddHistory(ctx context.Context, entry *reservations.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReservationHistoryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record reservation history: %w", err)
	}

	return nil
}

func (r *gormReservationRepository) ListHistory(ctx context.Context, reservationID string) ([]*reservations.HistoryEntry, error) {
	var modelList []*models.ReservationHistoryModel
	if err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at desc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservation history: %w", err)
	}

	domainList := make([]*reservations.HistoryEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormBlockedTimeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlockedTimeRepository creates a new GORM-based BlockedTimeRepository implementation
func NewGormBlockedTimeRepository(db *gorm.DB, logger logger.Logger) (reservations.BlockedTimeRepository, error) {
	return &gormBlockedTimeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlockedTimeRepository) Create(ctx context.Context, block *reservations.BlockedTime) error {
	if err := block.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BlockedTimeModel{}
	model.FromDomain(block)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create blocked time: %w", err)
	}

	r.logger.Info("Created blocked time with id ", block.ID)
	return nil
}

func (r *gormBlockedTimeRepository) GetByID(ctx context.Context, blockID string) (*reservations.BlockedTime, error) {
	var model models.BlockedTimeModel
	if err := r.db.WithContext(ctx).Where("id = ?", blockID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blocked time with ID %s not found", blockID)
		}
		return nil, fmt.Errorf("failed to fetch blocked time: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBlockedTimeRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*reservations.BlockedTime, error) {
	var modelList []*models.BlockedTimeModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("start_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}

	domainList := make([]*reservations.BlockedTime, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBlockedTimeRepository) ListWindow(ctx context.Context, restaurantID string, start, end time.Time) ([]*reservations.BlockedTime, error) {
	var modelList []*models.BlockedTimeModel
	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("start_at < ? AND end_at > ?", end, start).
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times in window: %w", err)
	}

	domainList := make([]*reservations.BlockedTime, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormBlockedTimeRepository) DeleteByID(ctx context.Context, blockID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", blockID).Delete(&models.BlockedTimeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete blocked time: %w", err)
	}

	r.logger.Info("Deleted blocked time with id ", blockID)
	return nil
}
