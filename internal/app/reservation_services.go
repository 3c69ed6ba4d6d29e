package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Bookable hours used when building availability slots.
// TODO: read per-restaurant operating hours once they are modelled.
const (
	serviceOpenHour  = 10
	serviceCloseHour = 22
)

// reservationTransitions defines the allowed forward moves of a
// reservation. Cancellation is handled separately.
var reservationTransitions = map[string][]string{
	reservations.StatusPending:   {reservations.StatusConfirmed, reservations.StatusWaitlist, reservations.StatusSeated, reservations.StatusNoShow},
	reservations.StatusWaitlist:  {reservations.StatusConfirmed, reservations.StatusNoShow},
	reservations.StatusConfirmed: {reservations.StatusSeated, reservations.StatusNoShow},
	reservations.StatusSeated:    {reservations.StatusCompleted},
}

// reservationService implements the ReservationService interface
type reservationService struct {
	settingsRepo    reservations.SettingsRepository
	reservationRepo reservations.ReservationRepository
	blockedRepo     reservations.BlockedTimeRepository
	tableRepo       tables.TableRepository
	logger          logger.Logger
}

// NewReservationService creates a new instance of ReservationService
func NewReservationService(
	settingsRepo reservations.SettingsRepository,
	reservationRepo reservations.ReservationRepository,
	blockedRepo reservations.BlockedTimeRepository,
	tableRepo tables.TableRepository,
	logger logger.Logger,
) (reservations.ReservationService, error) {
	return &reservationService{
		settingsRepo:    settingsRepo,
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
		tableRepo:       tableRepo,
		logger:          logger,
	}, nil
}

// GetSettings returns the restaurant's reservation policy, creating
// the default policy on first access.
func (s *reservationService) GetSettings(ctx context.Context, restaurantID string) (*reservations.Settings, error) {
	settings, err := s.settingsRepo.GetByRestaurant(ctx, restaurantID)
	if err == nil {
		return settings, nil
	}

	settings = reservations.DefaultSettings(restaurantID)
	settings.ID = uuid.NewString()
	settings.CreatedAt = time.Now().UTC()

	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create reservation settings: %w", err)
	}
	return settings, nil
}

func (s *reservationService) UpdateSettings(ctx context.Context, settings *reservations.Settings) (*reservations.Settings, error) {
	existing, err := s.GetSettings(ctx, settings.RestaurantID)
	if err != nil {
		return nil, err
	}

	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	settings.UpdatedAt = time.Now().UTC()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.UpdateByID(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update reservation settings: %w", err)
	}
	return settings, nil
}

func (s *reservationService) Availability(ctx context.Context, restaurantID string, date time.Time, partySize int) ([]*reservations.Slot, error) {
	settings, err := s.GetSettings(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !settings.AcceptsReservations {
		return []*reservations.Slot{}, nil
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayStart := day.Add(serviceOpenHour * time.Hour)
	dayEnd := day.Add(serviceCloseHour * time.Hour)

	suitable, err := s.suitableTableCount(ctx, restaurantID, partySize)
	if err != nil {
		return nil, err
	}

	booked, err := s.reservationRepo.ListWindow(ctx, restaurantID, dayStart, dayEnd.Add(settings.ReservationDuration))
	if err != nil {
		return nil, err
	}
	blocks, err := s.blockedRepo.ListWindow(ctx, restaurantID, dayStart, dayEnd.Add(settings.ReservationDuration))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	earliest := now.Add(time.Duration(settings.MinAdvanceHours) * time.Hour)
	interval := time.Duration(settings.SlotIntervalMin) * time.Minute
	buffer := time.Duration(settings.BufferMinutes) * time.Minute

	var slots []*reservations.Slot
	for start := dayStart; !start.After(dayEnd.Add(-settings.ReservationDuration)); start = start.Add(interval) {
		end := start.Add(settings.ReservationDuration)

		available := suitable > 0 && !start.Before(earliest)
		if available {
			for _, block := range blocks {
				if block.BlocksAllTables() && block.Covers(start, end) {
					available = false
					break
				}
			}
		}
		if available {
			overlapping := 0
			for _, r := range booked {
				if r.StartsAt().Before(end.Add(buffer)) && r.EndsAt().Add(buffer).After(start) {
					overlapping++
				}
			}
			if overlapping >= suitable {
				available = false
			}
			if settings.MaxHourlyReservations > 0 {
				// The hourly cap counts reservations starting within
				// the slot's clock hour, not everything that overlaps.
				hourStart := start.Truncate(time.Hour)
				hourEnd := hourStart.Add(time.Hour)
				startingThisHour := 0
				for _, r := range booked {
					if !r.StartsAt().Before(hourStart) && r.StartsAt().Before(hourEnd) {
						startingThisHour++
					}
				}
				if startingThisHour >= settings.MaxHourlyReservations {
					available = false
				}
			}
		}

		slots = append(slots, &reservations.Slot{Start: start, Available: available})
	}

	return slots, nil
}

func (s *reservationService) Book(ctx context.Context, request *reservations.BookingRequest) (*reservations.Reservation, error) {
	if err := validator.New().Struct(request); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	settings, err := s.GetSettings(ctx, request.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !settings.AcceptsReservations {
		return nil, fmt.Errorf("restaurant does not accept reservations")
	}
	if request.PartySize < settings.MinPartySize || request.PartySize > settings.MaxPartySize {
		return nil, fmt.Errorf("party size must be between %d and %d", settings.MinPartySize, settings.MaxPartySize)
	}

	now := time.Now().UTC()
	day := time.Date(request.Date.Year(), request.Date.Month(), request.Date.Day(), 0, 0, 0, 0, time.UTC)
	startsAt := time.Date(day.Year(), day.Month(), day.Day(), request.StartTime.Hour(), request.StartTime.Minute(), 0, 0, time.UTC)
	endsAt := startsAt.Add(settings.ReservationDuration)

	if startsAt.Before(now.Add(time.Duration(settings.MinAdvanceHours) * time.Hour)) {
		return nil, fmt.Errorf("reservations require at least %d hours notice", settings.MinAdvanceHours)
	}
	if startsAt.After(now.AddDate(0, 0, settings.AdvanceBookingDays)) {
		return nil, fmt.Errorf("reservations can be made at most %d days in advance", settings.AdvanceBookingDays)
	}

	blocks, err := s.blockedRepo.ListWindow(ctx, request.RestaurantID, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	for _, block := range blocks {
		if block.BlocksAllTables() {
			return nil, fmt.Errorf("the requested time is not available")
		}
		if request.TableID != nil {
			for _, blockedTable := range block.TableIDs {
				if blockedTable == *request.TableID {
					return nil, fmt.Errorf("the requested table is not available at that time")
				}
			}
		}
	}

	if settings.MaxDailyReservations > 0 {
		count, err := s.reservationRepo.CountByDay(ctx, request.RestaurantID, day)
		if err != nil {
			return nil, err
		}
		if count >= int64(settings.MaxDailyReservations) {
			return nil, fmt.Errorf("the restaurant is fully booked on that day")
		}
	}

	buffer := time.Duration(settings.BufferMinutes) * time.Minute
	overlapping, err := s.reservationRepo.ListWindow(ctx, request.RestaurantID, startsAt.Add(-buffer), endsAt.Add(buffer))
	if err != nil {
		return nil, err
	}

	if request.TableID != nil {
		if err := s.checkTable(ctx, request.RestaurantID, *request.TableID, request.PartySize, overlapping); err != nil {
			return nil, err
		}
	} else {
		suitable, err := s.suitableTableCount(ctx, request.RestaurantID, request.PartySize)
		if err != nil {
			return nil, err
		}
		if len(overlapping) >= suitable {
			return nil, fmt.Errorf("no tables are available at the requested time")
		}
	}

	code, err := reservations.NewConfirmationCode()
	if err != nil {
		return nil, err
	}

	status := reservations.StatusPending
	var confirmedAt *time.Time
	if !settings.RequireConfirmation && request.PartySize <= settings.AutoConfirmThreshold {
		status = reservations.StatusConfirmed
		confirmedAt = &now
	}

	source := request.Source
	if source == "" {
		source = reservations.SourceWebsite
	}

	reservation := &reservations.Reservation{
		ID:               uuid.NewString(),
		RestaurantID:     request.RestaurantID,
		CustomerID:       request.CustomerID,
		GuestName:        request.GuestName,
		GuestEmail:       request.GuestEmail,
		GuestPhone:       request.GuestPhone,
		Date:             day,
		StartTime:        startsAt,
		PartySize:        request.PartySize,
		Duration:         settings.ReservationDuration,
		TableID:          request.TableID,
		Status:           status,
		Source:           source,
		ConfirmationCode: code,
		ConfirmedAt:      confirmedAt,
		SpecialRequests:  request.SpecialRequests,
		CreatedAt:        now,
	}
	if err := reservation.Validate(); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.recordHistory(ctx, reservation.ID, "", status, request.CustomerID, "", now)
	s.logger.Info("Booked reservation ", reservation.ConfirmationCode, " for restaurant ", reservation.RestaurantID)
	return reservation, nil
}

func (s *reservationService) Lookup(ctx context.Context, restaurantID, confirmationCode string) (*reservations.Reservation, error) {
	return s.reservationRepo.GetByConfirmationCode(ctx, restaurantID, confirmationCode)
}

func (s *reservationService) GetByID(ctx context.Context, restaurantID, reservationID string) (*reservations.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.RestaurantID != restaurantID {
		return nil, fmt.Errorf("reservation with ID %s not found", reservationID)
	}
	return reservation, nil
}

func (s *reservationService) List(ctx context.Context, restaurantID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	if query == nil {
		query = reservations.NewReservationQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.reservationRepo.List(ctx, restaurantID, query)
}

func (s *reservationService) ListByCustomer(ctx context.Context, customerID string, query *reservations.ReservationQuery) ([]*reservations.Reservation, error) {
	if query == nil {
		query = reservations.NewReservationQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.reservationRepo.ListByCustomer(ctx, customerID, query)
}

func (s *reservationService) Transition(ctx context.Context, restaurantID, reservationID, target string, changedBy *string, notes string) (*reservations.Reservation, error) {
	reservation, err := s.GetByID(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range reservationTransitions[reservation.Status] {
		if next == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("reservation cannot move from %s to %s", reservation.Status, target)
	}

	now := time.Now().UTC()
	previous := reservation.Status
	reservation.Status = target
	reservation.UpdatedAt = now

	switch target {
	case reservations.StatusConfirmed:
		reservation.ConfirmedAt = &now
		reservation.ConfirmedByID = changedBy
	case reservations.StatusSeated:
		reservation.SeatedAt = &now
	case reservations.StatusCompleted:
		reservation.CompletedAt = &now
	}

	if err := s.reservationRepo.UpdateByID(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.recordHistory(ctx, reservation.ID, previous, target, changedBy, notes, now)
	return reservation, nil
}

func (s *reservationService) Cancel(ctx context.Context, restaurantID, reservationID string, cancelledBy *string, reason string, enforceDeadline bool) (*reservations.Reservation, error) {
	reservation, err := s.GetByID(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var policy *reservations.Settings
	if enforceDeadline {
		policy, err = s.GetSettings(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
	}
	if !reservation.CanCancel(policy, now) {
		return nil, fmt.Errorf("reservation can no longer be cancelled")
	}

	previous := reservation.Status
	reservation.Status = reservations.StatusCancelled
	reservation.CancelledAt = &now
	reservation.CancelledByID = cancelledBy
	reservation.CancellationReason = reason
	reservation.UpdatedAt = now

	if err := s.reservationRepo.UpdateByID(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.recordHistory(ctx, reservation.ID, previous, reservations.StatusCancelled, cancelledBy, reason, now)
	return reservation, nil
}

func (s *reservationService) AssignTable(ctx context.Context, restaurantID, reservationID, tableID string) (*reservations.Reservation, error) {
	reservation, err := s.GetByID(ctx, restaurantID, reservationID)
	if err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	buffer := time.Duration(settings.BufferMinutes) * time.Minute
	overlapping, err := s.reservationRepo.ListWindow(ctx, restaurantID, reservation.StartsAt().Add(-buffer), reservation.EndsAt().Add(buffer))
	if err != nil {
		return nil, err
	}
	others := overlapping[:0]
	for _, r := range overlapping {
		if r.ID != reservation.ID {
			others = append(others, r)
		}
	}
	if err := s.checkTable(ctx, restaurantID, tableID, reservation.PartySize, others); err != nil {
		return nil, err
	}

	reservation.TableID = &tableID
	reservation.UpdatedAt = time.Now().UTC()

	if err := s.reservationRepo.UpdateByID(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to assign table: %w", err)
	}
	return reservation, nil
}

func (s *reservationService) Stats(ctx context.Context, restaurantID string, date time.Time) (*reservations.Stats, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return s.reservationRepo.Stats(ctx, restaurantID, day)
}

func (s *reservationService) CreateBlockedTime(ctx context.Context, block *reservations.BlockedTime) (*reservations.BlockedTime, error) {
	block.ID = uuid.NewString()
	block.CreatedAt = time.Now().UTC()

	if err := block.Validate(); err != nil {
		return nil, err
	}
	if err := s.blockedRepo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to create blocked time: %w", err)
	}
	return block, nil
}

func (s *reservationService) ListBlockedTimes(ctx context.Context, restaurantID string) ([]*reservations.BlockedTime, error) {
	return s.blockedRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *reservationService) DeleteBlockedTime(ctx context.Context, restaurantID, blockID string) error {
	block, err := s.blockedRepo.GetByID(ctx, blockID)
	if err != nil {
		return err
	}
	if block.RestaurantID != restaurantID {
		return fmt.Errorf("blocked time with ID %s not found", blockID)
	}
	return s.blockedRepo.DeleteByID(ctx, blockID)
}

// DueReminders narrows the repository's coarse candidates to the ones
// whose per-restaurant reminder window has opened.
func (s *reservationService) DueReminders(ctx context.Context, now time.Time) ([]*reservations.Reservation, error) {
	candidates, err := s.reservationRepo.ListDueReminders(ctx, now)
	if err != nil {
		return nil, err
	}

	settingsByRestaurant := map[string]*reservations.Settings{}
	due := make([]*reservations.Reservation, 0, len(candidates))
	for _, reservation := range candidates {
		settings, ok := settingsByRestaurant[reservation.RestaurantID]
		if !ok {
			settings, err = s.GetSettings(ctx, reservation.RestaurantID)
			if err != nil {
				s.logger.Error("Failed to load settings for restaurant ", reservation.RestaurantID, ": ", err)
				continue
			}
			settingsByRestaurant[reservation.RestaurantID] = settings
		}
		if !settings.SendReminder {
			continue
		}
		windowOpens := reservation.StartsAt().Add(-time.Duration(settings.ReminderHoursBefore) * time.Hour)
		if !now.Before(windowOpens) {
			due = append(due, reservation)
		}
	}
	return due, nil
}

func (s *reservationService) MarkReminderSent(ctx context.Context, reservationID string, sentAt time.Time) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	reservation.ReminderSent = true
	reservation.ReminderSentAt = &sentAt
	reservation.UpdatedAt = sentAt

	return s.reservationRepo.UpdateByID(ctx, reservation)
}

func (s *reservationService) MarkOverdueNoShows(ctx context.Context, grace time.Duration, now time.Time) (int, error) {
	overdue, err := s.reservationRepo.ListOverdue(ctx, now.Add(-grace))
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, reservation := range overdue {
		previous := reservation.Status
		reservation.Status = reservations.StatusNoShow
		reservation.UpdatedAt = now
		if err := s.reservationRepo.UpdateByID(ctx, reservation); err != nil {
			s.logger.Error("Failed to mark reservation ", reservation.ID, " as no-show: ", err)
			continue
		}
		s.recordHistory(ctx, reservation.ID, previous, reservations.StatusNoShow, nil, "guest did not arrive", now)
		marked++
	}

	if marked > 0 {
		s.logger.Info("Marked ", marked, " reservations as no-show")
	}
	return marked, nil
}

func (s *reservationService) recordHistory(ctx context.Context, reservationID, from, to string, changedBy *string, notes string, now time.Time) {
	entry := &reservations.HistoryEntry{
		ID:             uuid.NewString(),
		ReservationID:  reservationID,
		PreviousStatus: from,
		NewStatus:      to,
		ChangedByID:    changedBy,
		Notes:          notes,
		CreatedAt:      now,
	}
	if err := s.reservationRepo.AddHistory(ctx, entry); err != nil {
		s.logger.Error("Failed to record history for reservation ", reservationID, ": ", err)
	}
}

// suitableTableCount counts active tables that can seat the party.
func (s *reservationService) suitableTableCount(ctx context.Context, restaurantID string, partySize int) (int, error) {
	allTables, err := s.tableRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, table := range allTables {
		if table.IsActive && table.Capacity >= partySize && table.MinCapacity <= partySize {
			count++
		}
	}
	return count, nil
}

// checkTable validates a specific table for the party and rejects it
// when another overlapping reservation already holds it.
func (s *reservationService) checkTable(ctx context.Context, restaurantID, tableID string, partySize int, overlapping []*reservations.Reservation) error {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return err
	}
	if table.RestaurantID != restaurantID {
		return fmt.Errorf("table with ID %s not found", tableID)
	}
	if !table.IsActive {
		return fmt.Errorf("table %s is not available", table.Number)
	}
	if table.Capacity < partySize {
		return fmt.Errorf("table %s seats at most %d guests", table.Number, table.Capacity)
	}

	for _, r := range overlapping {
		if r.TableID != nil && *r.TableID == tableID {
			return fmt.Errorf("table %s is already reserved at that time", table.Number)
		}
	}
	return nil
}
