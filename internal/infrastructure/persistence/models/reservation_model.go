package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
)

// ReservationSettingsModel is the GORM database model for reservation policies
type ReservationSettingsModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	RestaurantID string `gorm:"not null;uniqueIndex;type:uuid"`

	AcceptsReservations    bool `gorm:"not null;default:true"`
	MinPartySize           int  `gorm:"not null;default:1"`
	MaxPartySize           int  `gorm:"not null;default:20"`
	ReservationDurationMin int  `gorm:"not null;default:120"`

	AdvanceBookingDays int `gorm:"not null;default:30"`
	MinAdvanceHours    int `gorm:"not null;default:2"`
	BufferMinutes      int `gorm:"not null;default:15"`
	SlotIntervalMin    int `gorm:"not null;default:30"`

	CancellationDeadlineHours int `gorm:"not null;default:24"`

	RequireConfirmation  bool
	AutoConfirmThreshold int `gorm:"not null;default:4"`

	SendReminder        bool `gorm:"not null;default:true"`
	ReminderHoursBefore int  `gorm:"not null;default:24"`

	MaxDailyReservations  int
	MaxHourlyReservations int

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ReservationSettingsModel) TableName() string {
	return "reservation_settings"
}

// ToDomain converts GORM model to domain entity
func (m *ReservationSettingsModel) ToDomain() *reservations.Settings {
	return &reservations.Settings{
		ID:                        m.ID,
		RestaurantID:              m.RestaurantID,
		AcceptsReservations:       m.AcceptsReservations,
		MinPartySize:              m.MinPartySize,
		MaxPartySize:              m.MaxPartySize,
		ReservationDuration:       time.Duration(m.ReservationDurationMin) * time.Minute,
		AdvanceBookingDays:        m.AdvanceBookingDays,
		MinAdvanceHours:           m.MinAdvanceHours,
		BufferMinutes:             m.BufferMinutes,
		SlotIntervalMin:           m.SlotIntervalMin,
		CancellationDeadlineHours: m.CancellationDeadlineHours,
		RequireConfirmation:       m.RequireConfirmation,
		AutoConfirmThreshold:      m.AutoConfirmThreshold,
		SendReminder:              m.SendReminder,
		ReminderHoursBefore:       m.ReminderHoursBefore,
		MaxDailyReservations:      m.MaxDailyReservations,
		MaxHourlyReservations:     m.MaxHourlyReservations,
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReservationSettingsModel) FromDomain(s *reservations.Settings) {
	m.ID = s.ID
	m.RestaurantID = s.RestaurantID
	m.AcceptsReservations = s.AcceptsReservations
	m.MinPartySize = s.MinPartySize
	m.MaxPartySize = s.MaxPartySize
	m.ReservationDurationMin = int(s.ReservationDuration / time.Minute)
	m.AdvanceBookingDays = s.AdvanceBookingDays
	m.MinAdvanceHours = s.MinAdvanceHours
	m.BufferMinutes = s.BufferMinutes
	m.SlotIntervalMin = s.SlotIntervalMin
	m.CancellationDeadlineHours = s.CancellationDeadlineHours
	m.RequireConfirmation = s.RequireConfirmation
	m.AutoConfirmThreshold = s.AutoConfirmThreshold
	m.SendReminder = s.SendReminder
	m.ReminderHoursBefore = s.ReminderHoursBefore
	m.MaxDailyReservations = s.MaxDailyReservations
	m.MaxHourlyReservations = s.MaxHourlyReservations
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ReservationModel is the GORM database model for reservations
type ReservationModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	RestaurantID string  `gorm:"not null;index;type:uuid"`
	CustomerID   *string `gorm:"index;type:uuid"`

	GuestName  string `gorm:"not null;type:varchar(255)"`
	GuestEmail string `gorm:"type:varchar(255)"`
	GuestPhone string `gorm:"not null;type:varchar(20)"`

	Date        time.Time `gorm:"not null;index"`
	StartTime   time.Time `gorm:"not null"`
	PartySize   int       `gorm:"not null"`
	DurationMin int       `gorm:"not null;default:120"`

	TableID *string `gorm:"type:uuid"`

	Status string `gorm:"not null;type:varchar(20);default:pending;index"`
	Source string `gorm:"not null;type:varchar(20);default:website"`

	ConfirmationCode string `gorm:"not null;uniqueIndex;type:varchar(8)"`
	ConfirmedAt      *time.Time
	ConfirmedByID    *string `gorm:"type:uuid"`

	SpecialRequests string `gorm:"type:text"`
	InternalNotes   string `gorm:"type:text"`

	ReminderSent   bool `gorm:"index"`
	ReminderSentAt *time.Time

	CancelledAt        *time.Time
	CancelledByID      *string `gorm:"type:uuid"`
	CancellationReason string  `gorm:"type:text"`

	SeatedAt    *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts GORM model to domain entity
func (m *ReservationModel) ToDomain() *reservations.Reservation {
	return &reservations.Reservation{
		ID:                 m.ID,
		RestaurantID:       m.RestaurantID,
		CustomerID:         m.CustomerID,
		GuestName:          m.GuestName,
		GuestEmail:         m.GuestEmail,
		GuestPhone:         m.GuestPhone,
		Date:               m.Date,
		StartTime:          m.StartTime,
		PartySize:          m.PartySize,
		Duration:           time.Duration(m.DurationMin) * time.Minute,
		TableID:            m.TableID,
		Status:             m.Status,
		Source:             m.Source,
		ConfirmationCode:   m.ConfirmationCode,
		ConfirmedAt:        m.ConfirmedAt,
		ConfirmedByID:      m.ConfirmedByID,
		SpecialRequests:    m.SpecialRequests,
		InternalNotes:      m.InternalNotes,
		ReminderSent:       m.ReminderSent,
		ReminderSentAt:     m.ReminderSentAt,
		CancelledAt:        m.CancelledAt,
		CancelledByID:      m.CancelledByID,
		CancellationReason: m.CancellationReason,
		SeatedAt:           m.SeatedAt,
		CompletedAt:        m.CompletedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReservationModel) FromDomain(r *reservations.Reservation) {
	m.ID = r.ID
	m.RestaurantID = r.RestaurantID
	m.CustomerID = r.CustomerID
	m.GuestName = r.GuestName
	m.GuestEmail = r.GuestEmail
	m.GuestPhone = r.GuestPhone
	m.Date = r.Date
	m.StartTime = r.StartTime
	m.PartySize = r.PartySize
	m.DurationMin = int(r.Duration / time.Minute)
	m.TableID = r.TableID
	m.Status = r.Status
	m.Source = r.Source
	m.ConfirmationCode = r.ConfirmationCode
	m.ConfirmedAt = r.ConfirmedAt
	m.ConfirmedByID = r.ConfirmedByID
	m.SpecialRequests = r.SpecialRequests
	m.InternalNotes = r.InternalNotes
	m.ReminderSent = r.ReminderSent
	m.ReminderSentAt = r.ReminderSentAt
	m.CancelledAt = r.CancelledAt
	m.CancelledByID = r.CancelledByID
	m.CancellationReason = r.CancellationReason
	m.SeatedAt = r.SeatedAt
	m.CompletedAt = r.CompletedAt
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

// BlockedTimeModel is the GORM database model for blocked reservation windows
type BlockedTimeModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	RestaurantID string `gorm:"not null;index;type:uuid"`

	StartAt time.Time `gorm:"not null;index"`
	EndAt   time.Time `gorm:"not null"`

	TableIDs string `gorm:"type:text"`

	Reason      string  `gorm:"not null;type:varchar(20)"`
	Description string  `gorm:"type:text"`
	CreatedByID *string `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BlockedTimeModel) TableName() string {
	return "reservation_blocked_times"
}

// ToDomain converts GORM model to domain entity
func (m *BlockedTimeModel) ToDomain() *reservations.BlockedTime {
	return &reservations.BlockedTime{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		StartAt:      m.StartAt,
		EndAt:        m.EndAt,
		TableIDs:     fromJSONStrings(m.TableIDs),
		Reason:       m.Reason,
		Description:  m.Description,
		CreatedByID:  m.CreatedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlockedTimeModel) FromDomain(b *reservations.BlockedTime) {
	m.ID = b.ID
	m.RestaurantID = b.RestaurantID
	m.StartAt = b.StartAt
	m.EndAt = b.EndAt
	m.TableIDs = toJSON(b.TableIDs)
	m.Reason = b.Reason
	m.Description = b.Description
	m.CreatedByID = b.CreatedByID
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
}

// ReservationHistoryModel is the GORM database model for reservation history
type ReservationHistoryModel struct {
	ID             string  `gorm:"primaryKey;type:uuid"`
	ReservationID  string  `gorm:"not null;index;type:uuid"`
	PreviousStatus string  `gorm:"type:varchar(20)"`
	NewStatus      string  `gorm:"not null;type:varchar(20)"`
	ChangedByID    *string `gorm:"type:uuid"`
	Notes          string  `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ReservationHistoryModel) TableName() string {
	return "reservation_history"
}

// ToDomain converts GORM model to domain entity
func (m *ReservationHistoryModel) ToDomain() *reservations.HistoryEntry {
	return &reservations.HistoryEntry{
		ID:             m.ID,
		ReservationID:  m.ReservationID,
		PreviousStatus: m.PreviousStatus,
		NewStatus:      m.NewStatus,
		ChangedByID:    m.ChangedByID,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ReservationHistoryModel) FromDomain(h *reservations.HistoryEntry) {
	m.ID = h.ID
	m.ReservationID = h.ReservationID
	m.PreviousStatus = h.PreviousStatus
	m.NewStatus = h.NewStatus
	m.ChangedByID = h.ChangedByID
	m.Notes = h.Notes
	m.CreatedAt = h.CreatedAt
}
