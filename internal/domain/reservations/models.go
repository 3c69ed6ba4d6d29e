package reservations

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

// Reservation status constants
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusWaitlist  = "waitlist"
	StatusSeated    = "seated"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// Reservation source constants
const (
	SourceWebsite    = "website"
	SourcePhone      = "phone"
	SourceWalkIn     = "walk_in"
	SourceThirdParty = "third_party"
	SourceApp        = "app"
)

// Blocked time reason constants
const (
	ReasonHoliday       = "holiday"
	ReasonPrivateEvent  = "private_event"
	ReasonMaintenance   = "maintenance"
	ReasonStaffShortage = "staff_shortage"
	ReasonOther         = "other"
)

// Settings holds a restaurant's reservation policy.
type Settings struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`

	AcceptsReservations bool
	MinPartySize        int           `validate:"min=1"`
	MaxPartySize        int           `validate:"min=1"`
	ReservationDuration time.Duration `validate:"required"`

	AdvanceBookingDays int `validate:"min=1"`
	MinAdvanceHours    int `validate:"min=0"`
	BufferMinutes      int `validate:"min=0"`
	SlotIntervalMin    int `validate:"min=5"`

	CancellationDeadlineHours int `validate:"min=0"`

	RequireConfirmation  bool
	AutoConfirmThreshold int `validate:"min=0"`

	SendReminder        bool
	ReminderHoursBefore int `validate:"min=1"`

	// 0 means unlimited.
	MaxDailyReservations  int `validate:"min=0"`
	MaxHourlyReservations int `validate:"min=0"`

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Settings struct
func (s *Settings) Validate() error {
	if s.MinPartySize > s.MaxPartySize {
		return fmt.Errorf("validation failed: min party size %d exceeds max %d", s.MinPartySize, s.MaxPartySize)
	}
	return validateStruct(s)
}

// DefaultSettings returns the policy applied before a restaurant
// customizes anything.
func DefaultSettings(restaurantID string) *Settings {
	return &Settings{
		RestaurantID:              restaurantID,
		AcceptsReservations:       true,
		MinPartySize:              1,
		MaxPartySize:              20,
		ReservationDuration:       2 * time.Hour,
		AdvanceBookingDays:        30,
		MinAdvanceHours:           2,
		BufferMinutes:             15,
		SlotIntervalMin:           30,
		CancellationDeadlineHours: 24,
		RequireConfirmation:       false,
		AutoConfirmThreshold:      4,
		SendReminder:              true,
		ReminderHoursBefore:       24,
	}
}

// Reservation is a table booking.
type Reservation struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	CustomerID   *string

	GuestName  string `validate:"required,min=1,max=255"`
	GuestEmail string `validate:"omitempty,email"`
	GuestPhone string `validate:"required,min=1,max=20"`

	// Date holds the calendar day at midnight UTC; StartTime the
	// wall-clock slot on that day.
	Date      time.Time `validate:"required"`
	StartTime time.Time `validate:"required"`
	PartySize int       `validate:"required,min=1"`
	Duration  time.Duration

	TableID *string

	Status string `validate:"required,oneof=pending confirmed waitlist seated completed cancelled no_show"`
	Source string `validate:"required,oneof=website phone walk_in third_party app"`

	ConfirmationCode string `validate:"required,len=8"`
	ConfirmedAt      *time.Time
	ConfirmedByID    *string

	SpecialRequests string
	InternalNotes   string

	ReminderSent   bool
	ReminderSentAt *time.Time

	CancelledAt        *time.Time
	CancelledByID      *string
	CancellationReason string

	SeatedAt    *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Reservation struct
func (r *Reservation) Validate() error {
	return validateStruct(r)
}

// StartsAt returns the combined start instant of the reservation.
func (r *Reservation) StartsAt() time.Time {
	return time.Date(
		r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.StartTime.Hour(), r.StartTime.Minute(), 0, 0, time.UTC,
	)
}

// EndsAt returns the expected end instant.
func (r *Reservation) EndsAt() time.Time {
	return r.StartsAt().Add(r.Duration)
}

// IsUpcoming reports whether the reservation is in the future.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.StartsAt().After(now)
}

// CanCancel reports whether the guest may still cancel under the
// given policy.
func (r *Reservation) CanCancel(settings *Settings, now time.Time) bool {
	switch r.Status {
	case StatusCancelled, StatusCompleted, StatusNoShow, StatusSeated:
		return false
	}
	if !r.IsUpcoming(now) {
		return false
	}
	if settings == nil {
		return true
	}
	deadline := r.StartsAt().Add(-time.Duration(settings.CancellationDeadlineHours) * time.Hour)
	return now.Before(deadline)
}

// CanModify reports whether the guest may still change the booking.
func (r *Reservation) CanModify(now time.Time) bool {
	if !r.IsUpcoming(now) {
		return false
	}
	return r.Status == StatusPending || r.Status == StatusConfirmed || r.Status == StatusWaitlist
}

// BlockedTime is a window when reservations are not accepted, for
// holidays, private events or maintenance.
type BlockedTime struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`

	StartAt time.Time `validate:"required"`
	EndAt   time.Time `validate:"required"`

	// Empty means all tables are blocked.
	TableIDs []string

	Reason      string `validate:"required,oneof=holiday private_event maintenance staff_shortage other"`
	Description string
	CreatedByID *string

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating BlockedTime struct
func (b *BlockedTime) Validate() error {
	if !b.EndAt.After(b.StartAt) {
		return fmt.Errorf("validation failed: end must be after start")
	}
	return validateStruct(b)
}

// Covers reports whether the block overlaps the given window.
func (b *BlockedTime) Covers(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

// BlocksAllTables reports whether the block applies to every table.
func (b *BlockedTime) BlocksAllTables() bool {
	return len(b.TableIDs) == 0
}

// HistoryEntry records one status transition of a reservation.
type HistoryEntry struct {
	ID             string `validate:"required,uuid4"`
	ReservationID  string `validate:"required,uuid4"`
	PreviousStatus string
	NewStatus      string `validate:"required"`
	ChangedByID    *string
	Notes          string
	CreatedAt      time.Time `validate:"required"`
}

// Validate for validating HistoryEntry struct
func (h *HistoryEntry) Validate() error {
	return validateStruct(h)
}

// ReservationQuery is a filter for listing reservations.
type ReservationQuery struct {
	Status     string `validate:"omitempty,oneof=pending confirmed waitlist seated completed cancelled no_show"`
	Date       time.Time
	CustomerID string
	Upcoming   bool

	Limit     int    `validate:"omitempty,min=1,max=200"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=date created_at status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewReservationQuery creates a ReservationQuery with defaults.
func NewReservationQuery() *ReservationQuery {
	return &ReservationQuery{
		Limit:     50,
		SortBy:    "date",
		SortOrder: "asc",
	}
}

// Validate for validating ReservationQuery struct
func (q *ReservationQuery) Validate() error {
	return validateStruct(q)
}

// Slot is one bookable time on a day.
type Slot struct {
	Start     time.Time
	Available bool
}

// Stats summarizes a restaurant's bookings for the dashboard.
type Stats struct {
	Total     int64
	Pending   int64
	Confirmed int64
	Seated    int64
	Completed int64
	Cancelled int64
	NoShow    int64
}

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewConfirmationCode generates an 8-character confirmation code.
func NewConfirmationCode() (string, error) {
	code := make([]byte, 8)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(confirmationAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate confirmation code: %w", err)
		}
		code[i] = confirmationAlphabet[n.Int64()]
	}
	return string(code), nil
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
