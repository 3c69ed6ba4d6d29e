package reservations

import (
	"context"
	"time"
)

// BookingRequest describes a reservation being placed.
type BookingRequest struct {
	RestaurantID string `validate:"required,uuid4"`
	CustomerID   *string

	GuestName  string `validate:"required,min=1,max=255"`
	GuestEmail string `validate:"omitempty,email"`
	GuestPhone string `validate:"required,min=1,max=20"`

	Date      time.Time `validate:"required"`
	StartTime time.Time `validate:"required"`
	PartySize int       `validate:"required,min=1"`

	TableID         *string
	Source          string `validate:"omitempty,oneof=website phone walk_in third_party app"`
	SpecialRequests string
}

// ReservationService defines booking operations.
type ReservationService interface {
	// Settings
	GetSettings(ctx context.Context, restaurantID string) (*Settings, error)
	UpdateSettings(ctx context.Context, settings *Settings) (*Settings, error)

	// Availability returns the bookable slots for a date and party
	// size, taking blocked times and table capacity into account.
	Availability(ctx context.Context, restaurantID string, date time.Time, partySize int) ([]*Slot, error)

	// Book places a reservation. Parties at or below the auto-confirm
	// threshold are confirmed immediately unless the policy requires
	// manual confirmation.
	Book(ctx context.Context, request *BookingRequest) (*Reservation, error)

	// Lookup finds a reservation by confirmation code.
	Lookup(ctx context.Context, restaurantID, confirmationCode string) (*Reservation, error)

	// GetByID retrieves a reservation.
	GetByID(ctx context.Context, restaurantID, reservationID string) (*Reservation, error)

	// List retrieves reservations considering a query filter when set.
	List(ctx context.Context, restaurantID string, query *ReservationQuery) ([]*Reservation, error)

	// ListByCustomer retrieves a customer's own reservations across
	// the platform.
	ListByCustomer(ctx context.Context, customerID string, query *ReservationQuery) ([]*Reservation, error)

	// Transition moves the reservation to the target status
	// (confirm/seat/complete/no_show), recording history.
	Transition(ctx context.Context, restaurantID, reservationID, target string, changedBy *string, notes string) (*Reservation, error)

	// Cancel cancels a reservation, enforcing the cancellation
	// deadline for customer-initiated cancellations.
	Cancel(ctx context.Context, restaurantID, reservationID string, cancelledBy *string, reason string, enforceDeadline bool) (*Reservation, error)

	// AssignTable sets or changes the table of a reservation.
	AssignTable(ctx context.Context, restaurantID, reservationID, tableID string) (*Reservation, error)

	// Stats aggregates reservation counts for a date.
	Stats(ctx context.Context, restaurantID string, date time.Time) (*Stats, error)

	// Blocked times
	CreateBlockedTime(ctx context.Context, block *BlockedTime) (*BlockedTime, error)
	ListBlockedTimes(ctx context.Context, restaurantID string) ([]*BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, restaurantID, blockID string) error

	// DueReminders returns confirmed upcoming reservations whose
	// reminder window has opened and has not been sent yet. Run by
	// the worker.
	DueReminders(ctx context.Context, now time.Time) ([]*Reservation, error)

	// MarkReminderSent flags a reservation's reminder as delivered.
	MarkReminderSent(ctx context.Context, reservationID string, sentAt time.Time) error

	// MarkOverdueNoShows marks confirmed reservations as no-shows once
	// the grace period after their start has elapsed. Run by the worker.
	MarkOverdueNoShows(ctx context.Context, grace time.Duration, now time.Time) (int, error)
}

// SettingsRepository defines the interface for Settings-related operations
type SettingsRepository interface {
	Create(ctx context.Context, settings *Settings) error
	GetByRestaurant(ctx context.Context, restaurantID string) (*Settings, error)
	UpdateByID(ctx context.Context, settings *Settings) error
}

// ReservationRepository defines the interface for Reservation-related operations
type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, reservationID string) (*Reservation, error)
	GetByConfirmationCode(ctx context.Context, restaurantID, code string) (*Reservation, error)
	List(ctx context.Context, restaurantID string, query *ReservationQuery) ([]*Reservation, error)
	ListByCustomer(ctx context.Context, customerID string, query *ReservationQuery) ([]*Reservation, error)
	UpdateByID(ctx context.Context, reservation *Reservation) error

	// ListWindow returns non-cancelled reservations overlapping the
	// window, for availability and conflict checks.
	ListWindow(ctx context.Context, restaurantID string, start, end time.Time) ([]*Reservation, error)

	// CountByDay counts non-cancelled reservations on a calendar day.
	CountByDay(ctx context.Context, restaurantID string, day time.Time) (int64, error)

	// ListDueReminders returns confirmed reservations starting within
	// their reminder window whose reminder has not been sent.
	ListDueReminders(ctx context.Context, now time.Time) ([]*Reservation, error)

	// ListOverdue returns pending/confirmed reservations whose start
	// lies further in the past than the cutoff.
	ListOverdue(ctx context.Context, cutoff time.Time) ([]*Reservation, error)

	// Stats aggregates per-status counts for a day.
	Stats(ctx context.Context, restaurantID string, day time.Time) (*Stats, error)

	// History
	AddHistory(ctx context.Context, entry *HistoryEntry) error
	ListHistory(ctx context.Context, reservationID string) ([]*HistoryEntry, error)
}

// BlockedTimeRepository defines the interface for BlockedTime-related operations
type BlockedTimeRepository interface {
	Create(ctx context.Context, block *BlockedTime) error
	GetByID(ctx context.Context, blockID string) (*BlockedTime, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*BlockedTime, error)
	ListWindow(ctx context.Context, restaurantID string, start, end time.Time) ([]*BlockedTime, error)
	DeleteByID(ctx context.Context, blockID string) error
}
