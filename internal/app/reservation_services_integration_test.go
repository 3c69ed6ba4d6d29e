//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingRestaurant registers a restaurant with one four-top so
// reservations have a table to land on.
func bookingRestaurant(t *testing.T, services *TestServices) string {
	t.Helper()
	ctx := context.Background()

	owner, err := services.AccountService.Register(ctx, &accounts.Registration{
		Email:    "host@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	restaurant, err := services.RestaurantService.Register(ctx, owner.ID, "Old Tbilisi", "old-tbilisi")
	require.NoError(t, err)

	_, err = services.TableService.CreateTable(ctx, &tables.Table{
		RestaurantID: restaurant.ID,
		Number:       "1",
		Capacity:     4,
	})
	require.NoError(t, err)

	return restaurant.ID
}

// bookingFor builds a valid request three days out at 19:00 UTC.
func bookingFor(restaurantID string, partySize int) *reservations.BookingRequest {
	day := time.Now().UTC().AddDate(0, 0, 3).Truncate(24 * time.Hour)
	return &reservations.BookingRequest{
		RestaurantID: restaurantID,
		GuestName:    "Nino",
		GuestPhone:   "+995555123456",
		Date:         day,
		StartTime:    day.Add(19 * time.Hour),
		PartySize:    partySize,
	}
}

func TestReservationService_Book_AutoConfirms(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	reservation, err := services.ReservationService.Book(ctx, bookingFor(restaurantID, 2))
	require.NoError(t, err)

	assert.Equal(t, reservations.StatusConfirmed, reservation.Status)
	assert.Len(t, reservation.ConfirmationCode, 8)
	assert.NotNil(t, reservation.ConfirmedAt)
}

func TestReservationService_Book_LargePartyStaysPending(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	// Above the auto-confirm threshold but still seatable once staff
	// push tables together.
	_, err := services.TableService.CreateTable(ctx, &tables.Table{
		RestaurantID: restaurantID,
		Number:       "2",
		Capacity:     8,
	})
	require.NoError(t, err)

	reservation, err := services.ReservationService.Book(ctx, bookingFor(restaurantID, 6))
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusPending, reservation.Status)
}

func TestReservationService_Book_NoSuitableTable_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	// Both bookings target the only four-top at the same time.
	_, err := services.ReservationService.Book(ctx, bookingFor(restaurantID, 2))
	require.NoError(t, err)

	_, err = services.ReservationService.Book(ctx, bookingFor(restaurantID, 2))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no tables are available")
}

func TestReservationService_Book_BlockedTime_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	request := bookingFor(restaurantID, 2)
	_, err := services.ReservationService.CreateBlockedTime(ctx, &reservations.BlockedTime{
		RestaurantID: restaurantID,
		StartAt:      request.StartTime.Add(-time.Hour),
		EndAt:        request.StartTime.Add(3 * time.Hour),
		Reason:       "private_event",
	})
	require.NoError(t, err)

	_, err = services.ReservationService.Book(ctx, request)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestReservationService_Cancel_EnforcesDeadline(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	// Default cancellation deadline is 24 hours; book just 3 hours out
	// so a guest cancellation is already too late.
	start := time.Now().UTC().Add(3 * time.Hour)
	day := start.Truncate(24 * time.Hour)
	reservation, err := services.ReservationService.Book(ctx, &reservations.BookingRequest{
		RestaurantID: restaurantID,
		GuestName:    "Giorgi",
		GuestPhone:   "+995555123456",
		Date:         day,
		StartTime:    start,
		PartySize:    2,
	})
	require.NoError(t, err)

	_, err = services.ReservationService.Cancel(ctx, restaurantID, reservation.ID, nil, "plans changed", true)
	assert.Error(t, err)

	// Staff cancellations ignore the deadline.
	cancelled, err := services.ReservationService.Cancel(ctx, restaurantID, reservation.ID, nil, "guest called", false)
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusCancelled, cancelled.Status)
}

func TestReservationService_Transition_And_Stats(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	request := bookingFor(restaurantID, 2)
	reservation, err := services.ReservationService.Book(ctx, request)
	require.NoError(t, err)

	seated, err := services.ReservationService.Transition(ctx, restaurantID, reservation.ID, reservations.StatusSeated, nil, "")
	require.NoError(t, err)
	assert.Equal(t, reservations.StatusSeated, seated.Status)

	stats, err := services.ReservationService.Stats(ctx, restaurantID, request.Date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Seated)
}

func TestReservationService_AssignTable_HonorsConfiguredBuffer(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	second, err := services.TableService.CreateTable(ctx, &tables.Table{
		RestaurantID: restaurantID,
		Number:       "2",
		Capacity:     4,
	})
	require.NoError(t, err)

	settings, err := services.ReservationService.GetSettings(ctx, restaurantID)
	require.NoError(t, err)
	settings.BufferMinutes = 120
	_, err = services.ReservationService.UpdateSettings(ctx, settings)
	require.NoError(t, err)

	day := time.Now().UTC().AddDate(0, 0, 3).Truncate(24 * time.Hour)

	first := bookingFor(restaurantID, 2)
	first.StartTime = day.Add(17 * time.Hour)
	first.TableID = &second.ID
	_, err = services.ReservationService.Book(ctx, first)
	require.NoError(t, err)

	// Ends one hour before the next booking starts, which is inside
	// the two hour buffer.
	later := bookingFor(restaurantID, 2)
	later.StartTime = day.Add(20 * time.Hour)
	reservation, err := services.ReservationService.Book(ctx, later)
	require.NoError(t, err)

	_, err = services.ReservationService.AssignTable(ctx, restaurantID, reservation.ID, second.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already reserved")
}

func TestReservationService_Availability_HourlyCapCountsSlotHour(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	// A second four-top keeps table capacity out of the picture.
	_, err := services.TableService.CreateTable(ctx, &tables.Table{
		RestaurantID: restaurantID,
		Number:       "2",
		Capacity:     4,
	})
	require.NoError(t, err)

	settings, err := services.ReservationService.GetSettings(ctx, restaurantID)
	require.NoError(t, err)
	settings.MaxHourlyReservations = 1
	_, err = services.ReservationService.UpdateSettings(ctx, settings)
	require.NoError(t, err)

	request := bookingFor(restaurantID, 2)
	_, err = services.ReservationService.Book(ctx, request)
	require.NoError(t, err)

	slots, err := services.ReservationService.Availability(ctx, restaurantID, request.Date, 2)
	require.NoError(t, err)

	byStart := map[time.Time]bool{}
	for _, slot := range slots {
		byStart[slot.Start] = slot.Available
	}

	// The 19:00 hour is capped by the existing booking; 20:00 merely
	// overlaps its tail end and stays bookable.
	assert.False(t, byStart[request.Date.Add(19*time.Hour)])
	assert.True(t, byStart[request.Date.Add(20*time.Hour)])
}

func TestReservationService_Lookup_ByConfirmationCode(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID := bookingRestaurant(t, services)
	ctx := context.Background()

	reservation, err := services.ReservationService.Book(ctx, bookingFor(restaurantID, 2))
	require.NoError(t, err)

	found, err := services.ReservationService.Lookup(ctx, restaurantID, reservation.ConfirmationCode)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, found.ID)
}
