//go:build unit
// +build unit

package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upcomingReservation(status string, startsIn time.Duration) *Reservation {
	start := time.Now().UTC().Add(startsIn)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return &Reservation{
		Status:    status,
		Date:      day,
		StartTime: start,
		Duration:  2 * time.Hour,
	}
}

func TestReservation_CanCancel_BeforeDeadline(t *testing.T) {
	settings := DefaultSettings("restaurant-123")
	now := time.Now().UTC()

	// 48 hours out, 24 hour deadline: still cancellable.
	reservation := upcomingReservation(StatusConfirmed, 48*time.Hour)
	assert.True(t, reservation.CanCancel(settings, now))

	// 3 hours out: past the deadline.
	reservation = upcomingReservation(StatusConfirmed, 3*time.Hour)
	assert.False(t, reservation.CanCancel(settings, now))

	// Without a policy only the status and the clock matter.
	assert.True(t, reservation.CanCancel(nil, now))
}

func TestReservation_CanCancel_FinalStates(t *testing.T) {
	now := time.Now().UTC()
	for _, status := range []string{StatusCancelled, StatusCompleted, StatusNoShow, StatusSeated} {
		reservation := upcomingReservation(status, 48*time.Hour)
		assert.False(t, reservation.CanCancel(nil, now), "expected %s reservation to be final", status)
	}
}

func TestReservation_EndsAt(t *testing.T) {
	reservation := upcomingReservation(StatusConfirmed, 24*time.Hour)

	assert.Equal(t, reservation.StartsAt().Add(2*time.Hour), reservation.EndsAt())
	assert.True(t, reservation.IsUpcoming(time.Now().UTC()))
}

func TestNewConfirmationCode(t *testing.T) {
	code, err := NewConfirmationCode()
	require.NoError(t, err)
	assert.Len(t, code, 8)

	other, err := NewConfirmationCode()
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}

func TestBlockedTime_Covers(t *testing.T) {
	start := time.Date(2026, 8, 23, 18, 0, 0, 0, time.UTC)
	block := &BlockedTime{StartAt: start, EndAt: start.Add(2 * time.Hour)}

	assert.True(t, block.Covers(start.Add(time.Hour), start.Add(3*time.Hour)))
	assert.True(t, block.Covers(start.Add(-time.Hour), start.Add(time.Minute)))
	assert.False(t, block.Covers(start.Add(2*time.Hour), start.Add(4*time.Hour)))
	assert.False(t, block.Covers(start.Add(-2*time.Hour), start))
}

func TestBlockedTime_BlocksAllTables(t *testing.T) {
	block := &BlockedTime{}
	assert.True(t, block.BlocksAllTables())

	block.TableIDs = []string{"table-123"}
	assert.False(t, block.BlocksAllTables())
}

func TestBlockedTime_Validate_EndBeforeStart(t *testing.T) {
	start := time.Now().UTC()
	block := &BlockedTime{StartAt: start, EndAt: start.Add(-time.Hour)}

	err := block.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "end must be after start")
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings("restaurant-123")

	assert.True(t, settings.AcceptsReservations)
	assert.Equal(t, 2*time.Hour, settings.ReservationDuration)
	assert.Equal(t, 24, settings.CancellationDeadlineHours)
	assert.Equal(t, 4, settings.AutoConfirmThreshold)
}
