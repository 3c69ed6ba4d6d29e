//go:build unit
// +build unit

package tables

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTable() *Table {
	return &Table{
		ID:           uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Number:       "12",
		Capacity:     4,
		MinCapacity:  2,
		Status:       TableAvailable,
		Shape:        ShapeSquare,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestTable_Validate(t *testing.T) {
	table := validTable()
	assert.Nil(t, table.Validate())

	table.Status = "on_fire"
	err := table.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "Field: Status, Tag: oneof")
}

func TestTable_Validate_MinCapacityAboveCapacity(t *testing.T) {
	table := validTable()
	table.MinCapacity = 6

	err := table.Validate()
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "min capacity")
}

func TestTable_DisplayName(t *testing.T) {
	table := validTable()
	assert.Equal(t, "Table 12", table.DisplayName())

	table.Name = "Window Booth"
	assert.Equal(t, "12 - Window Booth", table.DisplayName())
}

func TestTableSession_IsActive(t *testing.T) {
	session := &TableSession{Status: SessionActive}
	assert.True(t, session.IsActive())

	session.Status = SessionClosed
	assert.False(t, session.IsActive())

	session.Status = SessionPaymentPending
	assert.False(t, session.IsActive())
}

func TestTableSession_Duration(t *testing.T) {
	started := time.Now().UTC().Add(-90 * time.Minute)
	session := &TableSession{StartedAt: started}

	assert.InDelta(t, 90*time.Minute, session.Duration(time.Now().UTC()), float64(time.Second))

	closed := started.Add(time.Hour)
	session.ClosedAt = &closed
	assert.Equal(t, time.Hour, session.Duration(time.Now().UTC()))
}

func TestNewQRToken(t *testing.T) {
	token, err := NewQRToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	other, err := NewQRToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestNewInviteCode(t *testing.T) {
	code, err := NewInviteCode()
	require.NoError(t, err)
	assert.Len(t, code, 8)

	for _, r := range code {
		assert.Contains(t, inviteAlphabet, string(r))
	}
}
