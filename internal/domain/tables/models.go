package tables

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
)

// Table status constants
const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableUnavailable = "unavailable"
)

// Table shape constants for the floor plan
const (
	ShapeSquare    = "square"
	ShapeRound     = "round"
	ShapeRectangle = "rectangle"
)

// Session status constants
const (
	SessionActive         = "active"
	SessionPaymentPending = "payment_pending"
	SessionClosed         = "closed"
)

// Guest status constants
const (
	GuestActive = "active"
	GuestLeft   = "left"
)

// TableSection is an area within a restaurant (Main Hall, Terrace).
type TableSection struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	Name         string `validate:"required,min=1,max=100"`
	Description  string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating TableSection struct
func (s *TableSection) Validate() error {
	return validateStruct(s)
}

// Table is a physical table with capacity and floor-plan placement.
type Table struct {
	ID           string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	SectionID    *string
	Number       string `validate:"required,min=1,max=20"`
	Name         string `validate:"omitempty,max=100"`
	Capacity     int    `validate:"required,min=1"`
	MinCapacity  int    `validate:"min=1"`
	Status       string `validate:"required,oneof=available occupied reserved unavailable"`
	IsActive     bool
	PositionX    *int
	PositionY    *int
	Shape        string `validate:"required,oneof=square round rectangle"`
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating Table struct
func (t *Table) Validate() error {
	if t.MinCapacity > t.Capacity {
		return fmt.Errorf("validation failed: min capacity %d exceeds capacity %d", t.MinCapacity, t.Capacity)
	}
	return validateStruct(t)
}

// DisplayName returns the label shown to guests and staff.
func (t *Table) DisplayName() string {
	if t.Name != "" {
		return fmt.Sprintf("%s - %s", t.Number, t.Name)
	}
	return fmt.Sprintf("Table %s", t.Number)
}

// TableQRCode is a scannable code placed on a table that opens (or
// resumes) an ordering session.
type TableQRCode struct {
	ID            string `validate:"required,uuid4"`
	TableID       string `validate:"required,uuid4"`
	Code          string `validate:"required,min=16,max=64"`
	Name          string `validate:"omitempty,max=100"`
	IsActive      bool
	ScansCount    int
	LastScannedAt *time.Time
	CreatedAt     time.Time `validate:"required"`
	UpdatedAt     time.Time
}

// Validate for validating TableQRCode struct
func (q *TableQRCode) Validate() error {
	return validateStruct(q)
}

// TableSession tracks one seating: guests joining via QR or invite
// code, their orders, and the eventual close that frees the table.
type TableSession struct {
	ID         string `validate:"required,uuid4"`
	TableID    string `validate:"required,uuid4"`
	QRCodeID   *string
	HostUserID *string
	InviteCode string `validate:"required,len=8"`
	GuestCount int    `validate:"min=1"`
	Status     string `validate:"required,oneof=active payment_pending closed"`
	StartedAt  time.Time `validate:"required"`
	ClosedAt   *time.Time
	Notes      string
	CreatedAt  time.Time `validate:"required"`
	UpdatedAt  time.Time
}

// Validate for validating TableSession struct
func (s *TableSession) Validate() error {
	return validateStruct(s)
}

// IsActive reports whether guests can still order on this session.
func (s *TableSession) IsActive() bool {
	return s.Status == SessionActive
}

// Duration returns how long the session has been (or was) open.
func (s *TableSession) Duration(now time.Time) time.Duration {
	end := now
	if s.ClosedAt != nil {
		end = *s.ClosedAt
	}
	return end.Sub(s.StartedAt)
}

// SessionGuest is one participant in a table session.
type SessionGuest struct {
	ID        string `validate:"required,uuid4"`
	SessionID string `validate:"required,uuid4"`
	UserID    *string
	GuestName string `validate:"omitempty,max=100"`
	IsHost    bool
	Status    string `validate:"required,oneof=active left"`
	JoinedAt  time.Time `validate:"required"`
	LeftAt    *time.Time
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating SessionGuest struct
func (g *SessionGuest) Validate() error {
	return validateStruct(g)
}

// NewQRToken generates an opaque URL-safe token for a table QR code.
func NewQRToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate QR token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewInviteCode generates an 8-character shareable invite code.
func NewInviteCode() (string, error) {
	code := make([]byte, 8)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code[i] = inviteAlphabet[n.Int64()]
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
