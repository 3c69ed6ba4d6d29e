package tables

import (
	"context"
	"time"
)

// ScanResult is returned when a guest scans a table QR code.
type ScanResult struct {
	Table   *Table
	Session *TableSession
	Guest   *SessionGuest
	// Created reports whether the scan started a new session rather
	// than joining the table's existing active one.
	Created bool
}

// TableService manages sections, tables, QR codes and sessions.
type TableService interface {
	// Sections
	CreateSection(ctx context.Context, section *TableSection) (*TableSection, error)
	ListSections(ctx context.Context, restaurantID string) ([]*TableSection, error)

	// Tables
	CreateTable(ctx context.Context, table *Table) (*Table, error)
	GetTable(ctx context.Context, restaurantID, tableID string) (*Table, error)
	ListTables(ctx context.Context, restaurantID string) ([]*Table, error)
	UpdateTable(ctx context.Context, table *Table) (*Table, error)
	SetTableStatus(ctx context.Context, restaurantID, tableID, status string) (*Table, error)

	// QR codes
	CreateQRCode(ctx context.Context, restaurantID, tableID, name string) (*TableQRCode, error)
	ListQRCodes(ctx context.Context, restaurantID, tableID string) ([]*TableQRCode, error)

	// Scan resolves a QR code, records the scan, and returns the
	// table's active session, starting one when none exists.
	Scan(ctx context.Context, code string, userID *string, guestName string) (*ScanResult, error)

	// JoinByInviteCode adds a guest to an active session.
	JoinByInviteCode(ctx context.Context, inviteCode string, userID *string, guestName string) (*ScanResult, error)

	// LeaveSession marks a guest as having left.
	LeaveSession(ctx context.Context, sessionID, guestID string) error

	// CloseSession closes the session and frees the table.
	CloseSession(ctx context.Context, restaurantID, sessionID string) error

	// ExpireStaleSessions closes active sessions idle longer than
	// maxIdle and returns how many were closed. Run by the worker.
	ExpireStaleSessions(ctx context.Context, maxIdle time.Duration, now time.Time) (int, error)
}

// TableSectionRepository defines the interface for TableSection-related operations
type TableSectionRepository interface {
	Create(ctx context.Context, section *TableSection) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*TableSection, error)
}

// TableRepository defines the interface for Table-related operations
type TableRepository interface {
	Create(ctx context.Context, table *Table) error
	GetByID(ctx context.Context, tableID string) (*Table, error)
	GetByNumber(ctx context.Context, restaurantID, number string) (*Table, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Table, error)
	UpdateByID(ctx context.Context, table *Table) error
}

// QRCodeRepository defines the interface for TableQRCode-related operations
type QRCodeRepository interface {
	Create(ctx context.Context, qr *TableQRCode) error
	GetByCode(ctx context.Context, code string) (*TableQRCode, error)
	ListByTable(ctx context.Context, tableID string) ([]*TableQRCode, error)
	UpdateByID(ctx context.Context, qr *TableQRCode) error
}

// SessionRepository defines the interface for TableSession-related operations
type SessionRepository interface {
	Create(ctx context.Context, session *TableSession) error
	GetByID(ctx context.Context, sessionID string) (*TableSession, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (*TableSession, error)
	GetActiveByTable(ctx context.Context, tableID string) (*TableSession, error)
	ListStale(ctx context.Context, cutoff time.Time) ([]*TableSession, error)
	UpdateByID(ctx context.Context, session *TableSession) error

	// Guests
	AddGuest(ctx context.Context, guest *SessionGuest) error
	GetGuestByUser(ctx context.Context, sessionID, userID string) (*SessionGuest, error)
	GetGuestByID(ctx context.Context, guestID string) (*SessionGuest, error)
	ListGuests(ctx context.Context, sessionID string) ([]*SessionGuest, error)
	UpdateGuestByID(ctx context.Context, guest *SessionGuest) error
}
