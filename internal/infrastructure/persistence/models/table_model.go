package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
)

// TableSectionModel is the GORM database model for table sections
type TableSectionModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	RestaurantID string    `gorm:"not null;index;type:uuid"`
	Name         string    `gorm:"not null;type:varchar(100)"`
	Description  string    `gorm:"type:text"`
	DisplayOrder int
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TableSectionModel) TableName() string {
	return "table_sections"
}

// ToDomain converts GORM model to domain entity
func (m *TableSectionModel) ToDomain() *tables.TableSection {
	return &tables.TableSection{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TableSectionModel) FromDomain(s *tables.TableSection) {
	m.ID = s.ID
	m.RestaurantID = s.RestaurantID
	m.Name = s.Name
	m.Description = s.Description
	m.DisplayOrder = s.DisplayOrder
	m.IsActive = s.IsActive
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// TableModel is the GORM database model for tables
type TableModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	RestaurantID string  `gorm:"not null;index:idx_tables_restaurant_number,unique;type:uuid"`
	SectionID    *string `gorm:"index;type:uuid"`
	Number       string  `gorm:"not null;index:idx_tables_restaurant_number,unique;type:varchar(20)"`
	Name         string  `gorm:"type:varchar(100)"`
	Capacity     int     `gorm:"not null"`
	MinCapacity  int     `gorm:"not null;default:1"`
	Status       string  `gorm:"not null;type:varchar(20);default:available;index"`
	IsActive     bool    `gorm:"not null;default:true"`
	PositionX    *int
	PositionY    *int
	Shape        string    `gorm:"not null;type:varchar(10);default:square"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TableModel) TableName() string {
	return "tables"
}

// ToDomain converts GORM model to domain entity
func (m *TableModel) ToDomain() *tables.Table {
	return &tables.Table{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		SectionID:    m.SectionID,
		Number:       m.Number,
		Name:         m.Name,
		Capacity:     m.Capacity,
		MinCapacity:  m.MinCapacity,
		Status:       m.Status,
		IsActive:     m.IsActive,
		PositionX:    m.PositionX,
		PositionY:    m.PositionY,
		Shape:        m.Shape,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TableModel) FromDomain(t *tables.Table) {
	m.ID = t.ID
	m.RestaurantID = t.RestaurantID
	m.SectionID = t.SectionID
	m.Number = t.Number
	m.Name = t.Name
	m.Capacity = t.Capacity
	m.MinCapacity = t.MinCapacity
	m.Status = t.Status
	m.IsActive = t.IsActive
	m.PositionX = t.PositionX
	m.PositionY = t.PositionY
	m.Shape = t.Shape
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// TableQRCodeModel is the GORM database model for table QR codes
type TableQRCodeModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	TableID       string `gorm:"not null;index;type:uuid"`
	Code          string `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Name          string `gorm:"type:varchar(100)"`
	IsActive      bool   `gorm:"not null;default:true"`
	ScansCount    int
	LastScannedAt *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (TableQRCodeModel) TableName() string {
	return "table_qr_codes"
}

// ToDomain converts GORM model to domain entity
func (m *TableQRCodeModel) ToDomain() *tables.TableQRCode {
	return &tables.TableQRCode{
		ID:            m.ID,
		TableID:       m.TableID,
		Code:          m.Code,
		Name:          m.Name,
		IsActive:      m.IsActive,
		ScansCount:    m.ScansCount,
		LastScannedAt: m.LastScannedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TableQRCodeModel) FromDomain(q *tables.TableQRCode) {
	m.ID = q.ID
	m.TableID = q.TableID
	m.Code = q.Code
	m.Name = q.Name
	m.IsActive = q.IsActive
	m.ScansCount = q.ScansCount
	m.LastScannedAt = q.LastScannedAt
	m.CreatedAt = q.CreatedAt
	m.UpdatedAt = q.UpdatedAt
}

// TableSessionModel is the GORM database model for table sessions
type TableSessionModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	TableID    string  `gorm:"not null;index;type:uuid"`
	QRCodeID   *string `gorm:"type:uuid"`
	HostUserID *string `gorm:"type:uuid"`
	InviteCode string  `gorm:"not null;index;type:varchar(8)"`
	GuestCount int     `gorm:"not null;default:1"`
	Status     string  `gorm:"not null;type:varchar(20);default:active;index"`
	StartedAt  time.Time `gorm:"not null"`
	ClosedAt   *time.Time
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TableSessionModel) TableName() string {
	return "table_sessions"
}

// ToDomain converts GORM model to domain entity
func (m *TableSessionModel) ToDomain() *tables.TableSession {
	return &tables.TableSession{
		ID:         m.ID,
		TableID:    m.TableID,
		QRCodeID:   m.QRCodeID,
		HostUserID: m.HostUserID,
		InviteCode: m.InviteCode,
		GuestCount: m.GuestCount,
		Status:     m.Status,
		StartedAt:  m.StartedAt,
		ClosedAt:   m.ClosedAt,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TableSessionModel) FromDomain(s *tables.TableSession) {
	m.ID = s.ID
	m.TableID = s.TableID
	m.QRCodeID = s.QRCodeID
	m.HostUserID = s.HostUserID
	m.InviteCode = s.InviteCode
	m.GuestCount = s.GuestCount
	m.Status = s.Status
	m.StartedAt = s.StartedAt
	m.ClosedAt = s.ClosedAt
	m.Notes = s.Notes
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// SessionGuestModel is the GORM database model for session guests
type SessionGuestModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	SessionID string  `gorm:"not null;index;type:uuid"`
	UserID    *string `gorm:"type:uuid"`
	GuestName string  `gorm:"type:varchar(100)"`
	IsHost    bool
	Status    string    `gorm:"not null;type:varchar(10);default:active"`
	JoinedAt  time.Time `gorm:"not null"`
	LeftAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionGuestModel) TableName() string {
	return "session_guests"
}

// ToDomain converts GORM model to domain entity
func (m *SessionGuestModel) ToDomain() *tables.SessionGuest {
	return &tables.SessionGuest{
		ID:        m.ID,
		SessionID: m.SessionID,
		UserID:    m.UserID,
		GuestName: m.GuestName,
		IsHost:    m.IsHost,
		Status:    m.Status,
		JoinedAt:  m.JoinedAt,
		LeftAt:    m.LeftAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionGuestModel) FromDomain(g *tables.SessionGuest) {
	m.ID = g.ID
	m.SessionID = g.SessionID
	m.UserID = g.UserID
	m.GuestName = g.GuestName
	m.IsHost = g.IsHost
	m.Status = g.Status
	m.JoinedAt = g.JoinedAt
	m.LeftAt = g.LeftAt
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
}
