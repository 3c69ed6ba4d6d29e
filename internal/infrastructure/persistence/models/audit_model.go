package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
)

// AuditEntryModel is the GORM database model for audit log entries
type AuditEntryModel struct {
	ID string `gorm:"primaryKey;type:uuid"`

	UserID    *string `gorm:"index;type:uuid"`
	UserEmail string  `gorm:"type:varchar(255)"`
	IPAddress string  `gorm:"type:varchar(45)"`
	UserAgent string  `gorm:"type:varchar(500)"`

	RestaurantID *string `gorm:"index;type:uuid"`

	Action string `gorm:"not null;type:varchar(50);index"`

	TargetModel string `gorm:"type:varchar(100)"`
	TargetID    string `gorm:"type:varchar(100)"`

	Description string `gorm:"type:text"`
	Changes     string `gorm:"type:text"`

	RequestMethod  string `gorm:"type:varchar(10)"`
	RequestPath    string `gorm:"type:varchar(500)"`
	ResponseStatus int

	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts GORM model to domain entity
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		ID:             m.ID,
		UserID:         m.UserID,
		UserEmail:      m.UserEmail,
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
		RestaurantID:   m.RestaurantID,
		Action:         m.Action,
		TargetModel:    m.TargetModel,
		TargetID:       m.TargetID,
		Description:    m.Description,
		Changes:        fromJSONMap(m.Changes),
		RequestMethod:  m.RequestMethod,
		RequestPath:    m.RequestPath,
		ResponseStatus: m.ResponseStatus,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditEntryModel) FromDomain(e *audit.Entry) {
	m.ID = e.ID
	m.UserID = e.UserID
	m.UserEmail = e.UserEmail
	m.IPAddress = e.IPAddress
	m.UserAgent = e.UserAgent
	m.RestaurantID = e.RestaurantID
	m.Action = e.Action
	m.TargetModel = e.TargetModel
	m.TargetID = e.TargetID
	m.Description = e.Description
	m.Changes = toJSON(e.Changes)
	m.RequestMethod = e.RequestMethod
	m.RequestPath = e.RequestPath
	m.ResponseStatus = e.ResponseStatus
	m.CreatedAt = e.CreatedAt
}
