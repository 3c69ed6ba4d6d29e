package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Email               string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash        string `gorm:"not null;type:varchar(255)"`
	FirstName           string `gorm:"type:varchar(150)"`
	LastName            string `gorm:"type:varchar(150)"`
	PhoneNumber         string `gorm:"index;type:varchar(20)"`
	PhoneVerified       bool
	AvatarURL           string `gorm:"type:varchar(500)"`
	PreferredLanguage   string `gorm:"not null;type:varchar(5);default:ka"`
	LastLoginIP         string `gorm:"type:varchar(45)"`
	FailedLoginAttempts int
	LockedUntil         *time.Time
	CreatedAt           time.Time `gorm:"not null;index"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		PhoneNumber:         m.PhoneNumber,
		PhoneVerified:       m.PhoneVerified,
		AvatarURL:           m.AvatarURL,
		PreferredLanguage:   m.PreferredLanguage,
		LastLoginIP:         m.LastLoginIP,
		FailedLoginAttempts: m.FailedLoginAttempts,
		LockedUntil:         m.LockedUntil,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.PhoneNumber = u.PhoneNumber
	m.PhoneVerified = u.PhoneVerified
	m.AvatarURL = u.AvatarURL
	m.PreferredLanguage = u.PreferredLanguage
	m.LastLoginIP = u.LastLoginIP
	m.FailedLoginAttempts = u.FailedLoginAttempts
	m.LockedUntil = u.LockedUntil
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// UserProfileModel is the GORM database model for extended profiles
type UserProfileModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	UserID             string `gorm:"not null;uniqueIndex;type:uuid"`
	DateOfBirth        *time.Time
	Preferences        string `gorm:"type:text"`
	LoyaltyPoints      int
	TotalOrders        int
	EmailNotifications bool `gorm:"not null;default:true"`
	SMSNotifications   bool
	PushNotifications  bool `gorm:"not null;default:true"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToDomain converts GORM model to domain entity
func (m *UserProfileModel) ToDomain() *accounts.UserProfile {
	return &accounts.UserProfile{
		ID:                 m.ID,
		UserID:             m.UserID,
		DateOfBirth:        m.DateOfBirth,
		Preferences:        fromJSONMap(m.Preferences),
		LoyaltyPoints:      m.LoyaltyPoints,
		TotalOrders:        m.TotalOrders,
		EmailNotifications: m.EmailNotifications,
		SMSNotifications:   m.SMSNotifications,
		PushNotifications:  m.PushNotifications,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserProfileModel) FromDomain(p *accounts.UserProfile) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.DateOfBirth = p.DateOfBirth
	m.Preferences = toJSON(p.Preferences)
	m.LoyaltyPoints = p.LoyaltyPoints
	m.TotalOrders = p.TotalOrders
	m.EmailNotifications = p.EmailNotifications
	m.SMSNotifications = p.SMSNotifications
	m.PushNotifications = p.PushNotifications
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
