package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
)

// StaffRoleModel is the GORM database model for staff roles
type StaffRoleModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	RestaurantID string    `gorm:"not null;index:idx_staff_roles_restaurant_name,unique;type:uuid"`
	Name         string    `gorm:"not null;index:idx_staff_roles_restaurant_name,unique;type:varchar(50)"`
	Permissions  string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (StaffRoleModel) TableName() string {
	return "staff_roles"
}

// ToDomain converts GORM model to domain entity
func (m *StaffRoleModel) ToDomain() *staff.StaffRole {
	return &staff.StaffRole{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Permissions:  staff.Permissions(fromJSONStringListMap(m.Permissions)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StaffRoleModel) FromDomain(r *staff.StaffRole) {
	m.ID = r.ID
	m.RestaurantID = r.RestaurantID
	m.Name = r.Name
	m.Permissions = toJSON(r.Permissions)
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

// StaffMemberModel is the GORM database model for staff memberships
type StaffMemberModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	RestaurantID string    `gorm:"not null;index:idx_staff_members_restaurant_user,unique;type:uuid"`
	UserID       string    `gorm:"not null;index:idx_staff_members_restaurant_user,unique;type:uuid"`
	RoleID       string    `gorm:"not null;index;type:uuid"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (StaffMemberModel) TableName() string {
	return "staff_members"
}

// ToDomain converts GORM model to domain entity
func (m *StaffMemberModel) ToDomain() *staff.StaffMember {
	return &staff.StaffMember{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		UserID:       m.UserID,
		RoleID:       m.RoleID,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StaffMemberModel) FromDomain(s *staff.StaffMember) {
	m.ID = s.ID
	m.RestaurantID = s.RestaurantID
	m.UserID = s.UserID
	m.RoleID = s.RoleID
	m.IsActive = s.IsActive
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
