package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/shopspring/decimal"
)

// RestaurantModel is the GORM database model for restaurants (infrastructure concern)
type RestaurantModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	Name          string          `gorm:"not null;type:varchar(255)"`
	Slug          string          `gorm:"not null;uniqueIndex;type:varchar(100)"`
	OwnerID       string          `gorm:"not null;index;type:uuid"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2)"`
	ServiceCharge decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ToDomain converts GORM model to domain entity
func (m *RestaurantModel) ToDomain() *tenants.Restaurant {
	return &tenants.Restaurant{
		ID:            m.ID,
		Name:          m.Name,
		Slug:          m.Slug,
		OwnerID:       m.OwnerID,
		IsActive:      m.IsActive,
		TaxRate:       m.TaxRate,
		ServiceCharge: m.ServiceCharge,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RestaurantModel) FromDomain(r *tenants.Restaurant) {
	m.ID = r.ID
	m.Name = r.Name
	m.Slug = r.Slug
	m.OwnerID = r.OwnerID
	m.IsActive = r.IsActive
	m.TaxRate = r.TaxRate
	m.ServiceCharge = r.ServiceCharge
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
