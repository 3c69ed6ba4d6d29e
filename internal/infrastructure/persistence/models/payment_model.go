package models

import (
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// PaymentModel is the GORM database model for payments
type PaymentModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	OrderID      string  `gorm:"not null;index;type:uuid"`
	RestaurantID string  `gorm:"not null;index;type:uuid"`
	CustomerID   *string `gorm:"type:uuid"`
	ProcessedBy  *string `gorm:"type:uuid"`

	Amount      decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	TipAmount   decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalAmount decimal.Decimal `gorm:"not null;type:numeric(10,2)"`

	Method string `gorm:"not null;type:varchar(10)"`
	Status string `gorm:"not null;type:varchar(20);default:pending;index"`

	ExternalPaymentID string `gorm:"type:varchar(255)"`
	PaymentIntentID   string `gorm:"type:varchar(255)"`

	Currency      string `gorm:"not null;type:varchar(3);default:GEL"`
	ReceiptNumber string `gorm:"type:varchar(50)"`
	Notes         string `gorm:"type:text"`

	CompletedAt   *time.Time
	FailedAt      *time.Time
	FailureReason string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts GORM model to domain entity
func (m *PaymentModel) ToDomain() *payments.Payment {
	return &payments.Payment{
		ID:                m.ID,
		OrderID:           m.OrderID,
		RestaurantID:      m.RestaurantID,
		CustomerID:        m.CustomerID,
		ProcessedBy:       m.ProcessedBy,
		Amount:            m.Amount,
		TipAmount:         m.TipAmount,
		TotalAmount:       m.TotalAmount,
		Method:            m.Method,
		Status:            m.Status,
		ExternalPaymentID: m.ExternalPaymentID,
		PaymentIntentID:   m.PaymentIntentID,
		Currency:          m.Currency,
		ReceiptNumber:     m.ReceiptNumber,
		Notes:             m.Notes,
		CompletedAt:       m.CompletedAt,
		FailedAt:          m.FailedAt,
		FailureReason:     m.FailureReason,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaymentModel) FromDomain(p *payments.Payment) {
	m.ID = p.ID
	m.OrderID = p.OrderID
	m.RestaurantID = p.RestaurantID
	m.CustomerID = p.CustomerID
	m.ProcessedBy = p.ProcessedBy
	m.Amount = p.Amount
	m.TipAmount = p.TipAmount
	m.TotalAmount = p.TotalAmount
	m.Method = p.Method
	m.Status = p.Status
	m.ExternalPaymentID = p.ExternalPaymentID
	m.PaymentIntentID = p.PaymentIntentID
	m.Currency = p.Currency
	m.ReceiptNumber = p.ReceiptNumber
	m.Notes = p.Notes
	m.CompletedAt = p.CompletedAt
	m.FailedAt = p.FailedAt
	m.FailureReason = p.FailureReason
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// RefundModel is the GORM database model for refunds
type RefundModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	PaymentID   string          `gorm:"not null;index;type:uuid"`
	Amount      decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	Reason      string          `gorm:"type:text"`
	ProcessedBy *string         `gorm:"type:uuid"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RefundModel) TableName() string {
	return "payment_refunds"
}

// ToDomain converts GORM model to domain entity
func (m *RefundModel) ToDomain() *payments.Refund {
	return &payments.Refund{
		ID:          m.ID,
		PaymentID:   m.PaymentID,
		Amount:      m.Amount,
		Reason:      m.Reason,
		ProcessedBy: m.ProcessedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RefundModel) FromDomain(r *payments.Refund) {
	m.ID = r.ID
	m.PaymentID = r.PaymentID
	m.Amount = r.Amount
	m.Reason = r.Reason
	m.ProcessedBy = r.ProcessedBy
	m.CreatedAt = r.CreatedAt
}
