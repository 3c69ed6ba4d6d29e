package payments

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Payment status constants
const (
	StatusPending           = "pending"
	StatusProcessing        = "processing"
	StatusCompleted         = "completed"
	StatusFailed            = "failed"
	StatusRefunded          = "refunded"
	StatusPartiallyRefunded = "partially_refunded"
	StatusCancelled         = "cancelled"
)

// Payment method constants
const (
	MethodCard    = "card"
	MethodCash    = "cash"
	MethodMobile  = "mobile"
	MethodVoucher = "voucher"
	MethodOther   = "other"
)

// Payment is one payment against an order. Split bills produce several
// payments for the same order.
type Payment struct {
	ID           string `validate:"required,uuid4"`
	OrderID      string `validate:"required,uuid4"`
	RestaurantID string `validate:"required,uuid4"`
	CustomerID   *string
	ProcessedBy  *string

	Amount      decimal.Decimal
	TipAmount   decimal.Decimal
	TotalAmount decimal.Decimal

	Method string `validate:"required,oneof=card cash mobile voucher other"`
	Status string `validate:"required,oneof=pending processing completed failed refunded partially_refunded cancelled"`

	// Opaque identifiers from the external payment provider.
	ExternalPaymentID string
	PaymentIntentID   string

	Currency      string `validate:"required,len=3"`
	ReceiptNumber string
	Notes         string

	CompletedAt   *time.Time
	FailedAt      *time.Time
	FailureReason string

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Validate for validating Payment struct
func (p *Payment) Validate() error {
	if p.Amount.IsNegative() || p.TipAmount.IsNegative() {
		return fmt.Errorf("validation failed: amounts must not be negative")
	}
	return validateStruct(p)
}

// IsSettled reports whether the payment reached a terminal successful
// state.
func (p *Payment) IsSettled() bool {
	return p.Status == StatusCompleted || p.Status == StatusPartiallyRefunded || p.Status == StatusRefunded
}

// Refund is a full or partial return of a completed payment.
type Refund struct {
	ID          string `validate:"required,uuid4"`
	PaymentID   string `validate:"required,uuid4"`
	Amount      decimal.Decimal
	Reason      string
	ProcessedBy *string
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating Refund struct
func (r *Refund) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("validation failed: refund amount must be positive")
	}
	return validateStruct(r)
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
