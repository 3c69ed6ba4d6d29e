package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentService defines payment recording and settlement operations.
type PaymentService interface {
	// Record creates a pending payment against an order. The amount
	// may be less than the order total (split bill).
	Record(ctx context.Context, payment *Payment) (*Payment, error)

	// Complete marks a payment as settled, issuing a receipt number.
	Complete(ctx context.Context, restaurantID, paymentID string, externalPaymentID string) (*Payment, error)

	// Fail marks a payment as failed with a reason.
	Fail(ctx context.Context, restaurantID, paymentID, reason string) (*Payment, error)

	// Refund returns part or all of a completed payment. Refunding the
	// full remaining amount moves the payment to refunded, otherwise
	// to partially refunded.
	Refund(ctx context.Context, restaurantID, paymentID string, amount decimal.Decimal, reason string, processedBy *string) (*Refund, error)

	// ListByOrder returns the payments made against an order.
	ListByOrder(ctx context.Context, restaurantID, orderID string) ([]*Payment, error)

	// GetByID retrieves a payment.
	GetByID(ctx context.Context, restaurantID, paymentID string) (*Payment, error)
}

// PaymentRepository defines the interface for Payment-related operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID string) (*Payment, error)
	ListByOrder(ctx context.Context, orderID string) ([]*Payment, error)
	UpdateByID(ctx context.Context, payment *Payment) error

	// Refunds
	AddRefund(ctx context.Context, refund *Refund) error
	ListRefunds(ctx context.Context, paymentID string) ([]*Refund, error)
}
