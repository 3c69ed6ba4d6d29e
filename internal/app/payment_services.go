package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paymentService implements the PaymentService interface. An order can
// carry several payments when the bill is split.
type paymentService struct {
	paymentRepo payments.PaymentRepository
	orderRepo   orders.OrderRepository
	logger      logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(
	paymentRepo payments.PaymentRepository,
	orderRepo orders.OrderRepository,
	logger logger.Logger,
) (payments.PaymentService, error) {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}, nil
}

func (s *paymentService) Record(ctx context.Context, payment *payments.Payment) (*payments.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != payment.RestaurantID {
		return nil, fmt.Errorf("order with ID %s not found", payment.OrderID)
	}
	if order.Status == orders.StatusCancelled {
		return nil, fmt.Errorf("cannot record a payment against a cancelled order")
	}
	if !payment.Amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	settled, err := s.settledAmount(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if settled.Add(payment.Amount).GreaterThan(order.Total) {
		return nil, fmt.Errorf("payment exceeds the outstanding order balance")
	}

	payment.ID = uuid.NewString()
	payment.Status = payments.StatusPending
	payment.TotalAmount = payment.Amount.Add(payment.TipAmount)
	if payment.Currency == "" {
		payment.Currency = "GEL"
	}
	payment.CreatedAt = time.Now().UTC()

	if err := payment.Validate(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info("Recorded payment ", payment.ID, " against order ", order.OrderNumber)
	return payment, nil
}

func (s *paymentService) Complete(ctx context.Context, restaurantID, paymentID string, externalPaymentID string) (*payments.Payment, error) {
	payment, err := s.GetByID(ctx, restaurantID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != payments.StatusPending && payment.Status != payments.StatusProcessing {
		return nil, fmt.Errorf("payment in status %s cannot be completed", payment.Status)
	}

	now := time.Now().UTC()
	payment.Status = payments.StatusCompleted
	payment.ExternalPaymentID = externalPaymentID
	payment.ReceiptNumber = fmt.Sprintf("RCP-%s-%s", now.Format("060102"), payment.ID[:8])
	payment.CompletedAt = &now
	payment.UpdatedAt = now

	if err := s.paymentRepo.UpdateByID(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to complete payment: %w", err)
	}

	s.logger.Info("Completed payment ", payment.ID, " with receipt ", payment.ReceiptNumber)
	return payment, nil
}

func (s *paymentService) Fail(ctx context.Context, restaurantID, paymentID, reason string) (*payments.Payment, error) {
	payment, err := s.GetByID(ctx, restaurantID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsSettled() {
		return nil, fmt.Errorf("payment in status %s cannot be failed", payment.Status)
	}

	now := time.Now().UTC()
	payment.Status = payments.StatusFailed
	payment.FailedAt = &now
	payment.FailureReason = reason
	payment.UpdatedAt = now

	if err := s.paymentRepo.UpdateByID(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) Refund(ctx context.Context, restaurantID, paymentID string, amount decimal.Decimal, reason string, processedBy *string) (*payments.Refund, error) {
	payment, err := s.GetByID(ctx, restaurantID, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.IsSettled() || payment.Status == payments.StatusRefunded {
		return nil, fmt.Errorf("payment in status %s cannot be refunded", payment.Status)
	}

	refunded, err := s.refundedAmount(ctx, payment.ID)
	if err != nil {
		return nil, err
	}
	remaining := payment.TotalAmount.Sub(refunded)
	if amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("refund exceeds the remaining amount %s", remaining.StringFixed(2))
	}

	now := time.Now().UTC()
	refund := &payments.Refund{
		ID:          uuid.NewString(),
		PaymentID:   payment.ID,
		Amount:      amount,
		Reason:      reason,
		ProcessedBy: processedBy,
		CreatedAt:   now,
	}
	if err := refund.Validate(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.AddRefund(ctx, refund); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}

	if amount.Equal(remaining) {
		payment.Status = payments.StatusRefunded
	} else {
		payment.Status = payments.StatusPartiallyRefunded
	}
	payment.UpdatedAt = now

	if err := s.paymentRepo.UpdateByID(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	s.logger.Info("Refunded ", amount.StringFixed(2), " of payment ", payment.ID)
	return refund, nil
}

func (s *paymentService) ListByOrder(ctx context.Context, restaurantID, orderID string) ([]*payments.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, fmt.Errorf("order with ID %s not found", orderID)
	}
	return s.paymentRepo.ListByOrder(ctx, orderID)
}

func (s *paymentService) GetByID(ctx context.Context, restaurantID, paymentID string) (*payments.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.RestaurantID != restaurantID {
		return nil, fmt.Errorf("payment with ID %s not found", paymentID)
	}
	return payment, nil
}

// settledAmount sums the order's payments that are not failed or
// cancelled, so a split bill cannot overshoot the total.
func (s *paymentService) settledAmount(ctx context.Context, orderID string) (decimal.Decimal, error) {
	existing, err := s.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, p := range existing {
		switch p.Status {
		case payments.StatusFailed, payments.StatusCancelled, payments.StatusRefunded:
			continue
		}
		sum = sum.Add(p.Amount)
	}
	return sum, nil
}

func (s *paymentService) refundedAmount(ctx context.Context, paymentID string) (decimal.Decimal, error) {
	refunds, err := s.paymentRepo.ListRefunds(ctx, paymentID)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, r := range refunds {
		sum = sum.Add(r.Amount)
	}
	return sum, nil
}
