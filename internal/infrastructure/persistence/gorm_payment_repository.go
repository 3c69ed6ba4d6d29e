package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPaymentRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPaymentRepository creates a new GORM-based PaymentRepository implementation
func NewGormPaymentRepository(db *gorm.DB, logger logger.Logger) (payments.PaymentRepository, error) {
	return &gormPaymentRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPaymentRepository) Create(ctx context.Context, payment *payments.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.logger.Info("Created payment with id ", payment.ID, " for order ", payment.OrderID)
	return nil
}

func (r *gormPaymentRepository) GetByID(ctx context.Context, paymentID string) (*payments.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("id = ?", paymentID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment with ID %s not found", paymentID)
		}
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPaymentRepository) ListByOrder(ctx context.Context, orderID string) ([]*payments.Payment, error) {
	var modelList []*models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	domainList := make([]*payments.Payment, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPaymentRepository) UpdateByID(ctx context.Context, payment *payments.Payment) error {
	if err := payment.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PaymentModel{}
	model.FromDomain(payment)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}

	r.logger.Info("Updated payment with id ", payment.ID)
	return nil
}

func (r *gormPaymentRepository) AddRefund(ctx context.Context, refund *payments.Refund) error {
	if err := refund.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RefundModel{}
	model.FromDomain(refund)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}

	r.logger.Info("Created refund with id ", refund.ID, " for payment ", refund.PaymentID)
	return nil
}

func (r *gormPaymentRepository) ListRefunds(ctx context.Context, paymentID string) ([]*payments.Refund, error) {
	var modelList []*models.RefundModel
	if err := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch refunds: %w", err)
	}

	domainList := make([]*payments.Refund, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
