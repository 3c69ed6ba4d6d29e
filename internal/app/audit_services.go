package app

import (
	"context"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
)

// auditService implements the AuditService interface. Recording is best
// effort so a failing audit write never fails the audited operation.
type auditService struct {
	entryRepo audit.EntryRepository
	logger    logger.Logger
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(entryRepo audit.EntryRepository, logger logger.Logger) (audit.AuditService, error) {
	return &auditService{
		entryRepo: entryRepo,
		logger:    logger,
	}, nil
}

func (s *auditService) Record(ctx context.Context, entry *audit.Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to record audit entry for action ", entry.Action, ": ", err)
	}
}

func (s *auditService) List(ctx context.Context, restaurantID string, query *audit.EntryQuery) ([]*audit.Entry, error) {
	if query == nil {
		query = audit.NewEntryQuery()
	}
	return s.entryRepo.List(ctx, restaurantID, query)
}
