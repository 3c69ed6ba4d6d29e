package app

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/google/uuid"
)

// tableService implements the TableService interface for floor plan and
// session management
type tableService struct {
	sectionRepo tables.TableSectionRepository
	tableRepo   tables.TableRepository
	qrRepo      tables.QRCodeRepository
	sessionRepo tables.SessionRepository
	logger      logger.Logger
}

// NewTableService creates a new instance of TableService
func NewTableService(
	sectionRepo tables.TableSectionRepository,
	tableRepo tables.TableRepository,
	qrRepo tables.QRCodeRepository,
	sessionRepo tables.SessionRepository,
	logger logger.Logger,
) (tables.TableService, error) {
	return &tableService{
		sectionRepo: sectionRepo,
		tableRepo:   tableRepo,
		qrRepo:      qrRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}, nil
}

func (s *tableService) CreateSection(ctx context.Context, section *tables.TableSection) (*tables.TableSection, error) {
	section.ID = uuid.NewString()
	section.IsActive = true
	section.CreatedAt = time.Now().UTC()

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return section, nil
}

func (s *tableService) ListSections(ctx context.Context, restaurantID string) ([]*tables.TableSection, error) {
	return s.sectionRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *tableService) CreateTable(ctx context.Context, table *tables.Table) (*tables.Table, error) {
	if _, err := s.tableRepo.GetByNumber(ctx, table.RestaurantID, table.Number); err == nil {
		return nil, fmt.Errorf("table number %s is already in use", table.Number)
	}

	table.ID = uuid.NewString()
	table.IsActive = true
	if table.Status == "" {
		table.Status = tables.TableAvailable
	}
	if table.MinCapacity == 0 {
		table.MinCapacity = 1
	}
	if table.Shape == "" {
		table.Shape = tables.ShapeSquare
	}
	table.CreatedAt = time.Now().UTC()

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return table, nil
}

func (s *tableService) GetTable(ctx context.Context, restaurantID, tableID string) (*tables.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.RestaurantID != restaurantID {
		return nil, fmt.Errorf("table with ID %s not found", tableID)
	}
	return table, nil
}

func (s *tableService) ListTables(ctx context.Context, restaurantID string) ([]*tables.Table, error) {
	return s.tableRepo.ListByRestaurant(ctx, restaurantID)
}

func (s *tableService) UpdateTable(ctx context.Context, table *tables.Table) (*tables.Table, error) {
	existing, err := s.GetTable(ctx, table.RestaurantID, table.ID)
	if err != nil {
		return nil, err
	}

	table.CreatedAt = existing.CreatedAt
	table.UpdatedAt = time.Now().UTC()

	if err := s.tableRepo.UpdateByID(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return table, nil
}

func (s *tableService) SetTableStatus(ctx context.Context, restaurantID, tableID, status string) (*tables.Table, error) {
	table, err := s.GetTable(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}

	table.Status = status
	table.UpdatedAt = time.Now().UTC()

	if err := s.tableRepo.UpdateByID(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to set table status: %w", err)
	}
	return table, nil
}

func (s *tableService) CreateQRCode(ctx context.Context, restaurantID, tableID, name string) (*tables.TableQRCode, error) {
	if _, err := s.GetTable(ctx, restaurantID, tableID); err != nil {
		return nil, err
	}

	token, err := tables.NewQRToken()
	if err != nil {
		return nil, err
	}

	qr := &tables.TableQRCode{
		ID:        uuid.NewString(),
		TableID:   tableID,
		Code:      token,
		Name:      name,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.qrRepo.Create(ctx, qr); err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr, nil
}

func (s *tableService) ListQRCodes(ctx context.Context, restaurantID, tableID string) ([]*tables.TableQRCode, error) {
	if _, err := s.GetTable(ctx, restaurantID, tableID); err != nil {
		return nil, err
	}
	return s.qrRepo.ListByTable(ctx, tableID)
}

func (s *tableService) Scan(ctx context.Context, code string, userID *string, guestName string) (*tables.ScanResult, error) {
	qr, err := s.qrRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !qr.IsActive {
		return nil, fmt.Errorf("QR code is no longer active")
	}

	table, err := s.tableRepo.GetByID(ctx, qr.TableID)
	if err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, fmt.Errorf("table is not available")
	}

	now := time.Now().UTC()

	qr.ScansCount++
	qr.LastScannedAt = &now
	qr.UpdatedAt = now
	if err := s.qrRepo.UpdateByID(ctx, qr); err != nil {
		s.logger.Warn("Failed to record QR scan: ", err)
	}

	created := false
	session, err := s.sessionRepo.GetActiveByTable(ctx, table.ID)
	if err != nil {
		session, err = s.startSession(ctx, table, qr.ID, userID, now)
		if err != nil {
			return nil, err
		}
		created = true
	}

	guest, err := s.joinSession(ctx, session, userID, guestName, created, now)
	if err != nil {
		return nil, err
	}

	return &tables.ScanResult{
		Table:   table,
		Session: session,
		Guest:   guest,
		Created: created,
	}, nil
}

func (s *tableService) JoinByInviteCode(ctx context.Context, inviteCode string, userID *string, guestName string) (*tables.ScanResult, error) {
	session, err := s.sessionRepo.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}

	table, err := s.tableRepo.GetByID(ctx, session.TableID)
	if err != nil {
		return nil, err
	}

	guest, err := s.joinSession(ctx, session, userID, guestName, false, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &tables.ScanResult{
		Table:   table,
		Session: session,
		Guest:   guest,
		Created: false,
	}, nil
}

func (s *tableService) LeaveSession(ctx context.Context, sessionID, guestID string) error {
	guest, err := s.sessionRepo.GetGuestByID(ctx, guestID)
	if err != nil {
		return err
	}
	if guest.SessionID != sessionID {
		return fmt.Errorf("guest with ID %s not found", guestID)
	}

	now := time.Now().UTC()
	guest.Status = tables.GuestLeft
	guest.LeftAt = &now
	guest.UpdatedAt = now

	return s.sessionRepo.UpdateGuestByID(ctx, guest)
}

func (s *tableService) CloseSession(ctx context.Context, restaurantID, sessionID string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	table, err := s.GetTable(ctx, restaurantID, session.TableID)
	if err != nil {
		return err
	}

	return s.closeSession(ctx, session, table, time.Now().UTC())
}

func (s *tableService) ExpireStaleSessions(ctx context.Context, maxIdle time.Duration, now time.Time) (int, error) {
	stale, err := s.sessionRepo.ListStale(ctx, now.Add(-maxIdle))
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, session := range stale {
		table, err := s.tableRepo.GetByID(ctx, session.TableID)
		if err != nil {
			s.logger.Error("Failed to load table for stale session ", session.ID, ": ", err)
			continue
		}
		if err := s.closeSession(ctx, session, table, now); err != nil {
			s.logger.Error("Failed to expire session ", session.ID, ": ", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		s.logger.Info("Expired ", closed, " stale table sessions")
	}
	return closed, nil
}

func (s *tableService) startSession(ctx context.Context, table *tables.Table, qrCodeID string, hostUserID *string, now time.Time) (*tables.TableSession, error) {
	inviteCode, err := tables.NewInviteCode()
	if err != nil {
		return nil, err
	}

	session := &tables.TableSession{
		ID:         uuid.NewString(),
		TableID:    table.ID,
		QRCodeID:   &qrCodeID,
		HostUserID: hostUserID,
		InviteCode: inviteCode,
		GuestCount: 1,
		Status:     tables.SessionActive,
		StartedAt:  now,
		CreatedAt:  now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	table.Status = tables.TableOccupied
	table.UpdatedAt = now
	if err := s.tableRepo.UpdateByID(ctx, table); err != nil {
		return nil, fmt.Errorf("failed to occupy table: %w", err)
	}

	return session, nil
}

// joinSession adds the caller to the session unless they already belong
// to it. The session creator joins as host.
func (s *tableService) joinSession(ctx context.Context, session *tables.TableSession, userID *string, guestName string, isHost bool, now time.Time) (*tables.SessionGuest, error) {
	if !session.IsActive() {
		return nil, fmt.Errorf("session is no longer active")
	}

	if userID != nil {
		if existing, err := s.sessionRepo.GetGuestByUser(ctx, session.ID, *userID); err == nil && existing.Status == tables.GuestActive {
			return existing, nil
		}
	}

	guest := &tables.SessionGuest{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		UserID:    userID,
		GuestName: guestName,
		IsHost:    isHost,
		Status:    tables.GuestActive,
		JoinedAt:  now,
		CreatedAt: now,
	}
	if err := s.sessionRepo.AddGuest(ctx, guest); err != nil {
		return nil, err
	}

	if !isHost {
		session.GuestCount++
		session.UpdatedAt = now
		if err := s.sessionRepo.UpdateByID(ctx, session); err != nil {
			s.logger.Warn("Failed to update guest count for session ", session.ID, ": ", err)
		}
	}

	return guest, nil
}

func (s *tableService) closeSession(ctx context.Context, session *tables.TableSession, table *tables.Table, now time.Time) error {
	if session.Status == tables.SessionClosed {
		return nil
	}

	session.Status = tables.SessionClosed
	session.ClosedAt = &now
	session.UpdatedAt = now
	if err := s.sessionRepo.UpdateByID(ctx, session); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	table.Status = tables.TableAvailable
	table.UpdatedAt = now
	if err := s.tableRepo.UpdateByID(ctx, table); err != nil {
		return fmt.Errorf("failed to free table: %w", err)
	}

	return nil
}
