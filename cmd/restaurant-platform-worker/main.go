// cmd/restaurant-platform-worker/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/app"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := logger.InitLogger(&settings.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	reservationService, tableService, err := initializeServices(settings, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return runWorkerLoops(settings, reservationService, tableService, log)
}

// initializeServices wires the repositories and services the background
// jobs need. The worker shares the schema with the REST API and does
// not run migrations.
func initializeServices(settings *config.Settings, log logger.Logger) (reservations.ReservationService, tables.TableService, error) {
	db, err := persistence.NewDBConnection(settings.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	settingsRepo, err := persistence.NewGormReservationSettingsRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reservation settings repository: %w", err)
	}
	reservationRepo, err := persistence.NewGormReservationRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reservation repository: %w", err)
	}
	blockedRepo, err := persistence.NewGormBlockedTimeRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create blocked time repository: %w", err)
	}
	sectionRepo, err := persistence.NewGormTableSectionRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create table section repository: %w", err)
	}
	tableRepo, err := persistence.NewGormTableRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create table repository: %w", err)
	}
	qrRepo, err := persistence.NewGormQRCodeRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create qr code repository: %w", err)
	}
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	reservationService, err := app.NewReservationService(settingsRepo, reservationRepo, blockedRepo, tableRepo, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reservation service: %w", err)
	}
	tableService, err := app.NewTableService(sectionRepo, tableRepo, qrRepo, sessionRepo, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create table service: %w", err)
	}

	return reservationService, tableService, nil
}

// runWorkerLoops starts the periodic jobs and blocks until a shutdown
// signal arrives, then waits for in-flight ticks to finish.
func runWorkerLoops(
	settings *config.Settings,
	reservationService reservations.ReservationService,
	tableService tables.TableService,
	log logger.Logger,
) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		runEvery(ctx, settings.Worker.ReminderInterval, func(now time.Time) {
			sendDueReminders(ctx, reservationService, now, log)
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runEvery(ctx, settings.Worker.SessionExpiryInterval, func(now time.Time) {
			closed, err := tableService.ExpireStaleSessions(ctx, settings.Worker.SessionMaxIdle, now)
			if err != nil {
				log.Error("Failed to expire stale sessions: ", err)
				return
			}
			if closed > 0 {
				log.Info("Closed ", closed, " stale table sessions")
			}
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runEvery(ctx, settings.Worker.ReminderInterval, func(now time.Time) {
			marked, err := reservationService.MarkOverdueNoShows(ctx, settings.Worker.NoShowGracePeriod, now)
			if err != nil {
				log.Error("Failed to mark overdue no-shows: ", err)
				return
			}
			if marked > 0 {
				log.Info("Marked ", marked, " overdue reservations as no-show")
			}
		})
	}()

	log.Info("Worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Received signal %v, initiating graceful shutdown", sig)

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Worker stopped gracefully")
		return nil
	case <-time.After(settings.Worker.ShutdownTimeout):
		return fmt.Errorf("worker forced to shutdown after %s", settings.Worker.ShutdownTimeout)
	}
}

// runEvery invokes fn once per interval until the context is cancelled.
// The first tick runs immediately so a freshly started worker does not
// sit idle for a full interval.
func runEvery(ctx context.Context, interval time.Duration, fn func(now time.Time)) {
	fn(time.Now().UTC())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(now.UTC())
		}
	}
}

// sendDueReminders delivers reminders for upcoming reservations. Actual
// delivery is a log line; an SMS or email gateway would hook in here.
func sendDueReminders(ctx context.Context, reservationService reservations.ReservationService, now time.Time, log logger.Logger) {
	due, err := reservationService.DueReminders(ctx, now)
	if err != nil {
		log.Error("Failed to list due reminders: ", err)
		return
	}

	for _, reservation := range due {
		log.Info("Reminder for reservation ", reservation.ConfirmationCode,
			" (", reservation.GuestName, ") starting at ", reservation.StartsAt().Format(time.RFC3339))
		if err := reservationService.MarkReminderSent(ctx, reservation.ID, now); err != nil {
			log.Error("Failed to mark reminder sent for reservation ", reservation.ID, ": ", err)
		}
	}
}
