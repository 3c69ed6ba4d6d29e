package commands

import (
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler encapsulates logic for running schema
// migrations via CLI.
type MigrateCommandHandler struct {
	logger logger.Logger
}

// NewMigrateCommandHandler initializes and returns a
// MigrateCommandHandler instance with a configured logger.
func NewMigrateCommandHandler() (*MigrateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MigrateCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd runs the schema migrations against the configured database.
func (commandHandler *MigrateCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	settings, err := config.Load()
	if err != nil {
		commandHandler.logger.Error("failed to load settings ", err)
		return
	}

	db, err := persistence.NewDBConnection(settings.Database)
	if err != nil {
		commandHandler.logger.Error("failed to create db connection ", err)
		return
	}

	if err := db.AutoMigrate(
		&models.UserModel{}, &models.UserProfileModel{},
		&models.RestaurantModel{},
		&models.StaffRoleModel{}, &models.StaffMemberModel{},
		&models.MenuCategoryModel{}, &models.MenuItemModel{},
		&models.ModifierGroupModel{}, &models.ModifierModel{}, &models.MenuItemModifierGroupModel{},
		&models.TableSectionModel{}, &models.TableModel{},
		&models.TableQRCodeModel{}, &models.TableSessionModel{}, &models.SessionGuestModel{},
		&models.OrderModel{}, &models.OrderItemModel{},
		&models.OrderItemModifierModel{}, &models.OrderStatusChangeModel{},
		&models.ReservationSettingsModel{}, &models.ReservationModel{},
		&models.BlockedTimeModel{}, &models.ReservationHistoryModel{},
		&models.PaymentModel{}, &models.RefundModel{},
		&models.FavoriteRestaurantModel{}, &models.FavoriteMenuItemModel{},
		&models.AuditEntryModel{},
	); err != nil {
		commandHandler.logger.Error("failed to migrate schema ", err)
		return
	}

	commandHandler.logger.Info("Database migrations completed successfully")
}

// InitMigrateCommands registers migration-related commands
func InitMigrateCommands(rootCmd *cobra.Command) error {
	handler, err := NewMigrateCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create migrate command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run database schema migrations",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
