package commands

import (
	"context"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// StaffCommandHandler encapsulates logic for repairing staff rosters
// via CLI.
type StaffCommandHandler struct {
	logger logger.Logger
}

// NewStaffCommandHandler initializes and returns a StaffCommandHandler
// instance with a configured logger.
func NewStaffCommandHandler() (*StaffCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &StaffCommandHandler{logger: loggerInstance}, nil
}

// FixOwnerStaffCmd walks every restaurant, recreates any missing
// built-in roles and makes sure the owner holds the owner role.
// Restaurants created before the roster was introduced lack both.
func (commandHandler *StaffCommandHandler) FixOwnerStaffCmd(_ *cobra.Command, _ []string) {
	p, err := openPlatform(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()

	// Inactive restaurants are repaired too; they may be reactivated.
	query := &tenants.RestaurantQuery{Limit: 100, SortBy: "created_at", SortOrder: "asc"}

	checked := 0
	repaired := 0
	for {
		restaurants, err := p.restaurantRepo.List(ctx, query)
		if err != nil {
			commandHandler.logger.Error("failed to list restaurants ", err)
			return
		}
		if len(restaurants) == 0 {
			break
		}

		for _, restaurant := range restaurants {
			checked++
			if err := p.staff.EnsureDefaultRoles(ctx, restaurant.ID); err != nil {
				commandHandler.logger.Error("failed to ensure roles for ", restaurant.Slug, " ", err)
				continue
			}
			if _, err := p.staff.AddMember(ctx, restaurant.ID, restaurant.OwnerID, staff.RoleOwner); err != nil {
				commandHandler.logger.Error("failed to restore owner membership for ", restaurant.Slug, " ", err)
				continue
			}
			repaired++
		}

		query.Offset += len(restaurants)
	}

	commandHandler.logger.Info("Checked ", checked, " restaurants, repaired ", repaired)
}

// InitStaffCommands registers staff-related commands
func InitStaffCommands(rootCmd *cobra.Command) error {
	handler, err := NewStaffCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create staff command handler %w", err)
	}

	var fixOwnerStaffCmd = &cobra.Command{
		Use:   "fix-owner-staff",
		Short: "Recreate missing built-in roles and owner memberships",
		Run:   handler.FixOwnerStaffCmd,
	}
	rootCmd.AddCommand(fixOwnerStaffCmd)

	return nil
}
