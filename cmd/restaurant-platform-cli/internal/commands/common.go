package commands

import (
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/app"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/auth"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// platform bundles the database handle and the services the CLI
// commands operate through.
type platform struct {
	db             *gorm.DB
	restaurantRepo tenants.RestaurantRepository
	accounts       accounts.AccountService
	restaurants    tenants.RestaurantService
	staff          staff.StaffService
	menu           menu.MenuService
	tables         tables.TableService
}

// openPlatform loads the settings from the environment and wires the
// repositories and services the commands need. Media uploads are not
// reachable from the CLI, so no media store is connected.
func openPlatform(log logger.Logger) (*platform, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	db, err := persistence.NewDBConnection(settings.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	profileRepo, err := persistence.NewGormUserProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user profile repository: %w", err)
	}
	restaurantRepo, err := persistence.NewGormRestaurantRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant repository: %w", err)
	}
	roleRepo, err := persistence.NewGormStaffRoleRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff role repository: %w", err)
	}
	memberRepo, err := persistence.NewGormStaffMemberRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member repository: %w", err)
	}
	categoryRepo, err := persistence.NewGormMenuCategoryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu category repository: %w", err)
	}
	itemRepo, err := persistence.NewGormMenuItemRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item repository: %w", err)
	}
	modifierRepo, err := persistence.NewGormModifierRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create modifier repository: %w", err)
	}
	sectionRepo, err := persistence.NewGormTableSectionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create table section repository: %w", err)
	}
	tableRepo, err := persistence.NewGormTableRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create table repository: %w", err)
	}
	qrRepo, err := persistence.NewGormQRCodeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create qr code repository: %w", err)
	}
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}

	tokenIssuer, err := auth.NewJWTTokenIssuer(settings.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	auditService, err := app.NewAuditService(auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}
	accountService, err := app.NewAccountService(userRepo, profileRepo, tokenIssuer, auditService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	staffService, err := app.NewStaffService(roleRepo, memberRepo, restaurantRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff service: %w", err)
	}
	restaurantService, err := app.NewRestaurantService(restaurantRepo, staffService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant service: %w", err)
	}
	menuService, err := app.NewMenuService(categoryRepo, itemRepo, modifierRepo, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}
	tableService, err := app.NewTableService(sectionRepo, tableRepo, qrRepo, sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service: %w", err)
	}

	return &platform{
		db:             db,
		restaurantRepo: restaurantRepo,
		accounts:       accountService,
		restaurants:    restaurantService,
		staff:          staffService,
		menu:           menuService,
		tables:         tableService,
	}, nil
}
