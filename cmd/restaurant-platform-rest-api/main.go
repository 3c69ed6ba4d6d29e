// cmd/restaurant-platform-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/giorgigordiashvili/restaurant-platform/internal/api/rest/v1"
	"github.com/giorgigordiashvili/restaurant-platform/internal/app"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/audit"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/favorites"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/auth"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/connector"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"
	"github.com/gin-contrib/cors"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&settings.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(settings, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(settings, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db          *gorm.DB
	cache       connector.Cache
	tokenIssuer accounts.TokenIssuer
	services    *appServices
}

type appServices struct {
	account     accounts.AccountService
	restaurant  tenants.RestaurantService
	staff       staff.StaffService
	menu        menu.MenuService
	table       tables.TableService
	order       orders.OrderService
	reservation reservations.ReservationService
	payment     payments.PaymentService
	favorite    favorites.FavoriteService
	audit       audit.AuditService
}

// initializeDependencies sets up all application components
func initializeDependencies(settings *config.Settings, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(settings.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
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
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize connectors
	ctx := context.Background()

	cache, err := connector.NewRedisCache(settings.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis cache: %w", err)
	}

	mediaStore, err := connector.NewMinioMediaStore(ctx, settings.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media store: %w", err)
	}

	tokenIssuer, err := auth.NewJWTTokenIssuer(settings.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(db, mediaStore, tokenIssuer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:          db,
		cache:       cache,
		tokenIssuer: tokenIssuer,
		services:    services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(settings *config.Settings, deps *appDependencies, log logger.Logger) error {
	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// Configure CORS
	corsOrigins := settings.CORSAllowedOrigins
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Restaurant"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	middleware := v1.NewMiddleware(
		deps.services.restaurant,
		deps.services.staff,
		deps.tokenIssuer,
		settings.MainDomain,
	)
	v1.SetupRoutes(r, middleware, deps.db, deps.cache,
		deps.services.account,
		deps.services.restaurant,
		deps.services.staff,
		deps.services.menu,
		deps.services.table,
		deps.services.order,
		deps.services.reservation,
		deps.services.payment,
		deps.services.favorite,
		deps.services.audit,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", settings.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	db *gorm.DB,
	mediaStore menu.MediaStore,
	tokenIssuer accounts.TokenIssuer,
	log logger.Logger,
) (*appServices, error) {
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
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	reservationSettingsRepo, err := persistence.NewGormReservationSettingsRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation settings repository: %w", err)
	}
	reservationRepo, err := persistence.NewGormReservationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation repository: %w", err)
	}
	blockedRepo, err := persistence.NewGormBlockedTimeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blocked time repository: %w", err)
	}
	paymentRepo, err := persistence.NewGormPaymentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment repository: %w", err)
	}
	favoriteRepo, err := persistence.NewGormFavoriteRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorite repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditEntryRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
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
	menuService, err := app.NewMenuService(categoryRepo, itemRepo, modifierRepo, mediaStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu service: %w", err)
	}
	tableService, err := app.NewTableService(sectionRepo, tableRepo, qrRepo, sessionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create table service: %w", err)
	}
	orderService, err := app.NewOrderService(orderRepo, itemRepo, modifierRepo, restaurantRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	reservationService, err := app.NewReservationService(reservationSettingsRepo, reservationRepo, blockedRepo, tableRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation service: %w", err)
	}
	paymentService, err := app.NewPaymentService(paymentRepo, orderRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment service: %w", err)
	}
	favoriteService, err := app.NewFavoriteService(favoriteRepo, restaurantRepo, itemRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create favorite service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		account:     accountService,
		restaurant:  restaurantService,
		staff:       staffService,
		menu:        menuService,
		table:       tableService,
		order:       orderService,
		reservation: reservationService,
		payment:     paymentService,
		favorite:    favoriteService,
		audit:       auditService,
	}, nil
}
