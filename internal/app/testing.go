//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/payments"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/reservations"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/staff"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/auth"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for
// integration tests, backed by a real database.
type TestServices struct {
	AccountService     accounts.AccountService
	RestaurantService  tenants.RestaurantService
	StaffService       staff.StaffService
	MenuService        menu.MenuService
	TableService       tables.TableService
	OrderService       orders.OrderService
	ReservationService reservations.ReservationService
	PaymentService     payments.PaymentService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	db := dbContext.DB

	profileRepo, err := persistence.NewGormUserProfileRepository(db, logger)
	require.NoError(t, err)
	roleRepo, err := persistence.NewGormStaffRoleRepository(db, logger)
	require.NoError(t, err)
	memberRepo, err := persistence.NewGormStaffMemberRepository(db, logger)
	require.NoError(t, err)
	categoryRepo, err := persistence.NewGormMenuCategoryRepository(db, logger)
	require.NoError(t, err)
	modifierRepo, err := persistence.NewGormModifierRepository(db, logger)
	require.NoError(t, err)
	sectionRepo, err := persistence.NewGormTableSectionRepository(db, logger)
	require.NoError(t, err)
	tableRepo, err := persistence.NewGormTableRepository(db, logger)
	require.NoError(t, err)
	qrRepo, err := persistence.NewGormQRCodeRepository(db, logger)
	require.NoError(t, err)
	sessionRepo, err := persistence.NewGormSessionRepository(db, logger)
	require.NoError(t, err)
	reservationSettingsRepo, err := persistence.NewGormReservationSettingsRepository(db, logger)
	require.NoError(t, err)
	reservationRepo, err := persistence.NewGormReservationRepository(db, logger)
	require.NoError(t, err)
	blockedRepo, err := persistence.NewGormBlockedTimeRepository(db, logger)
	require.NoError(t, err)
	paymentRepo, err := persistence.NewGormPaymentRepository(db, logger)
	require.NoError(t, err)
	auditRepo, err := persistence.NewGormAuditEntryRepository(db, logger)
	require.NoError(t, err)

	tokenIssuer, err := auth.NewJWTTokenIssuer(config.AuthSettings{
		SecretKey:       "integration-test-signing-key",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	auditService, err := NewAuditService(auditRepo, logger)
	require.NoError(t, err)
	accountService, err := NewAccountService(dbContext.UserRepo, profileRepo, tokenIssuer, auditService, logger)
	require.NoError(t, err)
	staffService, err := NewStaffService(roleRepo, memberRepo, dbContext.RestaurantRepo, logger)
	require.NoError(t, err)
	restaurantService, err := NewRestaurantService(dbContext.RestaurantRepo, staffService, logger)
	require.NoError(t, err)
	menuService, err := NewMenuService(categoryRepo, dbContext.MenuItemRepo, modifierRepo, nil, logger)
	require.NoError(t, err)
	tableService, err := NewTableService(sectionRepo, tableRepo, qrRepo, sessionRepo, logger)
	require.NoError(t, err)
	orderService, err := NewOrderService(dbContext.OrderRepo, dbContext.MenuItemRepo, modifierRepo, dbContext.RestaurantRepo, logger)
	require.NoError(t, err)
	reservationService, err := NewReservationService(reservationSettingsRepo, reservationRepo, blockedRepo, tableRepo, logger)
	require.NoError(t, err)
	paymentService, err := NewPaymentService(paymentRepo, dbContext.OrderRepo, logger)
	require.NoError(t, err)

	return &TestServices{
		AccountService:     accountService,
		RestaurantService:  restaurantService,
		StaffService:       staffService,
		MenuService:        menuService,
		TableService:       tableService,
		OrderService:       orderService,
		ReservationService: reservationService,
		PaymentService:     paymentService,
		DBContext:          dbContext,
	}
}
