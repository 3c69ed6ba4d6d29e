//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	RestaurantRepo tenants.RestaurantRepository
	UserRepo       accounts.UserRepository
	MenuItemRepo   menu.MenuItemRepository
	OrderRepo      orders.OrderRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = MigrateSchema(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	restaurantRepo, err := NewGormRestaurantRepository(db, logger)
	require.NoError(t, err, "Failed to create restaurant repository")

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	menuItemRepo, err := NewGormMenuItemRepository(db, logger)
	require.NoError(t, err, "Failed to create menu item repository")

	orderRepo, err := NewGormOrderRepository(db, logger)
	require.NoError(t, err, "Failed to create order repository")

	return &TestContext{
		DB:             db,
		RestaurantRepo: restaurantRepo,
		UserRepo:       userRepo,
		MenuItemRepo:   menuItemRepo,
		OrderRepo:      orderRepo,
	}
}

// CreateTestRestaurant creates a restaurant with default values
func CreateTestRestaurant(t *testing.T, ownerID string) *tenants.Restaurant {
	t.Helper()

	return &tenants.Restaurant{
		ID:            uuid.NewString(),
		Name:          "Test Bistro",
		Slug:          "test-bistro-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		OwnerID:       ownerID,
		IsActive:      true,
		TaxRate:       decimal.NewFromInt(18),
		ServiceCharge: decimal.NewFromInt(10),
		CreatedAt:     time.Now().UTC(),
	}
}

// CreateTestUser creates a user with default values
func CreateTestUser(t *testing.T) *accounts.User {
	t.Helper()

	return &accounts.User{
		ID:                uuid.NewString(),
		Email:             "user-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + "@example.com",
		PasswordHash:      "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:         "Test",
		LastName:          "User",
		PreferredLanguage: "ka",
		CreatedAt:         time.Now().UTC(),
	}
}

// CreateTestMenuItem creates a menu item with default values
func CreateTestMenuItem(t *testing.T, restaurantID string) *menu.MenuItem {
	t.Helper()

	return &menu.MenuItem{
		ID:                 uuid.NewString(),
		RestaurantID:       restaurantID,
		Name:               "Khachapuri",
		Price:              decimal.NewFromFloat(15.50),
		IsAvailable:        true,
		PreparationStation: menu.StationKitchen,
		CreatedAt:          time.Now().UTC(),
	}
}

// CreateTestOrder creates an order with one line item
func CreateTestOrder(t *testing.T, restaurantID string, seq int) *orders.Order {
	t.Helper()

	now := time.Now().UTC()
	itemID := uuid.NewString()
	orderID := uuid.NewString()

	item := &orders.OrderItem{
		ID:                 itemID,
		OrderID:            orderID,
		ItemName:           "Khachapuri",
		UnitPrice:          decimal.NewFromFloat(15.50),
		Quantity:           2,
		Status:             orders.ItemPending,
		PreparationStation: menu.StationKitchen,
		CreatedAt:          now,
	}
	item.RecalculateTotal()

	order := &orders.Order{
		ID:           orderID,
		OrderNumber:  orders.FormatOrderNumber(now, seq),
		RestaurantID: restaurantID,
		OrderType:    orders.TypeDineIn,
		Status:       orders.StatusPending,
		Items:        []*orders.OrderItem{item},
		CreatedAt:    now,
	}
	order.RecalculateTotals(decimal.NewFromInt(18), decimal.NewFromInt(10))
	return order
}
