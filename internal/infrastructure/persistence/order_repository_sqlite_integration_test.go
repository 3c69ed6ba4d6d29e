//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/orders"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	order := CreateTestOrder(t, restaurant.ID, 1)
	err := ctx.OrderRepo.Create(context.Background(), order)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdOrderModel models.OrderModel
	err = ctx.DB.First(&createdOrderModel, "id = ?", order.ID).Error
	require.NoError(t, err)
	assert.Equal(t, order.ID, createdOrderModel.ID)
	assert.Equal(t, order.OrderNumber, createdOrderModel.OrderNumber)

	var itemCount int64
	require.NoError(t, ctx.DB.Model(&models.OrderItemModel{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount)
}

func TestOrderSqliteRepository_GetByID_LoadsItems(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	order := CreateTestOrder(t, restaurant.ID, 1)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), order))

	fetched, err := ctx.OrderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Khachapuri", fetched.Items[0].ItemName)
	assert.True(t, order.Total.Equal(fetched.Total))
}

func TestOrderSqliteRepository_Create_InvalidOrder(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	order := &orders.Order{} // missing required fields

	err := ctx.OrderRepo.Create(context.Background(), order)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestOrderSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.OrderRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOrderSqliteRepository_List_FiltersByStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	pending := CreateTestOrder(t, restaurant.ID, 1)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), pending))

	confirmed := CreateTestOrder(t, restaurant.ID, 2)
	confirmed.Status = orders.StatusConfirmed
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), confirmed))

	query := orders.NewOrderQuery()
	query.Status = orders.StatusConfirmed
	listed, err := ctx.OrderRepo.List(context.Background(), restaurant.ID, query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, confirmed.ID, listed[0].ID)
}

func TestOrderSqliteRepository_CountSince(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	for seq := 1; seq <= 3; seq++ {
		order := CreateTestOrder(t, restaurant.ID, seq)
		require.NoError(t, ctx.OrderRepo.Create(context.Background(), order))
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	count, err := ctx.OrderRepo.CountSince(context.Background(), restaurant.ID, midnight)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestOrderSqliteRepository_StatusChanges(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	order := CreateTestOrder(t, restaurant.ID, 1)
	require.NoError(t, ctx.OrderRepo.Create(context.Background(), order))

	change := &orders.StatusChange{
		ID:         uuid.NewString(),
		OrderID:    order.ID,
		FromStatus: orders.StatusPending,
		ToStatus:   orders.StatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, ctx.OrderRepo.AddStatusChange(context.Background(), change))

	changes, err := ctx.OrderRepo.ListStatusChanges(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, orders.StatusConfirmed, changes[0].ToStatus)
}
