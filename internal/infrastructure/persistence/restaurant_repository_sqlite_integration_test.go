//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tenants"
	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/persistence/models"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	restaurant := CreateTestRestaurant(t, user.ID)
	err := ctx.RestaurantRepo.Create(context.Background(), restaurant)
	require.NoError(t, err)

	var createdModel models.RestaurantModel
	err = ctx.DB.First(&createdModel, "id = ?", restaurant.ID).Error
	require.NoError(t, err)
	assert.Equal(t, restaurant.Slug, createdModel.Slug)
}

func TestRestaurantSqliteRepository_GetBySlug(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	fetched, err := ctx.RestaurantRepo.GetBySlug(context.Background(), restaurant.Slug)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, fetched.ID)
	assert.True(t, restaurant.TaxRate.Equal(fetched.TaxRate))
}

func TestRestaurantSqliteRepository_GetBySlug_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.RestaurantRepo.GetBySlug(context.Background(), "no-such-place")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRestaurantSqliteRepository_List_OnlyActive(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	active := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), active))

	inactive := CreateTestRestaurant(t, user.ID)
	inactive.IsActive = false
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), inactive))

	query := tenants.NewRestaurantQuery()
	listed, err := ctx.RestaurantRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.ID, listed[0].ID)
}

func TestRestaurantSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	restaurant.Name = "Renamed Bistro"
	require.NoError(t, ctx.RestaurantRepo.UpdateByID(context.Background(), restaurant))

	fetched, err := ctx.RestaurantRepo.GetByID(context.Background(), restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Bistro", fetched.Name)
}

func TestUserSqliteRepository_GetByEmail(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetched, err := ctx.UserRepo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
}

func TestMenuItemSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))
	restaurant := CreateTestRestaurant(t, user.ID)
	require.NoError(t, ctx.RestaurantRepo.Create(context.Background(), restaurant))

	item := CreateTestMenuItem(t, restaurant.ID)
	require.NoError(t, ctx.MenuItemRepo.Create(context.Background(), item))

	fetched, err := ctx.MenuItemRepo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Khachapuri", fetched.Name)
	assert.True(t, item.Price.Equal(fetched.Price))
}
