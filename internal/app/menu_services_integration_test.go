//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_UploadItemImage_NoMediaStore_Error(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	file := testutil.CreateTestFileHeader(t, "khachapuri.jpg", []byte("not a real jpeg"))

	_, err := services.MenuService.UploadItemImage(ctx, restaurantID, item.ID, file)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "media storage is not configured")
}

func TestMenuService_DeleteItem_WithImage_NoMediaStore(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	restaurantID, item := bootstrapRestaurant(t, services)
	ctx := context.Background()

	item.ImageURL = "https://cdn.example.com/menu-items/khachapuri.jpg"
	_, err := services.MenuService.UpdateItem(ctx, item)
	require.NoError(t, err)

	// Object cleanup is skipped without a media store; the row still
	// goes away.
	require.NoError(t, services.MenuService.DeleteItem(ctx, restaurantID, item.ID))

	_, err = services.MenuService.GetItem(ctx, restaurantID, item.ID)
	assert.Error(t, err)
}
