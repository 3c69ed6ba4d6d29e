//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) Cache {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	cache, err := NewRedisCache(config.RedisSettings{URL: TestRedisURL}, logger)
	require.NoError(t, err)

	if err := cache.Ping(context.Background()); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		_ = cache.Close()
	})
	return cache
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	key := "test:" + uuid.NewString()
	require.NoError(t, cache.Set(ctx, key, "khinkali", time.Minute))

	value, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "khinkali", value)
}

func TestRedisCache_Get_Missing_Error(t *testing.T) {
	cache := setupTestCache(t)

	_, err := cache.Get(context.Background(), "test:"+uuid.NewString())
	assert.Error(t, err)
}

func TestRedisCache_Delete(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	key := "test:" + uuid.NewString()
	require.NoError(t, cache.Set(ctx, key, "gone", time.Minute))
	require.NoError(t, cache.Delete(ctx, key))

	_, err := cache.Get(ctx, key)
	assert.Error(t, err)
}

func TestRedisCache_TTL_Expires(t *testing.T) {
	cache := setupTestCache(t)
	ctx := context.Background()

	key := "test:" + uuid.NewString()
	require.NoError(t, cache.Set(ctx, key, "short-lived", 100*time.Millisecond))

	time.Sleep(200 * time.Millisecond)

	_, err := cache.Get(ctx, key)
	assert.Error(t, err)
}
