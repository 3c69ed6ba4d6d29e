//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubCache is an in-memory Cache for probing the health roundtrip.
type stubCache struct {
	values map[string]string
	setErr error
	getErr error
}

func newStubCache() *stubCache {
	return &stubCache{values: map[string]string{}}
}

func (c *stubCache) Ping(ctx context.Context) error { return nil }

func (c *stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	return nil
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.values[key], nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func (c *stubCache) Close() error { return nil }

func TestCacheRoundtrip(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	assert.False(t, cacheRoundtrip(ctx, nil))

	cache := newStubCache()
	assert.True(t, cacheRoundtrip(ctx, cache))
	assert.Equal(t, "ok", cache.values["health:probe"])

	cache.setErr = errors.New("connection refused")
	assert.False(t, cacheRoundtrip(ctx, cache))

	cache.setErr = nil
	cache.getErr = errors.New("connection refused")
	assert.False(t, cacheRoundtrip(ctx, cache))
}

func TestHealthHandler_Ready(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	handler.Ready(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
}
