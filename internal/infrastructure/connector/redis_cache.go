package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is an interface for interacting with the key-value cache store
type Cache interface {
	// Ping verifies the connection to the cache store.
	Ping(ctx context.Context) error

	// Set stores a value under the key with a TTL. A zero TTL means no
	// expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Get retrieves the value stored under the key.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying connections.
	Close() error
}

type redisCache struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisCache creates a Redis-backed Cache implementation from a
// redis:// connection URL.
func NewRedisCache(settings config.RedisSettings, logger logger.Logger) (Cache, error) {
	opts, err := redis.ParseURL(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	logger.Info("Connected redis cache at ", opts.Addr)

	return &redisCache{
		client: client,
		logger: logger,
	}, nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return value, nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key %s: %w", key, err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
