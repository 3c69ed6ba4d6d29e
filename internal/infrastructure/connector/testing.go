//go:build integration
// +build integration

package connector

// TestRedisURL points at a local Redis instance, matching the
// docker-compose development stack.
const TestRedisURL = "redis://localhost:6379/1"

// Test settings for the local MinIO instance.
const (
	TestMinioEndpoint  = "localhost:9000"
	TestMinioAccessKey = "minioadmin"
	TestMinioSecretKey = "minioadmin"
	TestMinioBucket    = "test-media"
)
