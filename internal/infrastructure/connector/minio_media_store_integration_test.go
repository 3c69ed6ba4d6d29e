//go:build integration
// +build integration

package connector

import (
	"context"
	"testing"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestMediaStore(t *testing.T) menu.MediaStore {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	store, err := NewMinioMediaStore(context.Background(), config.StorageSettings{
		Endpoint:  TestMinioEndpoint,
		AccessKey: TestMinioAccessKey,
		SecretKey: TestMinioSecretKey,
		Bucket:    TestMinioBucket,
		UseSSL:    false,
	}, logger)
	if err != nil {
		t.Skipf("minio not reachable: %v", err)
	}
	return store
}

func TestMinioMediaStore_UploadAndDelete(t *testing.T) {
	store := setupTestMediaStore(t)
	ctx := context.Background()

	header := testutil.CreateTestFileHeader(t, "dish.jpg", []byte("fake image bytes"))
	objectKey := "menu-items/" + uuid.NewString() + "/dish.jpg"

	url, err := store.Upload(ctx, objectKey, header)
	require.NoError(t, err)
	assert.Contains(t, url, objectKey)

	require.NoError(t, store.Delete(ctx, objectKey))
}

func TestMinioMediaStore_Delete_MissingObject_Succeeds(t *testing.T) {
	store := setupTestMediaStore(t)

	// Object removal is idempotent in MinIO.
	err := store.Delete(context.Background(), "menu-items/"+uuid.NewString()+"/ghost.jpg")
	assert.NoError(t, err)
}
