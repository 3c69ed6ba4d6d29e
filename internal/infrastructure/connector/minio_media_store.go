package connector

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioMediaStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	logger   logger.Logger
}

// NewMinioMediaStore creates a MediaStore backed by an S3-compatible
// object store (DigitalOcean Spaces, MinIO). The bucket is created on
// startup when missing.
func NewMinioMediaStore(ctx context.Context, settings config.StorageSettings, logger logger.Logger) (menu.MediaStore, error) {
	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.AccessKey, settings.SecretKey, ""),
		Secure: settings.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, settings.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", settings.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, settings.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", settings.Bucket, err)
		}
		logger.Info("Created media bucket ", settings.Bucket)
	}

	return &minioMediaStore{
		client:   client,
		bucket:   settings.Bucket,
		endpoint: settings.Endpoint,
		useSSL:   settings.UseSSL,
		logger:   logger,
	}, nil
}

func (s *minioMediaStore) Upload(ctx context.Context, objectKey string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			s.logger.Warn("Failed to close uploaded file: ", err)
		}
	}()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectKey, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	s.logger.Info("Uploaded media object ", objectKey)
	return s.publicURL(objectKey), nil
}

func (s *minioMediaStore) Delete(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}

	s.logger.Info("Deleted media object ", objectKey)
	return nil
}

func (s *minioMediaStore) publicURL(objectKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectKey)
}
