// Package objectstore persists uploaded files in Google Cloud Storage.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	issueusecase "dashboard_backend/internal/feature/issue/usecase"
	resourceusecase "dashboard_backend/internal/feature/resource/usecase"
	"dashboard_backend/internal/platform/config"
)

// GCSStore uploads blobs to a bucket and hands back public URLs.
// Object keys are random so uploads never collide with each other.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	publicURL string
	newKey    func() string
}

var (
	_ issueusecase.ImageStore   = (*GCSStore)(nil)
	_ resourceusecase.FileStore = (*GCSStore)(nil)
)

// NewGCSStore creates a GCS-backed store. Credentials come from ADC.
func NewGCSStore(ctx context.Context, cfg config.StorageConfig) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = "https://storage.googleapis.com/" + cfg.Bucket
	}

	return &GCSStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		newKey:    uuid.NewString,
	}, nil
}

// Disabled stands in when no bucket is configured. Metadata-only flows keep
// working; any actual upload fails with a clear error.
type Disabled struct{}

var (
	_ issueusecase.ImageStore   = Disabled{}
	_ resourceusecase.FileStore = Disabled{}
)

func (Disabled) Upload(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	return "", fmt.Errorf("file storage is not configured")
}

// Upload writes r to the bucket and returns the object's public URL.
// The original filename only contributes its extension to the key.
func (s *GCSStore) Upload(ctx context.Context, filename string, contentType string, r io.Reader) (string, error) {
	key := s.newKey() + strings.ToLower(path.Ext(filename))

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close failed: %w", err)
	}

	return s.publicURL + "/" + key, nil
}
