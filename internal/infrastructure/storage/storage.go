// Package storage issues upload URLs for profile photos and removes replaced objects.
// MinIO (any S3 compatible endpoint) and Google Cloud Storage are supported.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/config"
)

// ObjectStorage defines the object operations the photo slot manager relies on.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	// PresignPut returns a URL the client can PUT the object to until ttl elapses.
	PresignPut(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Delete removes key. Removing a missing object is not an error.
	Delete(ctx context.Context, key string) error
	Bucket() string
}

// New builds the backend selected in cfg and makes sure its bucket exists.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStorage, error) {
	var (
		backend ObjectStorage
		err     error
	)

	switch cfg.Backend {
	case "minio":
		backend, err = NewMinioClient(cfg)
	case "gcs":
		backend, err = NewGCSClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if err := backend.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket %q: %w", backend.Bucket(), err)
	}
	return backend, nil
}
