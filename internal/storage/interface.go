package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks myflix-api/internal/storage Storage

// Storage defines the interface for poster object storage.
type Storage interface {
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// ObjectURL returns the stable URL of an uploaded object.
	ObjectURL(key string) string
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
