package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/convo-coach/errors"
	"github.com/johnquangdev/convo-coach/internal/domain/entities"
	"github.com/johnquangdev/convo-coach/pkg/config"
)

const scheme = "s3://"

// MinIOClient reads clip objects from MinIO or any S3-compatible store
type MinIOClient struct {
	client *minio.Client
}

// NewMinIOClient creates a new MinIO client
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOClient{client: minioClient}, nil
}

// ParseObjectRef splits an s3://bucket/key reference
func ParseObjectRef(ref string) (bucket, key string, err error) {
	if !strings.HasPrefix(ref, scheme) {
		return "", "", fmt.Errorf("%w: %q", entities.ErrUnsupportedClipRef, ref)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(ref, scheme), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", entities.ErrUnsupportedClipRef, ref)
	}
	return bucket, key, nil
}

// IsObjectRef reports whether ref points into object storage
func IsObjectRef(ref string) bool {
	return strings.HasPrefix(ref, scheme)
}

// Open returns a reader over the object behind an s3:// clip reference
func (m *MinIOClient) Open(ctx context.Context, ref entities.PlaylistItem) (io.ReadCloser, error) {
	bucket, key, err := ParseObjectRef(string(ref))
	if err != nil {
		return nil, err
	}

	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.ErrStorageFailed("get object", err)
	}
	// GetObject is lazy; Stat surfaces a missing object before playback starts
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, errors.ErrStorageFailed("stat object", err)
	}
	return obj, nil
}
