package storage

import (
	"Revu/internal/api/config"
	"context"
	"fmt"
	"io"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioStore struct {
	client *minio.Client
	bucket string
	cfg    config.MinIOConfig
}

// NewMinioStore connects to MinIO and verifies the bucket is reachable.
func NewMinioStore(cfg config.MinIOConfig) (Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	log.Info("MinIO connection established successfully.", "bucket", cfg.Bucket)
	return &minioStore{client: client, bucket: cfg.Bucket, cfg: cfg}, nil
}

func (s *minioStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	uploadInfo, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return uploadInfo.Key, nil
}

func (s *minioStore) DeleteMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
		if err != nil {
			return fmt.Errorf("failed to delete file %s: %w", key, err)
		}
	}
	return nil
}

func (s *minioStore) PublicURL(key string) string {
	protocol := "http"
	if s.cfg.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.cfg.Endpoint, s.bucket, key)
}
