package storage

import (
	"context"
	"io"
)

// Store is the blob storage collaborator. Keys follow the
// "<userId>/<randomToken>.<ext>" convention; PublicURL maps a key to the
// address served to clients.
type Store interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteMany(ctx context.Context, keys []string) error
	PublicURL(key string) string
}
