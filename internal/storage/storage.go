package storage

import (
	"context"
	"io"
	"time"
)

// PresignExpiry is how long presigned read URLs stay valid.
const PresignExpiry = 5 * time.Minute

// BlobStore is the narrow view of object storage the services need: a
// key-value blob store with presigned read URL capability. Keys are organized
// by logical folder prefix ("products/...", "news/...").
type BlobStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// PresignedURL returns a time-limited read URL for key. The persisted key
	// itself is never exposed to clients.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
