package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/storage"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// ImageUpload is a decoded multipart image payload handed down from the
// handler layer.
type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// storeImage uploads an image under the entity-type folder prefix and returns
// the generated blob key. The key, never a URL, is what gets persisted.
func storeImage(ctx context.Context, blobs storage.BlobStore, prefix string, upload *ImageUpload) (string, error) {
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), path.Ext(upload.Filename))
	if err := blobs.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return key, nil
}

// deleteImage best-effort removes a stored blob. Placeholder keys are shared
// between entities and must never be deleted. Failures are logged only: an
// orphaned blob is acceptable drift, a failed entity write is not.
func deleteImage(ctx context.Context, blobs storage.BlobStore, placeholderKey string, key *string) {
	if key == nil || *key == "" {
		return
	}
	if *key == placeholderKey || strings.Contains(*key, "placeholder") {
		return
	}

	exists, err := blobs.Exists(ctx, *key)
	if err != nil {
		logger.Log.Warn("Failed to check blob existence before delete",
			zap.String("key", *key),
			zap.Error(err),
		)
		return
	}
	if !exists {
		return
	}

	if err := blobs.Delete(ctx, *key); err != nil {
		logger.Log.Warn("Failed to delete blob",
			zap.String("key", *key),
			zap.Error(err),
		)
	}
}
