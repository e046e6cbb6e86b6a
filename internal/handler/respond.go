package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kunstnord/gallery-api/internal/resource"
	"github.com/kunstnord/gallery-api/internal/service"
	"github.com/kunstnord/gallery-api/internal/storage"
	"github.com/kunstnord/gallery-api/pkg/logger"
)

// respondError translates service errors into the API's error envelope.
// Validation failures carry the per-field map; everything unexpected becomes
// a generic 500 whose detail is only echoed outside production.
func respondError(c *gin.Context, err error, entity string, production bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Validation failed.",
			"errors":  verr.Fields,
		})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": entity + " not found.",
		})
		return
	}

	logger.Log.Error("Unexpected error handling request",
		zap.String("entity", entity),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)

	detail := "An error occurred"
	if !production {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Unable to process the request.",
		"error":   detail,
	})
}

// presigner builds the PresignFunc handed to the resource formatters. A
// failed presign is logged and serialized as a null image rather than
// failing the read.
func presigner(c *gin.Context, blobs storage.BlobStore) resource.PresignFunc {
	return func(key string) string {
		url, err := blobs.PresignedURL(c.Request.Context(), key, storage.PresignExpiry)
		if err != nil {
			logger.Log.Warn("Failed to presign image key",
				zap.String("key", key),
				zap.Error(err),
			)
			return ""
		}
		return url
	}
}
