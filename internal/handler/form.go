package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kunstnord/gallery-api/internal/service"
)

// formImage extracts the optional "image" multipart file. The returned
// cleanup closes the opened file and must be deferred when non-nil.
func formImage(c *gin.Context) (*service.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &service.ImageUpload{
		Reader:      f,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}
	return upload, func() { _ = f.Close() }, nil
}

// pathID binds the single :id route parameter. Unparsable ids behave like
// missing rows.
func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, service.ErrNotFound
	}
	return id, nil
}

func formFloat(verr *service.ValidationError, c *gin.Context, field string) *float64 {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.Add(field, field+" must be a number")
		return nil
	}
	return &val
}

func formUUID(verr *service.ValidationError, c *gin.Context, field string) *uuid.UUID {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		verr.Add(field, field+" must be a valid id")
		return nil
	}
	return &id
}

func formBool(verr *service.ValidationError, c *gin.Context, field string) *bool {
	raw := c.PostForm(field)
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		verr.Add(field, field+" must be a boolean")
		return nil
	}
	return &val
}

// queryUUID parses an optional query parameter as a UUID, ignoring garbage.
func queryUUID(c *gin.Context, name string) *uuid.UUID {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
