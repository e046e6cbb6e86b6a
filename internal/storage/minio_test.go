package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

// mockMinioAPI implements minioAPI in memory.
type mockMinioAPI struct {
	buckets map[string]bool
	objects map[string][]byte
}

func newMockMinioAPI() *mockMinioAPI {
	return &mockMinioAPI{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
}

func (m *mockMinioAPI) BucketExists(_ context.Context, bucketName string) (bool, error) {
	return m.buckets[bucketName], nil
}

func (m *mockMinioAPI) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	m.buckets[bucketName] = true
	return nil
}

func (m *mockMinioAPI) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	m.objects[bucketName+"/"+objectName] = data
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (m *mockMinioAPI) RemoveObject(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
	delete(m.objects, bucketName+"/"+objectName)
	return nil
}

func (m *mockMinioAPI) StatObject(_ context.Context, bucketName, objectName string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	data, ok := m.objects[bucketName+"/"+objectName]
	if !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	}
	return minio.ObjectInfo{Key: objectName, Size: int64(len(data))}, nil
}

func (m *mockMinioAPI) PresignedGetObject(_ context.Context, bucketName, objectName string, expiry time.Duration, _ url.Values) (*url.URL, error) {
	raw := fmt.Sprintf("https://s3.test/%s/%s?X-Amz-Expires=%d", bucketName, objectName, int(expiry.Seconds()))
	return url.Parse(raw)
}

func TestNewMinioStoreWithAPICreatesBucket(t *testing.T) {
	api := newMockMinioAPI()

	_, err := NewMinioStoreWithAPI(context.Background(), api, "gallery")
	assert.NoError(t, err)
	assert.True(t, api.buckets["gallery"])

	// Second call reuses the existing bucket
	_, err = NewMinioStoreWithAPI(context.Background(), api, "gallery")
	assert.NoError(t, err)
}

func TestMinioStoreUploadExistsDelete(t *testing.T) {
	api := newMockMinioAPI()
	store, err := NewMinioStoreWithAPI(context.Background(), api, "gallery")
	assert.NoError(t, err)

	ctx := context.Background()
	body := []byte("image bytes")

	err = store.Upload(ctx, "products/abc.png", bytes.NewReader(body), int64(len(body)), "image/png")
	assert.NoError(t, err)

	exists, err := store.Exists(ctx, "products/abc.png")
	assert.NoError(t, err)
	assert.True(t, exists)

	// Missing keys report false without error (NoSuchKey is not a failure)
	exists, err = store.Exists(ctx, "products/missing.png")
	assert.NoError(t, err)
	assert.False(t, exists)

	err = store.Delete(ctx, "products/abc.png")
	assert.NoError(t, err)

	exists, err = store.Exists(ctx, "products/abc.png")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestMinioStorePresignedURL(t *testing.T) {
	api := newMockMinioAPI()
	store, err := NewMinioStoreWithAPI(context.Background(), api, "gallery")
	assert.NoError(t, err)

	u, err := store.PresignedURL(context.Background(), "products/abc.png", PresignExpiry)
	assert.NoError(t, err)
	assert.Contains(t, u, "products/abc.png")
	assert.Contains(t, u, "X-Amz-Expires=300")
}
