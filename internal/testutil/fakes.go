package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kunstnord/gallery-api/internal/recaptcha"
)

// FakeBlobStore is an in-memory BlobStore for tests.
type FakeBlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string
}

func NewFakeBlobStore() *FakeBlobStore {
	return &FakeBlobStore{Objects: make(map[string][]byte)}
}

func (f *FakeBlobStore) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Objects[key] = data
	return nil
}

func (f *FakeBlobStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Objects, key)
	f.Deleted = append(f.Deleted, key)
	return nil
}

func (f *FakeBlobStore) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.Objects[key]
	return ok, nil
}

func (f *FakeBlobStore) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://blobs.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

// FakeMailer records outgoing mail instead of sending it.
type FakeMailer struct {
	mu   sync.Mutex
	Sent []FakeMail
	// Err, when set, makes every Send fail.
	Err error
}

type FakeMail struct {
	To      string
	Subject string
	Body    string
}

func (f *FakeMailer) Send(to, subject, body string) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = append(f.Sent, FakeMail{To: to, Subject: subject, Body: body})
	return nil
}

// LastMail returns the most recently recorded mail, or nil.
func (f *FakeMailer) LastMail() *FakeMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}

// FakeVerifier returns a canned bot-verification result.
type FakeVerifier struct {
	Result *recaptcha.Result
	Err    error
}

func (f *FakeVerifier) Verify(_ context.Context, _, _ string) (*recaptcha.Result, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Result, nil
}

// PassingVerifier returns a verifier that reports success with the given score.
func PassingVerifier(score float64) *FakeVerifier {
	return &FakeVerifier{Result: &recaptcha.Result{Success: true, Score: &score}}
}

// FailingVerifier returns a verifier whose check reports failure.
func FailingVerifier() *FakeVerifier {
	return &FakeVerifier{Result: &recaptcha.Result{Success: false, ErrorCodes: []string{"invalid-input-response"}}}
}

// ImageBody is a tiny payload usable as an uploaded image in tests.
func ImageBody() *bytes.Reader {
	return bytes.NewReader([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
}
