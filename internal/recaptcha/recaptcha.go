package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kunstnord/gallery-api/internal/config"
)

// Result is the relevant subset of the siteverify response. Score is only
// present for v3-style tokens; its semantics are advisory.
type Result struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Verifier checks a client-supplied bot token against the score API.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*Result, error)
}

var _ Verifier = (*Client)(nil)

// Client calls the reCAPTCHA siteverify endpoint. The HTTP timeout is bounded
// so a slow verification service cannot hang the request; callers treat a
// transport error the same as a failed check.
type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		secret:    cfg.RecaptchaSecretKey,
		verifyURL: cfg.RecaptchaVerifyURL,
		http:      &http.Client{Timeout: cfg.RecaptchaTimeout},
	}
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	return &result, nil
}
