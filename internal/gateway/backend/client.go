// Package backend is the typed HTTP client for the portal's upstream
// identity/profile/report service. Every proxy route goes through it;
// it owns request construction, error mapping, and the passthrough of
// Set-Cookie headers the proxy relays to the browser.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every upstream call. The proxy has no retry
// policy, so a hung backend must not hang the browser indefinitely.
const DefaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Reply is a snapshot of a successful (2xx) upstream response. The
// raw Set-Cookie header values are preserved verbatim so the proxy can
// relay them without re-encoding attributes.
type Reply struct {
	Status    int
	Body      json.RawMessage
	SetCookie []string
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// do performs an upstream request. Callers pass headers to forward,
// typically Content-Type, Cookie, or Authorization.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}

	return resp, nil
}

// postJSON marshals v and POSTs it to path.
func (c *Client) postJSON(ctx context.Context, path string, v any, headers map[string]string) (*http.Response, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"

	return c.do(ctx, http.MethodPost, path, strings.NewReader(string(payload)), headers)
}

// Ping reports whether the backend answers HTTP at all. Any response,
// including an error status, counts as reachable; only transport
// failures do not.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}
