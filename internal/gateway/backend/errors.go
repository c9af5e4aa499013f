package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrProfileNotFound reports a 404 from the backend's profile
// endpoints: the user exists but has not completed onboarding.
var ErrProfileNotFound = errors.New("backend: profile not found")

// Error is a non-2xx reply from the backend. The proxy surfaces the
// upstream status and, when the body is FastAPI-shaped, its detail
// string.
type Error struct {
	Status int
	Detail string
	Body   json.RawMessage
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend: HTTP %d", e.Status)
}

// DetailOr returns the upstream detail string or the fallback when the
// backend gave none (or gave a structured validation body).
func (e *Error) DetailOr(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// replyOrError drains resp and converts it to either a Reply (2xx) or
// an *Error carrying the upstream status and detail.
func replyOrError(resp *http.Response) (*Reply, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Reply{
			Status:    resp.StatusCode,
			Body:      body,
			SetCookie: resp.Header.Values("Set-Cookie"),
		}, nil
	}

	return nil, parseError(resp.StatusCode, body)
}

// parseError extracts the FastAPI "detail" field when it is a plain
// string. Structured validation details stay available via Body.
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: body}

	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if detail, ok := envelope.Detail.(string); ok {
			e.Detail = detail
		}
	}

	return e
}
