package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Profile fetches the caller's profile record as raw JSON using a
// bearer access token. A 404 maps to ErrProfileNotFound.
func (c *Client) Profile(ctx context.Context, accessToken string) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, "/profiles/me", nil, map[string]string{
		"Authorization": "Bearer " + accessToken,
	})
	if err != nil {
		return nil, err
	}

	reply, err := replyOrError(resp)
	if err != nil {
		var be *Error
		if errors.As(err, &be) && be.Status == http.StatusNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return reply.Body, nil
}

// UpdateProfile PATCHes a partial profile body through to the backend.
// The patch is relayed untouched; the backend owns field validation.
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, patch json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.url("/profiles/me"), bytes.NewReader(patch))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	reply, err := replyOrError(resp)
	if err != nil {
		return nil, err
	}

	return reply.Body, nil
}
