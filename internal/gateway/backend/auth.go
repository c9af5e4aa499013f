package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/domain"
)

// TokenPair is the backend's refresh-exchange response. The backend
// may include more fields; the gateway only needs the tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login forwards credentials to the backend's login endpoint.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*Reply, error) {
	resp, err := c.postJSON(ctx, "/users/login", map[string]any{
		"username":    creds.Username,
		"password":    creds.Password,
		"remember_me": creds.RememberMe,
	}, nil)
	if err != nil {
		return nil, err
	}
	return replyOrError(resp)
}

// Register forwards a registration request to the backend.
func (c *Client) Register(ctx context.Context, creds domain.Credentials) (*Reply, error) {
	resp, err := c.postJSON(ctx, "/users/register", map[string]any{
		"username": creds.Username,
		"email":    creds.Email,
		"password": creds.Password,
	}, nil)
	if err != nil {
		return nil, err
	}
	return replyOrError(resp)
}

// Refresh exchanges a refresh token for a fresh token pair. This is
// the body-carrying variant used by check-session and the profile
// proxies.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	resp, err := c.postJSON(ctx, "/users/refresh", map[string]string{
		"refresh_token": refreshToken,
	}, nil)
	if err != nil {
		return nil, err
	}

	reply, err := replyOrError(resp)
	if err != nil {
		return nil, err
	}

	pair := &TokenPair{}
	if err := json.Unmarshal(reply.Body, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

// RefreshWithCookies calls the refresh endpoint forwarding the
// browser's Cookie header, for the passthrough /api/auth/refresh
// route where the backend reads the refresh token itself.
func (c *Client) RefreshWithCookies(ctx context.Context, cookieHeader string) (*Reply, error) {
	resp, err := c.postJSON(ctx, "/users/refresh", map[string]string{}, map[string]string{
		"Cookie": cookieHeader,
	})
	if err != nil {
		return nil, err
	}
	return replyOrError(resp)
}

// Logout forwards the browser's Cookie header to the backend logout
// endpoint so the backend can revoke the refresh token server-side.
func (c *Client) Logout(ctx context.Context, cookieHeader string) (*Reply, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/logout", nil, map[string]string{
		"Cookie": cookieHeader,
	})
	if err != nil {
		return nil, err
	}
	return replyOrError(resp)
}

// Me forwards the browser's Cookie header to the backend identity
// endpoint.
func (c *Client) Me(ctx context.Context, cookieHeader string) (*Reply, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/me", nil, map[string]string{
		"Cookie": cookieHeader,
	})
	if err != nil {
		return nil, err
	}
	return replyOrError(resp)
}
