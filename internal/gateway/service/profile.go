package service

import (
	"context"
	"encoding/json"

	"github.com/ekonvartai/portal/internal/gateway/backend"
)

// ProfileService implements the refresh-then-call pattern for the
// profile proxies: every call independently exchanges the refresh
// token for an access token, then hits the backend profile endpoint
// with it as a bearer credential. Two concurrent calls each do their
// own exchange; the exchange is idempotent so this is wasteful but
// safe.
type ProfileService struct {
	Backend  *backend.Client
	Sessions *SessionService
}

// Fetch returns the caller's profile record as raw JSON.
// Returns ErrNoSession/ErrInvalidSession before any profile request is
// made, and backend.ErrProfileNotFound when onboarding never finished.
func (s *ProfileService) Fetch(ctx context.Context, refreshToken string) (json.RawMessage, error) {
	accessToken, err := s.Sessions.AccessToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.Backend.Profile(ctx, accessToken)
}

// Update relays a partial profile body to the backend. Validation
// errors come back as *backend.Error with the upstream status and body.
func (s *ProfileService) Update(ctx context.Context, refreshToken string, patch json.RawMessage) (json.RawMessage, error) {
	accessToken, err := s.Sessions.AccessToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	return s.Backend.UpdateProfile(ctx, accessToken, patch)
}
