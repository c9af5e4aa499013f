package service

import (
	"context"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/domain"
)

// AuthService fronts the backend's credential endpoints for the auth
// proxy routes. It adds nothing beyond the backend call; field
// validation happens in the handlers, before any network traffic.
type AuthService struct {
	Backend *backend.Client
}

func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*backend.Reply, error) {
	return s.Backend.Login(ctx, creds)
}

func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*backend.Reply, error) {
	return s.Backend.Register(ctx, creds)
}

// Logout revokes the session server-side. Callers treat failures as
// advisory: the browser's cookies are cleared regardless.
func (s *AuthService) Logout(ctx context.Context, cookieHeader string) (*backend.Reply, error) {
	return s.Backend.Logout(ctx, cookieHeader)
}

// Refresh is the passthrough variant: the browser's Cookie header goes
// to the backend unchanged.
func (s *AuthService) Refresh(ctx context.Context, cookieHeader string) (*backend.Reply, error) {
	return s.Backend.RefreshWithCookies(ctx, cookieHeader)
}

func (s *AuthService) Me(ctx context.Context, cookieHeader string) (*backend.Reply, error) {
	return s.Backend.Me(ctx, cookieHeader)
}
