package service

import (
	"context"
	"errors"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/domain"
	"github.com/ekonvartai/portal/pkg/jwtx"
)

var (
	// ErrNoSession means the browser presented no refresh-token cookie.
	ErrNoSession = errors.New("no session")

	// ErrInvalidSession means the backend rejected the refresh token.
	// The caller should clear the cookie; it will never mint a token
	// again.
	ErrInvalidSession = errors.New("invalid session")
)

// SessionService performs the refresh exchange: refresh-token cookie in,
// fresh access token plus decoded identity out. Each call is an
// independent exchange; the gateway keeps no session state of its own.
type SessionService struct {
	Backend *backend.Client
}

// SessionInfo is the result of a successful session check.
type SessionInfo struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// Check exchanges the refresh token and decodes the user identity from
// the returned access token's subject claim.
func (s *SessionService) Check(ctx context.Context, refreshToken string) (*SessionInfo, error) {
	accessToken, err := s.AccessToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	claims, err := jwtx.DecodeUnverified(accessToken)
	if err != nil {
		// The backend answered the exchange but handed back something
		// that is not a JWT. Distinct from the 401 cases.
		return nil, err
	}

	return &SessionInfo{
		AccessToken: accessToken,
		User:        domain.User{Username: claims.Subject, Email: claims.Email},
	}, nil
}

// AccessToken performs the refresh exchange and returns only the
// bearer token, for proxy calls that do not need the identity.
func (s *SessionService) AccessToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrNoSession
	}

	pair, err := s.Backend.Refresh(ctx, refreshToken)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	return pair.AccessToken, nil
}
