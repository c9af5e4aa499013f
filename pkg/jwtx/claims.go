package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims the portal cares about. The
// backend mints the tokens; the subject claim carries the username.
type Claims struct {
	jwt.RegisteredClaims

	// Email, when the backend includes it. Most tokens carry only sub.
	Email string `json:"email,omitempty"`
}

// ErrMalformedToken reports an access token that could not be decoded
// or that lacks a subject claim.
var ErrMalformedToken = errors.New("jwtx: malformed access token")

// DecodeUnverified extracts the claims from a JWT without verifying its
// signature. The gateway never issues or validates tokens itself; the
// upstream backend is the issuer and sole verifier, and the gateway
// only needs the subject for display. A decode failure therefore means
// the upstream handed back something that is not a JWT at all.
func DecodeUnverified(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrMalformedToken)
	}

	return claims, nil
}
