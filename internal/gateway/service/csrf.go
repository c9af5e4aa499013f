package service

import (
	"crypto/subtle"

	"github.com/ekonvartai/portal/pkg/cryptox"
)

// CSRFService issues and validates the anti-forgery tokens required by
// the secure sign-out flow. A token lives in an httpOnly cookie and is
// echoed back by the client in the request body; validation is exact
// string equality, performed in constant time. No signing is involved.
type CSRFService struct{}

// Issue generates a fresh hex-encoded token.
func (CSRFService) Issue() (string, error) {
	return cryptox.GenerateToken(cryptox.CSRFTokenSize)
}

// Validate reports whether the token submitted in the request body
// matches the cookie-stored one. Either value being empty fails.
func (CSRFService) Validate(cookieValue, submitted string) bool {
	if cookieValue == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieValue), []byte(submitted)) == 1
}
