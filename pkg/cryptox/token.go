package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// CSRFTokenSize is the number of random bytes in a CSRF token.
// 32 bytes gives 256 bits of entropy (64 hex chars).
const CSRFTokenSize = 32

// GenerateToken creates a cryptographically secure random token of the
// specified byte length, returned hex-encoded. Returns an error if the
// random number generator fails.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// MustGenerateToken is like GenerateToken but panics on error.
// Use this only during initialization or in tests.
func MustGenerateToken(size int) string {
	token, err := GenerateToken(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate token: %v", err))
	}
	return token
}
