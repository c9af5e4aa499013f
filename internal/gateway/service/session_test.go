package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, subject, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// newRefreshStub answers /users/refresh: the "rt-valid" token mints a
// JWT for jonas, "rt-opaque" mints a non-JWT blob, everything else is
// rejected with a 401.
func newRefreshStub(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/refresh", r.URL.Path)

		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		switch body.RefreshToken {
		case "rt-valid":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  signTestToken(t, "jonas", "jonas@example.lt"),
				"refresh_token": "rt-valid-rotated",
			})
		case "rt-opaque":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token":  "not-a-jwt",
				"refresh_token": "rt-opaque",
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid refresh token"})
		}
	}))
}

func TestSessionService_Check(t *testing.T) {
	upstream := newRefreshStub(t)
	defer upstream.Close()

	svc := &SessionService{Backend: backend.New(upstream.URL, time.Second)}
	ctx := context.Background()

	t.Run("valid token yields identity", func(t *testing.T) {
		info, err := svc.Check(ctx, "rt-valid")
		require.NoError(t, err)
		require.NotEmpty(t, info.AccessToken)
		require.Equal(t, "jonas", info.User.Username)
		require.Equal(t, "jonas@example.lt", info.User.Email)
	})

	t.Run("missing token is ErrNoSession", func(t *testing.T) {
		_, err := svc.Check(ctx, "")
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("rejected token is ErrInvalidSession", func(t *testing.T) {
		_, err := svc.Check(ctx, "rt-bogus")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("non-JWT access token is neither", func(t *testing.T) {
		_, err := svc.Check(ctx, "rt-opaque")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoSession)
		require.NotErrorIs(t, err, ErrInvalidSession)
	})
}

func TestSessionService_AccessToken(t *testing.T) {
	upstream := newRefreshStub(t)
	defer upstream.Close()

	svc := &SessionService{Backend: backend.New(upstream.URL, time.Second)}
	ctx := context.Background()

	t.Run("valid token mints a bearer", func(t *testing.T) {
		token, err := svc.AccessToken(ctx, "rt-valid")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("transport failure is not ErrInvalidSession", func(t *testing.T) {
		down := &SessionService{Backend: backend.New("http://127.0.0.1:1", 200*time.Millisecond)}
		_, err := down.AccessToken(ctx, "rt-valid")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidSession)
	})
}
