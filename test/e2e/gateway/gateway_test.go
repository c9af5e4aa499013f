package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ekonvartai/portal/internal/gateway/app"
	"github.com/ekonvartai/portal/pkg/portalsdk"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

/*
 * Full-stack tests: a real gateway application wired against a stubbed
 * portal backend, driven through the public SDK exactly the way the
 * web client drives the deployed service.
 */

const (
	testUsername = "jonas"
	testPassword = "slaptazodis"
	testRefresh  = "rt-e2e"
)

func mintToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": subject + "@example.lt",
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("e2e-secret"))
	require.NoError(t, err)
	return signed
}

// newBackend stands in for the FastAPI service the gateway fronts.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != testUsername || body.Password != testPassword {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token":  mintToken(t, testUsername),
			"refresh_token": testRefresh,
			"token_type":    "bearer",
		})
	})

	mux.HandleFunc("POST /users/refresh", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		token := body.RefreshToken
		if token == "" {
			if c, err := r.Cookie("refresh_token"); err == nil {
				token = c.Value
			}
		}
		if token != testRefresh {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid refresh token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token":  mintToken(t, testUsername),
			"refresh_token": testRefresh,
		})
	})

	mux.HandleFunc("POST /users/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	})

	mux.HandleFunc("GET /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "user_id": 1, "role": "analyst",
			"language": "lt", "onboarding_completed": true,
		})
	})

	mux.HandleFunc("PATCH /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "user_id": 1, "role": "analyst",
			"language": patch["language"], "onboarding_completed": true,
		})
	})

	mux.HandleFunc("GET /reports", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "title": "Infliacijos apžvalga", "content": "Kainos kilo.", "date": "2025-03-01"},
		})
	})

	mux.HandleFunc("GET /sources", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]string{})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newGateway boots the real application against the stub backend and
// serves it over HTTP so SDK cookies behave as they would in production.
func newGateway(t *testing.T, backendURL string) *httptest.Server {
	t.Helper()

	application, err := app.New(app.Config{
		BackendURL:          backendURL,
		UpstreamTimeout:     2 * time.Second,
		Env:                 "dev",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	})
	require.NoError(t, err)

	srv := httptest.NewServer(application.Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestFullAuthFlow(t *testing.T) {
	backend := newBackend(t)
	gateway := newGateway(t, backend.URL)

	client := portalsdk.NewSDKClient(gateway.URL)
	session := client.NewSession()
	ctx := context.Background()

	// Fresh browser: no session
	require.NoError(t, session.CheckSession(ctx))
	require.Equal(t, portalsdk.StatusUnauthenticated, session.Status())

	// Login round-trips credentials, cookie, and identity
	require.NoError(t, session.Login(ctx, testUsername, testPassword, false))
	require.Equal(t, portalsdk.StatusAuthenticated, session.Status())
	require.Equal(t, testUsername, session.User().Username)
	require.NotEmpty(t, session.AccessToken())

	// Profile rides the refresh-then-call path
	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "analyst", profile.Role)

	lang := "en"
	updated, err := session.UpdateProfile(ctx, portalsdk.ProfileUpdate{Language: &lang})
	require.NoError(t, err)
	require.Equal(t, "en", updated.Language)

	// CSRF-protected sign-out ends the session for real
	require.NoError(t, session.SecureLogout(ctx))
	require.Equal(t, portalsdk.StatusUnauthenticated, session.Status())

	require.NoError(t, session.CheckSession(ctx))
	require.Equal(t, portalsdk.StatusUnauthenticated, session.Status())
}

func TestPublicCatalogue(t *testing.T) {
	backend := newBackend(t)
	gateway := newGateway(t, backend.URL)

	client := portalsdk.NewSDKClient(gateway.URL)
	ctx := context.Background()

	reports, err := client.ListReports(ctx, portalsdk.ReportQuery{Search: "infliacija"})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "Kainos kilo.", reports[0].Abstract)
	require.Equal(t, []string{"Economy"}, reports[0].Topics)

	sources, err := client.ListSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 6, "empty backend catalog falls back to the built-in list")
}

func TestHealthOverSDK(t *testing.T) {
	backend := newBackend(t)
	gateway := newGateway(t, backend.URL)

	client := portalsdk.NewSDKClient(gateway.URL)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Backend)
}
