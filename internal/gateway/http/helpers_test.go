package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// stubBackend impersonates the portal backend. Refresh token "rt-valid"
// belongs to jonas (who has a profile), "rt-noprofile" to naujokas (who
// does not), "rt-opaque" mints a non-JWT access token. Everything else
// is rejected.
type stubBackend struct {
	srv *httptest.Server

	mu           sync.Mutex
	loginCalls   int
	logoutCalls  int
	refreshCalls int
}

func signStubToken(t *testing.T, subject string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()

	sb := &stubBackend{}
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		sb.mu.Lock()
		sb.loginCalls++
		sb.mu.Unlock()

		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body.Username != "jonas" || body.Password != "slaptazodis" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
			return
		}

		w.Header().Add("Set-Cookie", "backend_session=abc; Path=/; HttpOnly")
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token":  signStubToken(t, "jonas"),
			"refresh_token": "rt-valid",
			"token_type":    "bearer",
		})
	})

	mux.HandleFunc("POST /users/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body.Username == "taken" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Username already registered"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"access_token":  signStubToken(t, body.Username),
			"refresh_token": "rt-valid",
		})
	})

	mux.HandleFunc("POST /users/refresh", func(w http.ResponseWriter, r *http.Request) {
		sb.mu.Lock()
		sb.refreshCalls++
		sb.mu.Unlock()

		// The token arrives either in the JSON body or as a cookie,
		// depending on which proxy variant called.
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

		switch token {
		case "rt-valid":
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  signStubToken(t, "jonas"),
				"refresh_token": "rt-valid",
			})
		case "rt-noprofile":
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  signStubToken(t, "naujokas"),
				"refresh_token": "rt-noprofile",
			})
		case "rt-opaque":
			writeJSON(w, http.StatusOK, map[string]string{
				"access_token":  "not-a-jwt",
				"refresh_token": "rt-opaque",
			})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid refresh token"})
		}
	})

	mux.HandleFunc("POST /users/logout", func(w http.ResponseWriter, r *http.Request) {
		sb.mu.Lock()
		sb.logoutCalls++
		sb.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	})

	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("refresh_token"); err == nil && c.Value == "rt-valid" {
			writeJSON(w, http.StatusOK, map[string]string{"username": "jonas", "email": "jonas@example.lt"})
			return
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
	})

	mux.HandleFunc("GET /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		subject := bearerSubject(r)
		switch subject {
		case "jonas":
			writeJSON(w, http.StatusOK, map[string]any{
				"id": 1, "user_id": 1, "role": "analyst",
				"language": "lt", "onboarding_completed": true,
			})
		case "naujokas":
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Profile not found"})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
		}
	})

	mux.HandleFunc("PATCH /profiles/me", func(w http.ResponseWriter, r *http.Request) {
		if bearerSubject(r) != "jonas" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
			return
		}

		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		if lang, ok := patch["language"].(string); ok && lang == "xx" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"detail": []map[string]any{{"loc": []string{"body", "language"}, "msg": "unsupported language"}},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "user_id": 1, "language": patch["language"], "onboarding_completed": true,
		})
	})

	mux.HandleFunc("GET /reports", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "title": "Kainų apžvalga", "content": strings.Repeat("x", 300), "date": "2025-03-01"},
		})
	})

	mux.HandleFunc("GET /sources", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]string{})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	sb.srv = httptest.NewServer(mux)
	t.Cleanup(sb.srv.Close)
	return sb
}

// bearerSubject decodes the unverified subject out of a stubbed
// Authorization header, or returns "" for anything malformed.
func bearerSubject(r *http.Request) string {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

func (sb *stubBackend) counts() (login, logout, refresh int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.loginCalls, sb.logoutCalls, sb.refreshCalls
}

// newTestRouter wires a full router against the given upstream URL.
// Each call builds fresh rate limiters so tests do not starve each
// other.
func newTestRouter(t *testing.T, backendURL string) *Router {
	t.Helper()

	bc := backend.New(backendURL, 2*time.Second)
	sessions := &service.SessionService{Backend: bc}

	r := NewRouter(
		CookiePolicy{Secure: false},
		"test",
		bc,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	r.AuthService = &service.AuthService{Backend: bc}
	r.SessionService = sessions
	r.CSRFService = service.CSRFService{}
	r.ProfileService = &service.ProfileService{Backend: bc, Sessions: sessions}
	r.ReportService = &service.ReportService{Backend: bc}
	r.ApplyRoutes()
	return r
}

func doRequest(router *Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// responseCookie finds a Set-Cookie entry by name, or nil.
func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	resp := http.Response{Header: rec.Header()}
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
