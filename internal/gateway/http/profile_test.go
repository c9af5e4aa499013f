package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileHandler_Get(t *testing.T) {
	sb := newStubBackend(t)
	router := newTestRouter(t, sb.srv.URL)

	t.Run("no session", func(t *testing.T) {
		rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/profile/me", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Not authenticated", decodeBody(t, rec)["error"])
	})

	t.Run("rejected session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "rt-dead"})
		rec := doRequest(router, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("profile fetched via refresh exchange", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "rt-valid"})
		rec := doRequest(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, "analyst", body["role"])
		require.Equal(t, true, body["onboarding_completed"])

		_, _, refresh := sb.counts()
		require.Positive(t, refresh, "the proxy mints its own access token per call")
	})

	t.Run("onboarding not finished", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profile/me", nil)
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "rt-noprofile"})
		rec := doRequest(router, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Profile not found", decodeBody(t, rec)["error"])
	})
}

func TestProfileHandler_Update(t *testing.T) {
	sb := newStubBackend(t)
	router := newTestRouter(t, sb.srv.URL)

	t.Run("no session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/profile/update",
			strings.NewReader(`{"language":"lt"}`))
		rec := doRequest(router, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Not authenticated", decodeBody(t, rec)["error"])
	})

	t.Run("patch relayed and updated record returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/profile/update",
			strings.NewReader(`{"language":"en"}`))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "rt-valid"})
		rec := doRequest(router, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", decodeBody(t, rec)["language"])
	})

	t.Run("validation failure keeps upstream payload", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/profile/update",
			strings.NewReader(`{"language":"xx"}`))
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "rt-valid"})
		rec := doRequest(router, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, "Failed to update profile", body["error"])
		require.NotNil(t, body["details"], "upstream validation detail must survive the proxy")
	})
}
