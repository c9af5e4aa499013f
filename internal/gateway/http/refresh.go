package http

import (
	"errors"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
	Cookies     CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		Token Refresh Endpoint
//	@Description	Forward the browser's cookies to the backend refresh endpoint and relay
//	@Description	the new token pair plus any rotated cookies. When the backend rejects
//	@Description	the refresh token the stale cookie is cleared so the browser stops
//	@Description	retrying a dead session.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.TokenResponse	"access_token, refresh_token"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reply, err := h.AuthService.Refresh(ctx, r.Header.Get("Cookie"))
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			// The refresh token is dead; keeping the cookie would make
			// the browser retry forever.
			http.SetCookie(w, h.Cookies.ExpireRefresh())
			httpx.Error(w, be.Status, be.DetailOr("Session expired"))
			return
		}
		log.Error("refresh request failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	relaySetCookies(w, reply.SetCookie)
	httpx.WriteRawJSON(w, reply.Status, reply.Body)
}
