package http

import (
	"errors"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type CheckSessionHandler struct {
	SessionService *service.SessionService
	Cookies        CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		Session Check Endpoint
//	@Description	Probe whether the refresh_token cookie still backs a live session by
//	@Description	exchanging it for a fresh access token. Returns the token plus the
//	@Description	identity decoded (unverified) from its claims. An invalid session
//	@Description	clears the cookie; an absent one just reports 401.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.SessionResponse	"access_token, user"
//	@Failure		401	{object}	portalsdk.ErrorResponse		"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse		"error"
//	@Router			/api/auth/check-session [get].
func (h *CheckSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	info, err := h.SessionService.Check(ctx, cookieValue(r, RefreshCookieName))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			httpx.Error(w, http.StatusUnauthorized, "No session found")
		case errors.Is(err, service.ErrInvalidSession):
			// A rejected token never becomes valid again; drop it.
			http.SetCookie(w, h.Cookies.ExpireRefresh())
			httpx.Error(w, http.StatusUnauthorized, "Invalid session")
		default:
			log.Error("session check failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, info)
}
