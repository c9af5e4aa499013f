package http

import (
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/portalsdk"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
	Cookies     CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Clear the session cookies and notify the backend. The backend call is
//	@Description	best-effort: the browser's cookies are cleared whether or not the
//	@Description	server-side revocation succeeds, so sign-out always works locally.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.LogoutResponse	"success"
//	@Router			/api/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if _, err := h.AuthService.Logout(ctx, r.Header.Get("Cookie")); err != nil {
		log.Warn("backend logout failed, clearing cookies anyway", "err", err)
	}

	http.SetCookie(w, h.Cookies.ExpireRefresh())
	http.SetCookie(w, h.Cookies.ExpireAccess())
	httpx.WriteJSON(w, http.StatusOK, portalsdk.LogoutResponse{Success: true})
}
