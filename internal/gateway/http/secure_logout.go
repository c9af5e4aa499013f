package http

import (
	"encoding/json"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/portalsdk"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type SecureLogoutHandler struct {
	AuthService *service.AuthService
	CSRFService service.CSRFService
	Cookies     CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		CSRF-Protected Logout Endpoint
//	@Description	Sign out only when the csrfToken in the request body matches the
//	@Description	csrf_token cookie (constant-time compare). On mismatch or absence the
//	@Description	session cookies are left untouched; a forged cross-site request cannot
//	@Description	log the user out. On success the refresh and CSRF cookies are cleared.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portalsdk.SecureLogoutRequest	true	"CSRF token echo"
//	@Success		200		{object}	portalsdk.LogoutResponse		"success"
//	@Failure		403		{object}	portalsdk.ErrorResponse			"error"
//	@Router			/api/auth/secure-logout [post].
func (h *SecureLogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body portalsdk.SecureLogoutRequest
	// A malformed body leaves the token empty and fails the compare.
	_ = json.NewDecoder(r.Body).Decode(&body)

	if !h.CSRFService.Validate(cookieValue(r, CSRFCookieName), body.CSRFToken) {
		httpx.Error(w, http.StatusForbidden, "Invalid CSRF token")
		return
	}

	if _, err := h.AuthService.Logout(ctx, r.Header.Get("Cookie")); err != nil {
		log.Warn("backend logout failed, clearing cookies anyway", "err", err)
	}

	http.SetCookie(w, h.Cookies.ExpireRefresh())
	http.SetCookie(w, h.Cookies.ExpireCSRF())
	httpx.WriteJSON(w, http.StatusOK, portalsdk.LogoutResponse{Success: true})
}
