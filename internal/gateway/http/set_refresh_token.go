package http

import (
	"encoding/json"
	"net/http"

	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/portalsdk"
)

type SetRefreshTokenHandler struct {
	Cookies CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		Set Refresh Token Endpoint
//	@Description	Install a refresh token from the request body as the httpOnly session
//	@Description	cookie. Login responses carry the token in their JSON body; this
//	@Description	endpoint moves it into the cookie it must live in, so script never
//	@Description	needs to hold it long-term.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portalsdk.SetRefreshTokenRequest	true	"Refresh token"
//	@Success		200		{object}	portalsdk.LogoutResponse			"success"
//	@Failure		400		{object}	portalsdk.ErrorResponse				"error"
//	@Router			/api/auth/set-refresh-token [post].
func (h *SetRefreshTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body portalsdk.SetRefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefreshToken == "" {
		httpx.Error(w, http.StatusBadRequest, "Refresh token required")
		return
	}

	http.SetCookie(w, h.Cookies.RefreshCookie(body.RefreshToken))
	httpx.WriteJSON(w, http.StatusOK, portalsdk.LogoutResponse{Success: true})
}
