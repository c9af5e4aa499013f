package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/domain"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Cookies     CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Forward credentials to the backend and relay its response, including any
//	@Description	Set-Cookie headers. Field validation happens here; credential validation
//	@Description	is the backend's call and its error detail is surfaced verbatim.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portalsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalsdk.TokenResponse	"access_token, refresh_token"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if creds.Username == "" || creds.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	reply, err := h.AuthService.Login(ctx, creds)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			httpx.Error(w, be.Status, be.DetailOr("Login failed"))
			return
		}
		log.Error("login request failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	relaySetCookies(w, reply.SetCookie)

	// The backend returns the refresh token in the body; pin it as this
	// gateway's own cookie so later proxy calls can use it.
	var tokens struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(reply.Body, &tokens); err == nil && tokens.RefreshToken != "" {
		http.SetCookie(w, h.Cookies.RefreshCookie(tokens.RefreshToken))
	}

	httpx.WriteRawJSON(w, reply.Status, reply.Body)
}
