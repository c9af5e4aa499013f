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

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Forward a signup to the backend and relay its response, including any
//	@Description	Set-Cookie headers. Uniqueness conflicts come back with the backend's
//	@Description	own status and detail.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portalsdk.RegisterRequest	true	"Signup details"
//	@Success		200		{object}	portalsdk.TokenResponse		"access_token, refresh_token"
//	@Failure		400		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		409		{object}	portalsdk.ErrorResponse		"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse		"error"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	reply, err := h.AuthService.Register(ctx, creds)
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			httpx.Error(w, be.Status, be.DetailOr("Registration failed"))
			return
		}
		log.Error("register request failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	relaySetCookies(w, reply.SetCookie)
	httpx.WriteRawJSON(w, reply.Status, reply.Body)
}
