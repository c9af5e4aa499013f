package http

import (
	"errors"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current User Endpoint
//	@Description	Forward the browser's cookies to the backend identity endpoint and
//	@Description	relay the user record it returns.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.User			"username, email"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	reply, err := h.AuthService.Me(ctx, r.Header.Get("Cookie"))
	if err != nil {
		var be *backend.Error
		if errors.As(err, &be) {
			if be.Status == http.StatusUnauthorized {
				httpx.Error(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			httpx.Error(w, be.Status, be.DetailOr("Failed to fetch user"))
			return
		}
		log.Error("me request failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteRawJSON(w, reply.Status, reply.Body)
}
