package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
	Cookies        CookiePolicy
}

// HandleGet godoc
//
//	@Summary		Profile Read Endpoint
//	@Description	Exchange the session cookie for an access token, then fetch the
//	@Description	caller's profile from the backend with it. A 404 means the user
//	@Description	exists but never completed onboarding.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	portalsdk.Profile		"profile record"
//	@Failure		401	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		404	{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/profile/me [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	body, err := h.ProfileService.Fetch(ctx, cookieValue(r, RefreshCookieName))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrInvalidSession):
			httpx.Error(w, http.StatusUnauthorized, "Not authenticated")
		case errors.Is(err, backend.ErrProfileNotFound):
			httpx.Error(w, http.StatusNotFound, "Profile not found")
		default:
			var be *backend.Error
			if errors.As(err, &be) {
				httpx.Error(w, be.Status, be.DetailOr("Failed to fetch profile"))
				return
			}
			log.Error("profile fetch failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}

	httpx.WriteRawJSON(w, http.StatusOK, body)
}

// HandleUpdate godoc
//
//	@Summary		Profile Update Endpoint
//	@Description	Relay a partial profile patch to the backend under a freshly minted
//	@Description	access token. Backend validation failures are surfaced with the
//	@Description	upstream status and the raw validation payload under "details".
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portalsdk.ProfileUpdate	true	"Partial profile patch"
//	@Success		200		{object}	portalsdk.Profile		"updated profile record"
//	@Failure		400		{object}	portalsdk.ErrorResponse	"error, details"
//	@Failure		401		{object}	portalsdk.ErrorResponse	"error"
//	@Failure		500		{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/profile/update [patch].
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	body, err := h.ProfileService.Update(ctx, cookieValue(r, RefreshCookieName), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession), errors.Is(err, service.ErrInvalidSession):
			httpx.Error(w, http.StatusUnauthorized, "Not authenticated")
		default:
			var be *backend.Error
			if errors.As(err, &be) {
				// Keep the upstream validation payload intact so the
				// client can highlight the offending fields.
				httpx.WriteJSON(w, be.Status, map[string]any{
					"error":   "Failed to update profile",
					"details": json.RawMessage(be.Body),
				})
				return
			}
			log.Error("profile update failed", "err", err)
			httpx.Error(w, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	httpx.WriteRawJSON(w, http.StatusOK, body)
}
