package http

import (
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/portalsdk"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type CSRFHandler struct {
	CSRFService service.CSRFService
	Cookies     CookiePolicy
}

// ServeHTTP godoc
//
//	@Summary		CSRF Token Endpoint
//	@Description	Issue a fresh anti-forgery token, delivered both as an httpOnly cookie
//	@Description	and in the response body. The client echoes the body copy in protected
//	@Description	requests; the gateway compares it against the cookie copy.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.CSRFResponse	"csrfToken"
//	@Failure		500	{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/csrf [get].
func (h *CSRFHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	token, err := h.CSRFService.Issue()
	if err != nil {
		log.Error("csrf token generation failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to generate CSRF token")
		return
	}

	http.SetCookie(w, h.Cookies.CSRFCookie(token))
	httpx.WriteJSON(w, http.StatusOK, portalsdk.CSRFResponse{CSRFToken: token})
}
