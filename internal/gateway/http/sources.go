package http

import (
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
)

type SourcesHandler struct {
	ReportService *service.ReportService
}

// ServeHTTP godoc
//
//	@Summary		Statistics Sources Endpoint
//	@Description	List the statistics providers reports draw on. Falls back to the
//	@Description	built-in catalog when the backend has none, so the gallery filter
//	@Description	always has entries. This endpoint never fails.
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{array}	portalsdk.Source	"sources"
//	@Router			/api/sources [get].
func (h *SourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sources := h.ReportService.Sources(r.Context(), r.Header.Get("Cookie"))
	httpx.WriteJSON(w, http.StatusOK, sources)
}
