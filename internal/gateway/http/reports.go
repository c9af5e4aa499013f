package http

import (
	"net/http"

	"github.com/ekonvartai/portal/internal/gateway/domain"
	"github.com/ekonvartai/portal/internal/gateway/service"
	"github.com/ekonvartai/portal/pkg/httpx"
	"github.com/ekonvartai/portal/pkg/slogx"
)

type ReportsHandler struct {
	ReportService *service.ReportService
}

// ServeHTTP godoc
//
//	@Summary		Report Gallery Endpoint
//	@Description	List economic reports shaped for the gallery: content trimmed to an
//	@Description	abstract, presentation fields defaulted where the backend has none.
//	@Description	Filters are relayed to the backend as-is.
//	@Tags			Reports
//	@Produce		json
//	@Param			search	query		string					false	"Free-text search"
//	@Param			topics	query		string					false	"Comma-separated topic slugs"
//	@Param			from	query		string					false	"Start date (YYYY-MM-DD)"
//	@Param			to		query		string					false	"End date (YYYY-MM-DD)"
//	@Success		200		{array}		portalsdk.Report		"reports"
//	@Failure		500		{object}	portalsdk.ErrorResponse	"error"
//	@Router			/api/reports [get].
func (h *ReportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	query := r.URL.Query()
	filter := domain.ReportFilter{
		Search: query.Get("search"),
		Topics: query.Get("topics"),
		From:   query.Get("from"),
		To:     query.Get("to"),
	}

	reports, err := h.ReportService.List(ctx, filter, r.Header.Get("Cookie"))
	if err != nil {
		log.Error("report list failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, reports)
}
