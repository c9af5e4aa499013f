package portalsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ReportQuery filters the report gallery. Zero fields are omitted.
type ReportQuery struct {
	Search string
	Topics string
	From   string
	To     string
}

// ListReports fetches gallery-shaped reports matching the query.
func (c *SDKClient) ListReports(ctx context.Context, q ReportQuery) ([]Report, error) {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Topics != "" {
		values.Set("topics", q.Topics)
	}
	if q.From != "" {
		values.Set("from", q.From)
	}
	if q.To != "" {
		values.Set("to", q.To)
	}

	path := "/api/reports"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var reports []Report
	if err := decodeJSON(resp, &reports, http.StatusOK); err != nil {
		return nil, err
	}
	return reports, nil
}

// ListSources fetches the statistics provider catalog.
func (c *SDKClient) ListSources(ctx context.Context) ([]Source, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/sources", nil, nil)
	if err != nil {
		return nil, err
	}

	var sources []Source
	if err := decodeJSON(resp, &sources, http.StatusOK); err != nil {
		return nil, err
	}
	return sources, nil
}
