package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ekonvartai/portal/internal/gateway/domain"
)

// ReportRow is a raw report record as the backend stores it: full
// content, optional presentation fields.
type ReportRow struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Date     string          `json:"date"`
	Topics   []string        `json:"topics"`
	CoverURL string          `json:"coverUrl"`
	PDFURL   string          `json:"pdfUrl"`
	Sources  []domain.Source `json:"sources"`
}

// Reports lists report rows matching the filter. The browser's Cookie
// header is forwarded for backends that scope results per session.
func (c *Client) Reports(ctx context.Context, f domain.ReportFilter, cookieHeader string) ([]ReportRow, error) {
	query := url.Values{}
	if f.Search != "" {
		query.Set("search", f.Search)
	}
	if f.Topics != "" {
		query.Set("topics", f.Topics)
	}
	if f.From != "" {
		query.Set("from", f.From)
	}
	if f.To != "" {
		query.Set("to", f.To)
	}

	path := "/reports"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil, map[string]string{
		"Cookie": cookieHeader,
	})
	if err != nil {
		return nil, err
	}

	reply, err := replyOrError(resp)
	if err != nil {
		return nil, err
	}

	var rows []ReportRow
	if err := json.Unmarshal(reply.Body, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Sources lists the statistics providers known to the backend.
func (c *Client) Sources(ctx context.Context, cookieHeader string) ([]domain.Source, error) {
	resp, err := c.do(ctx, http.MethodGet, "/sources", nil, map[string]string{
		"Cookie": cookieHeader,
	})
	if err != nil {
		return nil, err
	}

	reply, err := replyOrError(resp)
	if err != nil {
		return nil, err
	}

	var sources []domain.Source
	if err := json.Unmarshal(reply.Body, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}
