package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/domain"
)

// abstractLimit is how much of a report's content the gallery shows.
const abstractLimit = 200

// defaultSources is the built-in catalog served when the backend has
// no /sources endpoint or is unreachable. The gallery filter must
// always have something to offer.
var defaultSources = []domain.Source{
	{ID: "LB", Name: "Bank of Lithuania", URL: "https://www.lb.lt/en/statistics"},
	{ID: "StataLT", Name: "Statistics Lithuania", URL: "https://osp.stat.gov.lt/en"},
	{ID: "Eurostat", Name: "European Statistics", URL: "https://ec.europa.eu/eurostat"},
	{ID: "OECD", Name: "Organisation for Economic Co-operation and Development", URL: "https://data.oecd.org"},
	{ID: "IMF", Name: "International Monetary Fund", URL: "https://data.imf.org"},
	{ID: "WorldBank", Name: "World Bank", URL: "https://data.worldbank.org"},
}

// ReportService shapes backend report rows into the gallery's format.
type ReportService struct {
	Backend *backend.Client
}

// List fetches reports matching the filter and trims each row down to
// its gallery shape.
func (s *ReportService) List(ctx context.Context, f domain.ReportFilter, cookieHeader string) ([]domain.Report, error) {
	rows, err := s.Backend.Reports(ctx, f, cookieHeader)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.Report, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, transformReport(row))
	}
	return reports, nil
}

// Sources returns the backend's source catalog, falling back to the
// built-in list on any failure.
func (s *ReportService) Sources(ctx context.Context, cookieHeader string) []domain.Source {
	sources, err := s.Backend.Sources(ctx, cookieHeader)
	if err != nil || len(sources) == 0 {
		return defaultSources
	}
	return sources
}

// transformReport maps a raw backend row to the gallery shape:
// truncated abstract, default topic, placeholder art when the backend
// provides none.
func transformReport(row backend.ReportRow) domain.Report {
	report := domain.Report{
		ID:       row.ID,
		Title:    row.Title,
		Date:     row.Date,
		Abstract: truncateAbstract(row.Content),
		Topics:   row.Topics,
		CoverURL: row.CoverURL,
		PDFURL:   row.PDFURL,
		Sources:  row.Sources,
	}

	if len(report.Topics) == 0 {
		report.Topics = []string{"Economy"}
	}
	if report.CoverURL == "" {
		report.CoverURL = "/api/placeholder/400/250?text=" + url.QueryEscape(row.Title)
	}
	if report.PDFURL == "" {
		report.PDFURL = fmt.Sprintf("/reports/%d", row.ID)
	}
	if report.Sources == nil {
		report.Sources = []domain.Source{}
	}

	return report
}

func truncateAbstract(content string) string {
	runes := []rune(content)
	if len(runes) <= abstractLimit {
		return content
	}
	return string(runes[:abstractLimit]) + "..."
}
