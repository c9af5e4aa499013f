package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ekonvartai/portal/internal/gateway/backend"
	"github.com/ekonvartai/portal/internal/gateway/domain"
	"github.com/stretchr/testify/require"
)

func TestTransformReport(t *testing.T) {
	t.Run("short content kept whole", func(t *testing.T) {
		report := transformReport(backend.ReportRow{
			ID:      1,
			Title:   "Inflation Review",
			Content: "Prices rose modestly.",
		})
		require.Equal(t, "Prices rose modestly.", report.Abstract)
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		report := transformReport(backend.ReportRow{
			ID:      2,
			Content: strings.Repeat("a", 300),
		})
		require.Equal(t, strings.Repeat("a", 200)+"...", report.Abstract)
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		report := transformReport(backend.ReportRow{
			ID:      3,
			Content: strings.Repeat("ą", 250),
		})
		require.Equal(t, strings.Repeat("ą", 200)+"...", report.Abstract)
	})

	t.Run("defaults fill missing presentation fields", func(t *testing.T) {
		report := transformReport(backend.ReportRow{
			ID:    7,
			Title: "GDP Q1",
		})
		require.Equal(t, []string{"Economy"}, report.Topics)
		require.Equal(t, "/api/placeholder/400/250?text=GDP+Q1", report.CoverURL)
		require.Equal(t, "/reports/7", report.PDFURL)
		require.NotNil(t, report.Sources)
		require.Empty(t, report.Sources)
	})

	t.Run("backend fields win over defaults", func(t *testing.T) {
		report := transformReport(backend.ReportRow{
			ID:       8,
			Topics:   []string{"Labour"},
			CoverURL: "/covers/8.png",
			PDFURL:   "/files/8.pdf",
			Sources:  []domain.Source{{ID: "LB"}},
		})
		require.Equal(t, []string{"Labour"}, report.Topics)
		require.Equal(t, "/covers/8.png", report.CoverURL)
		require.Equal(t, "/files/8.pdf", report.PDFURL)
		require.Len(t, report.Sources, 1)
	})
}

func TestReportService_List(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reports", r.URL.Path)
		require.Equal(t, "inflation", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]backend.ReportRow{
			{ID: 1, Title: "Inflation Review", Content: strings.Repeat("x", 400), Date: "2025-03-01"},
		})
	}))
	defer upstream.Close()

	svc := &ReportService{Backend: backend.New(upstream.URL, time.Second)}

	reports, err := svc.List(context.Background(), domain.ReportFilter{Search: "inflation"}, "")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, strings.Repeat("x", 200)+"...", reports[0].Abstract)
	require.Equal(t, []string{"Economy"}, reports[0].Topics)
}

func TestReportService_Sources(t *testing.T) {
	t.Run("backend catalog passes through", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]domain.Source{
				{ID: "LB", Name: "Bank of Lithuania", URL: "https://www.lb.lt/en/statistics"},
			})
		}))
		defer upstream.Close()

		svc := &ReportService{Backend: backend.New(upstream.URL, time.Second)}
		sources := svc.Sources(context.Background(), "")
		require.Len(t, sources, 1)
		require.Equal(t, "LB", sources[0].ID)
	})

	t.Run("falls back on upstream error", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer upstream.Close()

		svc := &ReportService{Backend: backend.New(upstream.URL, time.Second)}
		sources := svc.Sources(context.Background(), "")
		require.Len(t, sources, 6)
		require.Equal(t, "LB", sources[0].ID)
		require.Equal(t, "WorldBank", sources[5].ID)
	})

	t.Run("falls back on empty catalog", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("[]"))
		}))
		defer upstream.Close()

		svc := &ReportService{Backend: backend.New(upstream.URL, time.Second)}
		sources := svc.Sources(context.Background(), "")
		require.Len(t, sources, 6)
	})

	t.Run("falls back when backend unreachable", func(t *testing.T) {
		svc := &ReportService{Backend: backend.New("http://127.0.0.1:1", 200*time.Millisecond)}
		sources := svc.Sources(context.Background(), "")
		require.Len(t, sources, 6)
	})
}
