package httpx

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// requestMetrics holds the Prometheus collectors for HTTP traffic.
type requestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var (
	globalMetrics     *requestMetrics
	globalMetricsOnce sync.Once
)

func initMetrics(namespace string, registry prometheus.Registerer) *requestMetrics {
	factory := promauto.With(registry)

	return &requestMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"method", "path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// MetricsMiddleware records a request counter and duration histogram
// for every request. Metrics register against the default Prometheus
// registry on first use.
func MetricsMiddleware(namespace string) Middleware {
	globalMetricsOnce.Do(func() {
		globalMetrics = initMetrics(namespace, prometheus.DefaultRegisterer)
	})
	return metricsMiddlewareWith(globalMetrics)
}

// MetricsMiddlewareWithRegistry is like MetricsMiddleware but registers
// against a caller-supplied registry. Intended for tests.
func MetricsMiddlewareWithRegistry(namespace string, registry prometheus.Registerer) Middleware {
	return metricsMiddlewareWith(initMetrics(namespace, registry))
}

func metricsMiddlewareWith(m *requestMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			// URL.Path is bounded because every route is a fixed
			// pattern; no per-user path segments exist.
			m.requestDuration.WithLabelValues(r.Method, r.URL.Path).
				Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
