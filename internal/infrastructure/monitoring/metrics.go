// Package monitoring provides Prometheus metrics for the plan service.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics handles Prometheus metrics collection
type Metrics struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	plansGeneratedTotal *prometheus.CounterVec
	planStoreOpsTotal   *prometheus.CounterVec
}

// NewMetrics creates a metrics collector backed by its own registry, so
// tests can construct collectors independently.
func NewMetrics(logger *zap.Logger) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(registry)

	return &Metrics{
		logger:   logger,
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		plansGeneratedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diet_plans_generated_total",
				Help: "Total number of diet plans generated, by plan title",
			},
			[]string{"title"},
		),
		planStoreOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "plan_store_operations_total",
				Help: "Total number of plan store operations, by outcome",
			},
			[]string{"operation", "status"},
		),
	}
}

// Handler returns the HTTP handler that exposes the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordPlanGenerated counts a successful plan generation.
func (m *Metrics) RecordPlanGenerated(title string) {
	m.plansGeneratedTotal.WithLabelValues(title).Inc()
}

// RecordStoreOperation counts a plan store operation outcome. status is
// "success", "not_found" or "error".
func (m *Metrics) RecordStoreOperation(operation, status string) {
	m.planStoreOpsTotal.WithLabelValues(operation, status).Inc()
}

// HTTPMiddleware instruments request counts and latencies. The path
// label is the matched route pattern, not the raw URL, so path variables
// like plan ids never mint new series.
func (m *Metrics) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		path := routePattern(r)
		m.httpRequestsTotal.WithLabelValues(
			r.Method, path, strconv.Itoa(wrapped.status),
		).Inc()
		m.httpRequestDuration.WithLabelValues(
			r.Method, path,
		).Observe(time.Since(start).Seconds())
	})
}

// routePattern resolves the chi route pattern after routing has run.
// Unmatched requests all collapse into a single bucket.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
