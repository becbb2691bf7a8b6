package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the metrics endpoint.
// A dedicated registry avoids collisions with the default global one
// when multiple instances exist in tests.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal     *prometheus.CounterVec
	integrationsTotal *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	activeRequests    prometheus.Gauge
}

// NewMetrics creates and registers all instruments on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "polyint_requests_total",
			Help: "Total HTTP requests served by the metrics endpoint.",
		}, []string{"path", "method"}),
		integrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "polyint_integrations_total",
			Help: "Total integral calculations by backend and status.",
		}, []string{"backend", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "polyint_integration_duration_seconds",
			Help:    "Duration of integral calculations by backend.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 10),
		}, []string{"backend"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "polyint_active_requests",
			Help: "Number of in-flight HTTP requests.",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.integrationsTotal,
		m.duration,
		m.activeRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveIntegration records one completed calculation for a backend.
// Status is "success" or "failure".
func (m *Metrics) ObserveIntegration(backend, status string, duration time.Duration) {
	m.integrationsTotal.WithLabelValues(backend, status).Inc()
	if status == "success" {
		m.duration.WithLabelValues(backend).Observe(duration.Seconds())
	}
}

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.requestsTotal.WithLabelValues(r.URL.Path, r.Method).Inc()
	m.handler.ServeHTTP(w, r)
}
