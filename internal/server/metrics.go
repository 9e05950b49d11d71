package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exported by the calculator.
// Each instance carries its own registry so construction is repeatable in
// tests and embedded setups.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests    prometheus.Gauge
	requestsTotal     prometheus.Counter
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics builds a Metrics instance with the calculator and Go runtime
// collectors registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigcalc_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_operations_total",
			Help: "Total number of arithmetic operations executed, by operation and outcome.",
		}, []string{"op", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bigcalc_operation_duration_seconds",
			Help:    "Wall-clock duration of arithmetic operations.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"op"}),
	}

	registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.operationsTotal,
		m.operationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks the start of an HTTP request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests marks the end of an HTTP request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveOperation records one executed arithmetic operation.
func (m *Metrics) ObserveOperation(op string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.operationsTotal.WithLabelValues(op, outcome).Inc()
	m.operationDuration.WithLabelValues(op).Observe(d.Seconds())
}

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
