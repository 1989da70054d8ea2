// Package metrics provides Prometheus metrics for the document viewer backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics
type Metrics struct {
	FhirRequests        *prometheus.CounterVec
	FhirRequestFailures *prometheus.CounterVec
	ResolutionDropped   prometheus.Counter
	ResolveDuration     prometheus.Histogram
	ImportBatchesBuilt  prometheus.Counter
	CircuitBreakerState *prometheus.GaugeVec
}

// New creates and registers all metrics
func New() *Metrics {
	m := &Metrics{
		FhirRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fhir_requests_total",
			Help: "Total requests issued to the upstream FHIR server",
		}, []string{"resource"}),
		FhirRequestFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fhir_request_failures_total",
			Help: "Total upstream FHIR requests that were rejected or failed",
		}, []string{"resource"}),
		ResolutionDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reference_resolution_dropped_total",
			Help: "Section entries dropped because their reference failed to resolve",
		}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "composition_resolve_duration_seconds",
			Help:    "Time spent resolving all references of one composition",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		ImportBatchesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "import_batches_built_total",
			Help: "Total import preview batches built",
		}),
		CircuitBreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		}, []string{"name"}),
	}

	prometheus.MustRegister(
		m.FhirRequests,
		m.FhirRequestFailures,
		m.ResolutionDropped,
		m.ResolveDuration,
		m.ImportBatchesBuilt,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
