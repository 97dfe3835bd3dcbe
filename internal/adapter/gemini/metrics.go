package gemini

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	opChat       = "chat"
	opAdvisory   = "advisory"
	opExtraction = "extraction"
)

// Outcome labels.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeEmpty    = "empty"
	outcomeMismatch = "schema_mismatch"
)

// Metrics holds Prometheus metrics for provider calls.
//
//   - console_ai_requests_total{operation,outcome}
//   - console_ai_request_duration_seconds{operation}
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates and registers the gateway metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_ai_requests_total",
				Help: "Total number of AI provider calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_ai_request_duration_seconds",
				Help:    "Duration of AI provider calls in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 45, 90},
			},
			[]string{"operation"},
		),
	}
}
