package export

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Call outcomes recorded in metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics provides Prometheus metrics for export calls.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	registry *prometheus.Registry
}

// NewMetrics creates call metrics registered on a private registry.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "export",
				Name:      "calls_total",
				Help:      "Total number of export calls",
			},
			[]string{"export", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "export",
				Name:      "call_duration_seconds",
				Help:      "Duration of export calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 7),
			},
			[]string{"export"},
		),
	}

	registry.MustRegister(m.calls, m.duration)
	return m
}

// Registry returns the Prometheus registry holding the call metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Calls returns the call counter for export and outcome.
func (m *Metrics) Calls(export, outcome string) prometheus.Counter {
	return m.calls.WithLabelValues(export, outcome)
}

// WriteTextfile writes the current metrics in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(export string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.calls.WithLabelValues(export, outcome).Inc()
	m.duration.WithLabelValues(export).Observe(elapsed.Seconds())
}
