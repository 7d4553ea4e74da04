package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	fetchTotal          *prometheus.CounterVec
	shapeAnomalies      *prometheus.CounterVec
	coercionAnomalies   *prometheus.CounterVec
	degradedSnapshots   *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		fetchTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_fetch_total",
				Help: "Total number of backend collection fetches",
			},
			[]string{"resource", "outcome"},
		),
		shapeAnomalies: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_shape_anomalies_total",
				Help: "Total number of unrecognized backend payload shapes",
			},
			[]string{"resource"},
		),
		coercionAnomalies: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_coercion_anomalies_total",
				Help: "Total number of records with uncoercible amount or date fields",
			},
			[]string{"field"},
		),
		degradedSnapshots: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snapshot_degraded_total",
				Help: "Total number of snapshot loads that substituted an empty collection",
			},
			[]string{"resource"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Derived view aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"view"},
		),
	}
}

func (m *PrometheusMetrics) ObserveFetch(resource, outcome string) {
	m.fetchTotal.WithLabelValues(resource, outcome).Inc()
}

func (m *PrometheusMetrics) ObserveShapeAnomaly(resource string) {
	m.shapeAnomalies.WithLabelValues(resource).Inc()
}

func (m *PrometheusMetrics) ObserveAggregationDuration(view string, duration time.Duration) {
	m.aggregationDuration.WithLabelValues(view).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordCoercionAnomaly(field string) {
	m.coercionAnomalies.WithLabelValues(field).Inc()
}

func (m *PrometheusMetrics) RecordDegradedSnapshot(resource string) {
	m.degradedSnapshots.WithLabelValues(resource).Inc()
}

// NoopMetrics satisfies MetricsRecorderInterface without registering
// anything. Used in tests to avoid duplicate prometheus registration.
type NoopMetrics struct{}

func (NoopMetrics) ObserveFetch(string, string)                      {}
func (NoopMetrics) ObserveShapeAnomaly(string)                       {}
func (NoopMetrics) ObserveAggregationDuration(string, time.Duration) {}
func (NoopMetrics) RecordCoercionAnomaly(string)                     {}
func (NoopMetrics) RecordDegradedSnapshot(string)                    {}
