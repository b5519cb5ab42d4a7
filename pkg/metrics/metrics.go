package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics.
type Metrics struct {
	// Storage metrics, observed by the repository layer.
	QueryTotal   *prometheus.CounterVec
	QueryErrors  *prometheus.CounterVec
	QueryLatency *prometheus.HistogramVec

	// Aggregation pipeline metrics.
	AggregationLatency *prometheus.HistogramVec
	DataInconsistency  prometheus.Counter
}

// New creates and registers all application metrics.
func New(namespace string) *Metrics {
	return &Metrics{
		QueryTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Total number of database queries by operation",
		}, []string{"operation"}),
		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Total number of failed database queries by operation",
		}, []string{"operation"}),
		QueryLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Time spent executing database queries",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		AggregationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Time spent composing analytics and report aggregations",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"pipeline"}),
		DataInconsistency: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_inconsistencies_total",
			Help:      "Aggregation invariant violations detected during composition",
		}),
	}
}

// ObserveQuery records one query outcome.
func (m *Metrics) ObserveQuery(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.QueryTotal.WithLabelValues(operation).Inc()
	m.QueryLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.QueryErrors.WithLabelValues(operation).Inc()
	}
}
