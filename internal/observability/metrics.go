package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travelmeetup_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// IntegrityViolations counts rejected writes by violation kind.
	IntegrityViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelmeetup_integrity_violations_total",
		Help: "Total number of writes rejected by database constraints",
	}, []string{"kind"})

	// CacheErrorRate counts cache errors by operation type.
	CacheErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelmeetup_cache_error_rate_total",
		Help: "Total number of cache errors by operation type",
	}, []string{"operation"})

	// CascadeDeleteDuration records the duration of user cascade deletes.
	CascadeDeleteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "travelmeetup_cascade_delete_duration_seconds",
		Help:    "Duration of user cascade-delete transactions in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		ObserveQuery(operation, table, start)
	}
}
