// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainsettle7000",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"operation", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainsettle7000",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
)

// PostgresRepository tracks metrics for cache/archive store operations.
type PostgresRepository struct{}

// NewPostgresRepository creates a PostgresRepository metrics collector.
func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records duration and status of a repository operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	repositoryOperationsTotal.WithLabelValues(operation, status).Inc()
	repositoryOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
