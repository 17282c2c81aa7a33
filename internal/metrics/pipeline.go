package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainsettle7000",
		Subsystem: "indexer",
		Name:      "refresh_total",
		Help:      "Count of challenge cache refresh attempts.",
	}, []string{"status"})

	indexerRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainsettle7000",
		Subsystem: "indexer",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of challenge cache refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	indexerRefreshIndexed = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chainsettle7000",
		Subsystem: "indexer",
		Name:      "refresh_indexed_challenges",
		Help:      "Number of challenges upserted per refresh.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	indexerCacheParticipantsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainsettle7000",
		Subsystem: "indexer",
		Name:      "cache_participants_total",
		Help:      "Count of participant caching attempts.",
	}, []string{"status"})

	writerDeclareTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainsettle7000",
		Subsystem: "settlement_writer",
		Name:      "declare_chunks_total",
		Help:      "Count of declaration chunk sends.",
	}, []string{"fee_tier", "status"})

	writerDeclareDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainsettle7000",
		Subsystem: "settlement_writer",
		Name:      "declare_chunk_duration_seconds",
		Help:      "Duration of declaration chunk sends including receipt wait.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"fee_tier", "status"})

	writerChunkSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "chainsettle7000",
		Subsystem: "settlement_writer",
		Name:      "declare_chunk_size",
		Help:      "Participants per declaration chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})
)

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Indexer tracks metrics for the readiness indexer.
type Indexer struct{}

// NewIndexer creates an Indexer metrics collector.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// ObserveRefresh records one cache refresh attempt.
func (m Indexer) ObserveRefresh(err error, indexed int, started time.Time) {
	status := statusLabel(err)
	indexerRefreshTotal.WithLabelValues(status).Inc()
	indexerRefreshDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		indexerRefreshIndexed.Observe(float64(indexed))
	}
}

// ObserveCacheParticipants records one participant caching attempt.
func (m Indexer) ObserveCacheParticipants(err error, started time.Time) {
	indexerCacheParticipantsTotal.WithLabelValues(statusLabel(err)).Inc()
}

// Writer tracks metrics for the settlement writer.
type Writer struct{}

// NewWriter creates a Writer metrics collector.
func NewWriter() *Writer {
	return &Writer{}
}

// ObserveDeclareChunk records one chunk send attempt with the fee tier used.
func (m Writer) ObserveDeclareChunk(feeTier string, size int, err error, started time.Time) {
	if feeTier == "" {
		feeTier = "unknown"
	}
	status := statusLabel(err)
	writerDeclareTotal.WithLabelValues(feeTier, status).Inc()
	writerDeclareDuration.WithLabelValues(feeTier, status).Observe(time.Since(started).Seconds())
	if err == nil {
		writerChunkSize.Observe(float64(size))
	}
}
