// Package metrics holds the Prometheus collectors shared by the snapshot
// container, the simulation writer and the HTTP layer.
//
// Every label has a small fixed value set; nothing is labelled by team, player
// or slug.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Snapshot read outcomes.
const (
	ReadOK        = "ok"
	ReadNotLoaded = "not_loaded"
)

var (
	snapshotGeneration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "snapshot_generation",
		Help: "Generation number of the currently published snapshot",
	})

	snapshotReplaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_replacements_total",
		Help: "Snapshots published by the simulation writer",
	})

	snapshotReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snapshot_read_acquisitions_total",
		Help: "Read guard acquisitions by outcome",
	}, []string{"result"}) // ok, not_loaded

	simTickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_duration_seconds",
		Help:    "Time spent building and publishing a snapshot generation",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	projectionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projection_errors_total",
		Help: "Projection requests aborted at the resolve step, by error kind",
	}, []string{"kind"}) // not_loaded, index_unavailable, not_found, invalid_input, internal

	connectionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "connection_rejected_total",
		Help: "Requests rejected before reaching a handler",
	}, []string{"reason"}) // rate_limit

	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"}) // endpoint is the route pattern, not the URL

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})
)

// RecordSnapshotRead counts one read acquisition attempt.
func RecordSnapshotRead(result string) {
	snapshotReads.WithLabelValues(result).Inc()
}

// RecordSnapshotReplaced records a newly published generation.
func RecordSnapshotReplaced(generation uint64) {
	snapshotReplaced.Inc()
	snapshotGeneration.Set(float64(generation))
}

// RecordTick records writer tick timing.
func RecordTick(duration time.Duration) {
	simTickDuration.Observe(duration.Seconds())
}

// RecordProjectionError counts an aborted projection.
func RecordProjectionError(kind string) {
	projectionErrors.WithLabelValues(kind).Inc()
}

// RecordConnectionRejected increments the rejection counter.
func RecordConnectionRejected(reason string) {
	connectionRejected.WithLabelValues(reason).Inc()
}

// RecordRequest records HTTP request metrics.
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	requestTotal.WithLabelValues(method, endpoint, http.StatusText(status)).Inc()
}
