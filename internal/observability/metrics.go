package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "instaclone_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "instaclone_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheRequests counts cache-aside lookups by key family and outcome.
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "instaclone_cache_requests_total",
		Help: "Total cache lookups by key family and hit/miss outcome",
	}, []string{"key", "outcome"})

	// WebSocketConnectionsTotal is the gauge of active WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "instaclone_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// WebSocketEventsTotal counts realtime events pushed to clients by type.
	WebSocketEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "instaclone_websocket_events_total",
		Help: "Total realtime events delivered by event type",
	}, []string{"event_type"})

	// WebSocketBackpressureDrops counts messages dropped because a client
	// send buffer was full.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "instaclone_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"reason"})

	// DirectMessagesTotal counts direct messages accepted for delivery.
	DirectMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "instaclone_direct_messages_total",
		Help: "Total direct messages stored",
	})

	// MediaTranscodeLatency records image transcode latency by output format.
	MediaTranscodeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "instaclone_media_transcode_latency_seconds",
		Help:    "Image transcode latency in seconds by output format",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})
)

// RecordCacheHit increments the hit counter for a cache key family.
func RecordCacheHit(key string) {
	CacheRequests.WithLabelValues(key, "hit").Inc()
}

// RecordCacheMiss increments the miss counter for a cache key family.
func RecordCacheMiss(key string) {
	CacheRequests.WithLabelValues(key, "miss").Inc()
}

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
