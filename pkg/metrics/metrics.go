package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "weather_api"

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// UpstreamRequestsTotal counts third party API calls by api and outcome
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of third party API calls",
		},
		[]string{"api", "outcome"},
	)

	// MergedGroups observes how many groups a search returned
	MergedGroups = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "merged_groups",
			Help:      "Number of merged record groups returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		},
	)

	// DeleteFailuresTotal counts documents that failed to delete within a group delete
	DeleteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "group_delete_failures_total",
			Help:      "Documents that failed to delete during group deletes",
		},
	)

	// IngestMessagesTotal counts ingest queue messages by outcome
	IngestMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_messages_total",
			Help:      "Ingest queue messages by outcome",
		},
		[]string{"outcome"},
	)

	// CacheRequestsTotal counts video cache lookups
	CacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Cache hits and misses",
		},
		[]string{"cache", "result"}, // "hit" / "miss"
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestDuration,
		httpRequestsTotal,
		UpstreamRequestsTotal,
		MergedGroups,
		DeleteFailuresTotal,
		IngestMessagesTotal,
		CacheRequestsTotal,
	)
}

// Outcome turns an error into the outcome label value
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
