package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	StorefrontRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchiq",
			Name:      "storefront_requests_total",
			Help:      "Total number of storefront backend requests",
		},
		[]string{"endpoint", "status"},
	)

	StorefrontRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchiq",
			Name:      "storefront_request_duration_seconds",
			Help:      "Storefront backend request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchiq",
			Name:      "search_cache_total",
			Help:      "Search result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	QueriesNormalizedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchiq",
			Name:      "queries_normalized_total",
			Help:      "Total normalized queries by outcome",
		},
		[]string{"outcome"}, // "ok" / "spam"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(StorefrontRequestsTotal)
	prometheus.MustRegister(StorefrontRequestDuration)
	prometheus.MustRegister(SearchCacheTotal)
	prometheus.MustRegister(QueriesNormalizedTotal)
	searchMetricsRegistered = true
}
