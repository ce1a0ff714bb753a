package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the product suggestions HTTP handler
	SuggestionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommendation_suggestion_latency_seconds",
		Help:    "Latency of the product suggestions handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of suggestion requests served
	SuggestionRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_suggestion_requests_total",
		Help: "Total number of product suggestion requests",
	})

	// Association cache outcomes
	AssociationCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_association_cache_hits_total",
		Help: "Association result sets served from cache",
	})

	AssociationCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_association_cache_misses_total",
		Help: "Association result sets recomputed on cache miss",
	})
)

func Init() {
	prometheus.MustRegister(
		SuggestionLatency,
		SuggestionRequests,
		AssociationCacheHits,
		AssociationCacheMisses,
	)
}
