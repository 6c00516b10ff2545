package metrics

import "github.com/prometheus/client_golang/prometheus"

// Related-query Prometheus metrics.
var (
	RelatedQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "graceroom",
			Name:      "related_queries_total",
			Help:      "Total number of related-question queries",
		},
	)

	RelatedCandidatesScored = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "graceroom",
			Name:      "related_candidates_scored",
			Help:      "Candidate items scored per related-question query",
			Buckets:   []float64{0, 10, 25, 50, 100, 250, 500, 1000, 2500},
		},
	)

	RelatedMatchesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "graceroom",
			Name:      "related_matches_returned",
			Help:      "Matches returned per related-question query",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
)

var relatedMetricsRegistered bool

// RegisterRelatedMetrics registers related-query metrics. Must be called once from main.
func RegisterRelatedMetrics() {
	if relatedMetricsRegistered {
		return
	}
	prometheus.MustRegister(RelatedQueriesTotal)
	prometheus.MustRegister(RelatedCandidatesScored)
	prometheus.MustRegister(RelatedMatchesReturned)
	relatedMetricsRegistered = true
}
