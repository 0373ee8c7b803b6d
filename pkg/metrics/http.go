package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handlers, labelled by strategy
	RecommendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of recommendation handlers",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests by strategy",
	}, []string{"strategy"})

	RatingMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rating_mutations_total",
		Help: "Count of rating create/update/delete operations",
	}, []string{"operation"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		RatingMutationsTotal,
	)
}
