package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SnapshotRefreshTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_snapshot_refresh_total",
			Help: "Count of snapshot rebuilds.",
		},
	)

	SnapshotRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommender_snapshot_refresh_seconds",
			Help:    "Time spent building a snapshot and its similarity matrices.",
			Buckets: prometheus.DefBuckets,
		},
	)

	SnapshotMovies = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_snapshot_movies",
			Help: "Catalog size of the current snapshot.",
		},
	)

	SnapshotRatedUsers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommender_snapshot_rated_users",
			Help: "Number of rating-matrix rows in the current snapshot.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		SnapshotRefreshTotal,
		SnapshotRefreshDuration,
		SnapshotMovies,
		SnapshotRatedUsers,
	)
}
