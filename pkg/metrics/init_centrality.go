package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCentralityMetrics() {
	r.CentralityComputationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gossip_centrality_computations_total",
			Help: "Total number of centrality table computations",
		},
		[]string{"metric", "status"},
	)

	r.CentralityDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gossip_centrality_duration_seconds",
			Help:    "Centrality table computation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"metric"},
	)

	r.CentralityCacheHitsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gossip_centrality_cache_hits_total",
			Help: "Total number of centrality lookups served from the memo",
		},
		[]string{"metric"},
	)
}

func (r *Registry) initArtifactMetrics() {
	r.ArtifactsWrittenTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gossip_artifacts_written_total",
			Help: "Total number of rendered artifacts written",
		},
		[]string{"sink", "status"},
	)

	r.ArtifactBytes = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gossip_artifact_bytes",
			Help:    "Size of written artifacts in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 6),
		},
		[]string{"sink"},
	)
}
