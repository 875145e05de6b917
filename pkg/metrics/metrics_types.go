package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Simulation Metrics
	SimulationsTotal   *prometheus.CounterVec
	SimulationDuration *prometheus.HistogramVec
	SimulationRounds   *prometheus.HistogramVec
	SimulationActive   *prometheus.HistogramVec
	SimulationsRunning prometheus.Gauge

	// Centrality Metrics
	CentralityComputationsTotal *prometheus.CounterVec
	CentralityDuration          *prometheus.HistogramVec
	CentralityCacheHitsTotal    *prometheus.CounterVec

	// Artifact Metrics
	ArtifactsWrittenTotal *prometheus.CounterVec
	ArtifactBytes         *prometheus.HistogramVec

	// Graph Metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initSimulationMetrics()
	r.initCentralityMetrics()
	r.initArtifactMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
