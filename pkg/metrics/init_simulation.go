package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.SimulationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gossip_simulations_total",
			Help: "Total number of diffusion simulations by model and outcome",
		},
		[]string{"model", "outcome"},
	)

	r.SimulationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gossip_simulation_duration_seconds",
			Help:    "Diffusion simulation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"model"},
	)

	r.SimulationRounds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gossip_simulation_rounds",
			Help:    "Number of activating rounds per simulation",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"model"},
	)

	r.SimulationActive = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gossip_simulation_active_nodes",
			Help:    "Number of active nodes when a simulation halts",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 1000},
		},
		[]string{"model"},
	)

	r.SimulationsRunning = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gossip_simulations_running",
			Help: "Number of simulations currently executing",
		},
	)

	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gossip_graph_nodes",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gossip_graph_edges",
			Help: "Number of undirected edges in the loaded graph",
		},
	)
}
