package metrics

import (
	"runtime"
	"time"
)

// RecordSimulation records a finished simulation. outcome is the halt reason
// for successful runs and "error" otherwise.
func (r *Registry) RecordSimulation(model, outcome string, duration time.Duration, rounds, active int) {
	r.SimulationsTotal.WithLabelValues(model, outcome).Inc()
	r.SimulationDuration.WithLabelValues(model).Observe(duration.Seconds())
	if outcome == "error" {
		return
	}
	r.SimulationRounds.WithLabelValues(model).Observe(float64(rounds))
	r.SimulationActive.WithLabelValues(model).Observe(float64(active))
}

// TrackRunning increments the running gauge and returns the matching decrement.
func (r *Registry) TrackRunning() func() {
	r.SimulationsRunning.Inc()
	return r.SimulationsRunning.Dec
}

// RecordCentrality records one centrality table computation
func (r *Registry) RecordCentrality(metric, status string, duration time.Duration) {
	r.CentralityComputationsTotal.WithLabelValues(metric, status).Inc()
	r.CentralityDuration.WithLabelValues(metric).Observe(duration.Seconds())
}

// RecordCentralityCacheHit records a lookup answered by the memo
func (r *Registry) RecordCentralityCacheHit(metric string) {
	r.CentralityCacheHitsTotal.WithLabelValues(metric).Inc()
}

// RecordArtifact records an artifact write
func (r *Registry) RecordArtifact(sink, status string, size int) {
	r.ArtifactsWrittenTotal.WithLabelValues(sink, status).Inc()
	if status == "success" {
		r.ArtifactBytes.WithLabelValues(sink).Observe(float64(size))
	}
}

// SetGraphSize records the size of the loaded graph
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// UpdateSystemMetrics refreshes uptime and runtime gauges
func (r *Registry) UpdateSystemMetrics(startedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(startedAt).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
	r.MemorySysBytes.Set(float64(mem.Sys))
}
