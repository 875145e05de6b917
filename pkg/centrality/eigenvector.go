package centrality

import (
	"fmt"
	"math"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// EigenvectorOptions configures the eigenvector power iteration
type EigenvectorOptions struct {
	MaxIterations int
	Tolerance     float64 // Per-node convergence threshold
}

// DefaultEigenvectorOptions returns default eigenvector configuration
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// EigenvectorResult contains eigenvector scores for all nodes
type EigenvectorResult struct {
	Scores     Table
	Iterations int
}

// EigenvectorCentrality computes eigenvector centrality with default options.
func EigenvectorCentrality(g *graph.Graph) (Table, error) {
	result, err := ComputeEigenvector(g, DefaultEigenvectorOptions())
	if err != nil {
		return nil, err
	}
	return result.Scores, nil
}

// ComputeEigenvector runs power iteration on A+I starting from the uniform vector.
// Each step is scaled to unit Euclidean length; the run converges once the
// summed absolute change drops below n * Tolerance. Failing to converge within
// MaxIterations is an error, never a partial table.
func ComputeEigenvector(g *graph.Graph, opts EigenvectorOptions) (*EigenvectorResult, error) {
	if opts.MaxIterations < 1 || !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0) {
		return nil, fmt.Errorf("%w: eigenvector max iterations %d, tolerance %v",
			ErrInvalidOptions, opts.MaxIterations, opts.Tolerance)
	}

	nodeIDs := g.Nodes()
	n := len(nodeIDs)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	x := make(Table, n)
	initialScore := 1.0 / float64(n)
	for _, nodeID := range nodeIDs {
		x[nodeID] = initialScore
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		last := x

		// Starting from a copy of last is the identity term of A+I
		x = make(Table, n)
		for nodeID, score := range last {
			x[nodeID] = score
		}
		for _, nodeID := range nodeIDs {
			g.EachNeighbor(nodeID, func(neighbor uint64) bool {
				x[neighbor] += last[nodeID]
				return true
			})
		}

		sumSquares := 0.0
		for _, nodeID := range nodeIDs {
			sumSquares += x[nodeID] * x[nodeID]
		}
		norm := math.Sqrt(sumSquares)
		if norm == 0 {
			norm = 1
		}

		diff := 0.0
		for _, nodeID := range nodeIDs {
			x[nodeID] /= norm
			diff += math.Abs(x[nodeID] - last[nodeID])
		}

		if diff < float64(n)*opts.Tolerance {
			return &EigenvectorResult{Scores: x, Iterations: iter}, nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNotConverged, opts.MaxIterations)
}
