package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// ForceDirectedLayout implements Fruchterman-Reingold layout with cooling.
// Identical configs and graphs give identical positions.
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) (map[uint64]Position, error) {
	nodeIDs := g.Nodes()
	if len(nodeIDs) == 0 {
		return make(map[uint64]Position), nil
	}

	// Single node - center it
	if len(nodeIDs) == 1 {
		return map[uint64]Position{
			nodeIDs[0]: {X: fdl.config.Width / 2, Y: fdl.config.Height / 2},
		}, nil
	}

	rng := rand.New(rand.NewSource(fdl.config.Seed))
	cfg := fdl.config

	index := make(map[uint64]int, len(nodeIDs))
	positions := make([]Position, len(nodeIDs))
	for i, nodeID := range nodeIDs {
		index[nodeID] = i
		positions[i] = Position{
			X: rng.Float64()*(cfg.Width-2*cfg.Padding) + cfg.Padding,
			Y: rng.Float64()*(cfg.Height-2*cfg.Padding) + cfg.Padding,
		}
	}

	edges := g.Edges()

	k := math.Sqrt((cfg.Width * cfg.Height) / float64(len(nodeIDs))) // Optimal distance
	temperature := cfg.Width / 10.0
	forces := make([]Position, len(nodeIDs))

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range forces {
			forces[i] = Position{}
		}

		// Repulsion between all nodes
		for i := range positions {
			for j := i + 1; j < len(positions); j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), 0.01)

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[i].X += fx
				forces[i].Y += fy
				forces[j].X -= fx
				forces[j].Y -= fy
			}
		}

		// Attraction along edges
		for _, e := range edges {
			i, j := index[e.From], index[e.To]
			dx := positions[i].X - positions[j].X
			dy := positions[i].Y - positions[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[i].X -= fx
			forces[i].Y -= fy
			forces[j].X += fx
			forces[j].Y += fy
		}

		cool := 1.0 - float64(iter)/float64(cfg.Iterations)
		for i, f := range forces {
			force := math.Sqrt(f.X*f.X + f.Y*f.Y)
			if force == 0 {
				continue
			}
			step := math.Min(force, temperature) * cool
			positions[i].X += (f.X / force) * step
			positions[i].Y += (f.Y / force) * step
		}

		temperature *= 0.95
	}

	byID := make(map[uint64]Position, len(nodeIDs))
	for i, nodeID := range nodeIDs {
		byID[nodeID] = positions[i]
	}
	return normalizePositions(byID, cfg.Width, cfg.Height, cfg.Padding), nil
}
