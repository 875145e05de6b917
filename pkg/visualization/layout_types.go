package visualization

import (
	"fmt"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for the initial placement
}

// Layout interface for different layout algorithms
type Layout interface {
	ComputeLayout(g *graph.Graph) (map[uint64]Position, error)
}

// NewLayout returns the layout registered under name: "force", "circular"
// or "hierarchical". Hierarchical layouts are rooted at roots.
func NewLayout(name string, config *LayoutConfig, roots ...uint64) (Layout, error) {
	switch name {
	case "", "force":
		return NewForceDirectedLayout(config), nil
	case "circular":
		return NewCircularLayout(config), nil
	case "hierarchical":
		return NewHierarchicalLayout(config, roots...), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", name)
	}
}
