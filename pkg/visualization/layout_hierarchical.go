package visualization

import (
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// HierarchicalLayout places nodes in rows by hop distance from the roots,
// so a diffusion reads top to bottom from its seeds.
type HierarchicalLayout struct {
	config *LayoutConfig
	roots  []uint64
}

// NewHierarchicalLayout creates a new hierarchical layout. Without roots
// the lowest node ID is used.
func NewHierarchicalLayout(config *LayoutConfig, roots ...uint64) *HierarchicalLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &HierarchicalLayout{config: config, roots: append([]uint64(nil), roots...)}
}

// ComputeLayout arranges nodes hierarchically
func (hl *HierarchicalLayout) ComputeLayout(g *graph.Graph) (map[uint64]Position, error) {
	nodeIDs := g.Nodes()
	positions := make(map[uint64]Position, len(nodeIDs))

	if len(nodeIDs) == 0 {
		return positions, nil
	}

	roots := hl.roots
	if len(roots) == 0 {
		roots = nodeIDs[:1]
	}
	for _, root := range roots {
		if !g.HasNode(root) {
			return nil, graph.NodeNotFoundError("hierarchical layout", root)
		}
	}

	// Build levels using BFS
	levels := make([][]uint64, 0)
	visited := make(map[uint64]bool, len(nodeIDs))
	currentLevel := make([]uint64, 0, len(roots))
	for _, root := range roots {
		if !visited[root] {
			visited[root] = true
			currentLevel = append(currentLevel, root)
		}
	}

	for len(currentLevel) > 0 {
		levels = append(levels, currentLevel)
		nextLevel := make([]uint64, 0)

		for _, nodeID := range currentLevel {
			g.EachNeighbor(nodeID, func(neighbor uint64) bool {
				if !visited[neighbor] {
					visited[neighbor] = true
					nextLevel = append(nextLevel, neighbor)
				}
				return true
			})
		}

		currentLevel = nextLevel
	}

	// Unreachable nodes share a final row
	var unreached []uint64
	for _, nodeID := range nodeIDs {
		if !visited[nodeID] {
			unreached = append(unreached, nodeID)
		}
	}
	if len(unreached) > 0 {
		levels = append(levels, unreached)
	}

	levelHeight := (hl.config.Height - 2*hl.config.Padding) / float64(len(levels))
	levelWidth := hl.config.Width - 2*hl.config.Padding

	for levelIdx, level := range levels {
		y := hl.config.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		spacing := levelWidth / float64(len(level)+1)

		for nodeIdx, nodeID := range level {
			x := hl.config.Padding + spacing*float64(nodeIdx+1)
			positions[nodeID] = Position{X: x, Y: y}
		}
	}

	return positions, nil
}
