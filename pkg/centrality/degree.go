package centrality

import "github.com/dd0wney/gossip-diffusion/pkg/graph"

// DegreeCentrality computes degree centrality for all nodes: the fraction of
// the other nodes each node is adjacent to. A graph with a single node gives
// that node 1.
func DegreeCentrality(g *graph.Graph) (Table, error) {
	nodeIDs := g.Nodes()
	degree := make(Table, len(nodeIDs))

	if len(nodeIDs) <= 1 {
		for _, nodeID := range nodeIDs {
			degree[nodeID] = 1.0
		}
		return degree, nil
	}

	scale := 1.0 / float64(len(nodeIDs)-1)
	for _, nodeID := range nodeIDs {
		d, err := g.Degree(nodeID)
		if err != nil {
			return nil, err
		}
		degree[nodeID] = float64(d) * scale
	}

	return degree, nil
}
