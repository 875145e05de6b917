package centrality

import "github.com/dd0wney/gossip-diffusion/pkg/graph"

// ClusteringCoefficient computes the local clustering coefficient of every
// node: the fraction of pairs of its neighbors that are themselves adjacent.
// Nodes with fewer than two neighbors score 0.
func ClusteringCoefficient(g *graph.Graph) (Table, error) {
	nodeIDs := g.Nodes()
	coefficients := make(Table, len(nodeIDs))

	for _, u := range nodeIDs {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}

		k := len(neighbors)
		if k < 2 {
			coefficients[u] = 0.0
			continue
		}

		triangles := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					triangles++
				}
			}
		}

		possible := k * (k - 1) / 2
		coefficients[u] = float64(triangles) / float64(possible)
	}

	return coefficients, nil
}
