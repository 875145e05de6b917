package centrality

import (
	"container/list"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/parallel"
)

// ClosenessCentrality computes closeness centrality for all nodes using the
// Wasserman and Faust correction for disconnected graphs:
//
//	C(v) = ((r-1) / Σd) * ((r-1) / (n-1))
//
// where r counts the nodes reachable from v (v included) and Σd is the sum of
// their distances. Nodes that reach nobody score 0.
func ClosenessCentrality(g *graph.Graph) (Table, error) {
	nodeIDs := g.Nodes()
	n := len(nodeIDs)

	scores := make([]float64, n)
	err := parallel.ForEach(n, parallel.DefaultWorkers(), func(i int) {
		distance := bfsDistances(g, nodeIDs[i])

		totalDistance := 0
		for _, dist := range distance {
			totalDistance += dist
		}
		if totalDistance == 0 || n <= 1 {
			return
		}

		others := float64(len(distance) - 1)
		scores[i] = (others / float64(totalDistance)) * (others / float64(n-1))
	})
	if err != nil {
		return nil, err
	}

	closeness := make(Table, n)
	for i, nodeID := range nodeIDs {
		closeness[nodeID] = scores[i]
	}
	return closeness, nil
}

// bfsDistances returns hop counts from source to every node it can reach,
// including source itself at distance 0.
func bfsDistances(g *graph.Graph, source uint64) map[uint64]int {
	distance := map[uint64]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(uint64)
		if !ok {
			continue
		}

		g.EachNeighbor(v, func(w uint64) bool {
			if _, seen := distance[w]; !seen {
				distance[w] = distance[v] + 1
				queue.PushBack(w)
			}
			return true
		})
	}

	return distance
}
