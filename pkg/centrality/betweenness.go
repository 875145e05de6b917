package centrality

import (
	"container/list"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/parallel"
)

// betweennessChunks fixes how sources are grouped for parallel
// accumulation. Partial sums are merged in chunk order, so the result does
// not depend on the worker count.
const betweennessChunks = 16

// BetweennessCentrality computes betweenness centrality for all nodes with
// Brandes' algorithm. Every unordered pair is traversed from both ends, so
// normalising the raw sums by 1/((n-1)(n-2)) yields the usual undirected
// score in [0, 1].
func BetweennessCentrality(g *graph.Graph) (Table, error) {
	nodeIDs := g.Nodes()
	n := len(nodeIDs)

	index := make(map[uint64]int, n)
	for i, nodeID := range nodeIDs {
		index[nodeID] = i
	}

	chunks := min(betweennessChunks, n)
	partial := make([][]float64, chunks)
	err := parallel.ForEach(chunks, parallel.DefaultWorkers(), func(c int) {
		acc := make([]float64, n)
		for s := c; s < n; s += chunks {
			accumulateDependencies(g, nodeIDs, index, nodeIDs[s], acc)
		}
		partial[c] = acc
	})
	if err != nil {
		return nil, err
	}

	normFactor := 1.0
	if n > 2 {
		normFactor = 1.0 / float64((n-1)*(n-2))
	}

	betweenness := make(Table, n)
	for i, nodeID := range nodeIDs {
		sum := 0.0
		for _, acc := range partial {
			sum += acc[i]
		}
		betweenness[nodeID] = sum * normFactor
	}

	return betweenness, nil
}

// accumulateDependencies adds the dependencies of source on every other
// node to acc, indexed by node position.
func accumulateDependencies(g *graph.Graph, nodeIDs []uint64, index map[uint64]int, source uint64, acc []float64) {
	stack := make([]uint64, 0, len(nodeIDs))
	predecessors := make(map[uint64][]uint64, len(nodeIDs))
	sigma := make(map[uint64]float64, len(nodeIDs))
	distance := make(map[uint64]int, len(nodeIDs))

	for _, nodeID := range nodeIDs {
		distance[nodeID] = -1
	}

	sigma[source] = 1.0
	distance[source] = 0

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v, ok := queue.Remove(queue.Front()).(uint64)
		if !ok {
			continue
		}
		stack = append(stack, v)

		g.EachNeighbor(v, func(w uint64) bool {
			if distance[w] < 0 {
				queue.PushBack(w)
				distance[w] = distance[v] + 1
			}

			if distance[w] == distance[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
			return true
		})
	}

	// Back-propagation of pair dependencies
	delta := make(map[uint64]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, pred := range predecessors[w] {
			delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
		}
		if w != source {
			acc[index[w]] += delta[w]
		}
	}
}
