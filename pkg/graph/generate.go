package graph

import (
	"fmt"
	"math/rand"
)

// ScaleFree generates a connected Barabási–Albert graph with n nodes
// (IDs 1..n). It starts from a complete core of m+1 nodes and attaches every
// further node to m distinct existing nodes chosen with probability
// proportional to their degree.
func ScaleFree(rng *rand.Rand, n, m int) (*Graph, error) {
	if m < 1 {
		return nil, fmt.Errorf("scale-free: m must be >= 1, got %d", m)
	}
	if n <= m {
		return nil, fmt.Errorf("scale-free: n must be > m, got n=%d m=%d", n, m)
	}

	core := m + 1
	nodes := make([]uint64, 0, n)
	edges := make([]Edge, 0, core*m+(n-core)*m)

	// Each endpoint appears once per incident edge, so sampling this slice
	// uniformly is degree-proportional sampling.
	endpoints := make([]uint64, 0, 2*cap(edges))

	for i := 1; i <= core; i++ {
		nodes = append(nodes, uint64(i))
		for j := 1; j < i; j++ {
			edges = append(edges, Edge{From: uint64(j), To: uint64(i)})
			endpoints = append(endpoints, uint64(j), uint64(i))
		}
	}

	for i := core + 1; i <= n; i++ {
		id := uint64(i)
		nodes = append(nodes, id)

		chosen := make(map[uint64]bool, m)
		targets := make([]uint64, 0, m)
		for len(targets) < m {
			target := endpoints[rng.Intn(len(endpoints))]
			if chosen[target] {
				continue
			}
			chosen[target] = true
			targets = append(targets, target)
		}

		for _, target := range targets {
			edges = append(edges, Edge{From: target, To: id})
			endpoints = append(endpoints, target, id)
		}
	}

	return New(nodes, edges)
}
