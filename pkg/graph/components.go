package graph

import (
	"container/list"
	"sort"
)

// Reachable returns every node reachable from the given sources, sources
// included, in ascending order. Unknown sources fail with ErrNodeNotFound.
func (g *Graph) Reachable(sources ...uint64) ([]uint64, error) {
	visited := make(map[uint64]bool, len(g.nodes))
	queue := list.New()

	for _, source := range sources {
		if !g.HasNode(source) {
			return nil, NodeNotFoundError("reachable", source)
		}
		if !visited[source] {
			visited[source] = true
			queue.PushBack(source)
		}
	}

	for queue.Len() > 0 {
		current, ok := queue.Remove(queue.Front()).(uint64)
		if !ok {
			continue
		}
		for _, neighbor := range g.adjacency[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue.PushBack(neighbor)
			}
		}
	}

	reached := make([]uint64, 0, len(visited))
	for id := range visited {
		reached = append(reached, id)
	}
	sort.Slice(reached, func(i, j int) bool { return reached[i] < reached[j] })
	return reached, nil
}

// Components returns the connected components of the graph. Components are
// ordered by their smallest node ID and each is sorted ascending.
func (g *Graph) Components() [][]uint64 {
	visited := make(map[uint64]bool, len(g.nodes))
	components := make([][]uint64, 0)

	// Nodes are sorted, so components come out ordered by smallest member.
	for _, start := range g.nodes {
		if visited[start] {
			continue
		}

		component, _ := g.Reachable(start)
		for _, id := range component {
			visited[id] = true
		}
		components = append(components, component)
	}

	return components
}

// IsConnected reports whether every node can reach every other node. The
// empty graph is not connected.
func (g *Graph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return false
	}
	reached, _ := g.Reachable(g.nodes[0])
	return len(reached) == len(g.nodes)
}
