// Package graph provides the immutable, undirected, unweighted social graph
// the diffusion models run on.
package graph

import (
	"sort"
)

// Edge is an undirected connection between two distinct nodes.
type Edge struct {
	From uint64 `json:"from" yaml:"from"`
	To   uint64 `json:"to" yaml:"to"`
}

// Graph is a finite undirected graph. It is immutable once built and safe for
// concurrent readers.
type Graph struct {
	nodes     []uint64
	adjacency map[uint64][]uint64
	edgeSet   map[[2]uint64]struct{}
}

// New builds a graph from a node list and an edge list. Edge endpoints that are
// missing from nodes are added. Duplicate edges, in either orientation, are
// kept once. Self-loops are rejected.
func New(nodes []uint64, edges []Edge) (*Graph, error) {
	g := &Graph{
		adjacency: make(map[uint64][]uint64, len(nodes)),
		edgeSet:   make(map[[2]uint64]struct{}, len(edges)),
	}

	for _, id := range nodes {
		g.addNode(id)
	}

	for _, e := range edges {
		if e.From == e.To {
			return nil, NewError("new").Node(e.From).Cause(ErrSelfLoop).Err()
		}
		key := edgeKey(e.From, e.To)
		if _, exists := g.edgeSet[key]; exists {
			continue
		}
		g.addNode(e.From)
		g.addNode(e.To)
		g.edgeSet[key] = struct{}{}
		g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
		g.adjacency[e.To] = append(g.adjacency[e.To], e.From)
	}

	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i] < g.nodes[j] })
	for id := range g.adjacency {
		neighbors := g.adjacency[id]
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	}

	return g, nil
}

// MustNew is New for literals known to be valid. It panics on error.
func MustNew(nodes []uint64, edges []Edge) *Graph {
	g, err := New(nodes, edges)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Graph) addNode(id uint64) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = nil
	g.nodes = append(g.nodes, id)
}

func edgeKey(a, b uint64) [2]uint64 {
	if a > b {
		a, b = b, a
	}
	return [2]uint64{a, b}
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []uint64 {
	out := make([]uint64, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return len(g.edgeSet)
}

// Edges returns every edge once, smaller endpoint first, ordered by endpoints.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edgeSet))
	for key := range g.edgeSet {
		edges = append(edges, Edge{From: key[0], To: key[1]})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id uint64) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b uint64) bool {
	_, ok := g.edgeSet[edgeKey(a, b)]
	return ok
}

// Neighbors returns the neighbors of id in ascending order.
func (g *Graph) Neighbors(id uint64) ([]uint64, error) {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return nil, NodeNotFoundError("neighbors", id)
	}
	out := make([]uint64, len(neighbors))
	copy(out, neighbors)
	return out, nil
}

// EachNeighbor calls fn for every neighbor of id in ascending order until fn
// returns false. Unknown nodes have no neighbors.
func (g *Graph) EachNeighbor(id uint64, fn func(neighbor uint64) bool) {
	for _, neighbor := range g.adjacency[id] {
		if !fn(neighbor) {
			return
		}
	}
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id uint64) (int, error) {
	neighbors, ok := g.adjacency[id]
	if !ok {
		return 0, NodeNotFoundError("degree", id)
	}
	return len(neighbors), nil
}

// CommonNeighbors returns the nodes adjacent to both a and b, ascending.
func (g *Graph) CommonNeighbors(a, b uint64) ([]uint64, error) {
	left, ok := g.adjacency[a]
	if !ok {
		return nil, NodeNotFoundError("common_neighbors", a)
	}
	right, ok := g.adjacency[b]
	if !ok {
		return nil, NodeNotFoundError("common_neighbors", b)
	}

	// Both lists are sorted, so a merge walk finds the intersection.
	common := make([]uint64, 0)
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] == right[j]:
			common = append(common, left[i])
			i++
			j++
		case left[i] < right[j]:
			i++
		default:
			j++
		}
	}
	return common, nil
}
