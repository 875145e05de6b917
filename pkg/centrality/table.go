package centrality

import (
	"container/heap"
	"fmt"
	"sort"
)

// Table maps node IDs to one centrality score. Tables handed out by a
// Provider are shared and must be treated as read-only.
type Table map[uint64]float64

// Require checks that every node in nodes has an entry.
func (t Table) Require(nodes []uint64) error {
	for _, id := range nodes {
		if _, ok := t[id]; !ok {
			return fmt.Errorf("%w: node %d", ErrMissingEntry, id)
		}
	}
	return nil
}

// Tables bundles the five centrality tables. A nil field means the metric
// was not computed.
type Tables struct {
	Degree      Table
	Betweenness Table
	Closeness   Table
	Eigenvector Table
	Clustering  Table
}

// Get returns the table for m, or nil if it is absent.
func (t *Tables) Get(m Metric) Table {
	if t == nil {
		return nil
	}
	switch m {
	case Degree:
		return t.Degree
	case Betweenness:
		return t.Betweenness
	case Closeness:
		return t.Closeness
	case Eigenvector:
		return t.Eigenvector
	case Clustering:
		return t.Clustering
	default:
		return nil
	}
}

// Set stores table as the table for m.
func (t *Tables) Set(m Metric, table Table) {
	switch m {
	case Degree:
		t.Degree = table
	case Betweenness:
		t.Betweenness = table
	case Closeness:
		t.Closeness = table
	case Eigenvector:
		t.Eigenvector = table
	case Clustering:
		t.Clustering = table
	}
}

// Require checks that each listed metric is present and has an entry for
// every node in nodes.
func (t *Tables) Require(nodes []uint64, metrics ...Metric) error {
	for _, m := range metrics {
		table := t.Get(m)
		if table == nil {
			return fmt.Errorf("%w: %s table not computed", ErrMetricsUnavailable, m)
		}
		if err := table.Require(nodes); err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
	}
	return nil
}

// RankedNode represents a node with its score
type RankedNode struct {
	NodeID uint64  `json:"node_id"`
	Score  float64 `json:"score"`
}

// rankedNodeHeap is a min-heap; among equal scores the higher ID sits on top
// so it is evicted first.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].NodeID > h[j].NodeID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Top returns the n highest-scoring nodes, descending by score and ascending
// by ID among ties.
func (t Table) Top(n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for nodeID, score := range t {
		rn := RankedNode{NodeID: nodeID, Score: score}
		if h.Len() < n {
			heap.Push(&h, rn)
		} else if rankedBefore(rn, h[0]) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return rankedBefore(result[i], result[j])
	})
	return result
}

func rankedBefore(a, b RankedNode) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.NodeID < b.NodeID
}
