package graph

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// TestNew_DeduplicatesEdges tests that reversed and repeated edges are kept once
func TestNew_DeduplicatesEdges(t *testing.T) {
	g, err := New([]uint64{1, 2, 3}, []Edge{
		{From: 1, To: 2},
		{From: 2, To: 1},
		{From: 1, To: 2},
		{From: 2, To: 3},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.EdgeCount())
	}

	neighbors, _ := g.Neighbors(2)
	if len(neighbors) != 2 || neighbors[0] != 1 || neighbors[1] != 3 {
		t.Errorf("Expected neighbors [1 3] for node 2, got %v", neighbors)
	}
}

// TestNew_RejectsSelfLoop tests that a self-loop fails construction
func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := New([]uint64{1}, []Edge{{From: 1, To: 1}})
	if !errors.Is(err, ErrSelfLoop) {
		t.Fatalf("Expected ErrSelfLoop, got %v", err)
	}

	var graphErr *GraphError
	if !errors.As(err, &graphErr) {
		t.Fatalf("Expected *GraphError, got %T", err)
	}
	if graphErr.Node != 1 {
		t.Errorf("Expected node 1 in error, got %d", graphErr.Node)
	}
}

// TestNew_AddsMissingEndpoints tests that edges introduce unknown endpoints
func TestNew_AddsMissingEndpoints(t *testing.T) {
	g, err := New([]uint64{1}, []Edge{{From: 1, To: 7}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !g.HasNode(7) {
		t.Error("Expected node 7 to be added from edge list")
	}
	if nodes := g.Nodes(); len(nodes) != 2 || nodes[0] != 1 || nodes[1] != 7 {
		t.Errorf("Expected sorted nodes [1 7], got %v", nodes)
	}
}

// TestNodes_ReturnsCopy tests that callers cannot mutate the graph through accessors
func TestNodes_ReturnsCopy(t *testing.T) {
	g := MustNew([]uint64{1, 2}, []Edge{{From: 1, To: 2}})

	nodes := g.Nodes()
	nodes[0] = 99
	neighbors, _ := g.Neighbors(1)
	neighbors[0] = 99

	if g.Nodes()[0] != 1 {
		t.Error("Mutating Nodes() result changed the graph")
	}
	if n, _ := g.Neighbors(1); n[0] != 2 {
		t.Error("Mutating Neighbors() result changed the graph")
	}
}

// TestHasEdge_Symmetric tests that edges are visible from both endpoints
func TestHasEdge_Symmetric(t *testing.T) {
	g := MustNew(nil, []Edge{{From: 3, To: 9}})

	if !g.HasEdge(3, 9) || !g.HasEdge(9, 3) {
		t.Error("Expected edge 3-9 in both orientations")
	}
	if g.HasEdge(3, 4) {
		t.Error("Unexpected edge 3-4")
	}
}

// TestNeighbors_UnknownNode tests the not-found error path
func TestNeighbors_UnknownNode(t *testing.T) {
	g := MustNew([]uint64{1}, nil)

	if _, err := g.Neighbors(42); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if _, err := g.Degree(42); !IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if !strings.Contains(NodeNotFoundError("degree", 42).Error(), "node 42") {
		t.Error("Expected node ID in error message")
	}
}

// TestCommonNeighbors tests the sorted intersection of two neighborhoods
func TestCommonNeighbors(t *testing.T) {
	g := ClubNetwork()

	common, err := g.CommonNeighbors(12, 5)
	if err != nil {
		t.Fatalf("CommonNeighbors failed: %v", err)
	}
	if len(common) != 17 {
		t.Errorf("Expected 17 common neighbors of 12 and 5, got %d: %v", len(common), common)
	}
	for i := 1; i < len(common); i++ {
		if common[i-1] >= common[i] {
			t.Fatalf("Common neighbors not strictly ascending: %v", common)
		}
	}

	none, _ := g.CommonNeighbors(23, 28)
	if len(none) != 0 {
		t.Errorf("Expected no common neighbors of 23 and 28, got %v", none)
	}
}

// TestClubNetwork tests the shape of the reference network
func TestClubNetwork(t *testing.T) {
	g := ClubNetwork()

	if g.NodeCount() != ClubNodeCount {
		t.Errorf("Expected %d nodes, got %d", ClubNodeCount, g.NodeCount())
	}
	if g.EdgeCount() != 119 {
		t.Errorf("Expected 119 edges, got %d", g.EdgeCount())
	}
	if !g.IsConnected() {
		t.Error("Expected the club network to be connected")
	}

	degrees := map[uint64]int{12: 26, 5: 22, 6: 15, 29: 14, 28: 5, 23: 4, 18: 1}
	for id, want := range degrees {
		got, err := g.Degree(id)
		if err != nil {
			t.Fatalf("Degree(%d) failed: %v", id, err)
		}
		if got != want {
			t.Errorf("Degree(%d) = %d, want %d", id, got, want)
		}
	}
}

// TestComponents tests component discovery on a split graph
func TestComponents(t *testing.T) {
	g := MustNew([]uint64{5}, []Edge{
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 10, To: 11},
	})

	components := g.Components()
	if len(components) != 3 {
		t.Fatalf("Expected 3 components, got %d: %v", len(components), components)
	}
	if len(components[0]) != 3 || components[0][0] != 1 {
		t.Errorf("Expected first component [1 2 3], got %v", components[0])
	}
	if len(components[1]) != 1 || components[1][0] != 5 {
		t.Errorf("Expected isolated component [5], got %v", components[1])
	}
	if g.IsConnected() {
		t.Error("Expected split graph to be disconnected")
	}
}

// TestReachable tests reachability from multiple sources
func TestReachable(t *testing.T) {
	g := MustNew(nil, []Edge{{From: 1, To: 2}, {From: 3, To: 4}, {From: 5, To: 6}})

	reached, err := g.Reachable(4, 1)
	if err != nil {
		t.Fatalf("Reachable failed: %v", err)
	}
	want := []uint64{1, 2, 3, 4}
	if len(reached) != len(want) {
		t.Fatalf("Expected %v, got %v", want, reached)
	}
	for i := range want {
		if reached[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, reached)
		}
	}

	if _, err := g.Reachable(99); !IsNotFound(err) {
		t.Errorf("Expected not found error for unknown source, got %v", err)
	}
}

// TestIsConnected_Empty tests the empty graph edge case
func TestIsConnected_Empty(t *testing.T) {
	g := MustNew(nil, nil)
	if g.IsConnected() {
		t.Error("Expected empty graph to be reported as disconnected")
	}
}

// TestScaleFree tests the generator's size and connectivity guarantees
func TestScaleFree(t *testing.T) {
	g, err := ScaleFree(rand.New(rand.NewSource(7)), 60, 2)
	if err != nil {
		t.Fatalf("ScaleFree failed: %v", err)
	}

	if g.NodeCount() != 60 {
		t.Errorf("Expected 60 nodes, got %d", g.NodeCount())
	}
	// Core K3 has 3 edges, then 57 nodes add 2 edges each.
	if g.EdgeCount() != 3+57*2 {
		t.Errorf("Expected %d edges, got %d", 3+57*2, g.EdgeCount())
	}
	if !g.IsConnected() {
		t.Error("Expected generated graph to be connected")
	}

	again, _ := ScaleFree(rand.New(rand.NewSource(7)), 60, 2)
	if len(again.Edges()) != len(g.Edges()) {
		t.Fatal("Expected identical graphs for identical seeds")
	}
	for i, e := range g.Edges() {
		if again.Edges()[i] != e {
			t.Fatalf("Edge %d differs between runs with the same seed", i)
		}
	}
}

// TestScaleFree_InvalidParameters tests argument validation
func TestScaleFree_InvalidParameters(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := ScaleFree(rng, 10, 0); err == nil {
		t.Error("Expected error for m = 0")
	}
	if _, err := ScaleFree(rng, 3, 3); err == nil {
		t.Error("Expected error for n <= m")
	}
}
