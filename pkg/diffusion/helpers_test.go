package diffusion

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// sequenceSource replays fixed draws and counts how many were taken.
type sequenceSource struct {
	draws []float64
	taken int
}

func (s *sequenceSource) Float64() float64 {
	v := s.draws[s.taken%len(s.draws)]
	s.taken++
	return v
}

// constantSource always returns the same draw.
type constantSource float64

func (c constantSource) Float64() float64 { return float64(c) }

func clubTables(t *testing.T) *centrality.Tables {
	t.Helper()
	tables, err := centrality.NewProvider(graph.ClubNetwork()).Tables()
	require.NoError(t, err)
	return tables
}

func uniformTables(g *graph.Graph, value float64, clustering map[uint64]float64) *centrality.Tables {
	tables := &centrality.Tables{}
	for _, m := range []centrality.Metric{centrality.Degree, centrality.Betweenness, centrality.Closeness, centrality.Eigenvector} {
		table := make(centrality.Table, g.NodeCount())
		for _, id := range g.Nodes() {
			table[id] = value
		}
		tables.Set(m, table)
	}
	tables.Clustering = make(centrality.Table, g.NodeCount())
	for _, id := range g.Nodes() {
		tables.Clustering[id] = clustering[id]
	}
	return tables
}
