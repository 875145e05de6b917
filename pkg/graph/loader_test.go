package graph

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	doc := `
nodes: [1, 2, 3, 4]
edges:
  - [1, 2]
  - [2, 3]
`
	g, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 2))
	assert.True(t, g.HasNode(4), "isolated node from node list must be kept")
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"nodes": [7], "edges": [[7, 8], [8, 9]]}`

	g, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 8, 9}, g.Nodes())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty document", "", ErrInvalidFile},
		{"edge with three endpoints", "edges: [[1, 2, 3]]", ErrInvalidFile},
		{"unknown field", "vertices: [1]", ErrInvalidFile},
		{"no nodes", "nodes: []", ErrEmptyGraph},
		{"self loop", "edges: [[4, 4]]", ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.yaml")

	data, err := Marshal(ClubNetwork())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ClubNetwork().Nodes(), loaded.Nodes())
	assert.Equal(t, ClubNetwork().Edges(), loaded.Edges())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
