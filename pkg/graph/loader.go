package graph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk graph description. JSON documents are valid YAML,
// so both encodings go through the same decoder.
type fileFormat struct {
	Nodes []uint64   `yaml:"nodes"`
	Edges [][]uint64 `yaml:"edges"`
}

// Load reads a graph description from r:
//
//	nodes: [1, 2, 3]
//	edges:
//	  - [1, 2]
//	  - [2, 3]
func Load(r io.Reader) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewError("load").Cause(err).Err()
	}

	var doc fileFormat
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, NewError("load").Context("empty document").Cause(ErrInvalidFile).Err()
		}
		return nil, NewError("load").Context(err.Error()).Cause(ErrInvalidFile).Err()
	}

	edges := make([]Edge, 0, len(doc.Edges))
	for i, pair := range doc.Edges {
		if len(pair) != 2 {
			return nil, NewError("load").
				Context(fmt.Sprintf("edge %d has %d endpoints, want 2", i, len(pair))).
				Cause(ErrInvalidFile).
				Err()
		}
		edges = append(edges, Edge{From: pair[0], To: pair[1]})
	}

	g, err := New(doc.Nodes, edges)
	if err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return nil, NewError("load").Cause(ErrEmptyGraph).Err()
	}
	return g, nil
}

// LoadFile reads a graph description from a YAML or JSON file.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError("load").Context(path).Cause(err).Err()
	}
	defer f.Close()

	return Load(f)
}

// Marshal encodes g in the format Load reads.
func Marshal(g *Graph) ([]byte, error) {
	doc := fileFormat{
		Nodes: g.Nodes(),
		Edges: make([][]uint64, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []uint64{e.From, e.To})
	}
	return yaml.Marshal(&doc)
}
