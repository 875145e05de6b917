package visualization

import (
	"encoding/json"
	"fmt"
	"html"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/pools"
)

// Plot colors
const (
	ActiveColor   = "#20bf55"
	InactiveColor = "#ced4da"
	EdgeColor     = "#adb5bd"
)

// NodeRadius is the drawn radius of every node
const NodeRadius = 14.0

// Scene is a positioned graph with an active set, ready to draw.
type Scene struct {
	Title  string
	Width  float64
	Height float64

	nodes     []uint64
	edges     []graph.Edge
	degrees   map[uint64]int
	positions map[uint64]Position
	active    map[uint64]bool
}

// NewScene combines g, a layout of every node of g and the active nodes.
// The canvas defaults to the bounding box of positions plus a margin.
func NewScene(g *graph.Graph, positions map[uint64]Position, active []uint64) (*Scene, error) {
	s := &Scene{
		nodes:     g.Nodes(),
		edges:     g.Edges(),
		degrees:   make(map[uint64]int, g.NodeCount()),
		positions: positions,
		active:    make(map[uint64]bool, len(active)),
	}

	for _, id := range s.nodes {
		pos, ok := positions[id]
		if !ok {
			return nil, fmt.Errorf("scene: node %d has no position", id)
		}
		s.Width = max(s.Width, pos.X+2*NodeRadius)
		s.Height = max(s.Height, pos.Y+2*NodeRadius)
		s.degrees[id], _ = g.Degree(id)
	}
	for _, id := range active {
		if !g.HasNode(id) {
			return nil, graph.NodeNotFoundError("scene", id)
		}
		s.active[id] = true
	}

	return s, nil
}

// ActiveCount returns the number of active nodes
func (s *Scene) ActiveCount() int {
	return len(s.active)
}

// SVG draws the scene: edges first, then active nodes in ActiveColor and
// the rest in InactiveColor, each labelled with its ID.
func (s *Scene) SVG() []byte {
	b := pools.NewBufferBuilder(256 + 64*len(s.edges) + 128*len(s.nodes))
	defer b.Release()

	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	if s.Title != "" {
		fmt.Fprintf(b, "<title>%s</title>\n", html.EscapeString(s.Title))
	}
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	fmt.Fprintf(b, `<g stroke="%s" stroke-width="1">`+"\n", EdgeColor)
	for _, e := range s.edges {
		from, to := s.positions[e.From], s.positions[e.To]
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", from.X, from.Y, to.X, to.Y)
	}
	b.WriteString("</g>\n")

	b.WriteString(`<g font-family="sans-serif" font-size="11" text-anchor="middle">` + "\n")
	for _, id := range s.nodes {
		pos := s.positions[id]
		fill := InactiveColor
		if s.active[id] {
			fill = ActiveColor
		}
		fmt.Fprintf(b, `<circle id="n%d" cx="%.2f" cy="%.2f" r="%.0f" fill="%s"/>`+"\n", id, pos.X, pos.Y, NodeRadius, fill)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" dy="4">%d</text>`+"\n", pos.X, pos.Y, id)
	}
	b.WriteString("</g>\n</svg>\n")

	return b.Clone()
}

// ExportJSON exports the scene for external renderers
func (s *Scene) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		ID     uint64  `json:"id"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Degree int     `json:"degree"`
		Active bool    `json:"active"`
	}

	type EdgeViz struct {
		FromNodeID uint64 `json:"from"`
		ToNodeID   uint64 `json:"to"`
	}

	type VizData struct {
		Title  string    `json:"title,omitempty"`
		Width  float64   `json:"width"`
		Height float64   `json:"height"`
		Nodes  []NodeViz `json:"nodes"`
		Edges  []EdgeViz `json:"edges"`
	}

	data := VizData{
		Title:  s.Title,
		Width:  s.Width,
		Height: s.Height,
		Nodes:  make([]NodeViz, 0, len(s.nodes)),
		Edges:  make([]EdgeViz, 0, len(s.edges)),
	}

	for _, id := range s.nodes {
		pos := s.positions[id]
		data.Nodes = append(data.Nodes, NodeViz{
			ID:     id,
			X:      pos.X,
			Y:      pos.Y,
			Degree: s.degrees[id],
			Active: s.active[id],
		})
	}

	for _, e := range s.edges {
		data.Edges = append(data.Edges, EdgeViz{FromNodeID: e.From, ToNodeID: e.To})
	}

	return json.Marshal(data)
}
