package visualization

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

func clubScene(t *testing.T, active []uint64) *Scene {
	t.Helper()
	g := graph.ClubNetwork()
	positions, err := NewCircularLayout(&LayoutConfig{Width: 1200, Height: 800}).ComputeLayout(g)
	require.NoError(t, err)

	scene, err := NewScene(g, positions, active)
	require.NoError(t, err)
	return scene
}

func TestScene_SVG(t *testing.T) {
	scene := clubScene(t, []uint64{12, 5})
	scene.Title = "cnim <12, 5>"

	svg := string(scene.SVG())

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Equal(t, 119, strings.Count(svg, "<line "), "one line per edge")
	assert.Equal(t, graph.ClubNodeCount, strings.Count(svg, "<circle "), "one circle per node")
	assert.Equal(t, 2, strings.Count(svg, `fill="`+ActiveColor+`"`))
	assert.Equal(t, graph.ClubNodeCount-2, strings.Count(svg, `fill="`+InactiveColor+`"`))
	assert.Contains(t, svg, `<circle id="n12"`)
	assert.Contains(t, svg, "<title>cnim &lt;12, 5&gt;</title>")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestScene_CanvasCoversPositions(t *testing.T) {
	scene := clubScene(t, nil)

	// Node 1 sits at three o'clock, 350 right of center
	assert.InDelta(t, 950+2*NodeRadius, scene.Width, 1e-9)
	assert.LessOrEqual(t, scene.Height, 750+2*NodeRadius)
	assert.Equal(t, 0, scene.ActiveCount())
}

func TestScene_ExportJSON(t *testing.T) {
	scene := clubScene(t, []uint64{18})

	data, err := scene.ExportJSON()
	require.NoError(t, err)

	var decoded struct {
		Nodes []struct {
			ID     uint64 `json:"id"`
			Degree int    `json:"degree"`
			Active bool   `json:"active"`
		} `json:"nodes"`
		Edges []struct {
			From uint64 `json:"from"`
			To   uint64 `json:"to"`
		} `json:"edges"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Len(t, decoded.Nodes, graph.ClubNodeCount)
	assert.Len(t, decoded.Edges, 119)
	for _, n := range decoded.Nodes {
		assert.Equal(t, n.ID == 18, n.Active, "node %d", n.ID)
		if n.ID == 12 {
			assert.Equal(t, 26, n.Degree)
		}
	}
}

func TestNewScene_Errors(t *testing.T) {
	g := graph.MustNew(nil, []graph.Edge{{From: 1, To: 2}})

	_, err := NewScene(g, map[uint64]Position{1: {}}, nil)
	assert.ErrorContains(t, err, "node 2 has no position")

	_, err = NewScene(g, map[uint64]Position{1: {}, 2: {}}, []uint64{3})
	assert.True(t, graph.IsNotFound(err))
}

func TestRenderTerminal(t *testing.T) {
	g := graph.ClubNetwork()

	out := RenderTerminal(g, []uint64{12, 5, 6, 999}, []uint64{6})

	assert.Contains(t, out, "active 3/34")
	assert.Contains(t, out, "*6")
	assert.Contains(t, out, "34")
	assert.NotContains(t, out, "999")

	lines := strings.Split(out, "\n")
	// 34 nodes over 10 columns, a blank margin line, then the legend
	assert.Len(t, lines, 4+2)
}
