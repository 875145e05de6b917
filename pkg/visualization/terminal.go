package visualization

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// TerminalColumns is the number of node chips per row
const TerminalColumns = 10

var (
	activeChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(ActiveColor)).
			Padding(0, 1).
			Width(6).
			Align(lipgloss.Right)

	inactiveChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#212529")).
				Background(lipgloss.Color(InactiveColor)).
				Padding(0, 1).
				Width(6).
				Align(lipgloss.Right)

	highlightChipStyle = activeChipStyle.
				Bold(true).
				Underline(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868E96")).
			MarginTop(1)
)

// RenderTerminal draws every node of g as a colored chip, active nodes in
// green and the rest in gray. Highlighted nodes, typically the ones a round
// just activated, are drawn bold and marked with '*'. IDs not in g are
// ignored.
func RenderTerminal(g *graph.Graph, active, highlight []uint64) string {
	activeSet := make(map[uint64]bool, len(active))
	for _, id := range active {
		if g.HasNode(id) {
			activeSet[id] = true
		}
	}
	highlightSet := make(map[uint64]bool, len(highlight))
	for _, id := range highlight {
		highlightSet[id] = true
	}

	nodes := g.Nodes()
	rows := make([]string, 0, len(nodes)/TerminalColumns+1)
	chips := make([]string, 0, TerminalColumns)

	for i, id := range nodes {
		label := fmt.Sprintf("%d", id)
		style := inactiveChipStyle
		switch {
		case highlightSet[id]:
			style = highlightChipStyle
			label = "*" + label
		case activeSet[id]:
			style = activeChipStyle
		}
		chips = append(chips, style.Render(label))

		if len(chips) == TerminalColumns || i == len(nodes)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
			chips = chips[:0]
		}
	}

	legend := legendStyle.Render(fmt.Sprintf("active %d/%d", len(activeSet), len(nodes)))

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")
	b.WriteString(legend)
	return b.String()
}
