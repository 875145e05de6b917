package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/config"
	"github.com/dd0wney/gossip-diffusion/pkg/diffusion"
	"github.com/dd0wney/gossip-diffusion/pkg/simulation"
	"github.com/dd0wney/gossip-diffusion/pkg/visualization"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(visualization.ActiveColor)).
			MarginLeft(2).
			MarginTop(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(visualization.ActiveColor)).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(visualization.ActiveColor)).
			Padding(0, 2).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(visualization.ActiveColor)).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	setupView view = iota
	spreadView
	roundsView
	centralityView
	viewCount
)

var viewNames = []string{"Setup", "Spread", "Rounds", "Centrality"}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "prev round"),
	),
	Next: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next round"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Prev, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Quit},
	}
}

// modelItem is one entry of the model picker
type modelItem struct {
	model diffusion.Model
	desc  string
}

func (i modelItem) Title() string       { return string(i.model) }
func (i modelItem) Description() string { return i.desc }
func (i modelItem) FilterValue() string { return string(i.model) }

var modelItems = []list.Item{
	modelItem{diffusion.ModelICM, "independent cascade, degree centrality as probability"},
	modelItem{diffusion.ModelCascade, "independent cascade, fixed probability"},
	modelItem{diffusion.ModelCNIM, "common-neighbors chain from two adjacent seeds"},
	modelItem{diffusion.ModelPotential, "spreading vs activation potential"},
}

type model struct {
	runner          *simulation.Runner
	base            config.SimulationConfig
	currentView     view
	modelList       list.Model
	seedInput       textinput.Model
	roundTable      table.Model
	centralityTable table.Model
	help            help.Model
	keys            keyMap
	width           int
	height          int
	report          *simulation.Report
	step            int
	message         string
	messageErr      bool
}

func initialModel(runner *simulation.Runner, base config.SimulationConfig) model {
	l := list.New(modelItems, list.NewDefaultDelegate(), 60, 12)
	l.Title = "Model"
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	for i, item := range modelItems {
		if string(item.(modelItem).model) == strings.ToLower(base.Model) {
			l.Select(i)
		}
	}

	ti := textinput.New()
	ti.Placeholder = "12,18"
	ti.Prompt = "Seeds: "
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(joinIDs(base.Seeds))
	ti.Focus()

	rounds := table.New(
		table.WithColumns([]table.Column{
			{Title: "Round", Width: 6},
			{Title: "Activated", Width: 60},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	rounds.SetStyles(tableStyles())

	scores := table.New(
		table.WithColumns([]table.Column{
			{Title: "Node", Width: 6},
			{Title: "Degree", Width: 8},
			{Title: "Between", Width: 8},
			{Title: "Close", Width: 8},
			{Title: "Eigen", Width: 8},
			{Title: "Cluster", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	scores.SetStyles(tableStyles())

	m := model{
		runner:          runner,
		base:            base,
		currentView:     setupView,
		modelList:       l,
		seedInput:       ti,
		roundTable:      rounds,
		centralityTable: scores,
		help:            help.New(),
		keys:            keys,
	}
	m.loadCentrality()
	return m
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(visualization.InactiveColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(visualization.ActiveColor)).
		Bold(false)
	return s
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.modelList.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.setView((m.currentView + 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.setView((m.currentView + viewCount - 1) % viewCount)
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			if m.currentView == setupView {
				m.runSimulation()
				return m, nil
			}

		case key.Matches(msg, m.keys.Prev):
			if m.currentView == spreadView && m.step > 0 {
				m.step--
				return m, nil
			}

		case key.Matches(msg, m.keys.Next):
			if m.currentView == spreadView && m.report != nil && m.step < len(m.report.Result.Rounds) {
				m.step++
				return m, nil
			}
		}
	}

	// Update focused components
	switch m.currentView {
	case setupView:
		m.modelList, cmd = m.modelList.Update(msg)
		cmds = append(cmds, cmd)
		m.seedInput, cmd = m.seedInput.Update(msg)
		cmds = append(cmds, cmd)
	case roundsView:
		m.roundTable, cmd = m.roundTable.Update(msg)
		cmds = append(cmds, cmd)
	case centralityView:
		m.centralityTable, cmd = m.centralityTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) setView(v view) {
	m.currentView = v
	if v == setupView {
		m.seedInput.Focus()
	} else {
		m.seedInput.Blur()
	}
}

func (m *model) runSimulation() {
	seeds, err := parseIDs(m.seedInput.Value())
	if err != nil {
		m.setError(err)
		return
	}
	item, ok := m.modelList.SelectedItem().(modelItem)
	if !ok {
		m.setError(fmt.Errorf("no model selected"))
		return
	}

	sc := m.base
	sc.Model = string(item.model)
	sc.Seeds = seeds
	req, err := simulation.RequestFromConfig(sc)
	if err != nil {
		m.setError(err)
		return
	}

	report, err := m.runner.Run(req)
	if err != nil {
		m.setError(err)
		return
	}

	m.report = report
	m.step = len(report.Result.Rounds)
	m.updateRoundTable()
	m.message = fmt.Sprintf("%s from %v: %d active, halt %s in %s",
		req.Model, req.Seeds, report.Result.Size(), report.Result.Halt, report.Duration)
	m.messageErr = false
	m.setView(spreadView)
}

func (m *model) setError(err error) {
	m.message = err.Error()
	m.messageErr = true
}

func (m *model) updateRoundTable() {
	rows := make([]table.Row, 0, len(m.report.Result.Rounds)+1)
	rows = append(rows, table.Row{"0", joinIDs(m.report.Result.Seeds)})
	for _, round := range m.report.Result.Rounds {
		rows = append(rows, table.Row{strconv.Itoa(round.Index), joinIDs(round.Activated)})
	}
	m.roundTable.SetRows(rows)
}

// loadCentrality fills the centrality table ordered by degree. Metrics
// that cannot be computed show as "-".
func (m *model) loadCentrality() {
	provider := m.runner.Provider()
	degree, err := provider.Table(centrality.Degree)
	if err != nil {
		m.setError(err)
		return
	}

	others := []centrality.Metric{centrality.Betweenness, centrality.Closeness, centrality.Eigenvector, centrality.Clustering}
	tables := make([]centrality.Table, len(others))
	for i, metric := range others {
		tables[i], _ = provider.Table(metric)
	}

	ranked := degree.Top(len(degree))
	rows := make([]table.Row, 0, len(ranked))
	for _, node := range ranked {
		row := table.Row{strconv.FormatUint(node.NodeID, 10), fmt.Sprintf("%.4f", node.Score)}
		for _, t := range tables {
			if score, ok := t[node.NodeID]; ok {
				row = append(row, fmt.Sprintf("%.4f", score))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	m.centralityTable.SetRows(rows)
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Gossip Diffusion"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case setupView:
		s.WriteString(contentStyle.Render(m.modelList.View() + "\n\n" + m.seedInput.View()))
	case spreadView:
		s.WriteString(contentStyle.Render(m.renderSpread()))
	case roundsView:
		s.WriteString(contentStyle.Render(m.roundTable.View()))
	case centralityView:
		s.WriteString(contentStyle.Render(m.centralityTable.View()))
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(contentStyle.Render(errorStyle.Render("✗ " + m.message)))
		} else {
			s.WriteString(contentStyle.Render(successStyle.Render("✓ " + m.message)))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	rendered := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.currentView {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderSpread() string {
	if m.report == nil {
		return "No simulation yet. Pick a model and seeds in Setup, then press enter."
	}

	result := m.report.Result
	index := 0
	var highlight []uint64
	if m.step > 0 {
		index = result.Rounds[m.step-1].Index
		highlight = result.Rounds[m.step-1].Activated
	}
	active := result.ActiveAfter(index)

	summary := fmt.Sprintf("Round %d/%d   halt: %s", m.step, len(result.Rounds), result.Halt)
	if pair := result.FailedPair; pair != nil && m.step == len(result.Rounds) {
		summary += fmt.Sprintf("\nfailed pair %d -> %d: %.4f <= %.4f",
			pair.Spreader, pair.Candidate, pair.SpreadingPotential, pair.ActivationPotential)
	}

	return visualization.RenderTerminal(m.runner.Graph(), active, highlight) + "\n" +
		summaryBoxStyle.Render(summary)
}

func parseIDs(s string) ([]uint64, error) {
	var ids []uint64
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("enter one or two seed node IDs")
	}
	return ids, nil
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
