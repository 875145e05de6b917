package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dd0wney/gossip-diffusion/pkg/config"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
	"github.com/dd0wney/gossip-diffusion/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	graphFile := flag.String("graph", "", "Graph file (YAML or JSON); default is the club network")
	logFile := flag.String("log", "", "Write JSON logs to this file")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.LoadFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *graphFile != "" {
		cfg.Graph.File = *graphFile
	}

	g := graph.ClubNetwork()
	if cfg.Graph.File != "" {
		loaded, err := graph.LoadFile(cfg.Graph.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to load graph: %v\n", err)
			os.Exit(1)
		}
		g = loaded
	}

	// The screen belongs to the TUI, so logs only go to a file.
	logger := logging.NewNopLogger()
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = logging.NewJSONLogger(f, logging.ParseLevel(cfg.LogLevel))
	}

	runner := simulation.NewRunner(g,
		simulation.WithLogger(logger),
		simulation.WithMetrics(metrics.NewRegistry()),
	)

	p := tea.NewProgram(initialModel(runner, cfg.Simulation), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
