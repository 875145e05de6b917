package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dd0wney/gossip-diffusion/pkg/artifact"
	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/config"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
	"github.com/dd0wney/gossip-diffusion/pkg/simulation"
	"github.com/dd0wney/gossip-diffusion/pkg/visualization"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	configFile  string
	metricsFile string
	top         int
	noRender    bool
	jsonReport  bool
}

// run parses args, runs one simulation and writes its artifacts. Flags
// that are set override the config file.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	startedAt := time.Now()

	cfg, opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	g, err := loadGraph(cfg.Graph)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "📂 Graph loaded: %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())

	registry := metrics.NewRegistry()
	runner := simulation.NewRunner(g,
		simulation.WithLogger(logger),
		simulation.WithMetrics(registry),
	)

	if opts.top > 0 {
		printTopNodes(stdout, runner.Provider(), opts.top)
	}

	req, err := simulation.RequestFromConfig(cfg.Simulation)
	if err != nil {
		return err
	}
	report, err := runner.Run(req)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	printReport(stdout, report)

	if !opts.noRender {
		sink, err := artifact.Open(ctx, cfg.Output, registry, logger)
		if err != nil {
			return err
		}
		if err := writeArtifacts(ctx, sink, g, cfg.Render, report); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "🖼  Plots written: %s, %s\n", simulation.NetworkArtifactKey, report.ArtifactKey())
	}

	if opts.jsonReport {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
	}

	if opts.metricsFile != "" {
		registry.UpdateSystemMetrics(startedAt)
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry.GetPrometheusRegistry()); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

func parseArgs(args []string, stderr io.Writer) (*config.Config, options, error) {
	fs := flag.NewFlagSet("diffusion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configFile, "config", "", "YAML config file")
	fs.StringVar(&opts.metricsFile, "metrics", "", "Write Prometheus metrics to this file")
	fs.IntVar(&opts.top, "top", 0, "Print the N most central nodes per metric")
	fs.BoolVar(&opts.noRender, "no-render", false, "Skip plots")
	fs.BoolVar(&opts.jsonReport, "json", false, "Print the run report as JSON")

	graphFile := fs.String("graph", "", "Graph file (YAML or JSON); default is the club network")
	model := fs.String("model", "", "Model: icm, cascade, cnim or potential")
	seeds := fs.String("seeds", "", "Comma-separated seed node IDs, e.g. 12,18")
	epsilon := fs.Float64("epsilon", 0, "Potential decay step")
	probability := fs.Float64("probability", 0, "Cascade success probability")
	randomSeed := fs.Int64("random-seed", 0, "Seed for random draws and layouts")
	policy := fs.String("policy", "", "Potential round policy: halt-on-failure or skip-failures")
	anchor := fs.String("anchor", "", "CNIM anchor: previous or origin")
	strict := fs.Bool("strict", false, "Fail CNIM when the seeds are not adjacent")
	maxRounds := fs.Int("max-rounds", 0, "Round limit, 0 for the node count")
	layout := fs.String("layout", "", "Plot layout: force, circular or hierarchical")
	outDir := fs.String("out", "", "Output directory")
	compress := fs.Bool("compress", false, "Snappy-compress artifacts")
	logLevel := fs.String("log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, opts, err
		}
		cfg = loaded
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph.File = *graphFile
		case "model":
			cfg.Simulation.Model = strings.ToLower(*model)
		case "seeds":
			ids, err := parseSeeds(*seeds)
			if err != nil {
				parseErr = err
			}
			cfg.Simulation.Seeds = ids
		case "epsilon":
			cfg.Simulation.Epsilon = *epsilon
		case "probability":
			cfg.Simulation.Probability = *probability
		case "random-seed":
			cfg.Simulation.RandomSeed = *randomSeed
		case "policy":
			cfg.Simulation.Policy = *policy
		case "anchor":
			cfg.Simulation.Anchor = *anchor
		case "strict":
			cfg.Simulation.StrictAdjacency = *strict
		case "max-rounds":
			cfg.Simulation.MaxRounds = *maxRounds
		case "layout":
			cfg.Render.Layout = *layout
		case "out":
			cfg.Output.Dir = *outDir
		case "compress":
			cfg.Output.Compress = *compress
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if parseErr != nil {
		return nil, opts, parseErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func parseSeeds(s string) ([]uint64, error) {
	var ids []uint64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func loadGraph(cfg config.GraphConfig) (*graph.Graph, error) {
	if cfg.File == "" {
		return graph.ClubNetwork(), nil
	}
	return graph.LoadFile(cfg.File)
}

func printTopNodes(w io.Writer, provider *centrality.Provider, n int) {
	fmt.Fprintf(w, "\n📈 Top %d nodes per metric:\n", n)
	for _, m := range centrality.AllMetrics() {
		table, err := provider.Table(m)
		if err != nil {
			fmt.Fprintf(w, "  %-12s unavailable: %v\n", m, err)
			continue
		}
		fmt.Fprintf(w, "  %-12s", m)
		for _, ranked := range table.Top(n) {
			fmt.Fprintf(w, " %d(%.4f)", ranked.NodeID, ranked.Score)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func printReport(w io.Writer, report *simulation.Report) {
	result := report.Result
	fmt.Fprintf(w, "🚀 %s from %v (run %s)\n", report.Request.Model, report.Request.Seeds, report.RunID)
	for _, round := range result.Rounds {
		fmt.Fprintf(w, "  round %d: %v\n", round.Index, round.Activated)
	}
	fmt.Fprintf(w, "✅ %d active nodes: %v\n", result.Size(), result.Active)
	fmt.Fprintf(w, "   halt: %s after %d rounds in %v\n", result.Halt, len(result.Rounds), report.Duration)
	if pair := result.FailedPair; pair != nil {
		fmt.Fprintf(w, "   failed pair: %d -> %d (spreading %.4f <= activation %.4f)\n",
			pair.Spreader, pair.Candidate, pair.SpreadingPotential, pair.ActivationPotential)
	}
}

// writeArtifacts renders the bare network and the run's spread with the
// same layout, plus a JSON report next to the spread plot.
func writeArtifacts(ctx context.Context, sink artifact.Sink, g *graph.Graph, render config.RenderConfig, report *simulation.Report) error {
	layout, err := visualization.NewLayout(render.Layout, &visualization.LayoutConfig{
		Width:      float64(render.Width),
		Height:     float64(render.Height),
		Iterations: render.Iterations,
		Seed:       report.Request.RandomSeed,
	}, report.Request.Seeds...)
	if err != nil {
		return err
	}
	positions, err := layout.ComputeLayout(g)
	if err != nil {
		return err
	}

	network, err := visualization.NewScene(g, positions, nil)
	if err != nil {
		return err
	}
	spread, err := visualization.NewScene(g, positions, report.Result.Active)
	if err != nil {
		return err
	}
	for _, scene := range []*visualization.Scene{network, spread} {
		scene.Width = float64(render.Width)
		scene.Height = float64(render.Height)
	}
	spread.Title = fmt.Sprintf("%s %v", report.Request.Model, report.Request.Seeds)

	if err := sink.Put(ctx, simulation.NetworkArtifactKey, network.SVG(), artifact.ContentTypeSVG); err != nil {
		return err
	}
	if err := sink.Put(ctx, report.ArtifactKey(), spread.SVG(), artifact.ContentTypeSVG); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return sink.Put(ctx, strings.TrimSuffix(report.ArtifactKey(), ".svg")+".json", data, artifact.ContentTypeJSON)
}
