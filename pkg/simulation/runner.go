// Package simulation runs diffusion models against a graph with shared,
// memoized centrality tables, logging and metrics.
package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/diffusion"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
)

// Runner executes simulations on one graph. It is safe for concurrent use.
type Runner struct {
	graph       *graph.Graph
	provider    *centrality.Provider
	logger      logging.Logger
	metrics     *metrics.Registry
	eigenvector centrality.EigenvectorOptions
	now         func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the run logger
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics records runs and centrality computations in registry
func WithMetrics(registry *metrics.Registry) Option {
	return func(r *Runner) {
		r.metrics = registry
	}
}

// WithEigenvectorOptions overrides the eigenvector power iteration settings
func WithEigenvectorOptions(opts centrality.EigenvectorOptions) Option {
	return func(r *Runner) {
		r.eigenvector = opts
	}
}

// WithClock replaces time.Now for start times and durations
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a runner for g
func NewRunner(g *graph.Graph, opts ...Option) *Runner {
	r := &Runner{
		graph:       g,
		logger:      logging.NewNopLogger(),
		metrics:     metrics.DefaultRegistry(),
		eigenvector: centrality.DefaultEigenvectorOptions(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNopLogger()
	}
	if r.metrics == nil {
		r.metrics = metrics.NewRegistry()
	}

	r.logger = r.logger.With(logging.Component("simulation"))
	r.provider = centrality.NewProvider(g,
		centrality.WithLogger(r.logger),
		centrality.WithMetrics(r.metrics),
		centrality.WithEigenvectorOptions(r.eigenvector),
	)
	r.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())

	return r
}

// Graph returns the graph simulations run on
func (r *Runner) Graph() *graph.Graph {
	return r.graph
}

// Provider returns the shared centrality provider
func (r *Runner) Provider() *centrality.Provider {
	return r.provider
}

// Run validates req, runs the model and reports the result.
func (r *Runner) Run(req Request) (*Report, error) {
	runID := uuid.NewString()
	logger := r.logger.With(logging.RunID(runID), logging.Model(string(req.Model)))

	done := r.metrics.TrackRunning()
	defer done()

	logger.Info("simulation started", logging.Seeds(req.Seeds))

	startedAt := r.now()
	result, err := r.simulate(req)
	duration := r.now().Sub(startedAt)

	if err != nil {
		logger.Error("simulation failed", logging.Error(err), logging.Latency(duration))
		r.metrics.RecordSimulation(string(req.Model), "error", duration, 0, 0)
		return nil, err
	}

	logger.Info("simulation finished",
		logging.Count(result.Size()),
		logging.Int("rounds", len(result.Rounds)),
		logging.String("halt", string(result.Halt)),
		logging.Latency(duration),
	)
	if result.FailedPair != nil {
		logger.Debug("potential comparison failed",
			logging.NodeID(result.FailedPair.Candidate),
			logging.Uint64("spreader", result.FailedPair.Spreader),
			logging.Float64("spreading_potential", result.FailedPair.SpreadingPotential),
			logging.Float64("activation_potential", result.FailedPair.ActivationPotential),
		)
	}
	r.metrics.RecordSimulation(string(req.Model), string(result.Halt), duration, len(result.Rounds), result.Size())

	return &Report{
		RunID:     runID,
		Request:   req,
		Result:    result,
		StartedAt: startedAt,
		Duration:  duration,
	}, nil
}

func (r *Runner) simulate(req Request) (*diffusion.Result, error) {
	seeds, err := diffusion.NewSeedSet(r.graph, req.Seeds...)
	if err != nil {
		return nil, err
	}

	switch req.Model {
	case diffusion.ModelICM:
		degree, err := r.provider.Table(centrality.Degree)
		if err != nil {
			return nil, err
		}
		rng := rand.New(rand.NewSource(req.RandomSeed))
		return diffusion.SimulateICM(r.graph, degree, seeds, rng, diffusion.ICMOptions{MaxRounds: req.MaxRounds})

	case diffusion.ModelCascade:
		rng := rand.New(rand.NewSource(req.RandomSeed))
		return diffusion.SimulateCascade(r.graph, seeds, req.Probability, rng, diffusion.ICMOptions{MaxRounds: req.MaxRounds})

	case diffusion.ModelCNIM:
		degree, err := r.provider.Table(centrality.Degree)
		if err != nil {
			return nil, err
		}
		return diffusion.SimulateCNIM(r.graph, degree, seeds, diffusion.CNIMOptions{
			Anchor:          req.Anchor,
			StrictAdjacency: req.StrictAdjacency,
			MaxRounds:       req.MaxRounds,
		})

	case diffusion.ModelPotential:
		tables, err := r.provider.Tables()
		if err != nil {
			return nil, err
		}
		epsilon := req.Epsilon
		if epsilon == 0 {
			epsilon = diffusion.DefaultEpsilon
		}
		return diffusion.SimulatePotential(r.graph, tables, seeds, diffusion.PotentialOptions{
			Epsilon:   epsilon,
			Policy:    req.Policy,
			MaxRounds: req.MaxRounds,
		})

	default:
		return nil, fmt.Errorf("%w: %q", diffusion.ErrUnknownModel, req.Model)
	}
}
