package centrality

import (
	"sync"
	"time"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
)

// Provider computes centrality tables for one graph on demand and memoizes
// them, failures included. It is safe for concurrent use.
type Provider struct {
	graph       *graph.Graph
	eigenvector EigenvectorOptions
	logger      logging.Logger
	metrics     *metrics.Registry

	mu      sync.Mutex
	entries map[Metric]*memoEntry
}

type memoEntry struct {
	once  sync.Once
	table Table
	err   error
}

// ProviderOption configures a Provider
type ProviderOption func(*Provider)

// WithLogger sets the logger used for computation timings
func WithLogger(logger logging.Logger) ProviderOption {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithMetrics records computations and cache hits in registry
func WithMetrics(registry *metrics.Registry) ProviderOption {
	return func(p *Provider) {
		p.metrics = registry
	}
}

// WithEigenvectorOptions overrides the power iteration settings
func WithEigenvectorOptions(opts EigenvectorOptions) ProviderOption {
	return func(p *Provider) {
		p.eigenvector = opts
	}
}

// NewProvider creates a provider for g
func NewProvider(g *graph.Graph, opts ...ProviderOption) *Provider {
	p := &Provider{
		graph:       g,
		eigenvector: DefaultEigenvectorOptions(),
		logger:      logging.NewNopLogger(),
		entries:     make(map[Metric]*memoEntry),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logging.Component("centrality"))
	return p
}

// Graph returns the graph the provider computes over
func (p *Provider) Graph() *graph.Graph {
	return p.graph
}

// Table returns the table for m, computing it on first use.
func (p *Provider) Table(m Metric) (Table, error) {
	compute, err := p.computeFunc(m)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	entry, ok := p.entries[m]
	if !ok {
		entry = &memoEntry{}
		p.entries[m] = entry
	}
	p.mu.Unlock()

	computed := false
	entry.once.Do(func() {
		computed = true
		entry.table, entry.err = p.compute(m, compute)
	})

	if !computed && p.metrics != nil {
		p.metrics.RecordCentralityCacheHit(m.String())
	}
	return entry.table, entry.err
}

// Tables returns the requested tables, or all five when none are named.
func (p *Provider) Tables(ms ...Metric) (*Tables, error) {
	if len(ms) == 0 {
		ms = AllMetrics()
	}

	tables := &Tables{}
	for _, m := range ms {
		table, err := p.Table(m)
		if err != nil {
			return nil, err
		}
		tables.Set(m, table)
	}
	return tables, nil
}

func (p *Provider) compute(m Metric, fn func(*graph.Graph) (Table, error)) (Table, error) {
	start := time.Now()
	table, err := fn(p.graph)
	elapsed := time.Since(start)

	status := "success"
	if err != nil {
		status = "error"
		p.logger.Error("centrality computation failed",
			logging.Metric(m.String()),
			logging.Latency(elapsed),
			logging.Error(err),
		)
	} else {
		p.logger.Debug("centrality computed",
			logging.Metric(m.String()),
			logging.Count(len(table)),
			logging.Latency(elapsed),
		)
	}

	if p.metrics != nil {
		p.metrics.RecordCentrality(m.String(), status, elapsed)
	}
	return table, err
}

func (p *Provider) computeFunc(m Metric) (func(*graph.Graph) (Table, error), error) {
	switch m {
	case Degree:
		return DegreeCentrality, nil
	case Betweenness:
		return BetweennessCentrality, nil
	case Closeness:
		return ClosenessCentrality, nil
	case Eigenvector:
		opts := p.eigenvector
		return func(g *graph.Graph) (Table, error) {
			result, err := ComputeEigenvector(g, opts)
			if err != nil {
				return nil, err
			}
			return result.Scores, nil
		}, nil
	case Clustering:
		return ClusteringCoefficient, nil
	default:
		return nil, ErrUnknownMetric
	}
}
