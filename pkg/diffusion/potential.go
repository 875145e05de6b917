package diffusion

import (
	"fmt"
	"math"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// DefaultEpsilon is the default potential decay coefficient
const DefaultEpsilon = 0.1

// PotentialOptions configures the potential model
type PotentialOptions struct {
	// Epsilon is the decay coefficient; it must be finite and > 0.
	Epsilon float64
	Policy  RoundPolicy
	// MaxRounds bounds the round loop; 0 means the node count.
	MaxRounds int
}

// DefaultPotentialOptions returns default potential model configuration
func DefaultPotentialOptions() PotentialOptions {
	return PotentialOptions{
		Epsilon: DefaultEpsilon,
		Policy:  PolicyHaltOnFailure,
	}
}

// potentialMetrics are the tables the model reads
var potentialMetrics = []centrality.Metric{
	centrality.Degree,
	centrality.Betweenness,
	centrality.Closeness,
	centrality.Eigenvector,
	centrality.Clustering,
}

// SimulatePotential spreads from the seeds by comparing each active
// spreader's potential
//
//	sp = mean(degree, betweenness, closeness, eigenvector) * exp(-epsilon * index)
//
// where index is the spreader's position in the active list, with each
// inactive neighbor's clustering coefficient. A neighbor activates when sp
// is strictly greater. opts.Policy decides whether a failed comparison ends
// the run or only skips that pair.
func SimulatePotential(g *graph.Graph, tables *centrality.Tables, seeds SeedSet, opts PotentialOptions) (*Result, error) {
	if err := seeds.check(g, ModelPotential); err != nil {
		return nil, err
	}
	if !(opts.Epsilon > 0) || math.IsInf(opts.Epsilon, 0) {
		return nil, newError(ModelPotential, "epsilon", fmt.Errorf("%w: got %v", ErrInvalidEpsilon, opts.Epsilon))
	}
	if opts.Policy != PolicyHaltOnFailure && opts.Policy != PolicySkipFailures {
		return nil, newError(ModelPotential, "policy", ErrInvalidOptions)
	}
	limit, err := roundLimit(ModelPotential, opts.MaxRounds, g)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		return nil, newError(ModelPotential, "centrality", fmt.Errorf("%w: no tables", ErrMetricsUnavailable))
	}
	if err := requireReachable(ModelPotential, g, seeds, func(nodes []uint64) error {
		return tables.Require(nodes, potentialMetrics...)
	}); err != nil {
		return nil, err
	}

	active := seeds.IDs()
	activeSet := make(map[uint64]bool, g.NodeCount())
	for _, id := range active {
		activeSet[id] = true
	}

	result := &Result{Model: ModelPotential, Seeds: seeds.IDs()}

	for round := 1; ; round++ {
		if round > limit {
			return nil, roundLimitError(ModelPotential, limit)
		}

		activated, failed := potentialRound(g, tables, active, activeSet, opts)

		if len(activated) > 0 {
			for _, id := range activated {
				activeSet[id] = true
			}
			active = append(active, activated...)
			result.Rounds = append(result.Rounds, Round{Index: round, Activated: activated})
		}

		if failed != nil {
			result.FailedPair = failed
			result.Halt = HaltThreshold
			break
		}
		if len(activated) == 0 {
			result.Halt = HaltExhausted
			break
		}
	}

	result.Active = active
	return result, nil
}

// potentialRound evaluates one round over a snapshot of the active list and
// returns the nodes it activates in order. Under PolicyHaltOnFailure it also
// returns the first failed comparison, after which nothing else is tried.
func potentialRound(g *graph.Graph, tables *centrality.Tables, spreaders []uint64, activeSet map[uint64]bool, opts PotentialOptions) ([]uint64, *Pair) {
	claimed := make(map[uint64]bool)
	var (
		activated []uint64
		failed    *Pair
	)

	for index, spreader := range spreaders {
		sp := spreadingPotential(tables, spreader, index, opts.Epsilon)

		g.EachNeighbor(spreader, func(candidate uint64) bool {
			if activeSet[candidate] || claimed[candidate] {
				return true
			}

			ap := tables.Clustering[candidate]
			if sp > ap {
				claimed[candidate] = true
				activated = append(activated, candidate)
				return true
			}

			if opts.Policy == PolicyHaltOnFailure {
				failed = &Pair{
					Spreader:            spreader,
					Candidate:           candidate,
					SpreadingPotential:  sp,
					ActivationPotential: ap,
				}
				return false
			}
			return true
		})

		if failed != nil {
			break
		}
	}

	return activated, failed
}

func spreadingPotential(tables *centrality.Tables, spreader uint64, index int, epsilon float64) float64 {
	mean := (tables.Degree[spreader] +
		tables.Betweenness[spreader] +
		tables.Closeness[spreader] +
		tables.Eigenvector[spreader]) / 4
	return mean * math.Exp(-epsilon*float64(index))
}
