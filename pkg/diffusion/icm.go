package diffusion

import (
	"fmt"
	"sort"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// ICMOptions configures both cascade models
type ICMOptions struct {
	// MaxRounds bounds the round loop; 0 means the node count.
	MaxRounds int
}

// SimulateICM runs the Independent Cascade Model where every activation
// attempt succeeds with the activator's degree centrality. Each round, the
// nodes activated in the previous round try each inactive neighbor once, in
// ascending ID order for both, drawing one value from rng per attempt. The
// run ends when a round activates nothing.
func SimulateICM(g *graph.Graph, degree centrality.Table, seeds SeedSet, rng RandomSource, opts ICMOptions) (*Result, error) {
	if err := seeds.check(g, ModelICM); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, newError(ModelICM, "random source", ErrNilRandomSource)
	}
	if err := requireReachable(ModelICM, g, seeds, func(nodes []uint64) error {
		return degree.Require(nodes)
	}); err != nil {
		return nil, err
	}

	return cascade(ModelICM, g, seeds, rng, opts, func(activator uint64) float64 {
		return degree[activator]
	})
}

// SimulateCascade runs the Independent Cascade Model with the same success
// probability p for every attempt.
func SimulateCascade(g *graph.Graph, seeds SeedSet, p float64, rng RandomSource, opts ICMOptions) (*Result, error) {
	if err := seeds.check(g, ModelCascade); err != nil {
		return nil, err
	}
	if !(p >= 0 && p <= 1) {
		return nil, newError(ModelCascade, "probability", fmt.Errorf("%w: got %v", ErrInvalidProbability, p))
	}
	if rng == nil {
		return nil, newError(ModelCascade, "random source", ErrNilRandomSource)
	}

	return cascade(ModelCascade, g, seeds, rng, opts, func(uint64) float64 {
		return p
	})
}

func cascade(model Model, g *graph.Graph, seeds SeedSet, rng RandomSource, opts ICMOptions, chance func(activator uint64) float64) (*Result, error) {
	limit, err := roundLimit(model, opts.MaxRounds, g)
	if err != nil {
		return nil, err
	}

	active := make(map[uint64]bool, g.NodeCount())
	frontier := seeds.IDs()
	for _, id := range frontier {
		active[id] = true
	}
	sortIDs(frontier)

	result := &Result{Model: model, Seeds: seeds.IDs()}

	for round := 1; ; round++ {
		if round > limit {
			return nil, roundLimitError(model, limit)
		}

		activated := cascadeRound(g, frontier, active, rng, chance)
		if len(activated) == 0 {
			break
		}

		for _, id := range activated {
			active[id] = true
		}
		result.Rounds = append(result.Rounds, Round{Index: round, Activated: activated})
		frontier = activated
	}

	result.Active = make([]uint64, 0, len(active))
	for id := range active {
		result.Active = append(result.Active, id)
	}
	sortIDs(result.Active)
	result.Halt = HaltExhausted

	return result, nil
}

// cascadeRound returns the nodes the frontier activates, ascending. It reads
// active but never writes to it.
func cascadeRound(g *graph.Graph, frontier []uint64, active map[uint64]bool, rng RandomSource, chance func(uint64) float64) []uint64 {
	claimed := make(map[uint64]bool)
	var activated []uint64

	for _, activator := range frontier {
		p := chance(activator)
		g.EachNeighbor(activator, func(neighbor uint64) bool {
			if active[neighbor] || claimed[neighbor] {
				return true
			}
			if rng.Float64() < p {
				claimed[neighbor] = true
				activated = append(activated, neighbor)
			}
			return true
		})
	}

	sortIDs(activated)
	return activated
}

// requireReachable runs check over every node reachable from the seeds.
func requireReachable(model Model, g *graph.Graph, seeds SeedSet, check func([]uint64) error) error {
	reachable, err := g.Reachable(seeds.IDs()...)
	if err != nil {
		return newError(model, "seeds", err)
	}
	if err := check(reachable); err != nil {
		return newError(model, "centrality", err)
	}
	return nil
}

func sortIDs(ids []uint64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
