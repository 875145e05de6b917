package diffusion

import (
	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// CNIMOptions configures the Common-Neighbors Influence Model
type CNIMOptions struct {
	Anchor Anchor
	// StrictAdjacency turns non-adjacent seeds into ErrSeedsNotAdjacent
	// instead of a no-op result.
	StrictAdjacency bool
	// MaxRounds bounds the round loop; 0 means the node count.
	MaxRounds int
}

// SimulateCNIM grows a chain from two adjacent seeds. Each round compares
// the common-neighbors index of the anchor and the chain tail,
//
//	|N(anchor) ∩ N(tail)| / |N(tail)|
//
// with the degree centrality of the tail's most central unvisited neighbor
// (lowest ID among ties) and appends that neighbor while the index is
// strictly greater.
func SimulateCNIM(g *graph.Graph, degree centrality.Table, seeds SeedSet, opts CNIMOptions) (*Result, error) {
	if err := seeds.check(g, ModelCNIM); err != nil {
		return nil, err
	}
	if seeds.Len() != 2 {
		return nil, newError(ModelCNIM, "seeds", ErrInvalidSeed)
	}
	if opts.Anchor != AnchorPrevious && opts.Anchor != AnchorOrigin {
		return nil, newError(ModelCNIM, "anchor", ErrInvalidOptions)
	}
	limit, err := roundLimit(ModelCNIM, opts.MaxRounds, g)
	if err != nil {
		return nil, err
	}
	if err := requireReachable(ModelCNIM, g, seeds, func(nodes []uint64) error {
		return degree.Require(nodes)
	}); err != nil {
		return nil, err
	}

	chain := seeds.IDs()
	result := &Result{Model: ModelCNIM, Seeds: seeds.IDs()}

	if !g.HasEdge(chain[0], chain[1]) {
		if opts.StrictAdjacency {
			return nil, nodeError(ModelCNIM, "seeds", chain[1], ErrSeedsNotAdjacent)
		}
		result.Active = chain
		result.Halt = HaltPrecondition
		return result, nil
	}

	visited := map[uint64]bool{chain[0]: true, chain[1]: true}

	for round := 1; ; round++ {
		if round > limit {
			return nil, roundLimitError(ModelCNIM, limit)
		}

		next, halt := cnimStep(g, degree, chain, visited, opts.Anchor)
		if halt != "" {
			result.Halt = halt
			break
		}

		chain = append(chain, next)
		visited[next] = true
		result.Rounds = append(result.Rounds, Round{Index: round, Activated: []uint64{next}})
	}

	result.Active = chain
	return result, nil
}

// cnimStep decides the next chain element, or why there is none.
func cnimStep(g *graph.Graph, degree centrality.Table, chain []uint64, visited map[uint64]bool, anchor Anchor) (uint64, HaltReason) {
	current := chain[len(chain)-1]
	reference := chain[len(chain)-2]
	if anchor == AnchorOrigin {
		reference = chain[0]
	}

	neighbors, _ := g.Neighbors(current)
	// SimulateCNIM never reaches this: its tail always neighbors the
	// previous chain element.
	if len(neighbors) == 0 {
		return 0, HaltIsolated
	}

	common, _ := g.CommonNeighbors(reference, current)
	index := float64(len(common)) / float64(len(neighbors))

	var (
		candidate uint64
		best      float64
		found     bool
	)
	for _, n := range neighbors {
		if visited[n] {
			continue
		}
		// Neighbors are ascending, so strict > keeps the lowest ID on ties
		if !found || degree[n] > best {
			candidate, best, found = n, degree[n], true
		}
	}

	if !found {
		return 0, HaltNoCandidates
	}
	if index > best {
		return candidate, ""
	}
	return 0, HaltThreshold
}
