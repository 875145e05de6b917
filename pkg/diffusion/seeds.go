package diffusion

import (
	"fmt"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// MaxSeeds is the largest supported seed set
const MaxSeeds = 2

// SeedSet is an ordered set of one or two distinct nodes of a graph. The
// order is the initial chain for CNIM.
type SeedSet struct {
	ids []uint64
}

// NewSeedSet validates ids against g.
func NewSeedSet(g *graph.Graph, ids ...uint64) (SeedSet, error) {
	s := SeedSet{ids: append([]uint64(nil), ids...)}
	if err := s.validate(g); err != nil {
		return SeedSet{}, err
	}
	return s, nil
}

// MustSeedSet is like NewSeedSet but panics on error
func MustSeedSet(g *graph.Graph, ids ...uint64) SeedSet {
	s, err := NewSeedSet(g, ids...)
	if err != nil {
		panic(err)
	}
	return s
}

// IDs returns a copy of the seeds in order
func (s SeedSet) IDs() []uint64 {
	return append([]uint64(nil), s.ids...)
}

// Len returns the number of seeds
func (s SeedSet) Len() int {
	return len(s.ids)
}

func (s SeedSet) validate(g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", graph.ErrEmptyGraph)
	}
	if len(s.ids) == 0 || len(s.ids) > MaxSeeds {
		return fmt.Errorf("%w: need 1 to %d seeds, got %d", ErrInvalidSeed, MaxSeeds, len(s.ids))
	}
	for i, id := range s.ids {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: node %d is not in the graph", ErrInvalidSeed, id)
		}
		for _, earlier := range s.ids[:i] {
			if earlier == id {
				return fmt.Errorf("%w: node %d repeated", ErrInvalidSeed, id)
			}
		}
	}
	return nil
}

// check revalidates the seeds against the graph a model runs on, which may
// differ from the one they were built for.
func (s SeedSet) check(g *graph.Graph, model Model) error {
	if err := s.validate(g); err != nil {
		return newError(model, "seeds", err)
	}
	return nil
}
