package diffusion

import (
	"fmt"

	"github.com/dd0wney/gossip-diffusion/pkg/graph"
)

// HaltReason records why a simulation stopped
type HaltReason string

const (
	// HaltExhausted means the last round activated nothing
	HaltExhausted HaltReason = "exhausted"
	// HaltThreshold means a candidate failed its activation comparison
	HaltThreshold HaltReason = "threshold"
	// HaltNoCandidates means the chain tail had no unvisited neighbor
	HaltNoCandidates HaltReason = "no_candidates"
	// HaltIsolated means the chain tail had no neighbors at all
	HaltIsolated HaltReason = "isolated"
	// HaltPrecondition means CNIM seeds were not adjacent
	HaltPrecondition HaltReason = "precondition"
)

// Round lists the nodes one round activated
type Round struct {
	Index     int      `json:"index"`
	Activated []uint64 `json:"activated"`
}

// Pair is a (spreader, candidate) comparison of the potential model
type Pair struct {
	Spreader            uint64  `json:"spreader"`
	Candidate           uint64  `json:"candidate"`
	SpreadingPotential  float64 `json:"spreading_potential"`
	ActivationPotential float64 `json:"activation_potential"`
}

// Result is the outcome of one simulation
type Result struct {
	Model Model    `json:"model"`
	Seeds []uint64 `json:"seeds"`
	// Active is ascending for the cascade models, the chain for CNIM and
	// activation order for the potential model.
	Active []uint64 `json:"active"`
	// Rounds holds only rounds that activated at least one node.
	Rounds     []Round    `json:"rounds"`
	Halt       HaltReason `json:"halt"`
	FailedPair *Pair      `json:"failed_pair,omitempty"`
}

// Size returns the number of active nodes
func (r *Result) Size() int {
	return len(r.Active)
}

// IsActive reports whether id ended up active
func (r *Result) IsActive(id uint64) bool {
	for _, a := range r.Active {
		if a == id {
			return true
		}
	}
	return false
}

// ActiveAfter returns the seeds followed by every node activated in rounds
// with an index of at most round, in activation order.
func (r *Result) ActiveAfter(round int) []uint64 {
	active := append([]uint64(nil), r.Seeds...)
	for _, rd := range r.Rounds {
		if rd.Index > round {
			break
		}
		active = append(active, rd.Activated...)
	}
	return active
}

// Activated returns the nodes activated beyond the seeds
func (r *Result) Activated() []uint64 {
	var out []uint64
	for _, rd := range r.Rounds {
		out = append(out, rd.Activated...)
	}
	return out
}

func roundLimit(model Model, requested int, g *graph.Graph) (int, error) {
	switch {
	case requested < 0:
		return 0, newError(model, "options", ErrInvalidOptions)
	case requested == 0:
		return g.NodeCount(), nil
	default:
		return requested, nil
	}
}

func roundLimitError(model Model, limit int) error {
	return newError(model, "rounds", fmt.Errorf("%w after %d rounds", ErrRoundLimit, limit))
}
