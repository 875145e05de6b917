package diffusion

import (
	"errors"
	"fmt"

	"github.com/dd0wney/gossip-diffusion/pkg/centrality"
)

var (
	ErrInvalidSeed        = errors.New("invalid seed")
	ErrSeedsNotAdjacent   = errors.New("seeds are not adjacent")
	ErrNilRandomSource    = errors.New("random source is nil")
	ErrInvalidEpsilon     = errors.New("epsilon must be finite and greater than zero")
	ErrInvalidProbability = errors.New("probability must be within [0, 1]")
	ErrInvalidOptions     = errors.New("invalid simulation options")
	ErrRoundLimit         = errors.New("round limit exceeded")
	ErrUnknownModel       = errors.New("unknown diffusion model")

	// Re-exported so callers can test simulation failures without importing
	// the centrality package.
	ErrMetricsUnavailable = centrality.ErrMetricsUnavailable
	ErrMissingEntry       = centrality.ErrMissingEntry
)

// SimulationError describes a failed simulation
type SimulationError struct {
	Model   Model
	Op      string
	Node    uint64
	HasNode bool
	Cause   error
}

func (e *SimulationError) Error() string {
	msg := string(e.Model)
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.HasNode {
		msg += fmt.Sprintf(": node %d", e.Node)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SimulationError) Unwrap() error {
	return e.Cause
}

func newError(model Model, op string, cause error) *SimulationError {
	return &SimulationError{Model: model, Op: op, Cause: cause}
}

func nodeError(model Model, op string, node uint64, cause error) *SimulationError {
	return &SimulationError{Model: model, Op: op, Node: node, HasNode: true, Cause: cause}
}
