package centrality

import (
	"errors"
	"fmt"
)

var (
	// ErrMetricsUnavailable is the parent of every failure that leaves a
	// centrality table unusable for a simulation.
	ErrMetricsUnavailable = errors.New("centrality metrics unavailable")

	ErrNotConverged = fmt.Errorf("%w: eigenvector power iteration did not converge", ErrMetricsUnavailable)
	ErrEmptyGraph   = fmt.Errorf("%w: graph has no nodes", ErrMetricsUnavailable)
	ErrMissingEntry = fmt.Errorf("%w: missing table entry", ErrMetricsUnavailable)

	ErrUnknownMetric  = errors.New("unknown centrality metric")
	ErrInvalidOptions = errors.New("invalid centrality options")
)
