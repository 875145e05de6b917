package centrality

import (
	"fmt"
	"strings"
)

// Metric names one of the node centrality measures.
type Metric int

const (
	Degree Metric = iota
	Betweenness
	Closeness
	Eigenvector
	Clustering
)

// AllMetrics lists every metric in declaration order.
func AllMetrics() []Metric {
	return []Metric{Degree, Betweenness, Closeness, Eigenvector, Clustering}
}

func (m Metric) String() string {
	switch m {
	case Degree:
		return "degree"
	case Betweenness:
		return "betweenness"
	case Closeness:
		return "closeness"
	case Eigenvector:
		return "eigenvector"
	case Clustering:
		return "clustering"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric converts a case-insensitive metric name to a Metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range AllMetrics() {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}
