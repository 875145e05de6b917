// Package artifact persists rendered plots and run reports to a local
// directory or an S3 bucket.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
)

// Content types of the artifacts the simulator writes
const (
	ContentTypeSVG    = "image/svg+xml"
	ContentTypeJSON   = "application/json"
	ContentTypeSnappy = "application/x-snappy"
)

// ErrInvalidKey is returned for empty, absolute or escaping keys
var ErrInvalidKey = errors.New("invalid artifact key")

// Sink stores artifacts under slash-separated keys such as
// "cnim/spread_from_12_5.svg".
type Sink interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if clean := path.Clean(key); clean != key || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// InstrumentedSink logs and counts every write to the wrapped sink.
type InstrumentedSink struct {
	next    Sink
	name    string
	metrics *metrics.Registry
	logger  logging.Logger
}

// NewInstrumentedSink wraps next. name labels the metrics, e.g. "file" or
// "s3".
func NewInstrumentedSink(next Sink, name string, registry *metrics.Registry, logger logging.Logger) *InstrumentedSink {
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &InstrumentedSink{
		next:    next,
		name:    name,
		metrics: registry,
		logger:  logger.With(logging.Component("artifact"), logging.String("sink", name)),
	}
}

// Put forwards to the wrapped sink
func (s *InstrumentedSink) Put(ctx context.Context, key string, data []byte, contentType string) error {
	start := time.Now()
	err := s.next.Put(ctx, key, data, contentType)
	if err != nil {
		s.metrics.RecordArtifact(s.name, "error", len(data))
		s.logger.Error("artifact write failed", logging.Path(key), logging.Error(err))
		return err
	}

	s.metrics.RecordArtifact(s.name, "success", len(data))
	s.logger.Info("artifact written",
		logging.Path(key),
		logging.Count(len(data)),
		logging.Latency(time.Since(start)),
	)
	return nil
}
