package artifact

import (
	"context"

	"github.com/dd0wney/gossip-diffusion/pkg/config"
	"github.com/dd0wney/gossip-diffusion/pkg/logging"
	"github.com/dd0wney/gossip-diffusion/pkg/metrics"
)

// Open builds the sink an output config describes: S3 when a bucket is set,
// the local directory otherwise, snappy-compressed on request, always
// instrumented.
func Open(ctx context.Context, cfg config.OutputConfig, registry *metrics.Registry, logger logging.Logger) (Sink, error) {
	var (
		sink Sink
		name string
	)

	if cfg.S3.Enabled() {
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		sink, name = NewS3Sink(client, cfg.S3.Bucket, cfg.S3.Prefix), "s3"
	} else {
		sink, name = NewFileSink(cfg.Dir), "file"
	}

	if cfg.Compress {
		sink = NewSnappySink(sink)
	}

	return NewInstrumentedSink(sink, name, registry, logger), nil
}
