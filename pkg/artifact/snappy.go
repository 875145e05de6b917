package artifact

import (
	"context"

	"github.com/golang/snappy"
)

// SnappyExt is appended to the key of every compressed artifact
const SnappyExt = ".sz"

// SnappySink compresses artifacts with snappy block encoding before
// handing them to the wrapped sink.
type SnappySink struct {
	next Sink
}

// NewSnappySink wraps next
func NewSnappySink(next Sink) *SnappySink {
	return &SnappySink{next: next}
}

// Put stores the compressed data under key + SnappyExt
func (s *SnappySink) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return s.next.Put(ctx, key+SnappyExt, snappy.Encode(nil, data), ContentTypeSnappy)
}

// Decompress reverses SnappySink's encoding
func Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}
