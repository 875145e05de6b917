package pools

import (
	"sync"
)

// Buffer size classes. A club network plot is around 16 KiB; large
// generated graphs reach the top class.
const (
	SmallSize  = 1 << 10
	MediumSize = 1 << 12
	LargeSize  = 1 << 14
	HugeSize   = 1 << 16
	MaxPool    = 1 << 18 // Don't pool buffers larger than this
)

var sizeClasses = []int{SmallSize, MediumSize, LargeSize, HugeSize, MaxPool}

// BytePool provides size-class based pooling for byte slices.
type BytePool struct {
	classes []sync.Pool
}

// NewBytePool creates a new byte pool
func NewBytePool() *BytePool {
	p := &BytePool{classes: make([]sync.Pool, len(sizeClasses))}
	for i, size := range sizeClasses {
		size := size
		p.classes[i].New = func() any {
			b := make([]byte, 0, size)
			return &b
		}
	}
	return p
}

// class returns the index of the smallest class holding size, or -1
func class(size int) int {
	for i, limit := range sizeClasses {
		if size <= limit {
			return i
		}
	}
	return -1
}

// Get returns a byte slice with length 0 and at least the requested
// capacity.
func (p *BytePool) Get(size int) []byte {
	c := class(size)
	if c < 0 {
		// Too large to pool, allocate directly
		return make([]byte, 0, size)
	}

	bp, ok := p.classes[c].Get().(*[]byte)
	if !ok || cap(*bp) < size {
		return make([]byte, 0, size)
	}
	return (*bp)[:0]
}

// Put returns a byte slice to the pool for reuse. Slices larger than
// MaxPool are dropped.
func (p *BytePool) Put(b []byte) {
	if cap(b) > MaxPool {
		return
	}

	// A slice is filed under the largest class it can fully serve.
	c := -1
	for i, limit := range sizeClasses {
		if cap(b) >= limit {
			c = i
		}
	}
	if c < 0 {
		return
	}

	b = b[:0]
	p.classes[c].Put(&b)
}

// Default global byte pool
var defaultBytePool = NewBytePool()

// GetBytes returns a byte slice from the default pool.
func GetBytes(size int) []byte {
	return defaultBytePool.Get(size)
}

// PutBytes returns a byte slice to the default pool.
func PutBytes(b []byte) {
	defaultBytePool.Put(b)
}
