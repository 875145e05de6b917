package pools

import "strconv"

// BufferBuilder is an io.Writer over a pooled buffer. Call Release when done
// and copy anything that must outlive it with Clone first.
type BufferBuilder struct {
	buf  []byte
	pool *BytePool
}

// NewBufferBuilder creates a new buffer builder with the given initial capacity.
func NewBufferBuilder(initialCap int) *BufferBuilder {
	return &BufferBuilder{
		buf:  defaultBytePool.Get(initialCap),
		pool: defaultBytePool,
	}
}

// Write appends p. It never fails.
func (b *BufferBuilder) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends s. It never fails.
func (b *BufferBuilder) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// WriteByte appends a single byte.
func (b *BufferBuilder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// AppendUint appends v in decimal
func (b *BufferBuilder) AppendUint(v uint64) {
	b.buf = strconv.AppendUint(b.buf, v, 10)
}

// AppendFloat appends v with prec digits after the decimal point
func (b *BufferBuilder) AppendFloat(v float64, prec int) {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
}

// Bytes returns the built buffer. It is only valid until Release.
func (b *BufferBuilder) Bytes() []byte {
	return b.buf
}

// Clone returns a copy of the built buffer that survives Release
func (b *BufferBuilder) Clone() []byte {
	return append([]byte(nil), b.buf...)
}

// Len returns the current length of the buffer.
func (b *BufferBuilder) Len() int {
	return len(b.buf)
}

// Reset resets the buffer for reuse.
func (b *BufferBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Release returns the buffer to the pool. After Release, the builder should not be used.
func (b *BufferBuilder) Release() {
	if b.pool != nil && b.buf != nil {
		b.pool.Put(b.buf)
	}
	b.buf = nil
}
