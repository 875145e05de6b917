// Package pools reuses byte buffers across plot and report renders.
//
//   - BytePool: size-class based byte slice pooling
//   - BufferBuilder: an io.Writer over a pooled buffer
package pools
