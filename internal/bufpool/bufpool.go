// Package bufpool pools scratch byte buffers for response assembly, using
// valyala/bytebufferpool rather than ad hoc sync.Pool of []byte.
package bufpool

import "github.com/valyala/bytebufferpool"

var pool bytebufferpool.Pool

// Get returns a zero-length buffer ready for reuse.
func Get() *bytebufferpool.ByteBuffer {
	return pool.Get()
}

// Put returns b to the pool after resetting it.
func Put(b *bytebufferpool.ByteBuffer) {
	pool.Put(b)
}
