package ember

import (
	"bufio"
	"sync"
)

// bufferSize matches the donor wire-protocol module's DefaultBufferSize,
// sized for a single header read plus typical body chunks.
const bufferSize = 4096

// This rewrite pools only the standard sync.Pool.Strategy the donor offers
// (PoolStrategyStandard); the donor's per-CPU pool variant exists to shave
// lock contention off a much higher-throughput multiplexed server and isn't
// reused here — see DESIGN.md.
var bufioReaderPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, bufferSize)
	},
}

var bufioWriterPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(nil, bufferSize)
	},
}

var requestPool = sync.Pool{
	New: func() any {
		return newRequest()
	},
}

func getBufioReader(src interface{ Read([]byte) (int, error) }) *bufio.Reader {
	r := bufioReaderPool.Get().(*bufio.Reader)
	r.Reset(src)
	return r
}

func putBufioReader(r *bufio.Reader) {
	r.Reset(nil)
	bufioReaderPool.Put(r)
}

func getBufioWriter(dst interface{ Write([]byte) (int, error) }) *bufio.Writer {
	w := bufioWriterPool.Get().(*bufio.Writer)
	w.Reset(dst)
	return w
}

func putBufioWriter(w *bufio.Writer) {
	w.Reset(nil)
	bufioWriterPool.Put(w)
}

func getRequest() *Request {
	return requestPool.Get().(*Request)
}

// putRequest resets req's mutable fields and returns it to the pool. Callers
// must not retain req past this call (spec.md §5).
func putRequest(req *Request) {
	*req = *newRequest()
	requestPool.Put(req)
}
