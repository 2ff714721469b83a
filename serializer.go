package ember

import (
	"io"
	"strconv"

	"github.com/yourusername/ember/internal/bufpool"
)

// chunkSize is both the serializer's "big enough to chunk" threshold and its
// per-chunk slice size (spec.md §4.3 steps 5 and 8).
const chunkSize = 8192

// writeResponse implements spec.md §4.3: emit the response to w framed
// against what the request (via responseContext) asked for. Returns the
// number of bytes written and the first write error encountered, if any.
func writeResponse(w io.Writer, ctx responseContext, resp *Response, compressor Compressor) (int, error) {
	buf := bufpool.Get()
	buf.Reset()
	defer bufpool.Put(buf)

	status := resp.Status
	if status == 0 {
		status = 200
	}
	buf.WriteString(statusLine(status))
	buf.WriteString("\r\n")

	if ctx.connectionClose {
		buf.WriteString("Connection: close\r\n")
	}

	body := resp.Body
	gzipped := false
	if ctx.acceptGzip && !resp.Type.IsBinary && len(body) > 0 && compressor != nil {
		if coded, err := compressor.Compress(body); err == nil {
			body = coded
			gzipped = true
		}
	}

	ctype := resp.Type.Name
	if ctype == "" {
		ctype = TextPlain.Name
	}
	buf.WriteString("Content-Type: ")
	buf.WriteString(ctype)
	buf.WriteString("\r\n")

	if gzipped {
		buf.WriteString("Content-Encoding: gzip\r\n")
	}

	buf.WriteString("Content-Length: ")
	buf.WriteString(strconv.Itoa(len(body)))
	buf.WriteString("\r\n")

	chunked := len(body) > chunkSize
	if chunked {
		buf.WriteString("Transfer-Encoding: chunked\r\n")
	}

	for _, h := range resp.Headers {
		buf.WriteString(h.Name)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")

	if !chunked {
		buf.Write(body)
		n, err := w.Write(buf.Bytes())
		return n, err
	}

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return n, err
	}
	written := n
	for off := 0; off < len(body); off += chunkSize {
		end := off + chunkSize
		if end > len(body) {
			end = len(body)
		}
		slice := body[off:end]
		n, err := w.Write([]byte(strconv.FormatInt(int64(len(slice)), 16) + "\r\n"))
		written += n
		if err != nil {
			return written, err
		}
		n, err = w.Write(slice)
		written += n
		if err != nil {
			return written, err
		}
		n, err = w.Write([]byte("\r\n"))
		written += n
		if err != nil {
			return written, err
		}
	}
	n, err = w.Write([]byte("0\r\n\r\n"))
	written += n
	return written, err
}
