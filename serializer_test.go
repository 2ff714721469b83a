package ember

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yourusername/ember/compress"
)

func TestWriteResponseStatusLineFormat(t *testing.T) {
	var buf bytes.Buffer
	resp := Text("hi")
	if _, err := writeResponse(&buf, responseContext{}, resp, nil); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("response did not start with status line: %q", out[:min(40, len(out))])
	}
}

func TestWriteResponseConnectionCloseHeader(t *testing.T) {
	var buf bytes.Buffer
	resp := Text("hi")
	if _, err := writeResponse(&buf, responseContext{connectionClose: true}, resp, nil); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	if !strings.Contains(buf.String(), "Connection: close\r\n") {
		t.Fatalf("response missing Connection: close header: %q", buf.String())
	}
}

func TestWriteResponseSmallBodyHasNoChunkedHeader(t *testing.T) {
	var buf bytes.Buffer
	resp := Text("short body")
	if _, err := writeResponse(&buf, responseContext{}, resp, nil); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	if strings.Contains(buf.String(), "Transfer-Encoding") {
		t.Fatalf("small body response carries Transfer-Encoding: %q", buf.String())
	}
}

func TestWriteResponseLargeBodyIsChunked(t *testing.T) {
	var buf bytes.Buffer
	body := strings.Repeat("x", chunkSize+10)
	resp := Text(body)
	if _, err := writeResponse(&buf, responseContext{}, resp, nil); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Transfer-Encoding: chunked\r\n") {
		t.Fatalf("large body response missing Transfer-Encoding: chunked")
	}
	// Content-Length is still emitted per spec.md §9's bug-compatible note.
	if !strings.Contains(out, "Content-Length: ") {
		t.Fatalf("chunked response missing Content-Length header")
	}
	if !strings.HasSuffix(out, "0\r\n\r\n") {
		t.Fatalf("chunked response missing terminal chunk")
	}
}

func TestWriteResponseBinaryTypeNeverGzipped(t *testing.T) {
	var buf bytes.Buffer
	resp := Bytes(ApplicationOctetStream, []byte("binary data"))
	ctx := responseContext{acceptGzip: true}
	if _, err := writeResponse(&buf, ctx, resp, compress.New()); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	if strings.Contains(buf.String(), "Content-Encoding: gzip") {
		t.Fatalf("binary-flagged response was gzip-coded: %q", buf.String())
	}
}

func TestWriteResponseTextTypeGzippedWhenAccepted(t *testing.T) {
	var buf bytes.Buffer
	resp := Text(strings.Repeat("compressible text ", 50))
	ctx := responseContext{acceptGzip: true}
	if _, err := writeResponse(&buf, ctx, resp, compress.New()); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	if !strings.Contains(buf.String(), "Content-Encoding: gzip\r\n") {
		t.Fatalf("gzip-eligible response missing Content-Encoding: gzip")
	}
}

func TestWriteResponseNoGzipWithoutAcceptEncoding(t *testing.T) {
	var buf bytes.Buffer
	resp := Text("plain text")
	if _, err := writeResponse(&buf, responseContext{}, resp, compress.New()); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	if strings.Contains(buf.String(), "Content-Encoding") {
		t.Fatalf("response gzip-coded without Accept-Encoding: gzip")
	}
}

func TestWriteResponseExtraHeadersPreserveOrder(t *testing.T) {
	var buf bytes.Buffer
	resp := Empty(200)
	resp.Header("X-First", "1")
	resp.Header("X-Second", "2")
	if _, err := writeResponse(&buf, responseContext{}, resp, nil); err != nil {
		t.Fatalf("writeResponse error: %v", err)
	}
	out := buf.String()
	firstIdx := strings.Index(out, "X-First")
	secondIdx := strings.Index(out, "X-Second")
	if firstIdx < 0 || secondIdx < 0 || firstIdx > secondIdx {
		t.Fatalf("extra headers out of order: %q", out)
	}
}
