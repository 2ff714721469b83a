// Package compress provides the default gzip implementation of ember's
// pluggable Compressor interface.
package compress

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// Gzip compresses bodies with klauspost/compress/gzip at the given level.
// Use gzip.DefaultCompression for a balanced default.
type Gzip struct {
	Level int
}

// New returns a Gzip compressor at gzip.DefaultCompression.
func New() Gzip {
	return Gzip{Level: gzip.DefaultCompression}
}

// Compress gzip-codes body, matching the signature ember.Compressor expects.
func (g Gzip) Compress(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, g.Level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(body); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
