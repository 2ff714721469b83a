package ember

import "github.com/yourusername/ember/compress"

// Compressor performs the body coding step of the response serializer
// (spec.md §4.3 step 3). Compress returns the coded bytes, or an error that
// causes the serializer to fall back to the uncompressed body.
type Compressor interface {
	Compress(body []byte) ([]byte, error)
}

// defaultCompressor backs Config.withDefaults when no Compressor is set.
func defaultCompressor() Compressor {
	return compress.New()
}
