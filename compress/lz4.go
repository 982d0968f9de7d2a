package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4WriterPool pools lz4.Writer instances for reuse.
// The lz4.Writer maintains internal state that benefits from reuse.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4Compressor compresses vertex payloads with the LZ4 frame format.
// Decompression speed makes it a good fit for load-time critical assets.
//
// The frame format (rather than raw blocks) is used because it stores
// incompressible payloads as literal blocks: streams of near-random
// packed words round-trip correctly instead of degenerating to an empty
// compression result.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using LZ4 frame compression.
//
// Uses a pooled lz4.Writer for better performance.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64) // frame header plus an optimistic ratio

	zw, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(zw)
	zw.Reset(&buf)

	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses the input data using LZ4 frame decompression.
//
// The frame carries its own block structure and content checks, so no
// adaptive output sizing is needed; corrupted input surfaces as an error
// from the frame reader.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := lz4.NewReader(bytes.NewReader(data))

	return io.ReadAll(zr)
}
