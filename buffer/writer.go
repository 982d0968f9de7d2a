package buffer

import (
	"github.com/arloliu/vpack/compress"
	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/format"
	"github.com/arloliu/vpack/internal/hash"
	"github.com/arloliu/vpack/internal/options"
	"github.com/arloliu/vpack/internal/pool"
	"github.com/arloliu/vpack/packed"
)

// Writer accumulates packed vectors and produces a vertex buffer blob.
//
// A Writer is not safe for concurrent use; each goroutine should own
// its own Writer. The Vectors it consumes are immutable values, so
// producing them concurrently and appending from one goroutine is fine.
type Writer struct {
	engine      endian.EndianEngine
	compression format.CompressionType
	codec       compress.Codec
	buf         *pool.ByteBuffer
	count       uint32
}

// WriterOption is a functional option for configuring a Writer.
type WriterOption = options.Option[*Writer]

// WithEngine sets the byte order engine used for the header and payload.
func WithEngine(engine endian.EndianEngine) WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = engine
	})
}

// WithLittleEndian selects little-endian byte order (the default).
//
// Little-endian payloads match the memory layout graphics APIs expect
// for packed vertex words on all mainstream platforms.
func WithLittleEndian() WriterOption {
	return WithEngine(endian.GetLittleEndianEngine())
}

// WithBigEndian selects big-endian byte order.
func WithBigEndian() WriterOption {
	return WithEngine(endian.GetBigEndianEngine())
}

// WithCompression sets the payload compression codec.
//
// Returns errs.ErrInvalidCompressionType from NewWriter if the type is
// not one of the built-in codecs.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return errs.ErrInvalidCompressionType
		}
		w.compression = compression
		w.codec = codec

		return nil
	})
}

// NewWriter creates a vertex buffer writer.
//
// Defaults: little-endian byte order, no compression.
//
// Parameters:
//   - opts: Optional configuration functions
//
// Returns:
//   - *Writer: The created writer
//   - error: An error if the configuration is invalid
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		buf:         pool.GetVertexBuffer(),
	}

	if err := options.Apply(w, opts...); err != nil {
		pool.PutVertexBuffer(w.buf)
		return nil, err
	}

	return w, nil
}

// Append appends one packed vector to the payload.
func (w *Writer) Append(v packed.Vector) {
	w.AppendRaw(v.Raw())
}

// AppendVec4 packs four unsigned-normalized components and appends the
// result. Equivalent to Append(packed.New(x, y, z, wc)).
func (w *Writer) AppendVec4(x, y, z, wc float32) {
	w.AppendRaw(packed.New(x, y, z, wc).Raw())
}

// AppendRaw appends an already-packed 32-bit word.
//
// Use this when the word comes from an external producer; every bit
// pattern is a valid packed vector.
func (w *Writer) AppendRaw(raw uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, raw)
	w.count++
}

// Count returns the number of vectors appended since the last Finish.
func (w *Writer) Count() int {
	return int(w.count)
}

// Size returns the current uncompressed payload size in bytes.
func (w *Writer) Size() int {
	return w.buf.Len()
}

// Finish finalizes the blob and returns its bytes.
//
// The payload is checksummed before compression, so readers verify
// integrity after decompressing. The returned slice is newly allocated
// and owned by the caller.
//
// Finish resets the writer: it can be reused to build the next blob.
//
// Returns:
//   - []byte: Complete blob (header + payload)
//   - error: Compression error, if any
func (w *Writer) Finish() ([]byte, error) {
	payload := w.buf.Bytes()

	header := Header{
		Version:     FormatVersion,
		Compression: w.compression,
		Count:       w.count,
		Checksum:    hash.Checksum(payload),
	}

	compressed, err := w.codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, HeaderSize+len(compressed))
	blob = append(blob, header.Bytes(w.engine)...)
	blob = append(blob, compressed...)

	// Reset for the next blob. The codec may alias the payload buffer
	// (NoOp does), so the blob is assembled before the buffer is recycled.
	pool.PutVertexBuffer(w.buf)
	w.buf = pool.GetVertexBuffer()
	w.count = 0

	return blob, nil
}
