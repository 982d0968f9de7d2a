package buffer

import (
	"iter"

	"github.com/arloliu/vpack/compress"
	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/format"
	"github.com/arloliu/vpack/internal/hash"
	"github.com/arloliu/vpack/packed"
)

// Reader provides access to the packed vectors of a vertex buffer blob.
//
// The blob is validated eagerly by NewReader: header shape, magic,
// version, compression type, payload length and checksum. After
// construction every accessor is a pure read, safe for concurrent use.
type Reader struct {
	header  Header
	engine  endian.EndianEngine
	payload []byte // decompressed payload, count*WordSize bytes
}

// NewReader parses and validates a vertex buffer blob.
//
// The byte order is detected from the header's endianness flag, so blobs
// from either convention can be read on any host.
//
// Parameters:
//   - data: Complete blob bytes (from Writer.Finish or storage)
//
// Returns:
//   - *Reader: The created reader
//   - error: Sentinel from the errs package if the blob is malformed or corrupted
func NewReader(data []byte) (*Reader, error) {
	header, engine, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, errs.ErrInvalidCompressionType
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, err
	}

	if len(payload) != int(header.Count)*WordSize {
		return nil, errs.ErrTruncatedPayload
	}

	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return &Reader{
		header:  header,
		engine:  engine,
		payload: payload,
	}, nil
}

// Count returns the number of packed vectors in the blob.
func (r *Reader) Count() int {
	return int(r.header.Count)
}

// Compression returns the compression type the payload was stored with.
func (r *Reader) Compression() format.CompressionType {
	return r.header.Compression
}

// At returns the packed vector at the given index.
//
// Returns:
//   - packed.Vector: The vector at index i
//   - bool: false if i is out of range
func (r *Reader) At(i int) (packed.Vector, bool) {
	if i < 0 || i >= r.Count() {
		return packed.Vector{}, false
	}

	return r.at(i), true
}

// All returns an iterator over every packed vector in payload order.
//
// Example:
//
//	for v := range reader.All() {
//	    fmt.Println(v.X(), v.Y(), v.Z(), v.W())
//	}
func (r *Reader) All() iter.Seq[packed.Vector] {
	return func(yield func(packed.Vector) bool) {
		for i := 0; i < r.Count(); i++ {
			if !yield(r.at(i)) {
				return
			}
		}
	}
}

// Words returns all packed 32-bit words as a newly allocated slice.
//
// This is the interchange form: the words are ready to hand to a vertex
// buffer upload expecting the 2-10-10-10 reversed unsigned-normalized
// format.
func (r *Reader) Words() []uint32 {
	words := make([]uint32, r.Count())
	for i := range words {
		words[i] = r.engine.Uint32(r.payload[i*WordSize:])
	}

	return words
}

// at decodes the word at index i without bounds checking.
func (r *Reader) at(i int) packed.Vector {
	return packed.FromRaw(r.engine.Uint32(r.payload[i*WordSize:]))
}
