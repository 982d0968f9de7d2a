// Package vpack provides a compact binary encoding for four-component
// unsigned-normalized vectors packed into single 32-bit words.
//
// The bit layout is the reversed 2-10-10-10 convention used by GPU
// vertex pipelines (GL_UNSIGNED_INT_2_10_10_10_REV): x, y and z take
// 10 bits each from the least significant bit up, and w takes the top
// 2 bits. Typical uses are RGB color with a coarse alpha, or unit
// normals with a low-precision fourth channel.
//
// # Core Features
//
//   - Immutable packed vector value type with pure encode/decode
//   - Total functions: out-of-range input clamps, every word decodes
//   - Bit-exact decode/re-encode round trip for every 32-bit pattern
//   - Vertex buffer blobs with byte-order control, optional compression
//     (Zstd, S2, LZ4) and xxHash64 payload checksums
//
// # Basic Usage
//
// Packing and unpacking a single vector:
//
//	v := vpack.New(0.444, 0.555, 0.666, 0.2)
//
//	v.X()   // ≈ 0.444
//	v.W()   // 0.333..., the 2-bit field snaps to {0, 1/3, 2/3, 1}
//	v.Raw() // the packed 32-bit word
//
// Building a compressed attribute stream:
//
//	writer, _ := vpack.NewCompressedWriter(format.CompressionZstd)
//	for _, n := range normals {
//	    writer.AppendVec4(n[0], n[1], n[2], 1.0)
//	}
//	blob, _ := writer.Finish()
//
//	reader, _ := vpack.NewReader(blob)
//	for v := range reader.All() {
//	    // ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the packed
// and buffer packages, simplifying the most common use cases. For
// fine-grained control (byte order, field-level quantization), use the
// packed, buffer and encoding packages directly.
package vpack

import (
	"github.com/arloliu/vpack/buffer"
	"github.com/arloliu/vpack/format"
	"github.com/arloliu/vpack/packed"
)

// New packs four unsigned-normalized components into a packed.Vector.
//
// Each input is clamped to [0.0, 1.0] and quantized to its field width:
// 10 bits for x, y, z and 2 bits for w. See the packed package for the
// full contract.
//
// Example:
//
//	v := vpack.New(1.0, 0.0, 0.0, 0.0)
//	v.Raw() // 0x000003FF
func New(x, y, z, w float32) packed.Vector {
	return packed.New(x, y, z, w)
}

// FromRaw wraps an externally produced 32-bit word as a packed.Vector.
//
// Every bit pattern is valid; there is no error path.
func FromRaw(raw uint32) packed.Vector {
	return packed.FromRaw(raw)
}

// NewWriter creates a vertex buffer writer with default settings:
// little-endian byte order and no compression.
//
// Use buffer.NewWriter directly for custom byte order.
//
// Returns:
//   - *buffer.Writer: The created writer
//   - error: An error if the configuration is invalid
func NewWriter(opts ...buffer.WriterOption) (*buffer.Writer, error) {
	return buffer.NewWriter(opts...)
}

// NewCompressedWriter creates a vertex buffer writer with the given
// payload compression and little-endian byte order.
//
// Parameters:
//   - compression: One of format.CompressionNone, CompressionZstd,
//     CompressionS2, CompressionLZ4
//
// Returns:
//   - *buffer.Writer: The created writer
//   - error: errs.ErrInvalidCompressionType if the type is unknown
//
// Example:
//
//	writer, err := vpack.NewCompressedWriter(format.CompressionLZ4)
func NewCompressedWriter(compression format.CompressionType, opts ...buffer.WriterOption) (*buffer.Writer, error) {
	allOpts := append(opts, buffer.WithCompression(compression))
	return buffer.NewWriter(allOpts...)
}

// NewReader parses and validates a vertex buffer blob.
//
// The reader detects the blob's byte order and compression from the
// header and verifies the payload checksum before returning.
//
// Parameters:
//   - data: Complete blob bytes (from Writer.Finish or storage)
//
// Returns:
//   - *buffer.Reader: The created reader
//   - error: Sentinel from the errs package if the blob is malformed
func NewReader(data []byte) (*buffer.Reader, error) {
	return buffer.NewReader(data)
}
