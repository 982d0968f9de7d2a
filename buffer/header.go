package buffer

import (
	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/format"
)

const (
	// MagicNumber identifies a vpack vertex buffer blob ("VPK1" in ASCII).
	MagicNumber uint32 = 0x56504B31

	// FormatVersion is the current blob format version.
	FormatVersion uint8 = 1

	// HeaderSize is the fixed byte length of the blob header.
	HeaderSize = 20

	// WordSize is the byte length of one packed vector in the payload.
	WordSize = 4
)

// Endianness flag byte values. The flag sits at a fixed offset and is a
// single byte, so it can be read before the byte order is known.
const (
	flagLittleEndian byte = 0
	flagBigEndian    byte = 1
)

// Header is the fixed-size section at the start of every vertex buffer blob.
//
// Byte layout (offsets in bytes):
//
//	[0:4)   magic number, written in the blob's byte order
//	[4]     format version
//	[5]     endianness flag (0 = little, 1 = big)
//	[6]     compression type
//	[7]     reserved, must be zero
//	[8:12)  vector count
//	[12:20) xxHash64 checksum of the uncompressed payload
type Header struct {
	// Version is the blob format version (currently FormatVersion).
	Version uint8

	// Compression is the codec applied to the payload.
	Compression format.CompressionType

	// Count is the number of packed vectors in the payload.
	Count uint32

	// Checksum is the xxHash64 of the uncompressed payload bytes.
	Checksum uint64
}

// Bytes returns the header as a byte slice using the specified endian engine.
//
// The endianness flag byte is derived from the engine, so the header is
// always self-describing.
//
// Parameters:
//   - engine: Endian engine for byte order
//
// Returns:
//   - []byte: 20-byte encoded header
func (h *Header) Bytes(engine endian.EndianEngine) []byte {
	var b [HeaderSize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint32(b[0:4], MagicNumber)
	b[4] = h.Version
	b[5] = endianFlag(engine)
	b[6] = byte(h.Compression)
	b[7] = 0
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint64(b[12:20], h.Checksum)

	return b[:]
}

// ParseHeader parses a Header from the start of a blob.
//
// The endianness flag is read first so the remaining fields can be
// decoded with the right byte order; the derived engine is returned for
// decoding the payload.
//
// Parameters:
//   - data: Blob bytes (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header
//   - endian.EndianEngine: Engine matching the blob's byte order
//   - error: Sentinel from the errs package if the header is malformed
func ParseHeader(data []byte) (Header, endian.EndianEngine, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, errs.ErrInvalidHeaderSize
	}

	var engine endian.EndianEngine
	switch data[5] {
	case flagLittleEndian:
		engine = endian.GetLittleEndianEngine()
	case flagBigEndian:
		engine = endian.GetBigEndianEngine()
	default:
		return Header{}, nil, errs.ErrInvalidEndianFlag
	}

	if engine.Uint32(data[0:4]) != MagicNumber {
		return Header{}, nil, errs.ErrInvalidMagic
	}

	if data[4] != FormatVersion {
		return Header{}, nil, errs.ErrUnsupportedVersion
	}

	h := Header{
		Version:     data[4],
		Compression: format.CompressionType(data[6]),
		Count:       engine.Uint32(data[8:12]),
		Checksum:    engine.Uint64(data[12:20]),
	}

	return h, engine, nil
}

// endianFlag maps an endian engine to its header flag byte.
func endianFlag(engine endian.EndianEngine) byte {
	if engine == endian.GetBigEndianEngine() {
		return flagBigEndian
	}

	return flagLittleEndian
}
