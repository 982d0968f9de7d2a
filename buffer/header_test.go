package buffer

import (
	"testing"

	"github.com/arloliu/vpack/endian"
	"github.com/arloliu/vpack/errs"
	"github.com/arloliu/vpack/format"
	"github.com/stretchr/testify/require"
)

func TestHeader_BytesParse_LittleEndian(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := Header{
		Version:     FormatVersion,
		Compression: format.CompressionZstd,
		Count:       4096,
		Checksum:    0x0123456789ABCDEF,
	}

	data := h.Bytes(engine)
	require.Len(t, data, HeaderSize)

	parsed, parsedEngine, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, engine, parsedEngine)
	require.Equal(t, h, parsed)
}

func TestHeader_BytesParse_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	h := Header{
		Version:     FormatVersion,
		Compression: format.CompressionLZ4,
		Count:       7,
		Checksum:    42,
	}

	data := h.Bytes(engine)

	parsed, parsedEngine, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, engine, parsedEngine)
	require.Equal(t, h, parsed)
}

func TestHeader_MagicBytes(t *testing.T) {
	h := Header{Version: FormatVersion, Compression: format.CompressionNone}

	le := h.Bytes(endian.GetLittleEndianEngine())
	require.Equal(t, []byte{0x31, 0x4B, 0x50, 0x56}, le[0:4]) // "1KPV"

	be := h.Bytes(endian.GetBigEndianEngine())
	require.Equal(t, []byte{0x56, 0x50, 0x4B, 0x31}, be[0:4]) // "VPK1"
}

func TestParseHeader_TooShort(t *testing.T) {
	_, _, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestParseHeader_BadMagic(t *testing.T) {
	h := Header{Version: FormatVersion, Compression: format.CompressionNone}
	data := h.Bytes(endian.GetLittleEndianEngine())
	data[0] ^= 0xFF

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestParseHeader_BadVersion(t *testing.T) {
	h := Header{Version: FormatVersion, Compression: format.CompressionNone}
	data := h.Bytes(endian.GetLittleEndianEngine())
	data[4] = FormatVersion + 1

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParseHeader_BadEndianFlag(t *testing.T) {
	h := Header{Version: FormatVersion, Compression: format.CompressionNone}
	data := h.Bytes(endian.GetLittleEndianEngine())
	data[5] = 0xEE

	_, _, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidEndianFlag)
}
