// Package endian provides byte order utilities for vertex buffer
// encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from Go's
// encoding/binary package into a single EndianEngine interface, so the
// buffer package can both read fixed-offset header fields and append
// packed words without extra allocations.
//
// # Choosing a Byte Order
//
// Little-endian is the default throughout vpack: it is the native order
// on x86/x64/ARM and the layout graphics APIs expect for packed vertex
// words written straight into attribute buffers:
//
//	engine := endian.GetLittleEndianEngine()
//	writer := buffer.NewWriter(buffer.WithEngine(engine))
//
// Big-endian is supported for interchange with big-endian producers.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The
// returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
//
// When true, packed words written with the little-endian engine match
// the host's in-memory layout and can be handed to a graphics API
// without byte swapping.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether the given engine matches the host's byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
