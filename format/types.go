package format

// CompressionType identifies the compression algorithm applied to a
// vertex buffer payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// GLUnsignedInt2101010Rev is the OpenGL vertex attribute type constant
// (GL_UNSIGNED_INT_2_10_10_10_REV) that packed.Vector is bit-compatible
// with. Exposed so callers wiring vertex attribute pointers don't need
// a GL binding just for the enum value.
const GLUnsignedInt2101010Rev = 0x8368

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
