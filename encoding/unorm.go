package encoding

import "math"

// Bit layout of the packed 2-10-10-10 word, compatible with the OpenGL
// GL_UNSIGNED_INT_2_10_10_10_REV vertex attribute type. Bit 0 is the
// least significant bit. The "REV" convention puts the first logical
// component (x) in the lowest bits and the narrow 2-bit component (w)
// in the highest bits.
const (
	XShift = 0  // XShift is the bit offset of the x field.
	YShift = 10 // YShift is the bit offset of the y field.
	ZShift = 20 // ZShift is the bit offset of the z field.
	WShift = 30 // WShift is the bit offset of the w field.

	Unorm10Max = 1023 // Unorm10Max is the largest quantized value of a 10-bit field.
	Unorm2Max  = 3    // Unorm2Max is the largest quantized value of the 2-bit field.

	FieldMask10 = uint32(Unorm10Max) // FieldMask10 isolates a 10-bit field after shifting.
	FieldMask2  = uint32(Unorm2Max)  // FieldMask2 isolates the 2-bit field after shifting.
)

// QuantizeUnorm maps an unsigned-normalized float to an integer in
// [0, maxQ].
//
// The input is clamped to [0.0, 1.0] first, so out-of-range values are
// absorbed rather than rejected. The scaled value is rounded to the
// nearest integer with ties away from zero; see the package
// documentation for why the rounding mode matters.
//
// Parameters:
//   - v: Unsigned-normalized input value (clamped to [0.0, 1.0])
//   - maxQ: Largest quantized value, i.e. (1<<width)-1
//
// Returns:
//   - uint32: Quantized value in [0, maxQ]
func QuantizeUnorm(v float32, maxQ uint32) uint32 {
	return uint32(math.Round(float64(clampUnorm(v)) * float64(maxQ)))
}

// DequantizeUnorm maps a quantized integer back to an unsigned-normalized
// float in [0.0, 1.0].
//
// Values above maxQ are masked off by the caller before reaching this
// function; the division itself never produces a value outside [0.0, 1.0]
// for q in [0, maxQ].
//
// Parameters:
//   - q: Quantized value in [0, maxQ]
//   - maxQ: Largest quantized value, i.e. (1<<width)-1
//
// Returns:
//   - float32: Reconstructed unsigned-normalized value
func DequantizeUnorm(q, maxQ uint32) float32 {
	return float32(q) / float32(maxQ)
}

// QuantizeUnorm10 quantizes an unsigned-normalized float into a 10-bit field.
func QuantizeUnorm10(v float32) uint32 {
	return QuantizeUnorm(v, Unorm10Max)
}

// DequantizeUnorm10 reconstructs an unsigned-normalized float from a 10-bit field.
func DequantizeUnorm10(q uint32) float32 {
	return DequantizeUnorm(q&FieldMask10, Unorm10Max)
}

// QuantizeUnorm2 quantizes an unsigned-normalized float into the 2-bit field.
func QuantizeUnorm2(v float32) uint32 {
	return QuantizeUnorm(v, Unorm2Max)
}

// DequantizeUnorm2 reconstructs an unsigned-normalized float from the 2-bit field.
func DequantizeUnorm2(q uint32) float32 {
	return DequantizeUnorm(q&FieldMask2, Unorm2Max)
}

// clampUnorm clamps v to the unsigned-normalized domain [0.0, 1.0].
// NaN is treated as 0.0 so that quantization stays total.
func clampUnorm(v float32) float32 {
	if math.IsNaN(float64(v)) || v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}

	return v
}
