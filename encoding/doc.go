// Package encoding provides the field-level quantization primitives that
// power vpack's packed 2-10-10-10 vertex format.
//
// The primitives map unsigned-normalized floats (values in [0.0, 1.0])
// to fixed-width unsigned integers and back:
//
//   - QuantizeUnorm / DequantizeUnorm - generic clamp+scale+round mapping
//   - QuantizeUnorm10 / DequantizeUnorm10 - 10-bit fields (x, y, z)
//   - QuantizeUnorm2 / DequantizeUnorm2 - 2-bit field (w)
//
// It also fixes the canonical bit layout of the packed word: the shifts,
// masks and field maxima used by the packed package.
//
// Most users should use the high-level packed package instead, which
// combines these primitives into the packed.Vector value type.
//
// # Rounding Mode
//
// Quantization rounds to the nearest integer with ties away from zero
// (math.Round). This choice is part of the format contract: it makes
// dequantize-then-requantize the identity for every representable
// quantized value, so decoding a packed word and re-encoding the result
// always reproduces the original word bit-for-bit.
package encoding
