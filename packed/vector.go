package packed

import (
	"fmt"

	"github.com/arloliu/vpack/encoding"
)

// Vector is a four-component unsigned-normalized vector packed into one
// 32-bit word using the 2-10-10-10 reversed layout.
//
// The zero value is the packed form of (0, 0, 0, 0).
type Vector struct {
	data uint32
}

// New packs four unsigned-normalized components into a Vector.
//
// Each input is clamped to [0.0, 1.0], scaled to its field's integer
// range (0..1023 for x, y, z; 0..3 for w) and rounded to the nearest
// integer with ties away from zero. Out-of-range input is not an error
// condition; it is silently clamped.
//
// Parameters:
//   - x, y, z: Components stored in 10 bits each
//   - w: Component stored in 2 bits (representable values: 0, 1/3, 2/3, 1)
//
// Returns:
//   - Vector: The packed vector
func New(x, y, z, w float32) Vector {
	data := encoding.QuantizeUnorm10(x)<<encoding.XShift |
		encoding.QuantizeUnorm10(y)<<encoding.YShift |
		encoding.QuantizeUnorm10(z)<<encoding.ZShift |
		encoding.QuantizeUnorm2(w)<<encoding.WShift

	return Vector{data: data}
}

// FromRaw wraps an externally produced 32-bit word as a Vector.
//
// Every bit pattern is a valid Vector; there are no reserved bits and
// no error path. Use this to inspect packed data created by other means,
// e.g. read back from a vertex buffer.
func FromRaw(data uint32) Vector {
	return Vector{data: data}
}

// X returns the x component, reconstructed from its 10-bit field.
func (v Vector) X() float32 {
	return encoding.DequantizeUnorm10(v.data >> encoding.XShift)
}

// Y returns the y component, reconstructed from its 10-bit field.
func (v Vector) Y() float32 {
	return encoding.DequantizeUnorm10(v.data >> encoding.YShift)
}

// Z returns the z component, reconstructed from its 10-bit field.
func (v Vector) Z() float32 {
	return encoding.DequantizeUnorm10(v.data >> encoding.ZShift)
}

// W returns the w component, reconstructed from its 2-bit field.
// The result is one of 0, 1/3, 2/3 or 1.
func (v Vector) W() float32 {
	return encoding.DequantizeUnorm2(v.data >> encoding.WShift)
}

// Floats returns all four components at once.
func (v Vector) Floats() (x, y, z, w float32) {
	return v.X(), v.Y(), v.Z(), v.W()
}

// Raw returns the packed 32-bit word.
//
// This is the interchange value: written little-endian into a vertex
// attribute buffer it matches the GL_UNSIGNED_INT_2_10_10_10_REV format.
func (v Vector) Raw() uint32 {
	return v.data
}

// WithX returns a copy of v with the x field re-quantized from the given value.
// The other fields keep their exact bits.
func (v Vector) WithX(x float32) Vector {
	const keep = encoding.FieldMask2<<encoding.WShift |
		encoding.FieldMask10<<encoding.ZShift |
		encoding.FieldMask10<<encoding.YShift

	return Vector{data: v.data&keep | encoding.QuantizeUnorm10(x)<<encoding.XShift}
}

// WithY returns a copy of v with the y field re-quantized from the given value.
// The other fields keep their exact bits.
func (v Vector) WithY(y float32) Vector {
	const keep = encoding.FieldMask2<<encoding.WShift |
		encoding.FieldMask10<<encoding.ZShift |
		encoding.FieldMask10<<encoding.XShift

	return Vector{data: v.data&keep | encoding.QuantizeUnorm10(y)<<encoding.YShift}
}

// WithZ returns a copy of v with the z field re-quantized from the given value.
// The other fields keep their exact bits.
func (v Vector) WithZ(z float32) Vector {
	const keep = encoding.FieldMask2<<encoding.WShift |
		encoding.FieldMask10<<encoding.YShift |
		encoding.FieldMask10<<encoding.XShift

	return Vector{data: v.data&keep | encoding.QuantizeUnorm10(z)<<encoding.ZShift}
}

// WithW returns a copy of v with the w field re-quantized from the given value.
// The other fields keep their exact bits.
func (v Vector) WithW(w float32) Vector {
	const keep = encoding.FieldMask10<<encoding.ZShift |
		encoding.FieldMask10<<encoding.YShift |
		encoding.FieldMask10<<encoding.XShift

	return Vector{data: v.data&keep | encoding.QuantizeUnorm2(w)<<encoding.WShift}
}

// WithXYZ returns a copy of v with x, y and z re-quantized in one step,
// keeping the w bits. Useful when the 10-bit fields carry a position or
// color and the 2-bit field carries an independent flag-like channel.
func (v Vector) WithXYZ(x, y, z float32) Vector {
	const keep = encoding.FieldMask2 << encoding.WShift

	data := v.data&keep |
		encoding.QuantizeUnorm10(x)<<encoding.XShift |
		encoding.QuantizeUnorm10(y)<<encoding.YShift |
		encoding.QuantizeUnorm10(z)<<encoding.ZShift

	return Vector{data: data}
}

// String implements fmt.Stringer, printing the four decoded components.
func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X(), v.Y(), v.Z(), v.W())
}
