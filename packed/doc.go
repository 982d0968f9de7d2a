// Package packed provides the Vector value type: a four-component
// unsigned-normalized vector packed into a single 32-bit word.
//
// The bit layout is compatible with the GL_UNSIGNED_INT_2_10_10_10_REV
// OpenGL vertex attribute type: x, y and z occupy 10 bits each starting
// from the least significant bit, and w occupies the top 2 bits. The
// format suits values where the fourth component needs little precision,
// such as RGB color with a coarse alpha, or a unit normal with a
// handedness/sign channel.
//
// # Usage
//
//	v := packed.New(0.444, 0.555, 0.666, 0.2)
//
//	v.X() // ≈ 0.444
//	v.Y() // ≈ 0.555
//	v.Z() // ≈ 0.666
//	v.W() // 0.333..., the 2-bit field snaps to {0, 1/3, 2/3, 1}
//
//	raw := v.Raw() // the packed word, ready for a vertex buffer
//
// # Contract
//
// Vector is an immutable value type. Encoding is total: inputs outside
// [0.0, 1.0] are clamped, never rejected. Decoding is total: every
// 32-bit pattern is a valid Vector. Decoding a word and re-encoding the
// result reproduces the word bit-for-bit, because quantization rounds
// each decoded representative back onto itself.
//
// All operations are pure functions on stack values and are safe for
// unsynchronized concurrent use.
package packed
