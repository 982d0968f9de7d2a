package packed

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const approxDelta = 0.001

func TestNew_BitLayout(t *testing.T) {
	// x occupies the lowest 10 bits.
	require.Equal(t, uint32(0x000003FF), New(1.0, 0.0, 0.0, 0.0).Raw())
	// y occupies bits 10..20.
	require.Equal(t, uint32(0x000FFC00), New(0.0, 1.0, 0.0, 0.0).Raw())
	// z occupies bits 20..30.
	require.Equal(t, uint32(0x3FF00000), New(0.0, 0.0, 1.0, 0.0).Raw())
	// w occupies the top 2 bits.
	require.Equal(t, uint32(0xC0000000), New(0.0, 0.0, 0.0, 1.0).Raw())

	require.Equal(t, uint32(0x00000000), New(0.0, 0.0, 0.0, 0.0).Raw())
	require.Equal(t, uint32(0xFFFFFFFF), New(1.0, 1.0, 1.0, 1.0).Raw())
}

func TestNew_Clamp(t *testing.T) {
	// Out-of-range inputs produce the same word as the nearest bound.
	require.Equal(t, New(1.0, 0.0, 0.0, 0.0).Raw(), New(1.5, 0.0, 0.0, 0.0).Raw())
	require.Equal(t, New(0.0, 0.0, 0.0, 0.0).Raw(), New(-0.3, 0.0, 0.0, 0.0).Raw())
	require.Equal(t, New(0.2, 1.0, 0.4, 1.0).Raw(), New(0.2, 7.0, 0.4, 2.5).Raw())
}

func TestNew_Scenario(t *testing.T) {
	v := New(0.444, 0.555, 0.666, 0.2)

	require.InDelta(t, 0.444, v.X(), approxDelta)
	require.InDelta(t, 0.555, v.Y(), approxDelta)
	require.InDelta(t, 0.666, v.Z(), approxDelta)
	// 0.2 falls in the second 2-bit bucket and snaps to 1/3.
	require.InDelta(t, 0.333, v.W(), approxDelta)
}

func TestW_Buckets(t *testing.T) {
	// The 2-bit field has exactly four representable values.
	cases := []struct {
		input float32
		want  float32
	}{
		{0.0, 0.0},
		{0.1, 0.0},
		{0.1666, 0.0},
		{0.1668, 1.0 / 3.0},
		{0.2, 1.0 / 3.0},
		{0.4999, 1.0 / 3.0},
		{0.5, 2.0 / 3.0},
		{0.8332, 2.0 / 3.0},
		{0.8334, 1.0},
		{1.0, 1.0},
	}
	for _, tc := range cases {
		v := New(0.0, 0.0, 0.0, tc.input)
		require.InDelta(t, tc.want, v.W(), 1e-6, "input %v", tc.input)
	}
}

func TestFromRaw_RoundTripIdentity(t *testing.T) {
	// decode -> re-encode is the identity for every 32-bit pattern.
	// Check corner words plus a deterministic random sample.
	words := []uint32{0x00000000, 0xFFFFFFFF, 0x000003FF, 0x000FFC00, 0x3FF00000, 0xC0000000, 0xDEADBEEF}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100000; i++ {
		words = append(words, rng.Uint32())
	}

	for _, raw := range words {
		v := FromRaw(raw)
		require.Equal(t, raw, New(v.X(), v.Y(), v.Z(), v.W()).Raw(), "raw 0x%08X", raw)
	}
}

func TestFromRaw_Accessors(t *testing.T) {
	original := New(0.444, 0.555, 0.666, 0.333)
	v := FromRaw(original.Raw())

	require.InDelta(t, 0.444, v.X(), approxDelta)
	require.InDelta(t, 0.555, v.Y(), approxDelta)
	require.InDelta(t, 0.666, v.Z(), approxDelta)
	require.InDelta(t, 0.333, v.W(), approxDelta)
}

func TestFloats(t *testing.T) {
	v := New(0.25, 0.5, 0.75, 1.0)
	x, y, z, w := v.Floats()

	require.Equal(t, v.X(), x)
	require.Equal(t, v.Y(), y)
	require.Equal(t, v.Z(), z)
	require.Equal(t, v.W(), w)
}

func TestWithX(t *testing.T) {
	v := New(0.0, 0.0, 0.0, 0.0).WithX(0.333)

	require.InDelta(t, 0.333, v.X(), approxDelta)
	require.Equal(t, float32(0.0), v.Y())
	require.Equal(t, float32(0.0), v.Z())
	require.Equal(t, float32(0.0), v.W())
}

func TestWithY(t *testing.T) {
	v := New(0.0, 0.0, 0.0, 0.0).WithY(0.333)

	require.Equal(t, float32(0.0), v.X())
	require.InDelta(t, 0.333, v.Y(), approxDelta)
	require.Equal(t, float32(0.0), v.Z())
	require.Equal(t, float32(0.0), v.W())
}

func TestWithZ(t *testing.T) {
	v := New(0.0, 0.0, 0.0, 0.0).WithZ(0.333)

	require.Equal(t, float32(0.0), v.X())
	require.Equal(t, float32(0.0), v.Y())
	require.InDelta(t, 0.333, v.Z(), approxDelta)
	require.Equal(t, float32(0.0), v.W())
}

func TestWithW(t *testing.T) {
	v := New(0.0, 0.0, 0.0, 0.0).WithW(0.333)

	require.Equal(t, float32(0.0), v.X())
	require.Equal(t, float32(0.0), v.Y())
	require.Equal(t, float32(0.0), v.Z())
	require.InDelta(t, 0.333, v.W(), approxDelta)
}

func TestWithXYZ(t *testing.T) {
	v := New(0.9, 0.9, 0.9, 1.0).WithXYZ(0.333, 0.444, 0.555)

	require.InDelta(t, 0.333, v.X(), approxDelta)
	require.InDelta(t, 0.444, v.Y(), approxDelta)
	require.InDelta(t, 0.555, v.Z(), approxDelta)
	require.Equal(t, float32(1.0), v.W())
}

func TestWith_PreservesOtherFieldBits(t *testing.T) {
	// Updating one field must not disturb the exact bits of the others,
	// even for words that didn't come from New.
	raw := uint32(0xDEADBEEF)
	v := FromRaw(raw).WithX(0.5)

	require.Equal(t, raw&^uint32(0x3FF), v.Raw()&^uint32(0x3FF))
}

func TestVector_Immutable(t *testing.T) {
	v := New(0.1, 0.2, 0.3, 0.4)
	_ = v.WithX(0.9)
	_ = v.WithW(1.0)

	require.Equal(t, New(0.1, 0.2, 0.3, 0.4).Raw(), v.Raw())
}

func TestString(t *testing.T) {
	require.Equal(t, "(0, 0, 0, 0)", New(0.0, 0.0, 0.0, 0.0).String())
	require.Equal(t, "(1, 1, 1, 1)", New(1.0, 1.0, 1.0, 1.0).String())
	require.Contains(t, New(0.0, 0.0, 0.0, 0.2).String(), "0.33")
}

func TestConcurrentEncodeDecode(t *testing.T) {
	// Encode/decode are pure functions on stack values; concurrent use
	// must produce results identical to the single-threaded baseline.
	type input struct{ x, y, z, w float32 }

	rng := rand.New(rand.NewSource(7))
	inputs := make([]input, 10000)
	baseline := make([]uint32, len(inputs))
	for i := range inputs {
		inputs[i] = input{rng.Float32(), rng.Float32(), rng.Float32(), rng.Float32()}
		baseline[i] = New(inputs[i].x, inputs[i].y, inputs[i].z, inputs[i].w).Raw()
	}

	const goroutines = 8

	var wg sync.WaitGroup
	results := make([][]uint32, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out := make([]uint32, len(inputs))
			for i, in := range inputs {
				v := New(in.x, in.y, in.z, in.w)
				// Decode and re-encode to exercise both directions concurrently.
				out[i] = New(v.X(), v.Y(), v.Z(), v.W()).Raw()
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	for g := 0; g < goroutines; g++ {
		require.Equal(t, baseline, results[g], "goroutine %d", g)
	}
}

func BenchmarkNew(b *testing.B) {
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = New(0.444, 0.555, 0.666, 0.2).Raw()
	}
	_ = sink
}

func BenchmarkAccessors(b *testing.B) {
	v := New(0.444, 0.555, 0.666, 0.2)

	var sink float32
	for i := 0; i < b.N; i++ {
		sink = v.X() + v.Y() + v.Z() + v.W()
	}
	_ = sink
}
