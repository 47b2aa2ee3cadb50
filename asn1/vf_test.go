package asn1

import (
	"math"
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/stretchr/testify/require"
)

func vf64RoundTrip(t *testing.T, v float64) float64 {
	t.Helper()

	b := buf.New(16)
	require.NoError(t, WriteVF64(b, v))
	require.Equal(t, VFLength64(v), b.Offset())

	b.Reset()
	got, err := ReadVF64(b)
	require.NoError(t, err)

	return got
}

func vf32RoundTrip(t *testing.T, v float32) float32 {
	t.Helper()

	b := buf.New(16)
	require.NoError(t, WriteVF32(b, v))
	require.Equal(t, VFLength32(v), b.Offset())

	b.Reset()
	got, err := ReadVF32(b)
	require.NoError(t, err)

	return got
}

func TestVF64_BitExactRoundTrips(t *testing.T) {
	values := []float64{
		0.0,
		math.Copysign(0, -1),
		1.0, -1.0, 0.5, 2.0, 0.1,
		math.Pi, math.E,
		1e307, -1e307,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
		1.5e-310, // subnormal with a long mantissa
	}

	for _, v := range values {
		got := vf64RoundTrip(t, v)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "value %g", v)
	}
}

func TestVF64_Specials(t *testing.T) {
	require.True(t, math.IsInf(vf64RoundTrip(t, math.Inf(1)), 1))
	require.True(t, math.IsInf(vf64RoundTrip(t, math.Inf(-1)), -1))

	qnan := vf64RoundTrip(t, math.NaN())
	require.True(t, math.IsNaN(qnan))
	require.Zero(t, math.Float64bits(qnan)>>63, "quiet NaN sign preserved")

	negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63)
	got := vf64RoundTrip(t, negNaN)
	require.True(t, math.IsNaN(got))
	require.NotZero(t, math.Float64bits(got)>>63, "negative NaN sign preserved")

	snan := math.Float64frombits(0x7ff4000000000000)
	got = vf64RoundTrip(t, snan)
	require.True(t, math.IsNaN(got))
	require.Zero(t, math.Float64bits(got)&(uint64(1)<<51), "signalling NaN stays signalling")
}

func TestVF64_SentinelSizes(t *testing.T) {
	require.Equal(t, 1, VFLength64(0))
	require.Equal(t, 1, VFLength64(math.Copysign(0, -1)))
	require.Equal(t, 1, VFLength64(math.Inf(1)))
	require.Equal(t, 1, VFLength64(math.NaN()))

	// powers of two strip to a single mantissa byte
	require.Equal(t, 3, VFLength64(1.0))
	require.Equal(t, 3, VFLength64(1<<40))
}

func TestVF32_BitExactRoundTrips(t *testing.T) {
	values := []float32{
		0.0,
		float32(math.Copysign(0, -1)),
		1.0, -1.0, 0.5, 2.0,
		math.Pi,
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		-math.SmallestNonzeroFloat32,
		1.1754942e-38, // largest subnormal
	}

	for _, v := range values {
		got := vf32RoundTrip(t, v)
		require.Equal(t, math.Float32bits(v), math.Float32bits(got), "value %g", v)
	}
}

func TestVF32_Specials(t *testing.T) {
	require.True(t, math.IsInf(float64(vf32RoundTrip(t, float32(math.Inf(1)))), 1))
	require.True(t, math.IsInf(float64(vf32RoundTrip(t, float32(math.Inf(-1)))), -1))

	got := vf32RoundTrip(t, float32(math.NaN()))
	require.True(t, math.IsNaN(float64(got)))
}

func TestVF64_ExhaustiveMantissaPatterns(t *testing.T) {
	// sweep exponents with varied mantissa fills
	for exp := -1022; exp <= 1023; exp += 97 {
		for _, mant := range []uint64{0, 1, 0xfffffffffffff, 0x8000000000001, 0x5555555555555} {
			bits := uint64(exp+1023)<<52 | mant&(1<<52-1)
			v := math.Float64frombits(bits)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			got := vf64RoundTrip(t, v)
			require.Equal(t, math.Float64bits(v), math.Float64bits(got), "bits %x", bits)
		}
	}
}
