package asn1

import (
	"math"
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
	"github.com/stretchr/testify/require"
)

func realRoundTrip(t *testing.T, v float64) float64 {
	t.Helper()

	b := buf.New(32)
	require.NoError(t, WriteDERReal(b, TagReal, v))

	b.Reset()
	got, err := ReadDERReal(b, TagReal)
	require.NoError(t, err)

	return got
}

func TestReal_PiEncoding(t *testing.T) {
	b := buf.New(16)
	require.NoError(t, WriteDERReal(b, TagReal, math.Pi))
	require.Equal(t,
		[]byte{0x09, 0x09, 0x80, 0xd0, 0x03, 0x24, 0x3f, 0x6a, 0x88, 0x85, 0xa3},
		b.Bytes())

	b.Reset()
	got, err := ReadDERReal(b, TagReal)
	require.NoError(t, err)
	require.Equal(t, math.Pi, got)
}

func TestReal_BitExactValues(t *testing.T) {
	values := []float64{
		0.0,
		1.0,
		-1.0,
		0.5,
		2.0,
		1 << 40,
		math.E,
		1e307,
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		5e-324,
		2.2250738585072014e-308, // smallest normal
	}

	for _, v := range values {
		got := realRoundTrip(t, v)
		require.Equal(t, math.Float64bits(v), math.Float64bits(got), "value %g", v)
	}
}

func TestReal_SpecialValues(t *testing.T) {
	require.True(t, math.IsInf(realRoundTrip(t, math.Inf(1)), 1))
	require.True(t, math.IsInf(realRoundTrip(t, math.Inf(-1)), -1))
	require.True(t, math.IsNaN(realRoundTrip(t, math.NaN())))

	negZero := realRoundTrip(t, math.Copysign(0, -1))
	require.Equal(t, math.Float64bits(math.Copysign(0, -1)), math.Float64bits(negZero))

	require.Equal(t, 1, RealLength(math.Inf(1)))
	require.Equal(t, 1, RealLength(math.Copysign(0, -1)))
	require.Equal(t, 3, RealLength(0.0))
}

func TestReal_LengthMatchesWrite(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1, math.Pi, math.E, 1e307, -123.456, 5e-324}

	for _, v := range values {
		b := buf.New(32)
		require.NoError(t, WriteReal(b, RealLength(v), v))
		require.Equal(t, RealLength(v), b.Offset(), "value %g", v)
	}
}

func TestReal_RejectsUnsupportedEncodings(t *testing.T) {
	// decimal encoding (ISO 6093 NR1)
	b := buf.NewFrom([]byte{0x01, '1'})
	_, err := ReadReal(b, 2)
	require.ErrorIs(t, err, errs.ErrInvalidReal)

	// base 8
	b = buf.NewFrom([]byte{0x90, 0x00, 0x01})
	_, err = ReadReal(b, 3)
	require.ErrorIs(t, err, errs.ErrInvalidReal)

	// three-octet exponent format
	b = buf.NewFrom([]byte{0x82, 0x00, 0x00, 0x00, 0x01})
	_, err = ReadReal(b, 5)
	require.ErrorIs(t, err, errs.ErrInvalidReal)
}

func TestReal_RejectsExponentOverflow(t *testing.T) {
	// exponent far beyond the f64 range
	b := buf.New(16)
	require.NoError(t, WriteUint(b, 1, 0x80|realExp2))
	require.NoError(t, WriteInt(b, 2, 0x7fff))
	require.NoError(t, WriteUint(b, 1, 1))

	b.Reset()
	_, err := ReadReal(b, 4)
	require.ErrorIs(t, err, errs.ErrInvalidReal)
}
