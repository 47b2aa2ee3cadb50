package asn1

import (
	"math"
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/stretchr/testify/require"
)

func TestVLU_Lengths(t *testing.T) {
	tests := []struct {
		value  uint64
		length int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{1<<14 - 1, 2},
		{1 << 14, 3},
		{1<<56 - 1, 8},
		{1 << 56, 9},
		{math.MaxUint64, 9},
	}

	for _, tc := range tests {
		require.Equal(t, tc.length, VLULength(tc.value), "value %d", tc.value)
	}
}

func TestVLU_KnownEncodings(t *testing.T) {
	// one byte: value shifted past the single zero prefix bit
	b := buf.New(16)
	require.NoError(t, WriteVLU(b, 127))
	require.Equal(t, []byte{0xfe}, b.Bytes())

	// two bytes: one trailing prefix one-bit, then the zero
	b = buf.New(16)
	require.NoError(t, WriteVLU(b, 128))
	require.Equal(t, []byte{0x01, 0x02}, b.Bytes())

	// nine bytes: 0xff escape carries the raw 64-bit value
	b = buf.New(16)
	require.NoError(t, WriteVLU(b, math.MaxUint64))
	require.Equal(t, byte(0xff), b.Bytes()[0])
	require.Equal(t, 9, b.Offset())
}

func TestVLU_RoundTrips(t *testing.T) {
	values := []uint64{
		0, 1, 63, 64, 127, 128, 255, 256,
		1<<14 - 1, 1 << 14, 1<<21 - 1, 1 << 21,
		1<<49 - 1, 1 << 49, 1<<56 - 1, 1 << 56,
		1<<63 - 1, math.MaxUint64,
	}

	for _, v := range values {
		b := buf.New(16)
		require.NoError(t, WriteVLU(b, v), "value %d", v)
		require.Equal(t, VLULength(v), b.Offset(), "value %d", v)

		b.Reset()
		got, err := ReadVLU(b)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got)
	}
}

func TestVLU_Underflow(t *testing.T) {
	b := buf.NewFrom([]byte{0x01})
	_, err := ReadVLU(b)
	require.Error(t, err)
}
