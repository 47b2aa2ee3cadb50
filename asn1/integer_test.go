package asn1

import (
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
	"github.com/stretchr/testify/require"
)

func TestBool_RoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		b := buf.New(4)
		require.NoError(t, WriteDERBool(b, TagBoolean, v))

		b.Reset()
		got, err := ReadDERBool(b, TagBoolean)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestUint_AllWidths(t *testing.T) {
	for width := 1; width <= 64; width++ {
		v := uint64(1)<<uint(width-1) | 1
		if width == 1 {
			v = 1
		}

		b := buf.New(16)
		length := UintLength(v)
		require.Equal(t, (width+7)/8, length, "width %d", width)
		require.NoError(t, WriteUint(b, length, v))
		require.Equal(t, length, b.Offset())

		b.Reset()
		got, err := ReadUint(b, length)
		require.NoError(t, err)
		require.Equal(t, v, got, "width %d", width)
	}
}

func TestInt_AllWidths(t *testing.T) {
	for width := 1; width <= 63; width++ {
		for _, v := range []int64{int64(1) << uint(width-1), -(int64(1) << uint(width-1))} {
			b := buf.New(16)
			length := IntLength(v)
			require.NoError(t, WriteInt(b, length, v))

			b.Reset()
			got, err := ReadInt(b, length)
			require.NoError(t, err)
			require.Equal(t, v, got, "width %d value %d", width, v)
		}
	}
}

func TestInt_SignBoundaries(t *testing.T) {
	tests := []struct {
		value  int64
		length int
	}{
		{0, 1},
		{0x7f, 1},
		{0x80, 2},
		{-0x80, 1},
		{-0x81, 2},
		{1<<63 - 1, 8},
		{-1 << 63, 8},
	}

	for _, tc := range tests {
		require.Equal(t, tc.length, IntLength(tc.value), "value %d", tc.value)

		b := buf.New(16)
		require.NoError(t, WriteInt(b, tc.length, tc.value))
		b.Reset()
		got, err := ReadInt(b, tc.length)
		require.NoError(t, err)
		require.Equal(t, tc.value, got)
	}
}

func TestUint_ZeroLengthDecodesToZero(t *testing.T) {
	b := buf.New(4)
	got, err := ReadUint(b, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), got)
}

func TestUint_RejectsOversized(t *testing.T) {
	b := buf.NewFrom(make([]byte, 9))
	_, err := ReadUint(b, 9)
	require.ErrorIs(t, err, errs.ErrIntegerOverflow)
}

func TestDERInt_LargeValueEncoding(t *testing.T) {
	// 2^56-1 carries a leading zero octet to preserve the sign
	b := buf.New(16)
	require.NoError(t, WriteDERInt(b, TagInteger, 72057594037927935))
	require.Equal(t,
		[]byte{0x02, 0x08, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		b.Bytes())

	b.Reset()
	got, err := ReadDERInt(b, TagInteger)
	require.NoError(t, err)
	require.Equal(t, int64(72057594037927935), got)
}

func TestDER_TagMismatch(t *testing.T) {
	b := buf.New(16)
	require.NoError(t, WriteDERUint(b, TagInteger, 42))

	b.Reset()
	_, err := ReadDERUint(b, TagEnumerated)
	require.ErrorIs(t, err, errs.ErrInvalidTag)
}
