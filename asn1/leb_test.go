package asn1

import (
	"math"
	"testing"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
	"github.com/stretchr/testify/require"
)

func TestLEB_KnownEncoding(t *testing.T) {
	// 2^54 occupies eight groups
	b := buf.New(16)
	require.NoError(t, WriteLEB(b, 18014398509481984))
	require.Equal(t,
		[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x20},
		b.Bytes())

	b.Reset()
	got, err := ReadLEB(b)
	require.NoError(t, err)
	require.Equal(t, uint64(18014398509481984), got)
}

func TestLEB_Boundaries(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 1<<56 - 1, 1 << 56, math.MaxUint64}

	for _, v := range values {
		b := buf.New(16)
		require.NoError(t, WriteLEB(b, v), "value %d", v)
		require.Equal(t, LEBLength(v), b.Offset(), "value %d", v)

		b.Reset()
		got, err := ReadLEB(b)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got)
	}
}

func TestLEB_RejectsOverflow(t *testing.T) {
	// eleven groups exceed 64 value bits
	b := buf.NewFrom([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := ReadLEB(b)
	require.ErrorIs(t, err, errs.ErrIntegerOverflow)

	// ten groups whose top group spills past bit 63
	b = buf.NewFrom([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x03})
	_, err = ReadLEB(b)
	require.ErrorIs(t, err, errs.ErrIntegerOverflow)
}

func TestLEB_Underflow(t *testing.T) {
	b := buf.NewFrom([]byte{0x80})
	_, err := ReadLEB(b)
	require.ErrorIs(t, err, errs.ErrBufferUnderflow)
}
