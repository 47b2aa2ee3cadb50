package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	require.True(t, bb.Extend(4))
	require.Equal(t, 4, bb.Len())
	require.False(t, bb.Extend(1024*1024))

	bb.ExtendOrGrow(1024)
	require.Equal(t, 4+1024, bb.Len())
}

func TestByteBuffer_GrowPreservesContent(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{9, 8, 7})
	bb.Grow(ArchiveBufferDefaultSize * 2)
	require.Equal(t, []byte{9, 8, 7}, bb.Bytes())
}

func TestPool_GetPut(t *testing.T) {
	bb := GetArchiveBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("scratch"))
	PutArchiveBuffer(bb)

	again := GetArchiveBuffer()
	require.Equal(t, 0, again.Len(), "pooled buffers come back reset")
	PutArchiveBuffer(again)
}

func TestPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)
	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // over threshold, dropped

	p.Put(nil) // tolerated
}
