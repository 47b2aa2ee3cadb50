package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Compressors pools lz4.Compressor instances: the compressor keeps a
// hash table worth reusing across archive writes.
var lz4Compressors = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses archive containers with LZ4 blocks, the fastest
// load path for archives that are read far more often than written.
//
// The LZ4 block format does not record the decompressed length; the
// archive envelope does, so decompression allocates its output exactly
// once instead of growing and retrying.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// AppendCompress appends the LZ4 block form of src to dst.
func (c LZ4Codec) AppendCompress(dst, src []byte) ([]byte, error) {
	block := make([]byte, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4Compressors.Get().(*lz4.Compressor)
	defer lz4Compressors.Put(lc)

	n, err := lc.CompressBlock(src, block)
	if err != nil {
		return nil, err
	}

	return append(dst, block[:n]...), nil
}

// AppendDecompress appends the decompressed container to dst, sized
// exactly from the envelope.
func (c LZ4Codec) AppendDecompress(dst, src []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	n, err := lz4.UncompressBlock(src, out)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, sizeMismatch("lz4", n, size)
	}

	return append(dst, out...), nil
}
