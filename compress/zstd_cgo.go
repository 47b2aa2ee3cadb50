//go:build cgo

package compress

import (
	"github.com/valyala/gozstd"
)

// zstdLevel trades a little speed for ratio on the string heap.
const zstdLevel = 3

// AppendCompress appends the Zstandard-compressed form of src to dst.
func (c ZstdCodec) AppendCompress(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, zstdLevel), nil
}

// AppendDecompress appends the decompressed container to dst and checks
// it restored to the size recorded in the envelope.
func (c ZstdCodec) AppendDecompress(dst, src []byte, size int) ([]byte, error) {
	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return nil, err
	}
	if got := len(out) - len(dst); got != size {
		return nil, sizeMismatch("zstd", got, size)
	}

	return out, nil
}
