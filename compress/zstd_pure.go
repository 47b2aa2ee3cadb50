//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// The pure Go zstd coder is built for instance reuse: it operates without
// allocations after a warmup, so encoder and decoder are pooled across
// archive writes rather than recreated per container.
var (
	zstdEncoders = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				// cannot happen with valid options
				panic(fmt.Sprintf("zstd encoder pool: %v", err))
			}
			return encoder
		},
	}

	zstdDecoders = sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
			)
			if err != nil {
				// cannot happen with valid options
				panic(fmt.Sprintf("zstd decoder pool: %v", err))
			}
			return decoder
		},
	}
)

// AppendCompress appends the Zstandard-compressed form of src to dst.
// EncodeAll is stateless, so the pooled encoder is safe to share.
func (c ZstdCodec) AppendCompress(dst, src []byte) ([]byte, error) {
	encoder := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(encoder)

	return encoder.EncodeAll(src, dst), nil
}

// AppendDecompress appends the decompressed container to dst and checks
// it restored to the size recorded in the envelope.
func (c ZstdCodec) AppendDecompress(dst, src []byte, size int) ([]byte, error) {
	decoder := zstdDecoders.Get().(*zstd.Decoder)
	defer zstdDecoders.Put(decoder)

	out, err := decoder.DecodeAll(src, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if got := len(out) - len(dst); got != size {
		return nil, sizeMismatch("zstd", got, size)
	}

	return out, nil
}
