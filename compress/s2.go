package compress

import "github.com/klauspost/compress/s2"

// S2Codec compresses archive containers with S2, a balanced choice
// between speed and ratio for archives exchanged between tools.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// AppendCompress appends the S2-compressed form of src to dst. s2.Encode
// fills its destination from the front, so the block is staged in the
// free capacity behind dst when that suffices and appended otherwise.
func (c S2Codec) AppendCompress(dst, src []byte) ([]byte, error) {
	bound := s2.MaxEncodedLen(len(src))

	if cap(dst)-len(dst) >= bound {
		scratch := dst[len(dst) : len(dst)+bound]
		block := s2.Encode(scratch, src)

		return dst[:len(dst)+len(block)], nil
	}

	return append(dst, s2.Encode(make([]byte, bound), src)...), nil
}

// AppendDecompress appends the decompressed container to dst, decoding
// straight into an exactly sized buffer from the envelope.
func (c S2Codec) AppendDecompress(dst, src []byte, size int) ([]byte, error) {
	out, err := s2.Decode(make([]byte, size), src)
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, sizeMismatch("s2", len(out), size)
	}

	return append(dst, out...), nil
}
