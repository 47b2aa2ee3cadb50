package compress

// NoOpCodec passes container bytes through unchanged. It backs
// CompressionNone, where the written file is the raw container with no
// envelope; the codec exists so the registry is total over the
// compression types.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates the pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// AppendCompress appends src to dst unchanged. With an empty dst the
// input slice is returned as-is, sharing its memory.
func (c NoOpCodec) AppendCompress(dst, src []byte) ([]byte, error) {
	if len(dst) == 0 {
		return src, nil
	}

	return append(dst, src...), nil
}

// AppendDecompress appends src to dst unchanged after checking it against
// the recorded size.
func (c NoOpCodec) AppendDecompress(dst, src []byte, size int) ([]byte, error) {
	if len(src) != size {
		return nil, sizeMismatch("none", len(src), size)
	}
	if len(dst) == 0 {
		return src, nil
	}

	return append(dst, src...), nil
}
