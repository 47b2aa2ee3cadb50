package compress

// ZstdCodec compresses archive containers with Zstandard, the best fit
// when archives are written once and stored.
//
// The implementation is selected at build time: with cgo the libzstd
// binding is used, otherwise a pure Go implementation. Both honor the
// append-style contract and validate the restored size against the
// envelope.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
