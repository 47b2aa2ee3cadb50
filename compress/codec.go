package compress

import (
	"fmt"

	"github.com/declkit/declkit/format"
)

// Codec compresses and restores serialized archive containers.
//
// Both methods append to dst and return the extended slice, following the
// encoding/binary Append* convention used throughout declkit. Input
// slices are never modified.
type Codec interface {
	// AppendCompress appends the compressed form of src to dst.
	AppendCompress(dst, src []byte) ([]byte, error)

	// AppendDecompress appends the decompressed form of src to dst.
	// size is the decompressed byte count recorded in the archive
	// envelope; implementations allocate against it and fail when the
	// stream does not restore to exactly that many bytes.
	AppendDecompress(dst, src []byte, size int) ([]byte, error)
}

// CreateCodec creates a Codec for the given compression type. target
// names the usage in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// sizeMismatch builds the error for a stream that did not restore to the
// size recorded in the envelope.
func sizeMismatch(name string, got, want int) error {
	return fmt.Errorf("%s: decompressed %d bytes, envelope records %d", name, got, want)
}
