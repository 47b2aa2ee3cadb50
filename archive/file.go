package archive

import (
	"os"

	"github.com/declkit/declkit/asn1"
	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/compress"
	"github.com/declkit/declkit/errs"
	"github.com/declkit/declkit/format"
	"github.com/declkit/declkit/model"
)

// maxEnvelopeSize caps the raw container size a compressed envelope may
// announce, bounding the allocation a corrupt file can demand.
const maxEnvelopeSize = 1 << 31

// fileConfig holds the file-level encoding configuration.
type fileConfig struct {
	compression format.CompressionType
}

// FileOption configures WriteFile.
type FileOption func(*fileConfig) error

// WithCompression selects the compression codec for the written file.
// The default is CompressionNone, which produces the raw container.
func WithCompression(c format.CompressionType) FileOption {
	return func(cfg *fileConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.compression = c

		return nil
	}
}

// WriteFile serializes a database and writes it to path. With a
// compression option other than None the container is wrapped in the
// compressed envelope: CompressedMagic, one compression-type byte, the
// VLU-encoded raw container size, then the compressed container.
func WriteFile(path string, db *model.DB, opts ...FileOption) error {
	cfg := &fileConfig{compression: format.CompressionNone}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}

	data := Encode(db)

	if cfg.compression != format.CompressionNone {
		codec, err := compress.GetCodec(cfg.compression)
		if err != nil {
			return err
		}

		head := buf.New(MagicSize + 1 + 9)
		head.WriteBytes(CompressedMagic[:])
		head.WriteUint8(byte(cfg.compression))
		if err := asn1.WriteVLU(head, uint64(len(data))); err != nil {
			return err
		}

		data, err = codec.AppendCompress(head.Bytes(), data)
		if err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a container file into a database, detecting the
// compressed envelope by magic.
func ReadFile(path string, db *model.DB) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return DecodeAuto(db, data)
}

// DecodeAuto decodes either a raw container or a compressed envelope,
// selected by magic.
func DecodeAuto(db *model.DB, data []byte) error {
	if len(data) < MagicSize {
		return errs.ErrInvalidHeaderSize
	}

	if [MagicSize]byte(data[:MagicSize]) != CompressedMagic {
		return Decode(db, data)
	}

	if len(data) < MagicSize+1 {
		return errs.ErrInvalidHeaderSize
	}
	ct := format.CompressionType(data[MagicSize])
	if ct == format.CompressionNone {
		return errs.ErrInvalidCompression
	}
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return errs.ErrInvalidCompression
	}

	cursor := buf.NewFrom(data[MagicSize+1:])
	size, err := asn1.ReadVLU(cursor)
	if err != nil {
		return err
	}
	if size < HeaderSize || size > maxEnvelopeSize {
		return errs.ErrInvalidLength
	}

	raw, err := codec.AppendDecompress(nil, cursor.Remaining().Data, int(size))
	if err != nil {
		return err
	}

	return Decode(db, raw)
}
