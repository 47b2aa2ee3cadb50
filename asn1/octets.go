package asn1

import (
	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// OctetsLength returns the content length of an octet string.
func OctetsLength(str []byte) int {
	return len(str)
}

// ReadOctets reads an octet string of the given content length into dst.
//
// The cursor always advances past length octets so the caller stays aligned
// with the next object, but only min(length, len(dst)) octets are copied.
// A nil dst queries the length without copying. The returned count is the
// true content length either way, allowing a truncated read into a short
// buffer.
func ReadOctets(b *buf.Buffer, length int, dst []byte) (int, error) {
	copyCount := length
	if dst != nil && len(dst) < copyCount {
		copyCount = len(dst)
	}
	if dst == nil {
		copyCount = 0
	}

	span := b.Remaining()
	if span.Length() < copyCount {
		return 0, errs.ErrBufferUnderflow
	}

	if dst != nil {
		copy(dst, span.Data[:copyCount])
	}
	b.Seek(b.Offset() + length)

	return length, nil
}

// WriteOctets writes an octet string's content octets. The cursor advances
// past length octets; only min(length, len(src)) are copied from src.
func WriteOctets(b *buf.Buffer, length int, src []byte) error {
	copyCount := length
	if len(src) < copyCount {
		copyCount = len(src)
	}

	span := b.Remaining()
	if span.Length() < length {
		return errs.ErrBufferOverflow
	}

	copy(span.Data, src[:copyCount])
	b.Seek(b.Offset() + length)

	return nil
}

// ReadDEROctets reads a complete octet string with the expected tag. See
// ReadOctets for the dst contract.
func ReadDEROctets(b *buf.Buffer, tag Tag, dst []byte) (int, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return 0, err
	}

	return ReadOctets(b, int(hdr.Length), dst)
}

// WriteDEROctets writes a complete octet string.
func WriteDEROctets(b *buf.Buffer, tag Tag, src []byte) error {
	if err := writeDERHeader(b, tag, uint64(OctetsLength(src))); err != nil {
		return err
	}

	return WriteOctets(b, OctetsLength(src), src)
}

// NullLength returns the content length of a null, which is always zero.
func NullLength() int {
	return 0
}

// ReadNull reads a null content encoding, which must be empty.
func ReadNull(b *buf.Buffer, length int) error {
	if length != 0 {
		return errs.ErrInvalidLength
	}

	return nil
}

// WriteNull writes a null content encoding.
func WriteNull(b *buf.Buffer, length int) error {
	if length != 0 {
		return errs.ErrInvalidLength
	}

	return nil
}

// ReadDERNull reads a complete null object with the expected tag.
func ReadDERNull(b *buf.Buffer, tag Tag) error {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return err
	}

	return ReadNull(b, int(hdr.Length))
}

// WriteDERNull writes a complete null object.
func WriteDERNull(b *buf.Buffer, tag Tag) error {
	if err := writeDERHeader(b, tag, 0); err != nil {
		return err
	}

	return WriteNull(b, 0)
}
