package asn1

import (
	"math/bits"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// VLU unsigned integers: a self-delimiting byte-prefix format. The count
// of trailing one bits in the first octet is a unary length prefix — n
// trailing ones followed by a zero mean n+1 total octets — and the value
// occupies the remaining bits of the first octet plus the following octets
// in little-endian order. Seven value bits are gained per octet, so eight
// octets carry 56 value bits; a first octet of 0xff escapes to a nine-octet
// form whose remaining eight octets carry the full 64-bit value verbatim.

// VLULength returns the encoded size of a VLU integer.
func VLULength(value uint64) int {
	n := (bits.Len64(value) + 6) / 7
	if n == 0 {
		n = 1
	}
	if n > 8 {
		n = 9
	}

	return n
}

// ReadVLU reads a VLU integer.
func ReadVLU(b *buf.Buffer) (uint64, error) {
	c, n := b.ReadUint8()
	if n != 1 {
		return 0, errs.ErrBufferUnderflow
	}

	if c == 0xff {
		v, n := b.ReadUint64()
		if n != 8 {
			return 0, errs.ErrBufferUnderflow
		}

		return v, nil
	}

	total := bits.TrailingZeros8(^c) + 1
	v := uint64(c)
	for i := 1; i < total; i++ {
		c, n = b.ReadUint8()
		if n != 1 {
			return 0, errs.ErrBufferUnderflow
		}
		v |= uint64(c) << uint(8*i)
	}

	return v >> uint(total), nil
}

// WriteVLU writes a VLU integer.
func WriteVLU(b *buf.Buffer, value uint64) error {
	total := VLULength(value)

	if total == 9 {
		if b.WriteUint8(0xff) != 1 {
			return errs.ErrBufferOverflow
		}
		if b.WriteUint64(value) != 8 {
			return errs.ErrBufferOverflow
		}

		return nil
	}

	v := value<<uint(total) | (1<<uint(total-1) - 1)
	for i := 0; i < total; i++ {
		if b.WriteUint8(uint8(v>>uint(8*i))) != 1 {
			return errs.ErrBufferOverflow
		}
	}

	return nil
}
