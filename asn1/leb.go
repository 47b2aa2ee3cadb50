package asn1

import (
	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// LEB128 unsigned integers: little-endian base-128 groups, least
// significant group first, with the high bit of each octet flagging
// continuation.

// LEBLength returns the encoded size of an unsigned LEB128 integer.
func LEBLength(value uint64) int {
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}

	return n
}

// ReadLEB reads an unsigned LEB128 integer. Encodings carrying more than
// 64 value bits are rejected.
func ReadLEB(b *buf.Buffer) (uint64, error) {
	var v uint64
	var shift uint

	for {
		c, n := b.ReadUint8()
		if n != 1 {
			return 0, errs.ErrBufferUnderflow
		}
		if shift >= 64 || (shift > 57 && (c&0x7f)>>(64-shift) != 0) {
			return 0, errs.ErrIntegerOverflow
		}
		v |= uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}

// WriteLEB writes an unsigned LEB128 integer.
func WriteLEB(b *buf.Buffer, value uint64) error {
	for value >= 0x80 {
		if b.WriteUint8(uint8(value)|0x80) != 1 {
			return errs.ErrBufferOverflow
		}
		value >>= 7
	}
	if b.WriteUint8(uint8(value)) != 1 {
		return errs.ErrBufferOverflow
	}

	return nil
}
