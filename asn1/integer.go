package asn1

import (
	"math/bits"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// BoolLength returns the content length of a boolean, which is always one
// octet.
func BoolLength(bool) int {
	return 1
}

// ReadBool reads a boolean content octet; any nonzero octet is true.
func ReadBool(b *buf.Buffer, length int) (bool, error) {
	c, n := b.ReadUint8()
	if n != 1 {
		return false, errs.ErrBufferUnderflow
	}

	return c != 0, nil
}

// WriteBool writes a boolean content octet.
func WriteBool(b *buf.Buffer, length int, value bool) error {
	var c uint8
	if value {
		c = 1
	}

	if b.WriteUint8(c) != 1 {
		return errs.ErrBufferOverflow
	}

	return nil
}

// UintLength returns the minimal content length of an unsigned integer.
func UintLength(value uint64) int {
	if value == 0 {
		return 1
	}

	return 8 - bits.LeadingZeros64(value)/8
}

// ReadUint reads an unsigned big-endian integer of the given content
// length. Length zero decodes to zero; lengths above eight octets are
// rejected.
func ReadUint(b *buf.Buffer, length int) (uint64, error) {
	if length > 8 {
		return 0, errs.ErrIntegerOverflow
	}

	var v uint64
	for i := 0; i < length; i++ {
		c, n := b.ReadUint8()
		if n != 1 {
			return 0, errs.ErrBufferUnderflow
		}
		v = v<<8 | uint64(c)
	}

	return v, nil
}

// WriteUint writes an unsigned big-endian integer in exactly length
// octets. Lengths outside 1..8 are rejected.
func WriteUint(b *buf.Buffer, length int, value uint64) error {
	if length < 1 || length > 8 {
		return errs.ErrIntegerOverflow
	}

	v := value << (64 - length*8)
	for i := 0; i < length; i++ {
		if b.WriteUint8(uint8(v>>56)) != 1 {
			return errs.ErrBufferOverflow
		}
		v <<= 8
	}

	return nil
}

// IntLength returns the minimal content length of a signed integer.
//
// ASN.1 does not distinguish between signed and unsigned integers; signed
// deserialization sign-extends, so one bit is reserved for the sign:
//
//   - 0x000000000000007f -> 0x7f
//   - 0x0000000000000080 -> 0x0080
//   - 0xffffffffffffff80 -> 0x80
//   - 0xffffffffffffff7f -> 0xff7f
func IntLength(value int64) int {
	if value == 0 {
		return 1
	}

	v := value
	if v < 0 {
		v = ^v
	}

	return 8 - (bits.LeadingZeros64(uint64(v))-1)/8
}

// ReadInt reads a signed big-endian integer of the given content length,
// sign-extending the most significant content bit.
func ReadInt(b *buf.Buffer, length int) (int64, error) {
	v, err := ReadUint(b, length)
	if err != nil {
		return 0, err
	}
	if length == 0 || length >= 8 {
		return int64(v), nil
	}

	shift := 64 - length*8

	return int64(v<<shift) >> shift, nil
}

// WriteInt writes a signed big-endian integer in exactly length octets.
func WriteInt(b *buf.Buffer, length int, value int64) error {
	return WriteUint(b, length, uint64(value))
}

// readDERHeader reads an identifier and length, requiring the expected
// universal tag.
func readDERHeader(b *buf.Buffer, tag Tag) (Header, error) {
	id, err := ReadIdent(b)
	if err != nil {
		return Header{}, err
	}
	if id.Tag != uint64(tag) || id.Class != ClassUniversal || id.Constructed {
		return Header{}, errs.ErrInvalidTag
	}

	length, err := ReadLength(b)
	if err != nil {
		return Header{}, err
	}

	return Header{ID: id, Length: length}, nil
}

// writeDERHeader writes a primitive universal identifier and length.
func writeDERHeader(b *buf.Buffer, tag Tag, length uint64) error {
	if err := WriteIdent(b, Ident{Tag: uint64(tag), Class: ClassUniversal}); err != nil {
		return err
	}

	return WriteLength(b, length)
}

// ReadDERBool reads a complete boolean object with the expected tag.
func ReadDERBool(b *buf.Buffer, tag Tag) (bool, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return false, err
	}

	return ReadBool(b, int(hdr.Length))
}

// WriteDERBool writes a complete boolean object.
func WriteDERBool(b *buf.Buffer, tag Tag, value bool) error {
	if err := writeDERHeader(b, tag, uint64(BoolLength(value))); err != nil {
		return err
	}

	return WriteBool(b, BoolLength(value), value)
}

// ReadDERUint reads a complete unsigned integer object with the expected tag.
func ReadDERUint(b *buf.Buffer, tag Tag) (uint64, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return 0, err
	}

	return ReadUint(b, int(hdr.Length))
}

// WriteDERUint writes a complete unsigned integer object in the minimal
// content length.
func WriteDERUint(b *buf.Buffer, tag Tag, value uint64) error {
	length := UintLength(value)
	if err := writeDERHeader(b, tag, uint64(length)); err != nil {
		return err
	}

	return WriteUint(b, length, value)
}

// ReadDERInt reads a complete signed integer object with the expected tag.
func ReadDERInt(b *buf.Buffer, tag Tag) (int64, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return 0, err
	}

	return ReadInt(b, int(hdr.Length))
}

// WriteDERInt writes a complete signed integer object in the minimal
// content length.
func WriteDERInt(b *buf.Buffer, tag Tag, value int64) error {
	length := IntLength(value)
	if err := writeDERHeader(b, tag, uint64(length)); err != nil {
		return err
	}

	return WriteInt(b, length, value)
}
