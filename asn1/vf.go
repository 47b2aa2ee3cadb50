package asn1

import (
	"math"
	"math/bits"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// VF floating point: a self-delimiting envelope whose exponent and
// mantissa widths adapt to the magnitude of the value. The header octet is
//
//	[sign:1][inline:1][explen:2][mantlen:4]
//
// With inline set the header is a sentinel: explen 0 with mantlen 0 is a
// signed zero, explen 0 with nonzero mantlen announces mantlen octets of
// raw subnormal mantissa, and explen 3 selects infinity (mantlen 0), quiet
// NaN (1) or signalling NaN (2). With inline clear, explen octets of
// little-endian signed exponent and mantlen octets of little-endian
// mantissa follow; the mantissa is stripped of trailing zero bits and the
// exponent is relative to its least significant bit. Every finite value
// round-trips bit-exactly; NaNs round-trip as the canonical quiet or
// signalling pattern with the sign preserved.

const (
	vfInline = 1 << 6

	vfExpShift = 4
	vfExpMask  = 0b11
	vfMantMask = 0b1111

	vfSentinelZero = 0
	vfSentinelSpec = 3

	vfSpecInf  = 0
	vfSpecQNaN = 1
	vfSpecSNaN = 2
)

const (
	f32ExpSize  = 8
	f32MantSize = 23

	f32ExpMask  = 1<<f32ExpSize - 1
	f32MantMask = uint32(1)<<f32MantSize - 1

	f32MantPrefix = uint32(1) << f32MantSize
	f32ExpBias    = 1<<(f32ExpSize-1) - 1

	f32QuietBit = uint32(1) << (f32MantSize - 1)
	f64QuietBit = uint64(1) << (f64MantSize - 1)
)

func vfReadUintLE(b *buf.Buffer, length int) (uint64, error) {
	var v uint64
	for i := 0; i < length; i++ {
		c, n := b.ReadUint8()
		if n != 1 {
			return 0, errs.ErrBufferUnderflow
		}
		v |= uint64(c) << uint(8*i)
	}

	return v, nil
}

func vfWriteUintLE(b *buf.Buffer, length int, v uint64) error {
	for i := 0; i < length; i++ {
		if b.WriteUint8(uint8(v>>uint(8*i))) != 1 {
			return errs.ErrBufferOverflow
		}
	}

	return nil
}

func vfReadIntLE(b *buf.Buffer, length int) (int64, error) {
	v, err := vfReadUintLE(b, length)
	if err != nil {
		return 0, err
	}
	if length == 0 || length >= 8 {
		return int64(v), nil
	}

	shift := 64 - length*8

	return int64(v<<uint(shift)) >> uint(shift), nil
}

// vfHeader assembles a header octet.
func vfHeader(sign bool, inline bool, expLen, mantLen int) uint8 {
	var c uint8
	if sign {
		c |= 0x80
	}
	if inline {
		c |= vfInline
	}
	c |= uint8(expLen) << vfExpShift
	c |= uint8(mantLen)

	return c
}

// VFLength64 returns the encoded size of a float64.
func VFLength64(value float64) int {
	fexp := f64ExpDec(value)
	mant := f64MantDec(value)

	switch {
	case fexp == f64ExpMask || (fexp == 0 && mant == 0):
		return 1
	case fexp == 0:
		return 1 + UintLength(mant)
	default:
		frac := mant | f64MantPrefix
		tz := bits.TrailingZeros64(frac)
		frac >>= uint(tz)
		e := int64(fexp) - f64ExpBias - f64MantSize + int64(tz)

		return 1 + IntLength(e) + UintLength(frac)
	}
}

// WriteVF64 writes a float64.
func WriteVF64(b *buf.Buffer, value float64) error {
	sign := f64SignDec(value)
	fexp := f64ExpDec(value)
	mant := f64MantDec(value)

	switch {
	case fexp == f64ExpMask && mant == 0:
		c := vfHeader(sign, true, vfSentinelSpec, vfSpecInf)
		if b.WriteUint8(c) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == f64ExpMask:
		spec := vfSpecSNaN
		if mant&f64QuietBit != 0 {
			spec = vfSpecQNaN
		}
		c := vfHeader(sign, true, vfSentinelSpec, spec)
		if b.WriteUint8(c) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == 0 && mant == 0:
		c := vfHeader(sign, true, vfSentinelZero, 0)
		if b.WriteUint8(c) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == 0:
		mantLen := UintLength(mant)
		c := vfHeader(sign, true, vfSentinelZero, mantLen)
		if b.WriteUint8(c) != 1 {
			return errs.ErrBufferOverflow
		}

		return vfWriteUintLE(b, mantLen, mant)
	}

	frac := mant | f64MantPrefix
	tz := bits.TrailingZeros64(frac)
	frac >>= uint(tz)
	e := int64(fexp) - f64ExpBias - f64MantSize + int64(tz)

	expLen := IntLength(e)
	mantLen := UintLength(frac)
	if b.WriteUint8(vfHeader(sign, false, expLen, mantLen)) != 1 {
		return errs.ErrBufferOverflow
	}
	if err := vfWriteUintLE(b, expLen, uint64(e)); err != nil {
		return err
	}

	return vfWriteUintLE(b, mantLen, frac)
}

// ReadVF64 reads a float64.
func ReadVF64(b *buf.Buffer) (float64, error) {
	c, n := b.ReadUint8()
	if n != 1 {
		return 0, errs.ErrBufferUnderflow
	}

	sign := c&0x80 != 0
	expLen := int(c >> vfExpShift & vfExpMask)
	mantLen := int(c & vfMantMask)

	if c&vfInline != 0 {
		switch {
		case expLen == vfSentinelZero && mantLen == 0:
			return f64Pack(0, 0, sign), nil
		case expLen == vfSentinelZero:
			mant, err := vfReadUintLE(b, mantLen)
			if err != nil {
				return 0, err
			}
			if mant == 0 || mant > f64MantMask {
				return 0, errs.ErrInvalidReal
			}

			return f64Pack(mant, 0, sign), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecInf:
			return f64Pack(0, f64ExpMask, sign), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecQNaN:
			return f64Pack(f64QuietBit, f64ExpMask, sign), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecSNaN:
			return f64Pack(f64QuietBit>>1, f64ExpMask, sign), nil
		default:
			return 0, errs.ErrInvalidReal
		}
	}

	if mantLen > 8 {
		return 0, errs.ErrInvalidReal
	}
	e, err := vfReadIntLE(b, expLen)
	if err != nil {
		return 0, err
	}
	frac, err := vfReadUintLE(b, mantLen)
	if err != nil {
		return 0, err
	}
	if frac == 0 {
		return 0, errs.ErrInvalidReal
	}

	m := 63 - bits.LeadingZeros64(frac)
	if m > f64MantSize {
		return 0, errs.ErrInvalidReal
	}
	fexp := e + int64(m) + f64ExpBias
	if fexp < 1 || fexp > f64ExpMask-1 {
		return 0, errs.ErrInvalidReal
	}
	mant := frac << uint(64-m) >> (64 - f64MantSize)

	return f64Pack(mant, uint64(fexp), sign), nil
}

// VFLength32 returns the encoded size of a float32.
func VFLength32(value float32) int {
	u := math.Float32bits(value)
	fexp := u >> f32MantSize & f32ExpMask
	mant := u & f32MantMask

	switch {
	case fexp == f32ExpMask || (fexp == 0 && mant == 0):
		return 1
	case fexp == 0:
		return 1 + UintLength(uint64(mant))
	default:
		frac := mant | f32MantPrefix
		tz := bits.TrailingZeros32(frac)
		frac >>= uint(tz)
		e := int64(fexp) - f32ExpBias - f32MantSize + int64(tz)

		return 1 + IntLength(e) + UintLength(uint64(frac))
	}
}

// WriteVF32 writes a float32.
func WriteVF32(b *buf.Buffer, value float32) error {
	u := math.Float32bits(value)
	sign := u>>31 != 0
	fexp := u >> f32MantSize & f32ExpMask
	mant := u & f32MantMask

	switch {
	case fexp == f32ExpMask && mant == 0:
		if b.WriteUint8(vfHeader(sign, true, vfSentinelSpec, vfSpecInf)) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == f32ExpMask:
		spec := vfSpecSNaN
		if mant&f32QuietBit != 0 {
			spec = vfSpecQNaN
		}
		if b.WriteUint8(vfHeader(sign, true, vfSentinelSpec, spec)) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == 0 && mant == 0:
		if b.WriteUint8(vfHeader(sign, true, vfSentinelZero, 0)) != 1 {
			return errs.ErrBufferOverflow
		}

		return nil
	case fexp == 0:
		mantLen := UintLength(uint64(mant))
		if b.WriteUint8(vfHeader(sign, true, vfSentinelZero, mantLen)) != 1 {
			return errs.ErrBufferOverflow
		}

		return vfWriteUintLE(b, mantLen, uint64(mant))
	}

	frac := mant | f32MantPrefix
	tz := bits.TrailingZeros32(frac)
	frac >>= uint(tz)
	e := int64(fexp) - f32ExpBias - f32MantSize + int64(tz)

	expLen := IntLength(e)
	mantLen := UintLength(uint64(frac))
	if b.WriteUint8(vfHeader(sign, false, expLen, mantLen)) != 1 {
		return errs.ErrBufferOverflow
	}
	if err := vfWriteUintLE(b, expLen, uint64(e)); err != nil {
		return err
	}

	return vfWriteUintLE(b, mantLen, uint64(frac))
}

// ReadVF32 reads a float32.
func ReadVF32(b *buf.Buffer) (float32, error) {
	c, n := b.ReadUint8()
	if n != 1 {
		return 0, errs.ErrBufferUnderflow
	}

	sign := c&0x80 != 0
	expLen := int(c >> vfExpShift & vfExpMask)
	mantLen := int(c & vfMantMask)

	pack := func(mant, exp uint32) float32 {
		v := mant&f32MantMask | (exp&f32ExpMask)<<f32MantSize
		if sign {
			v |= 1 << 31
		}

		return math.Float32frombits(v)
	}

	if c&vfInline != 0 {
		switch {
		case expLen == vfSentinelZero && mantLen == 0:
			return pack(0, 0), nil
		case expLen == vfSentinelZero:
			mant, err := vfReadUintLE(b, mantLen)
			if err != nil {
				return 0, err
			}
			if mant == 0 || mant > uint64(f32MantMask) {
				return 0, errs.ErrInvalidReal
			}

			return pack(uint32(mant), 0), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecInf:
			return pack(0, f32ExpMask), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecQNaN:
			return pack(f32QuietBit, f32ExpMask), nil
		case expLen == vfSentinelSpec && mantLen == vfSpecSNaN:
			return pack(f32QuietBit>>1, f32ExpMask), nil
		default:
			return 0, errs.ErrInvalidReal
		}
	}

	if mantLen > 8 {
		return 0, errs.ErrInvalidReal
	}
	e, err := vfReadIntLE(b, expLen)
	if err != nil {
		return 0, err
	}
	frac, err := vfReadUintLE(b, mantLen)
	if err != nil {
		return 0, err
	}
	if frac == 0 {
		return 0, errs.ErrInvalidReal
	}

	m := 63 - bits.LeadingZeros64(frac)
	if m > f32MantSize {
		return 0, errs.ErrInvalidReal
	}
	fexp := e + int64(m) + f32ExpBias
	if fexp < 1 || fexp > f32ExpMask-1 {
		return 0, errs.ErrInvalidReal
	}
	mant := uint32(frac) << uint(32-m) >> (32 - f32MantSize)

	return pack(mant, uint32(fexp)), nil
}
