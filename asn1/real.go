package asn1

import (
	"math"
	"math/bits"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

/*
 * ASN.1 REAL encoding bits from the first content octet (X.690 8.5):
 *
 * - [8]   0b1    binary encoding
 * - [8:7] 0b00   decimal encoding (not supported)
 * - [8:7] 0b01   special real value
 * - [7]   sign S          (binary)
 * - [6:5] base            (binary: 00=2, 01=8, 10=16)
 * - [4:3] scale factor F  (binary)
 * - [2:1] exponent format (binary: 00=1 byte, 01=2, 10=3, 11=length octet)
 *
 * binary encoding: M = S x N x 2^F x (2,8,16)^E
 *
 * The IEEE 754 exponent is relative to the msb of the mantissa whereas the
 * ASN.1 exponent is relative to the lsb, so the mantissa is stripped of
 * trailing zeros before the exponent is rebased.
 */

const (
	realSpecialPosInf  = 0b01000000
	realSpecialNegInf  = 0b01000001
	realSpecialNegZero = 0b01000010
	realSpecialNaN     = 0b01000011
)

const (
	realFmtShift = 6
	realFmtMask  = 0b11
	realExpMask  = 0b11

	realFmtBinaryPos = 0b10
	realFmtBinaryNeg = 0b11

	realExp1 = 0b00
	realExp2 = 0b01
)

const (
	f64ExpSize  = 11
	f64MantSize = 52

	f64ExpMask  = 1<<f64ExpSize - 1
	f64MantMask = uint64(1)<<f64MantSize - 1

	f64MantPrefix = uint64(1) << f64MantSize
	f64ExpBias    = 1<<(f64ExpSize-1) - 1
)

func f64MantDec(x float64) uint64 { return math.Float64bits(x) & f64MantMask }
func f64ExpDec(x float64) uint64  { return math.Float64bits(x) >> f64MantSize & f64ExpMask }
func f64SignDec(x float64) bool   { return math.Float64bits(x)>>63 != 0 }

func f64Pack(mant, exp uint64, sign bool) float64 {
	v := mant&f64MantMask | (exp&f64ExpMask)<<f64MantSize
	if sign {
		v |= 1 << 63
	}

	return math.Float64frombits(v)
}

func f64IsZero(x float64) bool   { return f64ExpDec(x) == 0 && f64MantDec(x) == 0 }
func f64IsInf(x float64) bool    { return f64ExpDec(x) == f64ExpMask && f64MantDec(x) == 0 }
func f64IsNaN(x float64) bool    { return f64ExpDec(x) == f64ExpMask && f64MantDec(x) != 0 }
func f64IsDenorm(x float64) bool { return f64ExpDec(x) == 0 && f64MantDec(x) != 0 }

// realData carries the stripped fraction and rebased exponent of a finite
// value together with their encoded lengths and classification flags.
type realData struct {
	frac    uint64
	sexp    int64
	fracLen int
	expLen  int
	sign    bool
	inf     bool
	nan     bool
	zero    bool
}

// realDataGet right-justifies the fraction with its least significant set
// bit at bit 0, adds the implied leading digit for normal values, and
// rebases the exponent to the fraction's lsb. Subnormal values use the
// minimum exponent without the implied digit.
func realDataGet(value float64) realData {
	fexp := int64(f64ExpDec(value))
	frac := f64MantDec(value)

	var sexp int64
	if frac != 0 || fexp != 0 {
		eff := fexp
		if fexp != 0 {
			frac |= f64MantPrefix
		} else {
			eff = 1
		}
		tz := bits.TrailingZeros64(frac)
		frac >>= uint(tz)
		sexp = eff - f64ExpBias - f64MantSize + int64(tz)
	}

	return realData{
		frac:    frac,
		sexp:    sexp,
		fracLen: UintLength(frac),
		expLen:  IntLength(sexp),
		sign:    f64SignDec(value),
		inf:     f64IsInf(value),
		nan:     f64IsNaN(value),
		zero:    f64IsZero(value),
	}
}

// RealLength returns the content length of a real value.
func RealLength(value float64) int {
	d := realDataGet(value)

	switch {
	case d.zero:
		if d.sign {
			return 1
		}

		return 3
	case d.inf || d.nan:
		return 1
	default:
		return 1 + d.expLen + d.fracLen
	}
}

// ReadReal reads a real content encoding of the given length. Only the
// special values and base-2 binary encodings with one or two exponent
// octets are accepted.
func ReadReal(b *buf.Buffer, length int) (float64, error) {
	c, n := b.ReadUint8()
	if n != 1 {
		return 0, errs.ErrBufferUnderflow
	}

	switch c {
	case realSpecialPosInf:
		return math.Inf(1), nil
	case realSpecialNegInf:
		return math.Inf(-1), nil
	case realSpecialNegZero:
		return math.Copysign(0, -1), nil
	case realSpecialNaN:
		return math.NaN(), nil
	}

	var sign bool
	switch c >> realFmtShift & realFmtMask {
	case realFmtBinaryPos:
		sign = false
	case realFmtBinaryNeg:
		sign = true
	default:
		return 0, errs.ErrInvalidReal
	}
	if c>>4&0b11 != 0 || c>>2&0b11 != 0 {
		// only base 2 with scale factor 0
		return 0, errs.ErrInvalidReal
	}

	var expLen int
	switch c & realExpMask {
	case realExp1:
		expLen = 1
	case realExp2:
		expLen = 2
	default:
		return 0, errs.ErrInvalidReal
	}
	fracLen := length - expLen - 1
	if fracLen < 0 {
		return 0, errs.ErrInvalidReal
	}

	sexp, err := ReadInt(b, expLen)
	if err != nil {
		return 0, err
	}
	frac, err := ReadUint(b, fracLen)
	if err != nil {
		return 0, err
	}

	if frac == 0 {
		if sexp != 0 {
			return 0, errs.ErrInvalidReal
		}

		return f64Pack(0, 0, sign), nil
	}

	// left-justify the fraction, crop the implied leading digit and
	// rebase the exponent against the msb
	lz := bits.LeadingZeros64(frac)
	unbiased := sexp + int64(63-lz)
	fexp := unbiased + f64ExpBias

	switch {
	case fexp >= 1 && fexp <= f64ExpMask-1:
		mant := frac << uint(lz+1) >> (64 - f64MantSize)

		return f64Pack(mant, uint64(fexp), sign), nil
	case fexp <= 0 && sexp+f64ExpBias+f64MantSize-1 >= 0:
		// subnormal range: the fraction carries no implied digit
		shift := sexp + f64ExpBias + f64MantSize - 1
		if shift >= 64 || frac<<uint(shift)>>uint(shift) != frac {
			return 0, errs.ErrInvalidReal
		}
		mant := frac << uint(shift)
		if mant > f64MantMask {
			return 0, errs.ErrInvalidReal
		}

		return f64Pack(mant, 0, sign), nil
	default:
		return 0, errs.ErrInvalidReal
	}
}

// WriteReal writes a real content encoding in the given length, which must
// equal RealLength(value).
func WriteReal(b *buf.Buffer, length int, value float64) error {
	d := realDataGet(value)

	var c uint8
	switch {
	case d.zero && d.sign:
		c = realSpecialNegZero
	case d.inf && d.sign:
		c = realSpecialNegInf
	case d.inf:
		c = realSpecialPosInf
	case d.nan:
		c = realSpecialNaN
	default:
		c = 0x80
		if d.sign {
			c |= 1 << 6
		}
		switch d.expLen {
		case 1:
			c |= realExp1
		case 2:
			c |= realExp2
		default:
			return errs.ErrInvalidReal
		}
	}

	if b.WriteUint8(c) != 1 {
		return errs.ErrBufferOverflow
	}
	if (d.zero && d.sign) || d.inf || d.nan {
		return nil
	}

	if err := WriteInt(b, d.expLen, d.sexp); err != nil {
		return err
	}

	return WriteUint(b, d.fracLen, d.frac)
}

// ReadDERReal reads a complete real object with the expected tag.
func ReadDERReal(b *buf.Buffer, tag Tag) (float64, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return 0, err
	}

	return ReadReal(b, int(hdr.Length))
}

// WriteDERReal writes a complete real object.
func WriteDERReal(b *buf.Buffer, tag Tag, value float64) error {
	if err := writeDERHeader(b, tag, uint64(RealLength(value))); err != nil {
		return err
	}

	return WriteReal(b, RealLength(value), value)
}
