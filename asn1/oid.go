package asn1

import (
	"strconv"
	"strings"

	"github.com/declkit/declkit/buf"
	"github.com/declkit/declkit/errs"
)

// OID is an object identifier as a sequence of components.
type OID []uint64

// String renders the identifier in dotted-decimal form.
func (o OID) String() string {
	var sb strings.Builder
	for i, comp := range o {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(comp, 10))
	}

	return sb.String()
}

// ParseOID parses a dotted-decimal object identifier string.
func ParseOID(s string) (OID, error) {
	if s == "" {
		return nil, errs.ErrInvalidOID
	}

	parts := strings.Split(s, ".")
	oid := make(OID, 0, len(parts))
	for _, part := range parts {
		comp, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errs.ErrInvalidOID
		}
		oid = append(oid, comp)
	}

	return oid, nil
}

// OIDLength returns the content length of an object identifier.
//
// Per X.690 8.19.4 the first two components are combined into a single
// base-128 run as X*40 + Y; every subsequent component is its own run.
func OIDLength(oid OID) int {
	length := 0
	for i := 0; i < len(oid); i++ {
		if i == 0 && len(oid) > 1 {
			length = TagNumLength(oid[0]*40 + oid[1])
			i++
		} else {
			length += TagNumLength(oid[i])
		}
	}

	return length
}

// ReadOID reads an object identifier from length content octets, splitting
// the combined first run back into its two components.
func ReadOID(b *buf.Buffer, length int) (OID, error) {
	start := b.Offset()

	var oid OID
	for b.Offset()-start < length {
		comp, err := ReadTagNum(b)
		if err != nil {
			return nil, err
		}
		if len(oid) == 0 && comp > 40 {
			oid = append(oid, comp/40, comp%40)
		} else {
			oid = append(oid, comp)
		}
	}

	return oid, nil
}

// ReadOIDInto decodes into a caller-provided component buffer. A nil dst
// queries the component count without storing; the returned count is the
// true number of components either way.
func ReadOIDInto(b *buf.Buffer, length int, dst []uint64) (int, error) {
	start := b.Offset()

	n := 0
	store := func(comp uint64) {
		if dst != nil && n < len(dst) {
			dst[n] = comp
		}
		n++
	}

	for b.Offset()-start < length {
		comp, err := ReadTagNum(b)
		if err != nil {
			return 0, err
		}
		if n == 0 && comp > 40 {
			store(comp / 40)
			store(comp % 40)
		} else {
			store(comp)
		}
	}

	return n, nil
}

// WriteOID writes an object identifier's content octets.
func WriteOID(b *buf.Buffer, length int, oid OID) error {
	for i := 0; i < len(oid); i++ {
		if i == 0 && len(oid) > 1 {
			if err := WriteTagNum(b, oid[0]*40+oid[1]); err != nil {
				return err
			}
			i++
		} else {
			if err := WriteTagNum(b, oid[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

// ReadDEROID reads a complete object identifier with the expected tag.
func ReadDEROID(b *buf.Buffer, tag Tag) (OID, error) {
	hdr, err := readDERHeader(b, tag)
	if err != nil {
		return nil, err
	}

	return ReadOID(b, int(hdr.Length))
}

// WriteDEROID writes a complete object identifier.
func WriteDEROID(b *buf.Buffer, tag Tag, oid OID) error {
	if err := writeDERHeader(b, tag, uint64(OIDLength(oid))); err != nil {
		return err
	}

	return WriteOID(b, OIDLength(oid), oid)
}
