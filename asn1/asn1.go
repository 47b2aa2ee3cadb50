// Package asn1 implements the X.690 BER/DER primitives used by the declkit
// wire formats, together with the compact variable-length codecs (LEB128,
// VLU and the VF float family) used for declaration quantities.
//
// Every codec operates on a buf.Buffer cursor and, apart from ReadOID and
// ReadDEROID returning a new component slice, never allocates on the
// encode/decode path. On success the cursor has advanced exactly past the
// encoded object; on failure the cursor position is unspecified and the
// returned error identifies the failure class (see the errs package).
//
// The BER functions take the content length from the caller, matching the
// split between header and content octets in X.690. The DER functions
// combine identifier, length and content in one call using the universal
// class and primitive construction.
package asn1

// Class is the two-bit identifier class of an ASN.1 tag.
type Class uint8

const (
	ClassUniversal       Class = 0b00
	ClassApplication     Class = 0b01
	ClassContextSpecific Class = 0b10
	ClassPrivate         Class = 0b11
)

// Tag enumerates the universal ASN.1 tag numbers.
type Tag uint64

const (
	TagReserved         Tag = 0
	TagBoolean          Tag = 1
	TagInteger          Tag = 2
	TagBitString        Tag = 3
	TagOctetString      Tag = 4
	TagNull             Tag = 5
	TagObjectIdentifier Tag = 6
	TagObjectDescriptor Tag = 7
	TagExternal         Tag = 8
	TagReal             Tag = 9
	TagEnumerated       Tag = 10
	TagEmbeddedPDV      Tag = 11
	TagUTF8String       Tag = 12
	TagRelativeOID      Tag = 13
	TagSequence         Tag = 16
	TagSet              Tag = 17
	TagNumericString    Tag = 18
	TagPrintableString  Tag = 19
	TagTeletextString   Tag = 20
	TagIA5String        Tag = 22
	TagUTCTime          Tag = 23
	TagGeneralizedTime  Tag = 24
	TagGraphicString    Tag = 25
	TagVisibleString    Tag = 26
	TagGeneralString    Tag = 27
	TagUniversalString  Tag = 28
	TagBMPString        Tag = 30
)

var tagNames = [32]string{
	0:  "reserved",
	1:  "boolean",
	2:  "integer",
	3:  "bit_string",
	4:  "octet_string",
	5:  "null",
	6:  "object_identifier",
	7:  "object_descriptor",
	8:  "external",
	9:  "real",
	10: "enumerated",
	11: "embedded_pdv",
	12: "utf8_string",
	13: "relative_oid",
	14: "reserved_14",
	15: "reserved_15",
	16: "sequence",
	17: "set",
	18: "numeric_string",
	19: "printable_string",
	20: "t61_string",
	21: "reserved_21",
	22: "ia5_string",
	23: "utc_time",
	24: "generalized_time",
	25: "graphic_string",
	26: "iso646_string",
	27: "general_string",
	28: "utf32_string",
	29: "reserved_29",
	30: "utf16_string",
	31: "reserved_31",
}

// TagName returns the name of a universal tag number, or "<unknown>" for
// tags outside the universal range.
func TagName(tag Tag) string {
	if tag < 32 {
		return tagNames[tag]
	}

	return "<unknown>"
}

// Ident is a decoded ASN.1 identifier: the tag number together with its
// class and the constructed bit.
type Ident struct {
	Tag         uint64
	Constructed bool
	Class       Class
}

// Header pairs an identifier with the content length that follows it.
type Header struct {
	ID     Ident
	Length uint64
}
