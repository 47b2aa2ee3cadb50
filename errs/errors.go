// Package errs defines the sentinel errors shared across declkit packages.
//
// Codec errors are deliberately coarse: a caller that needs to distinguish
// a truncated stream from a malformed one checks for ErrBufferUnderflow
// versus the format-specific errors. All errors are comparable with
// errors.Is.
package errs

import "errors"

// Cursor errors.
var (
	// ErrBufferOverflow is returned when an encoder cannot fit its output
	// in the remaining capacity of a cursor.
	ErrBufferOverflow = errors.New("buffer overflow")
	// ErrBufferUnderflow is returned when a decoder cannot extract the
	// expected number of bytes from a cursor.
	ErrBufferUnderflow = errors.New("buffer underflow")
)

// Codec errors.
var (
	// ErrTagOverflow is returned when an identifier tag exceeds 56 bits.
	ErrTagOverflow = errors.New("tag exceeds 56 bits")
	// ErrInvalidTag is returned when a long-form tag encodes a value below
	// 0x1f, or a DER read encounters an unexpected tag.
	ErrInvalidTag = errors.New("invalid tag")
	// ErrInvalidLength is returned for an indefinite or oversized length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrIntegerOverflow is returned when an integer is wider than 8 bytes
	// or a varint carries more than 64 value bits.
	ErrIntegerOverflow = errors.New("integer overflow")
	// ErrInvalidReal is returned for a real value with an unsupported
	// base, scale factor or exponent encoding, or when the decoded
	// exponent or mantissa does not fit IEEE-754.
	ErrInvalidReal = errors.New("invalid real encoding")
	// ErrOIDOverflow names an object identifier overflow. The asn1 codecs
	// do not return it: ReadOIDInto reports the true component count for a
	// short buffer, and arcs wider than 56 bits fail with ErrTagOverflow.
	ErrOIDOverflow = errors.New("object identifier overflow")
	// ErrInvalidOID is returned for a malformed object identifier string.
	ErrInvalidOID = errors.New("invalid object identifier")
)

// Graph and archive errors.
var (
	// ErrInvalidMagic is returned when a container does not start with a
	// known magic sequence.
	ErrInvalidMagic = errors.New("invalid magic")
	// ErrInvalidHeaderSize is returned when a container is shorter than
	// its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrIncompatibleBuiltins is returned when a container or merge input
	// was produced against a different built-in intrinsic table.
	ErrIncompatibleBuiltins = errors.New("incompatible builtin types")
	// ErrOutOfRangeID is returned when a loaded graph references a node id
	// outside its arena.
	ErrOutOfRangeID = errors.New("node id out of range")
	// ErrInvalidCompression is returned for an unknown compression type in
	// a compressed container.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrFQNCollision is returned when two distinct fully qualified names
	// hash to the same 64-bit lookup key and no name list is available to
	// disambiguate them.
	ErrFQNCollision = errors.New("fully qualified name hash collision")
)
