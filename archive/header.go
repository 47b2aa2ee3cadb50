// Package archive serializes declaration graphs to the on-disk container
// format and back.
//
// The container is a fixed header followed by the packed user node records
// and the user portion of the string heap; the built-in intrinsic prefix
// is elided for compactness and reinstalled from defaults on load, which
// pins the file to the builtin table it was produced against. All fields
// are little-endian regardless of host order.
//
// WriteFile and ReadFile add an optional compression envelope around the
// container; Encode and Decode always produce and consume the raw format.
package archive

import (
	"github.com/declkit/declkit/endian"
	"github.com/declkit/declkit/errs"
)

const (
	// HeaderSize is the fixed container header size in bytes.
	HeaderSize = 20

	// RecordSize is the packed node record size: seven 32-bit fields,
	// four bytes of padding for natural alignment, then the 64-bit
	// quantity.
	RecordSize = 40

	// MagicSize is the length of the magic prefix.
	MagicSize = 8
)

// Magic identifies an uncompressed container.
var Magic = [MagicSize]byte{'c', 'r', 'e', 'f', 'l', '_', '0', '0'}

// CompressedMagic identifies the compressed envelope: the magic is
// followed by one compression-type byte, the VLU-encoded raw container
// size and the compressed container.
var CompressedMagic = [MagicSize]byte{'c', 'r', 'e', 'f', 'l', '_', 'z', 'c'}

// Header is the fixed container header.
type Header struct {
	// EntryCount is the number of user node records, excluding the
	// built-in intrinsic prefix.
	EntryCount uint32
	// StringTableSize is the byte count of the user string heap portion.
	StringTableSize uint32
	// Root is the root element id: the archive or source at the top of
	// the graph.
	Root uint32
}

// Parse parses the header from a byte slice, validating the magic.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if [MagicSize]byte(data[:MagicSize]) != Magic {
		return errs.ErrInvalidMagic
	}

	engine := endian.GetLittleEndianEngine()
	h.EntryCount = engine.Uint32(data[8:12])
	h.StringTableSize = engine.Uint32(data[12:16])
	h.Root = engine.Uint32(data[16:20])

	return nil
}

// Bytes serializes the header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:8], Magic[:])
	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(b[8:12], h.EntryCount)
	engine.PutUint32(b[12:16], h.StringTableSize)
	engine.PutUint32(b[16:20], h.Root)

	return b
}
