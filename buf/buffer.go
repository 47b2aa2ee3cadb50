// Package buf implements the bounded byte cursor the declkit codecs encode
// into and decode from.
//
// A Buffer has a fixed capacity and a single position shared by reads and
// writes. Fixed-width integers are serialized little-endian regardless of
// host order. All operations report progress through their byte count: a
// write that does not fit returns 0 and leaves the buffer untouched, a read
// past the end returns 0. The codecs built on top translate a zero count
// into their overflow/underflow errors.
package buf

import (
	"github.com/declkit/declkit/endian"
)

// Span is a borrowed view of the unread tail of a Buffer. It remains valid
// until the buffer is repositioned or written.
type Span struct {
	Data []byte
}

// Length returns the number of bytes in the span.
func (s Span) Length() int {
	return len(s.Data)
}

// Buffer is a fixed-capacity byte cursor. The read and write position is
// shared; Seek and Reset reposition it absolutely.
type Buffer struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// New creates a Buffer with the given capacity, positioned at offset 0.
func New(size int) *Buffer {
	return &Buffer{
		data:   make([]byte, size),
		engine: endian.GetLittleEndianEngine(),
	}
}

// NewFrom wraps an existing byte slice in a Buffer positioned at offset 0.
// The buffer aliases data; it does not copy.
func NewFrom(data []byte) *Buffer {
	return &Buffer{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Data returns the full underlying byte slice, including bytes beyond the
// current offset.
func (b *Buffer) Data() []byte {
	return b.data
}

// Bytes returns the bytes written so far, up to the current offset.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.offset]
}

// Size returns the buffer capacity.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Offset returns the current cursor position.
func (b *Buffer) Offset() int {
	return b.offset
}

// Seek repositions the cursor absolutely. Offsets beyond the capacity are
// clamped to it.
func (b *Buffer) Seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.data) {
		offset = len(b.data)
	}
	b.offset = offset
}

// Reset repositions the cursor to offset 0.
func (b *Buffer) Reset() {
	b.offset = 0
}

// Remaining returns a span over the unread tail.
func (b *Buffer) Remaining() Span {
	return Span{Data: b.data[b.offset:]}
}

// WriteUint8 writes one byte. Returns 1, or 0 on overflow.
func (b *Buffer) WriteUint8(v uint8) int {
	if b.offset+1 > len(b.data) {
		return 0
	}
	b.data[b.offset] = v
	b.offset++

	return 1
}

// WriteUint16 writes a little-endian 16-bit integer. Returns 2, or 0 on overflow.
func (b *Buffer) WriteUint16(v uint16) int {
	if b.offset+2 > len(b.data) {
		return 0
	}
	b.engine.PutUint16(b.data[b.offset:], v)
	b.offset += 2

	return 2
}

// WriteUint32 writes a little-endian 32-bit integer. Returns 4, or 0 on overflow.
func (b *Buffer) WriteUint32(v uint32) int {
	if b.offset+4 > len(b.data) {
		return 0
	}
	b.engine.PutUint32(b.data[b.offset:], v)
	b.offset += 4

	return 4
}

// WriteUint64 writes a little-endian 64-bit integer. Returns 8, or 0 on overflow.
func (b *Buffer) WriteUint64(v uint64) int {
	if b.offset+8 > len(b.data) {
		return 0
	}
	b.engine.PutUint64(b.data[b.offset:], v)
	b.offset += 8

	return 8
}

// WriteBytes writes a byte run. Returns len(p), or 0 on overflow.
func (b *Buffer) WriteBytes(p []byte) int {
	if b.offset+len(p) > len(b.data) {
		return 0
	}
	copy(b.data[b.offset:], p)
	b.offset += len(p)

	return len(p)
}

// ReadUint8 reads one byte. The count is 1, or 0 on underflow.
func (b *Buffer) ReadUint8() (uint8, int) {
	if b.offset+1 > len(b.data) {
		return 0, 0
	}
	v := b.data[b.offset]
	b.offset++

	return v, 1
}

// ReadUint16 reads a little-endian 16-bit integer. The count is 2, or 0 on underflow.
func (b *Buffer) ReadUint16() (uint16, int) {
	if b.offset+2 > len(b.data) {
		return 0, 0
	}
	v := b.engine.Uint16(b.data[b.offset:])
	b.offset += 2

	return v, 2
}

// ReadUint32 reads a little-endian 32-bit integer. The count is 4, or 0 on underflow.
func (b *Buffer) ReadUint32() (uint32, int) {
	if b.offset+4 > len(b.data) {
		return 0, 0
	}
	v := b.engine.Uint32(b.data[b.offset:])
	b.offset += 4

	return v, 4
}

// ReadUint64 reads a little-endian 64-bit integer. The count is 8, or 0 on underflow.
func (b *Buffer) ReadUint64() (uint64, int) {
	if b.offset+8 > len(b.data) {
		return 0, 0
	}
	v := b.engine.Uint64(b.data[b.offset:])
	b.offset += 8

	return v, 8
}

// ReadBytes fills p from the cursor. The count is len(p), or 0 on underflow.
func (b *Buffer) ReadBytes(p []byte) int {
	if b.offset+len(p) > len(b.data) {
		return 0
	}
	copy(p, b.data[b.offset:])
	b.offset += len(p)

	return len(p)
}
