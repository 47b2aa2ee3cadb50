// Package endian provides the byte order engine for the declkit wire
// formats.
//
// Every declkit format — the byte cursor, the archive container, the node
// hash — is little-endian regardless of host order, so the package exposes
// exactly that: a single engine combining the ByteOrder and
// AppendByteOrder interfaces from encoding/binary, letting encoders both
// overwrite fixed slots and append to growing buffers through one value.
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(hdr[12:16], entryCount)
//	body = engine.AppendUint64(body, quantity)
//
// The returned engine is immutable, stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface, satisfied by
// binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine for the declkit wire order.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
