package archive

import (
	"github.com/declkit/declkit/endian"
	"github.com/declkit/declkit/errs"
	"github.com/declkit/declkit/internal/pool"
	"github.com/declkit/declkit/model"
)

// Encode serializes the user portion of a database into the container
// format: header, packed node records, string heap.
func Encode(db *model.DB) []byte {
	engine := endian.GetLittleEndianEngine()

	nodes := db.Nodes()
	names := db.NameBytes()
	entryCount := db.NodeCount() - db.BuiltinNodeCount()
	strSize := db.NameSize() - db.BuiltinNameSize()

	hdr := Header{
		EntryCount:      uint32(entryCount),
		StringTableSize: uint32(strSize),
		Root:            uint32(db.Root().ID()),
	}

	bb := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(bb)

	bb.Grow(HeaderSize + entryCount*RecordSize + strSize)
	bb.MustWrite(hdr.Bytes())

	for i := db.BuiltinNodeCount(); i < db.NodeCount(); i++ {
		n := &nodes[i]
		bb.B = engine.AppendUint32(bb.B, uint32(n.Tag))
		bb.B = engine.AppendUint32(bb.B, uint32(n.Props))
		bb.B = engine.AppendUint32(bb.B, n.Name)
		bb.B = engine.AppendUint32(bb.B, uint32(n.Next))
		bb.B = engine.AppendUint32(bb.B, uint32(n.Link))
		bb.B = engine.AppendUint32(bb.B, uint32(n.Attr))
		bb.B = engine.AppendUint32(bb.B, uint32(n.Source))
		bb.B = engine.AppendUint32(bb.B, 0)
		bb.B = engine.AppendUint64(bb.B, n.Quantity)
	}
	bb.MustWrite(names[db.BuiltinNameSize():])

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out
}

// Decode populates a database from container bytes. The database is
// initialised with defaults first; the file is rejected if its root id
// does not line up with the first id after this database's builtin
// prefix, which detects containers produced against a different builtin
// table. Loaded ids line up one-to-one with the new in-memory ids.
func Decode(db *model.DB, data []byte) error {
	var hdr Header
	if err := hdr.Parse(data); err != nil {
		return err
	}

	declSize := int(hdr.EntryCount) * RecordSize
	nameSize := int(hdr.StringTableSize)
	if len(data) < HeaderSize+declSize+nameSize {
		return errs.ErrInvalidHeaderSize
	}

	if db.BuiltinNodeCount() <= 1 {
		db.Defaults()
	}
	if int(hdr.Root) != db.BuiltinNodeCount() || db.NodeCount() != db.BuiltinNodeCount() {
		return errs.ErrIncompatibleBuiltins
	}

	engine := endian.GetLittleEndianEngine()
	total := model.ID(db.BuiltinNodeCount() + int(hdr.EntryCount))
	nameBound := uint32(db.BuiltinNameSize() + nameSize)

	nodes := make([]model.Node, hdr.EntryCount)
	for i := range nodes {
		rec := data[HeaderSize+i*RecordSize:]
		n := &nodes[i]
		n.Tag = model.Tag(engine.Uint32(rec[0:4]))
		n.Props = model.Props(engine.Uint32(rec[4:8]))
		n.Name = engine.Uint32(rec[8:12])
		n.Next = model.ID(engine.Uint32(rec[12:16]))
		n.Link = model.ID(engine.Uint32(rec[16:20]))
		n.Attr = model.ID(engine.Uint32(rec[20:24]))
		n.Source = model.ID(engine.Uint32(rec[24:28]))
		n.Quantity = engine.Uint64(rec[32:40])

		if n.Next >= total || n.Link >= total || n.Attr >= total || n.Source >= total {
			return errs.ErrOutOfRangeID
		}
		if n.Name >= nameBound {
			return errs.ErrOutOfRangeID
		}
	}

	db.AppendNodes(nodes)
	db.AppendNames(data[HeaderSize+declSize : HeaderSize+declSize+nameSize])
	db.SetRootID(model.ID(hdr.Root))

	return nil
}
