// Package link gives every node of a declaration graph a canonical
// content hash, indexes graphs by fully qualified name, and merges many
// graphs into one deduplicated archive.
//
// The hash is a SHA-224 digest over a node's identifying content: tag,
// name, properties, quantity and the digests of its linked nodes. Ids and
// next links are excluded, so the digest is position invariant: identical
// declarations in different translation units hash to identical values,
// which is what drives the merge.
package link

import (
	"math/bits"

	"github.com/declkit/declkit/internal/collision"
	"github.com/declkit/declkit/internal/hash"
	"github.com/declkit/declkit/model"
)

// HashSize is the digest size in bytes (SHA-224).
const HashSize = 28

// Hash is a node content digest.
type Hash [HashSize]byte

// entry property flags.
const (
	entryMarked uint32 = 1 << iota
	entryValid
)

// Entry is the per-node index record: the FQN offset into the index's
// private string heap, the visit state used for cycle detection, and the
// content digest.
type Entry struct {
	FQN   uint32
	props uint32
	Hash  Hash
}

// EntryRef is a borrowed reference to one index entry. Like node
// references it stays valid across index growth by re-resolving on use.
type EntryRef struct {
	index *Index
	id    model.ID
}

// Ptr resolves the entry record. The pointer is invalidated when the
// entry array grows.
func (er EntryRef) Ptr() *Entry {
	return &er.index.entries[er.id]
}

// Marked reports whether the hasher has started visiting the node.
func (er EntryRef) Marked() bool {
	return er.Ptr().props&entryMarked != 0
}

// Valid reports whether the digest and FQN are complete.
func (er EntryRef) Valid() bool {
	return er.Ptr().props&entryValid != 0
}

// FQN returns the fully qualified name recorded for the entry.
func (er EntryRef) FQN() string {
	return er.index.nameAt(er.Ptr().FQN)
}

// Index holds one entry per node id of a scanned graph plus a private
// string heap for fully qualified names. Entries are created lazily as
// the hasher visits nodes.
type Index struct {
	entries []Entry
	names   []byte

	byFQN   map[uint64][]model.ID
	tracker *collision.Tracker
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		entries: make([]Entry, 1, 32),
		names:   make([]byte, 1, 32),
		byFQN:   make(map[uint64][]model.ID),
		tracker: collision.NewTracker(),
	}
}

// EntryRef returns a reference to the entry for the given node, growing
// the entry array to the next power of two above the id when needed.
func (x *Index) EntryRef(d model.Ref) EntryRef {
	id := d.ID()
	if int(id) >= len(x.entries) {
		size := 1 << bits.Len64(uint64(id))
		grown := make([]Entry, size)
		copy(grown, x.entries)
		x.entries = grown
	}

	return EntryRef{index: x, id: id}
}

// newName appends a NUL-terminated FQN to the private heap.
func (x *Index) newName(name string) uint32 {
	if name == "" {
		return 0
	}

	offset := uint32(len(x.names))
	x.names = append(x.names, name...)
	x.names = append(x.names, 0)

	return offset
}

func (x *Index) nameAt(offset uint32) string {
	if offset == 0 || int(offset) >= len(x.names) {
		return ""
	}

	end := int(offset)
	for end < len(x.names) && x.names[end] != 0 {
		end++
	}

	return string(x.names[offset:end])
}

// Scan hashes every node reachable from the graph root, stamping each
// entry with its digest and fully qualified name, then builds the FQN
// lookup table.
func (x *Index) Scan(db *model.DB) {
	d := db.Root()
	x.nodeHash(d, db.Void(), "")

	for i := 1; i < len(x.entries); i++ {
		e := &x.entries[i]
		if e.props&entryValid == 0 || e.FQN == 0 {
			continue
		}
		fqn := x.nameAt(e.FQN)
		key := hash.ID(fqn)
		x.tracker.Track(fqn, key)
		x.byFQN[key] = append(x.byFQN[key], model.ID(i))
	}
}

// LookupFQN resolves a fully qualified name to a node of the scanned
// graph. The first node recorded under the name wins; the null reference
// is returned when the name is unknown.
func (x *Index) LookupFQN(db *model.DB, fqn string) model.Ref {
	for _, id := range x.byFQN[hash.ID(fqn)] {
		if x.nameAt(x.entries[id].FQN) == fqn {
			return db.Lookup(id)
		}
	}

	return db.Void()
}

// HasCollision reports whether two distinct FQNs share a 64-bit lookup
// key. Lookups remain correct either way; the flag is informational.
func (x *Index) HasCollision() bool {
	return x.tracker.HasCollision()
}

// NodeHash returns the digest recorded for a node, or false if the node
// has not been scanned.
func (x *Index) NodeHash(d model.Ref) (Hash, bool) {
	if int(d.ID()) >= len(x.entries) {
		return Hash{}, false
	}
	e := &x.entries[d.ID()]
	if e.props&entryValid == 0 {
		return Hash{}, false
	}

	return e.Hash, true
}

// NodeFQN returns the fully qualified name recorded for a node.
func (x *Index) NodeFQN(d model.Ref) string {
	if int(d.ID()) >= len(x.entries) {
		return ""
	}

	return x.nameAt(x.entries[d.ID()].FQN)
}
