// Package declkit provides a reflection toolchain for statically typed
// systems languages: declarations extracted from translated source units
// are held in a compact content-addressed graph, merged across units, and
// persisted in a portable container.
//
// # Core packages
//
//   - model: the declaration graph itself, a flat arena of tagged nodes
//     over a string heap, with width computation and child enumerators
//   - link: SHA-224 content hashing, the FQN index, and the deduplicating
//     merge of many graphs into one archive
//   - archive: the on-disk container with optional compression
//   - asn1: ASN.1 BER/DER primitives plus the LEB128, VLU and VF codecs
//   - buf: the bounded byte cursor the codecs operate on
//
// # Basic usage
//
// Building a graph and persisting it:
//
//	db := declkit.NewDB()
//	src := db.NewNode(model.TagSource).SetName("point.h")
//	db.SetRoot(src)
//
//	st := db.NewNode(model.TagStruct).SetName("point")
//	src.SetLink(st)
//
//	f := db.NewNode(model.TagField).SetName("x")
//	f.SetLink(db.Intrinsic(model.PropFloat, 32))
//	st.SetLink(f)
//
//	err := declkit.WriteFile("point.refl", db)
//
// Merging archives from several units:
//
//	out := model.NewDB()
//	err := declkit.Merge(out, "program", []*model.DB{unit1, unit2})
//
// This package provides convenient top-level wrappers around the model,
// link and archive packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package declkit

import (
	"github.com/declkit/declkit/archive"
	"github.com/declkit/declkit/internal/hash"
	"github.com/declkit/declkit/link"
	"github.com/declkit/declkit/model"
)

// NewDB creates a database with the built-in intrinsic table installed,
// ready for user declarations.
func NewDB() *model.DB {
	db := model.NewDB()
	db.Defaults()

	return db
}

// FQNID computes the 64-bit lookup key of a fully qualified name, the
// same key the link index uses internally.
func FQNID(fqn string) uint64 {
	return hash.ID(fqn)
}

// Scan indexes a graph: every node reachable from the root is stamped
// with its content hash and fully qualified name.
func Scan(db *model.DB) *link.Index {
	index := link.NewIndex()
	index.Scan(db)

	return index
}

// Merge builds a deduplicated archive in db from the given source
// databases. See link.Merge.
func Merge(db *model.DB, name string, srcs []*model.DB) error {
	return link.Merge(db, name, srcs)
}

// WriteFile serializes a database to path. See archive.WriteFile.
func WriteFile(path string, db *model.DB, opts ...archive.FileOption) error {
	return archive.WriteFile(path, db, opts...)
}

// ReadFile loads a container file into a fresh database. See
// archive.ReadFile.
func ReadFile(path string, db *model.DB) error {
	return archive.ReadFile(path, db)
}
