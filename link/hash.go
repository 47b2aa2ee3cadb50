package link

import (
	"crypto/sha256"
	"hash"

	"github.com/declkit/declkit/endian"
	"github.com/declkit/declkit/model"
)

/*
 * node hash algorithm
 *
 * nodes are hashed with the following template where $(var-name) has been
 * substituted with the node property of the same name and H(id) refers to
 * the bytes of the hash of the node with that id:
 *
 * - (T=$(tag);N=$(name);P=$(props);Q=$(quantity)[;A=;H=<H($(attr))>][<link>])
 *
 * where <link> is ;L= followed by ;X=;H=<H(child)> for each child of a
 * container, and ;H=<H($(link))> for any other tag.
 *
 * e.g. the integral unsigned intrinsic 'ulong'
 *
 * - (T=intrinsic;N=ulong;P=<props bytes>;Q=<quantity bytes>)
 *
 * nodes have a unique SHA-224 hash with the following constraints:
 *
 * - hashes include all identity information excluding internally assigned
 *   ids and next links, so that node hashes are position invariant.
 * - identical declarations in different modules have identical hashes.
 * - adjacency information is included based on the order nodes are absorbed.
 * - while a node's hash sum includes its own name directly, links to
 *   dependent nodes absorb the hash sum of the dependent, not its name.
 * - nodes can thus link to dependencies without knowing their names.
 * - semicolon is used as a delimiter as it does not occur in type names.
 * - SHA-224 is used because it is not subject to length extension attacks.
 */
const (
	tagDelimiter      = "(T="
	nameDelimiter     = ";N="
	propsDelimiter    = ";P="
	quantityDelimiter = ";Q="
	attrDelimiter     = ";A="
	linkDelimiter     = ";L="
	nextDelimiter     = ";X="
	hashDelimiter     = ";H="
	endDelimiter      = ")"

	fqnSeparator = "::"
)

// isContainer reports whether a tag's link points at an ordered child
// list rather than a single referenced node.
func isContainer(tag model.Tag) bool {
	switch tag {
	case model.TagArchive, model.TagSource, model.TagSet, model.TagEnum,
		model.TagStruct, model.TagUnion, model.TagFunction:
		return true
	default:
		return false
	}
}

// nodeFQN derives the fully qualified name of d hashed under parent p with
// the accumulated prefix. Children of a source or archive restart the
// prefix at their own name; arrays and pointers borrow the parent's name;
// anonymous nodes pass the prefix through unchanged.
func nodeFQN(d, p model.Ref, prefix string) string {
	if p.Is(model.TagSource) || p.Is(model.TagArchive) {
		return d.Name()
	}

	switch d.Tag() {
	case model.TagArray, model.TagPointer:
		return prefix
	}

	if name := d.Name(); name != "" {
		if prefix == "" {
			return name
		}

		return prefix + fqnSeparator + name
	}

	return prefix
}

func absorb(sum hash.Hash, s string) {
	sum.Write([]byte(s))
}

// hashNodeSum absorbs the identifying content of d into sum. Props and
// quantity are absorbed as their raw little-endian bytes.
func (x *Index) hashNodeSum(sum hash.Hash, d, p model.Ref, prefix string) {
	engine := endian.GetLittleEndianEngine()

	absorb(sum, tagDelimiter)
	absorb(sum, d.Tag().String())
	absorb(sum, nameDelimiter)
	absorb(sum, d.Name())
	absorb(sum, propsDelimiter)
	sum.Write(engine.AppendUint32(nil, uint32(d.Props())))
	absorb(sum, quantityDelimiter)
	sum.Write(engine.AppendUint64(nil, d.Quantity()))

	if !d.Attr().IsNull() {
		absorb(sum, attrDelimiter)
		h := x.nodeHash(d.Attr(), d, prefix)
		absorb(sum, hashDelimiter)
		sum.Write(h[:])
	}
	if !d.Link().IsNull() {
		if isContainer(d.Tag()) {
			// follow link to the child list for container types; the
			// list carries typedefs, fields, pointers, arrays, etc.
			absorb(sum, linkDelimiter)
			for next := d.Link(); !next.IsNull(); next = next.Next() {
				absorb(sum, nextDelimiter)
				h := x.nodeHash(next, d, prefix)
				absorb(sum, hashDelimiter)
				sum.Write(h[:])
			}
		} else {
			// follow link to the single child without processing next;
			// following next here would cycle through type references
			// to adjacent anonymous types. A marked-but-invalid child
			// is a cycle: absorb its tag and name in place of a digest.
			next := d.Link()
			er := x.EntryRef(next)
			if er.Marked() && !er.Valid() {
				absorb(sum, next.Tag().String())
				absorb(sum, next.Name())
			} else {
				h := x.nodeHash(next, d, prefix)
				absorb(sum, hashDelimiter)
				sum.Write(h[:])
			}
		}
	}
	absorb(sum, endDelimiter)
}

// nodeHash returns the digest of d hashed under parent p, computing and
// caching it on first visit. Aliases are transparent: an anonymous alias
// takes its target's digest verbatim, a named alias absorbs its name over
// the target's digest.
func (x *Index) nodeHash(d, p model.Ref, prefix string) Hash {
	er := x.EntryRef(d)
	prefix = nodeFQN(d, p, prefix)

	if !er.Valid() {
		if d.Is(model.TagAlias) {
			return x.aliasHash(er, d, p, prefix)
		}

		er.Ptr().props |= entryMarked
		sum := sha256.New224()
		x.hashNodeSum(sum, d, p, prefix)

		ent := er.Ptr() // re-resolve, hashing may have grown the entries
		sum.Sum(ent.Hash[:0])
		fqn := x.newName(prefix)
		ent = er.Ptr()
		ent.FQN = fqn
		ent.props |= entryValid
	}

	return er.Ptr().Hash
}

func (x *Index) aliasHash(er EntryRef, d, p model.Ref, prefix string) Hash {
	er.Ptr().props |= entryMarked

	target := x.nodeHash(d.Link(), p, prefix)

	var h Hash
	if !d.HasName() {
		h = target
	} else {
		sum := sha256.New224()
		absorb(sum, tagDelimiter)
		absorb(sum, d.Tag().String())
		absorb(sum, nameDelimiter)
		absorb(sum, d.Name())
		absorb(sum, hashDelimiter)
		sum.Write(target[:])
		absorb(sum, endDelimiter)
		sum.Sum(h[:0])
	}

	fqn := x.newName(prefix)
	ent := er.Ptr()
	ent.Hash = h
	ent.FQN = fqn
	ent.props |= entryValid

	return h
}
