package link

import (
	"strings"

	"github.com/declkit/declkit/errs"
	"github.com/declkit/declkit/model"
)

// linkState carries the digest-to-destination-id map shared across all
// merge inputs, so a type declared identically in two units collapses to
// one destination node.
type linkState struct {
	m        map[Hash]model.ID
	db       *model.DB
	srcIndex *Index
}

// shouldCopy reports whether a node is freshly instantiated even when its
// digest is already present: every non-container node is, so that
// typedefs, fields, params, pointers, arrays and qualifiers keep
// position-specific next links in the destination graph.
func shouldCopy(d model.Ref) bool {
	switch d.Tag() {
	case model.TagSet, model.TagEnum, model.TagStruct,
		model.TagUnion, model.TagFunction:
		return false
	default:
		return true
	}
}

// copyNode copies the subtree rooted at d into the destination graph,
// reusing container nodes whose digest was already copied. isChild marks
// calls reached through a link rather than a sibling chain: a duplicate
// container reached through a link is returned directly, while one
// reached through a sibling chain is wrapped in an alias so the alias can
// carry its own next link.
func (s *linkState) copyNode(d, p model.Ref, isChild bool) model.Ref {
	// intrinsic prefixes are identical, return the destination intrinsic
	// at the same id
	if d.Is(model.TagIntrinsic) {
		return s.db.Lookup(d.ID())
	}

	h := s.srcIndex.EntryRef(d).Ptr().Hash

	var r model.Ref
	if id, ok := s.m[h]; !ok || shouldCopy(d) {
		r = s.db.NewNode(d.Tag())
		r.SetName(d.Name())
		r.SetProps(d.Props())
		r.SetQuantity(d.Quantity())
		s.m[h] = r.ID()
	} else {
		if isChild {
			return s.db.Lookup(id)
		}
		r = s.db.NewNode(model.TagAlias)
		r.SetName(d.Name())
		r.SetLink(s.db.Lookup(id))
		s.m[h] = r.ID()

		return r
	}

	if !d.Attr().IsNull() {
		c := s.copyNode(d.Attr(), d, false)
		r.SetAttr(c)
	}
	if !d.Link().IsNull() {
		if isContainer(d.Tag()) {
			var last model.Ref
			for next := d.Link(); !next.IsNull(); next = next.Next() {
				c := s.copyNode(next, d, false)
				if last.IsNull() {
					r.SetLink(c)
				} else {
					last.SetNext(c)
				}
				last = c
			}
		} else {
			c := s.copyNode(d.Link(), d, true)
			r.SetLink(c)
		}
	}

	return r
}

// validateInput checks that a merge input shares the destination's
// builtin prefix and that every node reference lies within its arena.
func validateInput(src, dst *model.DB) error {
	if src.BuiltinNodeCount() != dst.BuiltinNodeCount() {
		return errs.ErrIncompatibleBuiltins
	}
	for i := 1; i < src.BuiltinNodeCount(); i++ {
		sn := src.Lookup(model.ID(i))
		dn := dst.Lookup(model.ID(i))
		if sn.Tag() != dn.Tag() || sn.Props() != dn.Props() ||
			sn.Quantity() != dn.Quantity() || sn.Name() != dn.Name() {
			return errs.ErrIncompatibleBuiltins
		}
	}

	count := model.ID(src.NodeCount())
	for _, n := range src.Nodes() {
		if n.Next >= count || n.Link >= count || n.Attr >= count || n.Source >= count {
			return errs.ErrOutOfRangeID
		}
	}

	return nil
}

// basename strips directory components and a trailing extension from an
// archive name.
func basename(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}

	return name
}

// Merge builds a new archive node in db whose children are the
// deduplicated copies of the input graphs' roots, one source per input in
// order. The destination must be a fresh database; its defaults are
// installed here if not already present. Inputs whose builtin prefix
// differs from the destination's are refused.
func Merge(db *model.DB, name string, srcs []*model.DB) error {
	if db.BuiltinNodeCount() <= 1 {
		db.Defaults()
	}

	m := make(map[Hash]model.ID)

	archive := db.NewNode(model.TagArchive)
	archive.SetName(basename(name))
	db.SetRoot(archive)

	var last model.Ref
	for _, src := range srcs {
		if err := validateInput(src, db); err != nil {
			return err
		}

		srcIndex := NewIndex()
		srcIndex.Scan(src)

		state := &linkState{m: m, db: db, srcIndex: srcIndex}
		o := state.copyNode(src.Root(), src.Void(), false)
		if last.IsNull() {
			archive.SetLink(o)
		} else {
			last.SetNext(o)
		}
		last = o
	}

	return nil
}
