// Package model implements the declaration graph: a flat arena of tagged
// nodes over an append-only string heap.
//
// Nodes are addressed by ID, a 1-based index into the arena; ID 0 is the
// null reference and is never dereferenced for mutation. Cross-references
// between nodes (next, link, attr, source) are IDs, never pointers, so the
// arena can grow without invalidating the graph. A Ref pairs a DB with an
// ID and carries the read API; the raw *Node obtained through Ref.Node
// stays valid only until the next allocation.
//
// The graph is a DAG threaded two ways: container nodes (set, enum,
// struct, union, function, archive, source) point through link at the head
// of an ordered child list chained through next, while reference nodes
// (typedef, field, param, pointer, array, qualifier, constant) point
// through link at the one node they refer to.
package model

// Tag discriminates the node kinds of the declaration graph.
type Tag uint32

const (
	TagNone Tag = iota
	TagIntrinsic
	TagTypedef
	TagSet
	TagEnum
	TagStruct
	TagUnion
	TagField
	TagArray
	TagPointer
	TagConstant
	TagFunction
	TagParam
	TagQualifier
	TagAttribute
	TagValue
	TagArchive
	TagSource
	TagAlias
)

var tagNames = [...]string{
	"none",
	"intrinsic",
	"typedef",
	"set",
	"enum",
	"struct",
	"union",
	"field",
	"array",
	"pointer",
	"constant",
	"function",
	"param",
	"qualifier",
	"attribute",
	"value",
	"archive",
	"source",
	"alias",
}

// String returns the lower-case tag name used in dumps and node hashing.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return "<unknown>"
}

// Props is a many-of bitset of node properties. The flags share one
// namespace but are interpreted per tag: intrinsic class and padding on
// intrinsics, bitfield on fields, qualifiers and binding on interface
// declarations, direction on params.
type Props uint32

const (
	PropVoid     Props = 0
	PropIntegral Props = 1 << 0
	PropReal     Props = 1 << 1
	PropComplex  Props = 1 << 2
	PropSigned   Props = 1 << 3
	PropUnsigned Props = 1 << 4
	PropIEEE754  Props = 1 << 5

	PropSInt   = PropIntegral | PropSigned
	PropUInt   = PropIntegral | PropUnsigned
	PropFloat  = PropReal | PropIEEE754
	PropCFloat = PropComplex | PropIEEE754

	// padding
	PropPadPow2 Props = 1 << 6
	PropPadBit  Props = 1 << 7
	PropPadByte Props = 1 << 8

	// field
	PropBitfield Props = 1 << 9

	// cvr-qualifiers
	PropConst    Props = 1 << 10
	PropVolatile Props = 1 << 11
	PropRestrict Props = 1 << 12

	// interface qualifiers
	PropStatic   Props = 1 << 13
	PropExternC  Props = 1 << 14
	PropInline   Props = 1 << 15
	PropNoReturn Props = 1 << 16

	// binding
	PropLocal  Props = 1 << 17
	PropGlobal Props = 1 << 18
	PropWeak   Props = 1 << 19

	// visibility
	PropDefault Props = 1 << 20
	PropHidden  Props = 1 << 21

	// param direction
	PropIn  Props = 1 << 22
	PropOut Props = 1 << 23

	// variable length array
	PropVLA Props = 1 << 24
)

// ID is a 1-based node index into a DB's arena. 0 is the null reference.
type ID uint32

// Node is the fixed-size arena record. Quantity is a per-tag 64-bit
// quantifier: intrinsic and pointer bit width, array element count,
// constant value, function address, bitfield width.
type Node struct {
	Tag      Tag
	Props    Props
	Name     uint32
	Next     ID
	Link     ID
	Attr     ID
	Source   ID
	Quantity uint64
}

// Ref is a borrowed reference to one node of a DB. The zero Ref and any
// Ref with ID 0 are null.
type Ref struct {
	db *DB
	id ID
}

// IsNull reports whether the reference is the null reference.
func (d Ref) IsNull() bool {
	return d.db == nil || d.id == 0
}

// DB returns the database the reference points into.
func (d Ref) DB() *DB {
	return d.db
}

// ID returns the node id.
func (d Ref) ID() ID {
	return d.id
}

// Node returns a pointer to the arena record. The pointer is invalidated
// by the next NewNode call on the same DB; re-resolve after any growth.
// Returns nil for the null reference.
func (d Ref) Node() *Node {
	if d.IsNull() {
		return nil
	}

	return &d.db.nodes[d.id]
}

// void returns the null reference of the same DB.
func (d Ref) void() Ref {
	return Ref{db: d.db}
}

func (d Ref) node() *Node {
	if d.db == nil {
		return &nullNode
	}

	return &d.db.nodes[d.id]
}

// nullNode backs reads through the zero Ref.
var nullNode Node

// Tag returns the node tag; the null reference has TagNone.
func (d Ref) Tag() Tag {
	return d.node().Tag
}

// Props returns the node property bitset.
func (d Ref) Props() Props {
	return d.node().Props
}

// Quantity returns the per-tag 64-bit quantifier.
func (d Ref) Quantity() uint64 {
	return d.node().Quantity
}

// Name returns the node name, or "" for anonymous nodes.
func (d Ref) Name() string {
	if d.db == nil {
		return ""
	}

	return d.db.NameAt(d.node().Name)
}

// HasName reports whether the node has a nonempty name.
func (d Ref) HasName() bool {
	return d.node().Name != 0
}

// Next returns the next sibling in an ordered child list.
func (d Ref) Next() Ref {
	return Ref{db: d.db, id: d.node().Next}
}

// Link returns the linked node: the child list head for container tags,
// the referenced type otherwise.
func (d Ref) Link() Ref {
	return Ref{db: d.db, id: d.node().Link}
}

// Attr returns the head of the attribute list.
func (d Ref) Attr() Ref {
	return Ref{db: d.db, id: d.node().Attr}
}

// SourceUnit returns the source unit the node came from, if recorded.
func (d Ref) SourceUnit() Ref {
	return Ref{db: d.db, id: d.node().Source}
}

// Is reports whether the node carries the given tag.
func (d Ref) Is(tag Tag) bool {
	return d.Tag() == tag
}

// IsType reports whether the node is a type: typedef, intrinsic, set,
// enum, struct, union, array or pointer.
func (d Ref) IsType() bool {
	switch d.Tag() {
	case TagTypedef, TagIntrinsic, TagSet, TagEnum,
		TagStruct, TagUnion, TagArray, TagPointer:
		return true
	default:
		return false
	}
}

// Producer mutators. These resolve the node at each call so they stay
// valid across arena growth.

// SetName interns the given name in the DB string heap and points the node
// at it.
func (d Ref) SetName(name string) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Name = d.db.NewName(name)
	}

	return d
}

// SetProps replaces the node property bitset.
func (d Ref) SetProps(props Props) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Props = props
	}

	return d
}

// SetQuantity sets the per-tag quantifier.
func (d Ref) SetQuantity(q uint64) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Quantity = q
	}

	return d
}

// SetNext chains the node to its next sibling.
func (d Ref) SetNext(next Ref) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Next = next.id
	}

	return d
}

// SetLink points the node at its child list head or referenced type.
func (d Ref) SetLink(link Ref) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Link = link.id
	}

	return d
}

// SetAttr points the node at its attribute list head.
func (d Ref) SetAttr(attr Ref) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Attr = attr.id
	}

	return d
}

// SetSourceUnit records the source unit the node came from.
func (d Ref) SetSourceUnit(src Ref) Ref {
	if !d.IsNull() {
		d.db.nodes[d.id].Source = src.id
	}

	return d
}
