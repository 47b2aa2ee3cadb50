package model

// DB owns a node arena and a string heap. Index 0 of the arena is the
// reserved null node and offset 0 of the heap is the empty string, so ids
// and name offsets of 0 read as "none". After Defaults installs the
// built-in intrinsic prefix, the builtin counts freeze the boundary
// between the fixed prefix and user declarations; the on-disk container
// serializes only the user suffix.
type DB struct {
	nodes       []Node
	declBuiltin int

	names       []byte
	nameBuiltin int

	root ID
}

const (
	initialDeclCapacity = 32
	initialNameCapacity = 32
)

// NewDB allocates an empty database with the reserved null node and empty
// string in place. Call Defaults before adding user declarations.
func NewDB() *DB {
	db := &DB{
		nodes:       make([]Node, 1, initialDeclCapacity),
		declBuiltin: 1,
		names:       make([]byte, 1, initialNameCapacity),
		nameBuiltin: 1,
	}

	return db
}

// Defaults installs the built-in intrinsic table and freezes the builtin
// prefix counts. The table is fixed: changing it breaks container
// compatibility.
func (db *DB) Defaults() {
	for _, ct := range builtinTypes {
		r := db.NewNode(TagIntrinsic)
		n := r.Node()
		n.Name = db.NewName(ct.name)
		n.Props = ct.props
		n.Quantity = ct.width
	}
	db.declBuiltin = len(db.nodes)
	db.nameBuiltin = len(db.names)
}

// NewNode appends a zeroed node with the given tag and returns its
// reference. The arena grows geometrically; ids remain stable across
// growth but raw node pointers do not.
func (db *DB) NewNode(tag Tag) Ref {
	db.nodes = append(db.nodes, Node{Tag: tag})

	return Ref{db: db, id: ID(len(db.nodes) - 1)}
}

// NewName appends a NUL-terminated copy of name to the string heap and
// returns its offset. The empty string returns offset 0. Names are not
// deduplicated; equality is by string compare, never by offset.
func (db *DB) NewName(name string) uint32 {
	if name == "" {
		return 0
	}

	offset := uint32(len(db.names))
	db.names = append(db.names, name...)
	db.names = append(db.names, 0)

	return offset
}

// NameAt returns the NUL-terminated string at the given heap offset.
func (db *DB) NameAt(offset uint32) string {
	if offset == 0 || int(offset) >= len(db.names) {
		return ""
	}

	end := int(offset)
	for end < len(db.names) && db.names[end] != 0 {
		end++
	}

	return string(db.names[offset:end])
}

// Lookup returns a reference to the node with the given id. Out-of-range
// ids return the null reference.
func (db *DB) Lookup(id ID) Ref {
	if int(id) >= len(db.nodes) {
		return Ref{db: db}
	}

	return Ref{db: db, id: id}
}

// Void returns the null reference of this database.
func (db *DB) Void() Ref {
	return Ref{db: db}
}

// Root returns the root element: the archive or source at the top of the
// graph.
func (db *DB) Root() Ref {
	return db.Lookup(db.root)
}

// SetRoot records the root element id.
func (db *DB) SetRoot(r Ref) {
	db.root = r.id
}

// Intrinsic scans for an intrinsic whose width matches exactly and whose
// properties are a superset of the requested bits. Returns the null
// reference if none match.
func (db *DB) Intrinsic(props Props, width uint64) Ref {
	for i := range db.nodes {
		n := &db.nodes[i]
		if n.Tag == TagIntrinsic && n.Quantity == width && n.Props&props == props {
			return Ref{db: db, id: ID(i)}
		}
	}

	return Ref{db: db}
}

// NodeCount returns the total node count including the null node and the
// builtin prefix.
func (db *DB) NodeCount() int {
	return len(db.nodes)
}

// BuiltinNodeCount returns the node count of the builtin prefix, which is
// also the id of the first user declaration.
func (db *DB) BuiltinNodeCount() int {
	return db.declBuiltin
}

// NameSize returns the string heap size in bytes.
func (db *DB) NameSize() int {
	return len(db.names)
}

// BuiltinNameSize returns the string heap size of the builtin prefix.
func (db *DB) BuiltinNameSize() int {
	return db.nameBuiltin
}

// Nodes returns the arena, including the reserved null node. The slice
// aliases the arena and is invalidated by NewNode.
func (db *DB) Nodes() []Node {
	return db.nodes
}

// NameBytes returns the string heap. The slice aliases the heap and is
// invalidated by NewName.
func (db *DB) NameBytes() []byte {
	return db.names
}

// AppendNodes appends pre-built nodes to the arena, preserving their
// order. Used by container readers; ids line up one-to-one with the
// loaded records.
func (db *DB) AppendNodes(nodes []Node) {
	db.nodes = append(db.nodes, nodes...)
}

// AppendNames appends raw string heap bytes. Used by container readers.
func (db *DB) AppendNames(names []byte) {
	db.names = append(db.names, names...)
}

// SetRootID records the root element by id, validating nothing. Used by
// container readers after appending loaded nodes.
func (db *DB) SetRootID(id ID) {
	db.root = id
}
