package model

import "iter"

// Tagged accessors. Each returns the link of the node only when the tag
// matches the accessor; any other tag returns the null reference. This
// keeps the query layer total: callers test with IsNull rather than
// handling errors.

// TypedefType returns the type a typedef aliases.
func (d Ref) TypedefType() Ref {
	if d.Is(TagTypedef) {
		return d.Link()
	}

	return d.void()
}

// FieldType returns the type of a field.
func (d Ref) FieldType() Ref {
	if d.Is(TagField) {
		return d.Link()
	}

	return d.void()
}

// ArrayType returns the element type of an array.
func (d Ref) ArrayType() Ref {
	if d.Is(TagArray) {
		return d.Link()
	}

	return d.void()
}

// PointerType returns the referent type of a pointer.
func (d Ref) PointerType() Ref {
	if d.Is(TagPointer) {
		return d.Link()
	}

	return d.void()
}

// ConstantType returns the type of a constant.
func (d Ref) ConstantType() Ref {
	if d.Is(TagConstant) {
		return d.Link()
	}

	return d.void()
}

// ParamType returns the type of a parameter.
func (d Ref) ParamType() Ref {
	if d.Is(TagParam) {
		return d.Link()
	}

	return d.void()
}

// QualifierType returns the type a qualifier wraps.
func (d Ref) QualifierType() Ref {
	if d.Is(TagQualifier) {
		return d.Link()
	}

	return d.void()
}

// AliasTarget returns the canonical node an alias redirects to.
func (d Ref) AliasTarget() Ref {
	if d.Is(TagAlias) {
		return d.Link()
	}

	return d.void()
}

// ConstantValue returns the value of a constant, or 0 for other tags.
func (d Ref) ConstantValue() uint64 {
	if d.Is(TagConstant) {
		return d.Quantity()
	}

	return 0
}

// FunctionAddr returns the address quantifier of a function, or 0 for
// other tags.
func (d Ref) FunctionAddr() uint64 {
	if d.Is(TagFunction) {
		return d.Quantity()
	}

	return 0
}

// children walks the link/next chain of a container node, yielding the
// children matching pred. A tag mismatch yields nothing.
func children(d Ref, tag Tag, pred func(Ref) bool) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		if !d.Is(tag) {
			return
		}
		for c := d.Link(); !c.IsNull(); c = c.Next() {
			if pred != nil && !pred(c) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func isAny(Ref) bool { return true }

// EnumConstants iterates the constants of an enum in declaration order.
func (d Ref) EnumConstants() iter.Seq[Ref] {
	return children(d, TagEnum, func(c Ref) bool { return c.Is(TagConstant) })
}

// SetConstants iterates the mask constants of a set in declaration order.
func (d Ref) SetConstants() iter.Seq[Ref] {
	return children(d, TagSet, func(c Ref) bool { return c.Is(TagConstant) })
}

// StructFields iterates the fields of a struct in declaration order.
func (d Ref) StructFields() iter.Seq[Ref] {
	return children(d, TagStruct, func(c Ref) bool { return c.Is(TagField) })
}

// UnionFields iterates the fields of a union in declaration order.
func (d Ref) UnionFields() iter.Seq[Ref] {
	return children(d, TagUnion, func(c Ref) bool { return c.Is(TagField) })
}

// FunctionParams iterates the parameters of a function in order. The
// first parameter is the return type, carrying the out direction.
func (d Ref) FunctionParams() iter.Seq[Ref] {
	return children(d, TagFunction, func(c Ref) bool { return c.Is(TagParam) })
}

// SourceDecls iterates every declaration of a source unit in order.
func (d Ref) SourceDecls() iter.Seq[Ref] {
	return children(d, TagSource, isAny)
}

// SourceTypes iterates the type declarations of a source unit.
func (d Ref) SourceTypes() iter.Seq[Ref] {
	return children(d, TagSource, Ref.IsType)
}

// SourceFields iterates the top-level fields of a source unit.
func (d Ref) SourceFields() iter.Seq[Ref] {
	return children(d, TagSource, func(c Ref) bool { return c.Is(TagField) })
}

// SourceFunctions iterates the functions of a source unit.
func (d Ref) SourceFunctions() iter.Seq[Ref] {
	return children(d, TagSource, func(c Ref) bool { return c.Is(TagFunction) })
}

// ArchiveSources iterates the source units of an archive in merge order.
func (d Ref) ArchiveSources() iter.Seq[Ref] {
	return children(d, TagArchive, func(c Ref) bool { return c.Is(TagSource) })
}

// Collect drains an enumerator into a slice.
func Collect(seq iter.Seq[Ref]) []Ref {
	var out []Ref
	for r := range seq {
		out = append(out, r)
	}

	return out
}

// Count counts the elements of an enumerator without collecting them.
func Count(seq iter.Seq[Ref]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}
