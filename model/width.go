package model

import "math/bits"

// maxAlignShift caps power-of-two alignment at 2^9 bits (512 bits).
const maxAlignShift = 9

// padAlign rounds a running bit offset and a member width according to the
// padding policy, then accumulates count elements:
//
//   - PropPadByte: both the start offset and the width round up to the
//     next byte boundary.
//   - PropPadPow2: both round up to the next 2^n-bit boundary where n is
//     floor(log2(width)) capped at maxAlignShift.
//   - neither: the width accumulates unaligned.
func padAlign(offset, width, count uint64, props Props) uint64 {
	var addend uint64

	switch {
	case props&PropPadByte != 0:
		offset = (offset + 7) &^ 7
		addend = (width + 7) &^ 7
	case props&PropPadPow2 != 0 && width != 0:
		n := uint(bits.Len64(width) - 1)
		if n > maxAlignShift {
			n = maxAlignShift
		}
		mask := uint64(1)<<n - 1
		offset = (offset + mask) &^ mask
		addend = (width + mask) &^ mask
	default:
		addend = width
	}

	return offset + addend*count
}

// fieldContribution folds one field into a struct or union width starting
// at the given bit offset. Arrays align by their element type's padding
// policy with the element count; pointers and nested structs always align
// pow2; unions and intrinsics align by their own policy. Anything else
// contributes nothing.
func fieldContribution(offset uint64, t Ref) uint64 {
	switch t.Tag() {
	case TagArray:
		return padAlign(offset, t.ArrayType().TypeWidth(), t.Quantity(), t.ArrayType().Props())
	case TagPointer, TagStruct:
		return padAlign(offset, t.TypeWidth(), 1, PropPadPow2)
	case TagUnion, TagIntrinsic:
		return padAlign(offset, t.TypeWidth(), 1, t.Props())
	default:
		return offset
	}
}

// TypeWidth returns the width in bits of a type node: the quantifier for
// intrinsics and pointers, the accumulated field layout for structs, the
// widest field for unions, element width times count for arrays, and the
// referenced type's width for fields. Other tags have width 0.
func (d Ref) TypeWidth() uint64 {
	switch d.Tag() {
	case TagIntrinsic:
		return d.IntrinsicWidth()
	case TagStruct:
		return d.StructWidth()
	case TagUnion:
		return d.UnionWidth()
	case TagField:
		return d.Link().TypeWidth()
	case TagArray:
		return d.ArrayType().TypeWidth() * d.ArrayCount()
	case TagPointer:
		return d.PointerWidth()
	default:
		return 0
	}
}

// IntrinsicWidth returns the bit width of an intrinsic, or 0 for other
// tags. Width 0 is legal only for void.
func (d Ref) IntrinsicWidth() uint64 {
	if d.Is(TagIntrinsic) {
		return d.Quantity()
	}

	return 0
}

// StructWidth accumulates the aligned contributions of a struct's fields.
// Nested type definitions in the child list add no width.
func (d Ref) StructWidth() uint64 {
	if !d.Is(TagStruct) {
		return 0
	}

	var offset uint64
	for c := d.Link(); !c.IsNull(); c = c.Next() {
		if c.Is(TagField) {
			offset = fieldContribution(offset, c.FieldType())
		}
	}

	return offset
}

// UnionWidth returns the widest aligned field contribution of a union.
func (d Ref) UnionWidth() uint64 {
	if !d.Is(TagUnion) {
		return 0
	}

	var widest uint64
	for c := d.Link(); !c.IsNull(); c = c.Next() {
		if !c.Is(TagField) {
			continue
		}
		if w := fieldContribution(0, c.FieldType()); w > widest {
			widest = w
		}
	}

	return widest
}

// ArrayCount returns the element count of an array, or 0 for other tags.
// With PropVLA set the count is unspecified.
func (d Ref) ArrayCount() uint64 {
	if d.Is(TagArray) {
		return d.Quantity()
	}

	return 0
}

// PointerWidth returns the bit width of a pointer, or 0 for other tags.
func (d Ref) PointerWidth() uint64 {
	if d.Is(TagPointer) {
		return d.Quantity()
	}

	return 0
}
