package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessors_NullOnTagMismatch(t *testing.T) {
	db := NewDB()
	db.Defaults()

	i32 := db.Intrinsic(PropSInt, 32)
	f := db.NewNode(TagField)
	f.SetLink(i32)

	require.False(t, f.FieldType().IsNull())
	require.True(t, f.TypedefType().IsNull())
	require.True(t, f.ArrayType().IsNull())
	require.True(t, f.PointerType().IsNull())
	require.True(t, f.ConstantType().IsNull())
	require.True(t, f.ParamType().IsNull())
	require.True(t, f.QualifierType().IsNull())
	require.True(t, f.AliasTarget().IsNull())

	td := db.NewNode(TagTypedef)
	td.SetLink(i32)
	require.False(t, td.TypedefType().IsNull())
	require.True(t, td.FieldType().IsNull())
}

func TestEnumConstants_FiltersAndOrders(t *testing.T) {
	db := NewDB()
	db.Defaults()

	e := db.NewNode(TagEnum).SetName("color")
	u32 := db.Intrinsic(PropUInt, 32)

	var last Ref
	for i, name := range []string{"red", "green", "blue"} {
		c := db.NewNode(TagConstant).SetName(name).SetQuantity(uint64(i))
		c.SetLink(u32)
		if last.IsNull() {
			e.SetLink(c)
		} else {
			last.SetNext(c)
		}
		last = c
	}

	consts := Collect(e.EnumConstants())
	require.Len(t, consts, 3)
	require.Equal(t, "red", consts[0].Name())
	require.Equal(t, "green", consts[1].Name())
	require.Equal(t, "blue", consts[2].Name())
	require.Equal(t, uint64(2), consts[2].ConstantValue())

	// tag mismatch yields nothing
	require.Equal(t, 0, Count(e.SetConstants()))
	require.Equal(t, 0, Count(e.StructFields()))
}

func TestFunctionParams_ReturnFirst(t *testing.T) {
	db := NewDB()
	db.Defaults()

	fn := db.NewNode(TagFunction).SetName("scale")
	f32 := db.Intrinsic(PropFloat, 32)

	ret := db.NewNode(TagParam).SetProps(PropOut)
	ret.SetLink(f32)
	arg := db.NewNode(TagParam).SetName("factor").SetProps(PropIn)
	arg.SetLink(f32)

	fn.SetLink(ret)
	ret.SetNext(arg)

	params := Collect(fn.FunctionParams())
	require.Len(t, params, 2)
	require.Equal(t, PropOut, params[0].Props())
	require.Equal(t, "factor", params[1].Name())
	require.Equal(t, "float", params[1].ParamType().Name())
}

func TestSourceQueries(t *testing.T) {
	db := NewDB()
	db.Defaults()

	src := db.NewNode(TagSource).SetName("shapes.h")

	s := db.NewNode(TagStruct).SetName("point")
	f := db.NewNode(TagField).SetName("origin")
	f.SetLink(s)
	fn := db.NewNode(TagFunction).SetName("area")

	src.SetLink(s)
	s.SetNext(f)
	f.SetNext(fn)

	require.Equal(t, 3, Count(src.SourceDecls()))
	require.Equal(t, 1, Count(src.SourceTypes()))
	require.Equal(t, 1, Count(src.SourceFields()))
	require.Equal(t, 1, Count(src.SourceFunctions()))

	// early termination via iterator break
	n := 0
	for range src.SourceDecls() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestArchiveSources(t *testing.T) {
	db := NewDB()
	db.Defaults()

	ar := db.NewNode(TagArchive).SetName("prog")
	s1 := db.NewNode(TagSource).SetName("a.h")
	s2 := db.NewNode(TagSource).SetName("b.h")
	ar.SetLink(s1)
	s1.SetNext(s2)

	srcs := Collect(ar.ArchiveSources())
	require.Len(t, srcs, 2)
	require.Equal(t, "a.h", srcs[0].Name())
	require.Equal(t, "b.h", srcs[1].Name())
}

func TestAttributes(t *testing.T) {
	db := NewDB()
	db.Defaults()

	s := db.NewNode(TagStruct).SetName("packed_point")

	attr := db.NewNode(TagAttribute).SetName("aligned")
	val := db.NewNode(TagValue).SetQuantity(16)
	attr.SetLink(val)
	s.SetAttr(attr)

	require.Equal(t, "aligned", s.Attr().Name())
	require.Equal(t, uint64(16), s.Attr().Link().Quantity())
}

func TestIsType(t *testing.T) {
	db := NewDB()
	db.Defaults()

	require.True(t, db.Intrinsic(PropSInt, 32).IsType())
	require.True(t, db.NewNode(TagStruct).IsType())
	require.True(t, db.NewNode(TagPointer).IsType())
	require.False(t, db.NewNode(TagField).IsType())
	require.False(t, db.NewNode(TagConstant).IsType())
	require.False(t, db.Void().IsType())
}
