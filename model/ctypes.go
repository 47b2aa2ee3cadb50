package model

// builtinType is one entry of the built-in intrinsic table.
type builtinType struct {
	name  string
	width uint64
	props Props
}

// builtinTypes is the canonical intrinsic table installed by Defaults, in
// order. The on-disk container elides this prefix, so the sequence and
// contents are part of the file format.
var builtinTypes = []builtinType{
	{"void", 0, PropVoid | PropPadBit},
	{"bool", 1, PropSInt | PropPadByte},
	{"bit", 1, PropUInt | PropPadPow2},
	{"sign", 1, PropSInt | PropPadPow2},
	{"ubyte", 8, PropUInt | PropPadPow2},
	{"byte", 8, PropSInt | PropPadPow2},
	{"ushort", 16, PropUInt | PropPadPow2},
	{"short", 16, PropSInt | PropPadPow2},
	{"uint", 32, PropUInt | PropPadPow2},
	{"int", 32, PropSInt | PropPadPow2},
	{"ulong", 64, PropUInt | PropPadPow2},
	{"long", 64, PropSInt | PropPadPow2},
	{"ucent", 128, PropUInt | PropPadPow2},
	{"cent", 128, PropSInt | PropPadPow2},
	{"half", 16, PropFloat | PropPadPow2},
	{"float", 32, PropFloat | PropPadPow2},
	{"double", 64, PropFloat | PropPadPow2},
	{"quad", 128, PropFloat | PropPadPow2},
	{"chalf", 32, PropCFloat | PropPadPow2},
	{"cfloat", 64, PropCFloat | PropPadPow2},
	{"cdouble", 128, PropCFloat | PropPadPow2},
	{"cquad", 256, PropCFloat | PropPadPow2},
}
