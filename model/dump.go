package model

import (
	"fmt"
	"io"
	"strings"
)

// dumpProps maps the qualifier and direction flags rendered in the props
// column.
var dumpProps = []struct {
	prop Props
	name string
}{
	{PropConst, "const"},
	{PropVolatile, "volatile"},
	{PropRestrict, "restrict"},
	{PropIn, "in"},
	{PropOut, "out"},
}

func propsString(props Props) string {
	var sb strings.Builder
	for _, p := range dumpProps {
		if props&p.prop == p.prop {
			if sb.Len() > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(p.name)
		}
	}

	return sb.String()
}

func linkString(d Ref) string {
	l := d.Link()
	name := l.Name()
	if name == "" {
		name = "anonymous"
	}

	return fmt.Sprintf("%s(%q)", l.Tag(), name)
}

func detailString(d Ref) string {
	switch d.Tag() {
	case TagIntrinsic:
		return fmt.Sprintf("width=%d", d.Quantity())
	case TagArray:
		return fmt.Sprintf("%s count=%d", linkString(d), d.Quantity())
	case TagPointer:
		return fmt.Sprintf("%s width=%d", linkString(d), d.Quantity())
	case TagConstant:
		return fmt.Sprintf("%s value=%d", linkString(d), d.Quantity())
	case TagFunction:
		return fmt.Sprintf("addr=0x%x", d.Quantity())
	case TagField:
		if d.Props()&PropBitfield != 0 {
			return fmt.Sprintf("%s width=%d", linkString(d), d.Quantity())
		}
		return linkString(d)
	case TagTypedef, TagParam, TagQualifier, TagAlias, TagValue:
		return linkString(d)
	default:
		return ""
	}
}

// Dump renders the user portion of the node table in a fixed-column
// layout for debugging.
func (db *DB) Dump(w io.Writer) {
	fmt.Fprintf(w, "%-5s %-5s %-5s %-5s %-10s %-18s %-18s %s\n",
		"id", "attr", "next", "link", "type", "name", "props", "detail")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 92))

	for i := db.declBuiltin; i < len(db.nodes); i++ {
		d := db.Lookup(ID(i))
		n := d.node()
		fmt.Fprintf(w, "%-5d %-5d %-5d %-5d %-10s %-18s %-18s %s\n",
			i, n.Attr, n.Next, n.Link, d.Tag(), d.Name(),
			propsString(n.Props), detailString(d))
	}
}
