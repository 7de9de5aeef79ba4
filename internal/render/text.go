package render

import (
	"fmt"
	"strings"

	"github.com/apimap/apimap/internal/surface"
)

// Text renders the surface map as an indented outline: one summary line,
// then per file a path header followed by its member forest at two spaces
// per depth.
func Text(files []*surface.FileMap, sum surface.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %d files, %d namespaces, %d types, %d methods\n",
		sum.Files, sum.Namespaces, sum.Types, sum.Methods)

	for _, f := range files {
		fmt.Fprintf(&b, "\n// %s\n", f.Path)
		for _, m := range f.Members {
			writeMember(&b, m, 0)
		}
	}

	return b.String()
}

// writeMember writes one member line and recurses into its children.
// Optional fields appear in fixed order: base types, attributes, line, doc.
func writeMember(b *strings.Builder, m *surface.Member, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(m.Kind))
	if m.Static {
		b.WriteString(":static")
	}
	b.WriteByte(' ')
	b.WriteString(m.Signature)

	if len(m.BaseTypes) > 0 {
		b.WriteString(" : ")
		b.WriteString(strings.Join(m.BaseTypes, ", "))
	}
	if len(m.Attributes) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(m.Attributes, ", "))
		b.WriteByte(']')
	}
	if m.Line > 0 {
		fmt.Fprintf(b, " :%d", m.Line)
	}
	if m.Doc != "" {
		b.WriteString(" // ")
		b.WriteString(m.Doc)
	}
	b.WriteByte('\n')

	for _, child := range m.Children {
		writeMember(b, child, depth+1)
	}
}
