package pathtree

import (
	"io"
	"slices"
	"strings"
)

// DefaultIndent is the number of spaces per depth level.
const DefaultIndent = 2

// Renderer serializes a compressed tree into the nested text notation:
//
//	.languages:
//	  .rust:
//	    GC no
//	    .applications.restcli:
//	      category utility
//
// Each block is a header line (indent, '.', label, ':'), one "key value"
// line per attribute in stored order, then the child blocks. Siblings are
// ordered by byte-wise comparison of their labels, so the output does not
// depend on locale. The root itself is never printed.
type Renderer struct {
	// Indent is the number of spaces per depth level; values below 1 use
	// DefaultIndent.
	Indent int

	// Colors, when set, decorates labels and attribute keys.
	Colors *Colors
}

// NewRenderer creates a Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{Indent: DefaultIndent}
}

// Render returns the text form of root's children.
func (r *Renderer) Render(root *CompressedNode) string {
	var b strings.Builder
	r.renderChildren(&b, root, 0)
	return b.String()
}

// RenderTo writes the text form of root's children to w.
func (r *Renderer) RenderTo(w io.Writer, root *CompressedNode) error {
	_, err := io.WriteString(w, r.Render(root))
	return err
}

func (r *Renderer) renderChildren(b *strings.Builder, n *CompressedNode, depth int) {
	// Equal labels ("a.b" from one segment or a collapsed chain) keep
	// insertion order.
	children := slices.Clone(n.Children)
	slices.SortStableFunc(children, func(x, y *CompressedNode) int {
		return strings.Compare(x.Name, y.Name)
	})
	for _, c := range children {
		r.renderBlock(b, c, depth)
	}
}

func (r *Renderer) renderBlock(b *strings.Builder, n *CompressedNode, depth int) {
	unit := r.Indent
	if unit < 1 {
		unit = DefaultIndent
	}
	pad := strings.Repeat(" ", depth*unit)
	inner := pad + strings.Repeat(" ", unit)

	b.WriteString(pad)
	b.WriteByte('.')
	b.WriteString(r.Colors.name(n.Name))
	b.WriteString(":\n")

	for k, v := range n.Attributes.All() {
		b.WriteString(inner)
		b.WriteString(r.Colors.key(k))
		if v != "" {
			b.WriteByte(' ')
			b.WriteString(v)
		}
		b.WriteByte('\n')
	}

	r.renderChildren(b, n, depth+1)
}

// Render returns the text form of root using a default Renderer.
func Render(root *CompressedNode) string {
	return NewRenderer().Render(root)
}
