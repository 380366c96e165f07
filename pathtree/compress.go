package pathtree

import "github.com/erraggy/restcli/internal/pathutil"

// CompressedNode is a read-only view of a Node in which chains of
// attribute-free, single-child nodes are collapsed into one dotted label.
//
// Segments holds the decoded names that were joined with '.' to form Name,
// in root-to-leaf order. Attributes and Children belong to the last node of
// the chain. The root view has an empty Name and no Segments.
type CompressedNode struct {
	Name       string
	Segments   []string
	Attributes *Attributes
	Children   []*CompressedNode
}

// Compress derives the compressed view of the tree rooted at root.
//
// The root is never folded into a label. Each child of an emitted node
// starts its own chain, which continues while the current node has no
// attributes and exactly one child. A chain ends at the first node that
// carries attributes, has no children, or has two or more children.
// The input tree is not modified.
func Compress(root *Node) *CompressedNode {
	out := &CompressedNode{
		Name:       root.Name,
		Attributes: root.Attributes.Clone(),
	}
	if !root.IsRoot() {
		out.Segments = []string{root.Name}
	}
	out.Children = compressChildren(root)
	return out
}

func compressChildren(n *Node) []*CompressedNode {
	if n.Len() == 0 {
		return nil
	}
	out := make([]*CompressedNode, 0, n.Len())
	for _, name := range n.order {
		out = append(out, compressChain(n.children[name]))
	}
	return out
}

func compressChain(start *Node) *CompressedNode {
	label := pathutil.Get()
	defer pathutil.Put(label)

	n := start
	for n.Attributes.Len() == 0 && n.Len() == 1 {
		label.Push(n.Name)
		n = n.children[n.order[0]]
	}
	label.Push(n.Name)

	return &CompressedNode{
		Name:       label.String(),
		Segments:   label.Segments(),
		Attributes: n.Attributes.Clone(),
		Children:   compressChildren(n),
	}
}
