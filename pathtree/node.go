package pathtree

// Record is one input path plus the attributes attached at that path.
// Path is the raw, still percent-encoded path such as
// "/languages/C%2FC++/applications/linux".
type Record struct {
	Path       string
	Attributes *Attributes
}

// Node is one position in the reconstructed hierarchy.
//
// The root node has an empty Name and no attributes; every other node's
// Name is a decoded, non-empty path segment. Children are unique by name
// and kept in insertion order.
type Node struct {
	Name       string
	Attributes *Attributes

	children map[string]*Node
	order    []string
}

func newNode(name string) *Node {
	return &Node{Name: name, Attributes: &Attributes{}}
}

// IsRoot reports whether n is a tree root.
func (n *Node) IsRoot() bool {
	return n.Name == ""
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.order)
}

// Child returns the direct child with the given decoded name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.order))
	for i, name := range n.order {
		out[i] = n.children[name]
	}
	return out
}

// Lookup follows decoded segments from n and returns the node reached.
// Lookup with no segments returns n itself.
func (n *Node) Lookup(segments ...string) (*Node, bool) {
	cur := n
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk visits n and every descendant depth-first in insertion order.
// path holds the decoded segments from n to the visited node; it is only
// valid for the duration of the call. Returning false skips the visited
// node's descendants.
func (n *Node) Walk(fn func(path []string, node *Node) bool) {
	var path []string
	var visit func(node *Node)
	visit = func(node *Node) {
		if !fn(path, node) {
			return
		}
		for _, name := range node.order {
			path = append(path, name)
			visit(node.children[name])
			path = path[:len(path)-1]
		}
	}
	visit(n)
}

// ensureChild returns the child named name, creating it when missing.
func (n *Node) ensureChild(name string) (*Node, bool) {
	if c, ok := n.children[name]; ok {
		return c, false
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := newNode(name)
	n.children[name] = c
	n.order = append(n.order, name)
	return c, true
}
