package pathtree

// Format runs the whole pipeline with default settings: build the tree from
// records, compress it and render it. An empty record list yields "".
func Format(records []Record) (string, error) {
	root, err := Build(records)
	if err != nil {
		return "", err
	}
	return Render(Compress(root)), nil
}

// Subtree returns a new root that holds only the branch leading to the node
// at segments. Ancestors along the branch are recreated without attributes,
// so they fold into the target's dotted label, and the target node is
// shared; root is left untouched. With no segments root itself is returned.
func Subtree(root *Node, segments []string) (*Node, bool) {
	target, ok := root.Lookup(segments...)
	if !ok {
		return nil, false
	}
	if len(segments) == 0 {
		return root, true
	}

	out := newNode("")
	parent := out
	for _, seg := range segments[:len(segments)-1] {
		parent, _ = parent.ensureChild(seg)
	}
	parent.children = map[string]*Node{target.Name: target}
	parent.order = []string{target.Name}
	return out, true
}
