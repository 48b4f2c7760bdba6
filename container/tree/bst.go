package tree

// insertLeaf attaches n as a leaf of the tree by preserving the
// Binary Search Tree properties but without applying any balancing.
// Keys that compare equal to n's key are kept to the right of n.
func (t *Tree[K, V]) insertLeaf(n *Node[K, V]) {
	parent := t.sentinel
	dir := left

	for curr := t.root; isNotSentinel(curr); {
		parent = curr
		if t.cmp.Less(n.key, curr.key) <= 0 {
			dir = left
		} else {
			dir = right
		}
		curr = curr.child(dir)
	}

	n.parent = parent
	n.left = t.sentinel
	n.right = t.sentinel

	if isSentinel(parent) {
		t.root = n
	} else {
		parent.setChild(dir, n)
	}
}

// transplant replaces one subtree as a child of its parent
// with another subtree. v may be the sentinel, in which case
// its parent is set so that fixDelete can walk up from it.
func (t *Tree[K, V]) transplant(u *Node[K, V], v *Node[K, V]) {
	switch {
	case isSentinel(u.parent):
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	v.parent = u.parent
}
