package tree

type color uint

const (
	red   color = 0
	black color = 1
)

func isRed[K, V any](n *Node[K, V]) bool {
	return color(n.metadata&0x00000001) == red
}

func isBlack[K, V any](n *Node[K, V]) bool {
	return color(n.metadata&0x00000001) == black
}

func copyColor[K, V any](dest *Node[K, V], source *Node[K, V]) {
	dest.metadata = (dest.metadata & 0xfffffffe) | (source.metadata & 0x00000001)
}

func setRed[K, V any](n *Node[K, V]) {
	n.metadata = n.metadata & 0xfffffffe
}

func setBlack[K, V any](n *Node[K, V]) {
	n.metadata = n.metadata | 0x00000001
}

// fixInsert restores the red black properties after n has been
// attached to the tree as a red leaf
func (t *Tree[K, V]) fixInsert(n *Node[K, V]) {
	setRed(n)

	// the parent of the root is the sentinel, which is black, so
	// a red parent is never the root and always has a parent
	for isRed(n.parent) {
		parent := n.parent
		grandparent := parent.parent

		side := left
		if parent == grandparent.right {
			side = right
		}
		uncle := grandparent.child(side.opposite())

		switch {
		case isRed(uncle):
			setBlack(parent)
			setBlack(uncle)
			setRed(grandparent)
			n = grandparent
		default:
			if n == parent.child(side.opposite()) {
				n = parent
				t.rotate(n, side)
				parent = n.parent
			}

			setBlack(parent)
			setRed(grandparent)
			t.rotate(grandparent, side.opposite())
		}
	}

	setBlack(t.root)
}

// delete removes n from the tree. If n has two children its key
// and value are replaced by the ones of its successor, and the
// successor is the node that gets spliced out instead
func (t *Tree[K, V]) delete(n *Node[K, V]) {
	if isNotSentinel(n.left) && isNotSentinel(n.right) {
		succ := n.right.Min()
		n.key, n.Value = succ.key, succ.Value
		n = succ
	}

	target := n.left
	if isSentinel(target) {
		target = n.right
	}

	t.transplant(n, target)

	if isBlack(n) {
		t.fixDelete(target)
	}
}

// fixDelete restores the red black properties after a black node
// has been spliced out and replaced by n, which is now short
// of one black node
func (t *Tree[K, V]) fixDelete(n *Node[K, V]) {
	for n != t.root && isBlack(n) {
		side := left
		if n == n.parent.right {
			side = right
		}

		sibling := n.parent.child(side.opposite())
		if isRed(sibling) {
			setBlack(sibling)
			setRed(n.parent)
			t.rotate(n.parent, side)
			sibling = n.parent.child(side.opposite())
		}

		near := sibling.child(side)
		far := sibling.child(side.opposite())

		switch {
		case isBlack(near) && isBlack(far):
			setRed(sibling)
			n = n.parent
		default:
			if isBlack(far) {
				setBlack(near)
				setRed(sibling)
				t.rotate(sibling, side.opposite())
				sibling = n.parent.child(side.opposite())
				far = sibling.child(side.opposite())
			}

			copyColor(sibling, n.parent)
			setBlack(n.parent)
			setBlack(far)
			t.rotate(n.parent, side)
			n = t.root
		}
	}

	// ensure that if node is the root of the tree it will
	// remain black after a call to fixDelete
	setBlack(n)
}
