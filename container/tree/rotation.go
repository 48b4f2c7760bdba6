package tree

type direction uint

const (
	left  direction = 0
	right direction = 1
)

func (d direction) opposite() direction {
	return 1 - d
}

func (d direction) String() string {
	if d == left {
		return "left"
	}
	return "right"
}

// rotate n in direction dir. The child of n on the opposite side
// takes the place of n, which becomes its child on side dir.
//
//	  n        rotate(n, left)       p
//	 / \       -------------->      / \
//	a   p      <--------------     n   c
//	   / \     rotate(p, right)   / \
//	  b   c                      a   b
func (t *Tree[K, V]) rotate(n *Node[K, V], dir direction) {
	pivot := n.child(dir.opposite())
	if isSentinel(pivot) {
		return
	}

	inner := pivot.child(dir)
	n.setChild(dir.opposite(), inner)
	if isNotSentinel(inner) {
		inner.parent = n
	}
	pivot.parent = n.parent

	switch {
	case isSentinel(n.parent):
		t.root = pivot
	case n == n.parent.left:
		n.parent.left = pivot
	case n == n.parent.right:
		n.parent.right = pivot
	default:
		panic("unreachable statement")
	}

	pivot.setChild(dir, n)
	n.parent = pivot
}
