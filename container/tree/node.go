package tree

const sentinelValue = 0xa0000000

func isNotSentinel[K, V any](n *Node[K, V]) bool {
	return n.metadata&sentinelValue != sentinelValue
}

func isSentinel[K, V any](n *Node[K, V]) bool {
	return n.metadata&sentinelValue == sentinelValue
}

func newSentinelNode[K, V any]() *Node[K, V] {
	n := &Node[K, V]{metadata: sentinelValue}
	setBlack(n)
	n.left, n.right, n.parent = n, n, n
	return n
}

func nilIfSentinel[K, V any](n *Node[K, V]) *Node[K, V] {
	if isSentinel(n) {
		return nil
	} else {
		return n
	}
}

// Node of a tree. The key of a node is only modified by the tree
// that owns it, while Value is opaque to the tree and can be
// updated freely by its owner
type Node[K, V any] struct {
	Value V

	key      K
	metadata uint
	left     *Node[K, V]
	right    *Node[K, V]
	parent   *Node[K, V]
}

// Key returns the identifier the node is ordered by
func (n *Node[K, V]) Key() K {
	return n.key
}

// IsRed returns true if the node is colored red
func (n *Node[K, V]) IsRed() bool {
	return isRed(n)
}

// Left returns the node's left child
func (n *Node[K, V]) Left() *Node[K, V] {
	return nilIfSentinel(n.left)
}

// Right returns the node's right child
func (n *Node[K, V]) Right() *Node[K, V] {
	return nilIfSentinel(n.right)
}

// Parent returns the node's parent
func (n *Node[K, V]) Parent() *Node[K, V] {
	return nilIfSentinel(n.parent)
}

func (n *Node[K, V]) child(d direction) *Node[K, V] {
	if d == left {
		return n.left
	}
	return n.right
}

func (n *Node[K, V]) setChild(d direction, c *Node[K, V]) {
	if d == left {
		n.left = c
	} else {
		n.right = c
	}
}

// Min returns the node in the subtree of the
// lowest order
func (n *Node[K, V]) Min() *Node[K, V] {
	curr := n

	for isNotSentinel(curr) && isNotSentinel(curr.left) {
		curr = curr.left
	}

	return nilIfSentinel(curr)
}

// Max returns the node in the subtree of the
// highest order
func (n *Node[K, V]) Max() *Node[K, V] {
	curr := n

	for isNotSentinel(curr) && isNotSentinel(curr.right) {
		curr = curr.right
	}

	return nilIfSentinel(curr)
}

// Successor finds the successor of the current node in its
// tree, that is, the next node of an in order walk. It returns
// nil for the node of highest order.
func (n *Node[K, V]) Successor() *Node[K, V] {
	if isNotSentinel(n.right) {
		return n.right.Min()
	}

	curr := n
	parent := n.parent
	for isNotSentinel(parent) && curr == parent.right {
		curr = parent
		parent = parent.parent
	}

	return nilIfSentinel(parent)
}

// Predecessor finds the predecessor of the current node in its
// tree, that is, the previous node of an in order walk. It returns
// nil for the node of lowest order.
func (n *Node[K, V]) Predecessor() *Node[K, V] {
	if isNotSentinel(n.left) {
		return n.left.Max()
	}

	curr := n
	parent := n.parent
	for isNotSentinel(parent) && curr == parent.left {
		curr = parent
		parent = parent.parent
	}

	return nilIfSentinel(parent)
}

// height returns the number of nodes in the longest path
// from n to a leaf
func (n *Node[K, V]) height() int {
	if isSentinel(n) {
		return 0
	}

	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}
