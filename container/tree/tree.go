package tree

import "golang.org/x/exp/constraints"

// Tree is an ordered container of key value pairs balanced
// with the red black algorithm. Keys are ordered by the tree's
// Lesser and may be repeated.
//
// A new key that compares equal to keys already in the tree is
// placed before them, and lookups resolve to the first node of
// a run of equal keys. Therefore, for duplicate keys, the most
// recently inserted one is found and removed first.
//
// A Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	root     *Node[K, V]
	sentinel *Node[K, V]
	cmp      Lesser[K]
	len      int
}

// New creates an empty tree ordered by the natural order
// of its keys
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewRedBlackTree[K, V](OrderedLesser[K]{})
}

// NewRedBlackTree creates an empty tree ordered by cmp. If cmp
// is nil the keys are ordered by the natural order of their
// kind, which is only defined for numbers and strings.
func NewRedBlackTree[K, V any](cmp Lesser[K]) *Tree[K, V] {
	if cmp == nil {
		cmp = kindLesser[K]{}
	}

	sentinel := newSentinelNode[K, V]()
	return &Tree[K, V]{root: sentinel, sentinel: sentinel, cmp: cmp}
}

// Len returns the number of nodes in the tree
func (t *Tree[K, V]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[K, V]) Empty() bool {
	return isSentinel(t.root)
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[K, V]) Root() *Node[K, V] {
	return nilIfSentinel(t.root)
}

// Height returns the number of nodes in the longest path
// from the root to a leaf
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Min returns the value with the lowest key. The boolean
// is false if the tree is empty
func (t *Tree[K, V]) Min() (v V, ok bool) {
	n := t.root.Min()
	if n == nil {
		return v, false
	}
	return n.Value, true
}

// Max returns the value with the highest key. The boolean
// is false if the tree is empty
func (t *Tree[K, V]) Max() (v V, ok bool) {
	n := t.root.Max()
	if n == nil {
		return v, false
	}
	return n.Value, true
}

// Find returns the value of the first node in the tree with
// a key equal to id
func (t *Tree[K, V]) Find(id K) (v V, ok bool) {
	n := t.FindNode(id)
	if n == nil {
		return v, false
	}
	return n.Value, true
}

// FindNode returns the first node in the tree with a key
// equal to id, or nil if there is none
func (t *Tree[K, V]) FindNode(id K) *Node[K, V] {
	var res *Node[K, V]

	for curr := t.root; isNotSentinel(curr); {
		c := t.cmp.Less(id, curr.key)
		if c <= 0 {
			// keep descending so that the first of a run of
			// equal keys is the one returned
			if c == 0 {
				res = curr
			}
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return res
}

// Contains returns true if the tree contains at
// least one node with key id
func (t *Tree[K, V]) Contains(id K) bool {
	return t.FindNode(id) != nil
}

// Count returns the number of nodes with key id
func (t *Tree[K, V]) Count(id K) (count int) {
	for n := t.FindNode(id); n != nil && t.cmp.Less(id, n.key) == 0; n = n.Successor() {
		count++
	}

	return count
}

// walk calls fn on every node in order
func (t *Tree[K, V]) walk(fn func(*Node[K, V])) {
	for n := t.root.Min(); n != nil; n = n.Successor() {
		fn(n)
	}
}

// AsArray returns the values of the tree ordered by key. The
// slice is newly allocated on every call
func (t *Tree[K, V]) AsArray() []V {
	values := make([]V, 0, t.len)
	t.walk(func(n *Node[K, V]) {
		values = append(values, n.Value)
	})
	return values
}

// Keys returns the keys of the tree in order. The slice
// is newly allocated on every call
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.len)
	t.walk(func(n *Node[K, V]) {
		keys = append(keys, n.key)
	})
	return keys
}

// Insert a value with key id into the tree
func (t *Tree[K, V]) Insert(id K, data V) {
	n := &Node[K, V]{Value: data, key: id}
	t.insertLeaf(n)
	t.fixInsert(n)
	t.len++
}

// Remove the first node in the tree with key id. It returns
// false, leaving the tree untouched, if there is no such node
func (t *Tree[K, V]) Remove(id K) bool {
	n := t.FindNode(id)
	if n == nil {
		return false
	}

	t.delete(n)
	t.len--
	return true
}
