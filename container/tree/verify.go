package tree

import (
	errs "github.com/eaugeas/rbtree/errors"
)

// Error codes of the errors returned by Verify
const (
	// ErrCodeOrder is returned when a key is out of order with
	// respect to one of its ancestors
	ErrCodeOrder = 1000 + iota

	// ErrCodeRedRoot is returned when the root or the sentinel
	// is red
	ErrCodeRedRoot

	// ErrCodeRedRed is returned when a red node has a red child
	ErrCodeRedRed

	// ErrCodeBlackHeight is returned when two paths from the same
	// node to its leaves have a different number of black nodes
	ErrCodeBlackHeight

	// ErrCodeParentLink is returned when a node is not the child
	// of its parent
	ErrCodeParentLink

	// ErrCodeSize is returned when the number of nodes reachable
	// from the root does not match Len
	ErrCodeSize
)

// Verify walks the whole tree and checks that it is a valid red
// black tree. It returns nil if the tree is valid, and otherwise
// an *errors.Error describing the first violation found.
func (t *Tree[K, V]) Verify() error {
	if isRed(t.sentinel) {
		return errs.New(ErrCodeRedRoot, "sentinel is red")
	}

	if isRed(t.root) {
		return errs.New(ErrCodeRedRoot, "root %v is red", t.root.key)
	}

	if isNotSentinel(t.root) && isNotSentinel(t.root.parent) {
		return errs.New(ErrCodeParentLink, "root %v has a parent", t.root.key)
	}

	count := 0
	if _, err := t.verify(t.root, nil, nil, &count); err != nil {
		return err
	}

	if count != t.len {
		return errs.New(ErrCodeSize, "tree has %d nodes but its length is %d", count, t.len)
	}

	return nil
}

// verify checks the subtree at n, whose keys must all be within
// [lo, hi] when those are not nil, and returns its black height
func (t *Tree[K, V]) verify(n, lo, hi *Node[K, V], count *int) (int, error) {
	if isSentinel(n) {
		return 1, nil
	}

	*count++

	if lo != nil && t.cmp.Less(n.key, lo.key) < 0 {
		return 0, errs.New(ErrCodeOrder, "key %v is lower than its ancestor %v", n.key, lo.key)
	}
	if hi != nil && t.cmp.Less(n.key, hi.key) > 0 {
		return 0, errs.New(ErrCodeOrder, "key %v is higher than its ancestor %v", n.key, hi.key)
	}

	for _, c := range []*Node[K, V]{n.left, n.right} {
		if isSentinel(c) {
			continue
		}

		if c.parent != n {
			return 0, errs.New(ErrCodeParentLink, "node %v is not linked to its parent %v", c.key, n.key)
		}

		if isRed(n) && isRed(c) {
			return 0, errs.New(ErrCodeRedRed, "red node %v has red child %v", n.key, c.key)
		}
	}

	lh, err := t.verify(n.left, lo, n, count)
	if err != nil {
		return 0, err
	}

	rh, err := t.verify(n.right, n, hi, count)
	if err != nil {
		return 0, err
	}

	if lh != rh {
		return 0, errs.New(ErrCodeBlackHeight,
			"node %v has black height %d on the left and %d on the right", n.key, lh, rh)
	}

	if isBlack(n) {
		lh++
	}

	return lh, nil
}
