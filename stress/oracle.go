package stress

import (
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// entry keys the oracle tree. Equal ids are ordered by
// descending seq so that the most recent one comes first
type entry struct {
	id  int
	seq int
}

func entryComparator(a, b interface{}) int {
	ea, eb := a.(entry), b.(entry)
	switch {
	case ea.id < eb.id:
		return -1
	case ea.id > eb.id:
		return 1
	case ea.seq > eb.seq:
		return -1
	case ea.seq < eb.seq:
		return 1
	default:
		return 0
	}
}

// Oracle is a reference model of a tree.Tree[int, int] built on
// the red black tree of gods. Like tree.Tree, it resolves lookups
// and removals of repeated ids to the most recently inserted one
type Oracle struct {
	tree *redblacktree.Tree
	seq  int
}

// NewOracle creates an empty Oracle
func NewOracle() *Oracle {
	return &Oracle{tree: redblacktree.NewWith(entryComparator)}
}

// Len returns the number of entries in the oracle
func (o *Oracle) Len() int {
	return o.tree.Size()
}

// Insert adds data with key id
func (o *Oracle) Insert(id, data int) {
	o.seq++
	o.tree.Put(entry{id: id, seq: o.seq}, data)
}

func (o *Oracle) first(id int) (*redblacktree.Node, bool) {
	n, ok := o.tree.Ceiling(entry{id: id, seq: math.MaxInt})
	if !ok || n.Key.(entry).id != id {
		return nil, false
	}
	return n, true
}

// Find returns the data of the most recent entry with key id
func (o *Oracle) Find(id int) (int, bool) {
	n, ok := o.first(id)
	if !ok {
		return 0, false
	}
	return n.Value.(int), true
}

// Remove deletes the most recent entry with key id
func (o *Oracle) Remove(id int) bool {
	n, ok := o.first(id)
	if !ok {
		return false
	}
	o.tree.Remove(n.Key)
	return true
}

// Values returns the data of every entry in key order
func (o *Oracle) Values() []int {
	values := make([]int, 0, o.tree.Size())
	for _, v := range o.tree.Values() {
		values = append(values, v.(int))
	}
	return values
}
