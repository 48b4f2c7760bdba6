package tree

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchSize = 1 << 16

func benchKeys() []int {
	rnd := rand.New(rand.NewSource(0))
	keys := make([]int, benchSize)
	for i := range keys {
		keys[i] = rnd.Int()
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys()

	b.Run("tree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := New[int, int]()
			for _, k := range keys {
				tree.Insert(k, k)
			}
		}
	})

	b.Run("gods", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := redblacktree.NewWithIntComparator()
			for _, k := range keys {
				tree.Put(k, k)
			}
		}
	})

	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := btree.NewOrderedG[int](32)
			for _, k := range keys {
				tree.ReplaceOrInsert(k)
			}
		}
	})

	b.Run("llrb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tree := llrb.New()
			for _, k := range keys {
				tree.InsertNoReplace(llrb.Int(k))
			}
		}
	})
}

func BenchmarkFind(b *testing.B) {
	keys := benchKeys()

	b.Run("tree", func(b *testing.B) {
		tree := New[int, int]()
		for _, k := range keys {
			tree.Insert(k, k)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Find(keys[i%len(keys)])
		}
	})

	b.Run("gods", func(b *testing.B) {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, k)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(keys[i%len(keys)])
		}
	})

	b.Run("btree", func(b *testing.B) {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(keys[i%len(keys)])
		}
	})

	b.Run("llrb", func(b *testing.B) {
		tree := llrb.New()
		for _, k := range keys {
			tree.InsertNoReplace(llrb.Int(k))
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Get(llrb.Int(keys[i%len(keys)]))
		}
	})
}

func BenchmarkRemove(b *testing.B) {
	keys := benchKeys()

	b.Run("tree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			tree := New[int, int]()
			for _, k := range keys {
				tree.Insert(k, k)
			}
			b.StartTimer()
			for _, k := range keys {
				tree.Remove(k)
			}
		}
	})

	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			tree := btree.NewOrderedG[int](32)
			for _, k := range keys {
				tree.ReplaceOrInsert(k)
			}
			b.StartTimer()
			for _, k := range keys {
				tree.Delete(k)
			}
		}
	})
}
