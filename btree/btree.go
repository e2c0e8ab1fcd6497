// Package btree provides an append-only, in-memory B-tree keyed by record
// identifiers, with iterator support.
package btree

import (
	"cmp"
	"sort"
)

// BTree is an append-only, in-memory B-tree mapping identifiers to values in ascending order.
// Not thread-safe.
//
// Append-only means keys are never removed, only their values updated.
// Change tracking stores a state as the value and flips it rather than
// deleting the key.
//
// Example usage:
//
//	var btree BTree[string]
//	btree.Set(42, "answer")
//	val, found := btree.Get(42)  // val == "answer", found == true
//
//	for id, val := range btree.Items {
//		fmt.Printf("Item: %d = %s\n", id, val)
//	}
//
//	btree.Reset()  // Clear all data
type BTree[V any] struct {
	items   []item[V]
	nodes   []*node[V]
	last    *node[V]
	count   int
	version uint64
}

type item[V any] struct {
	key int64
	val V
}

// Reset clears all data.
func (btree *BTree[V]) Reset() {
	btree.items = nil
	btree.nodes = nil
	btree.last = nil
	btree.count = 0
	btree.version++
}

// Set updates the value for a key (inserts if key doesn't exist).
func (btree *BTree[V]) Set(key int64, val V) {
	btree.version++
	if btree.set(key, val) {
		btree.count++
	}
}

// Get retrieves the value for a key.
// When found is false, the key doesn't exist in the BTree.
func (btree *BTree[V]) Get(key int64) (val V, found bool) {
	return btree.get(key)
}

// Len returns the number of keys.
func (btree *BTree[V]) Len() int {
	return btree.count
}

// Empty returns true if BTree has no keys.
func (btree *BTree[V]) Empty() bool {
	return len(btree.items) == 0
}

// Items implements iter.Seq2[int64, V], iterating all key-value pairs in ascending key order.
func (btree *BTree[V]) Items(yield func(key int64, val V) bool) {
	if btree.last == nil {
		for i := 0; i < len(btree.items); i++ {
			if !yield(btree.items[i].key, btree.items[i].val) {
				return
			}
		}
		return
	}
	for i := 0; i < len(btree.items); i++ {
		if !btree.nodes[i].items(yield) {
			return
		}
		if !yield(btree.items[i].key, btree.items[i].val) {
			return
		}
	}
	btree.last.items(yield)
}

// set reports whether key was inserted rather than updated.
func (btree *BTree[V]) set(key int64, val V) bool {
	entry := entry[V]{key: key, val: val}
	index, found := btree.find(entry.key)
	if found {
		btree.update(index, entry.val)
		return false
	}
	next := btree.node(index)
	if next == nil {
		btree.insertItem(index, &entry)
		return true
	}
	updated, done := entry.set(next)
	if updated {
		return false
	}
	if !done {
		btree.insertEntry(index, &entry)
	}
	return true
}

func (btree *BTree[V]) get(key int64) (val V, found bool) {
	index, found := btree.find(key)
	if found {
		return btree.val(index), true
	}

	node := btree.node(index)
	for node != nil {
		index, found = node.find(key)
		if found {
			return node.val(index), true
		}
		node = node.node(index)
	}
	return
}

func (btree *BTree[V]) key(i int) int64 {
	return btree.items[i].key
}

func (btree *BTree[V]) val(i int) V {
	return btree.items[i].val
}

func (btree *BTree[V]) node(i int) *node[V] {
	if i >= len(btree.nodes) {
		return btree.last
	}
	return btree.nodes[i]
}

func (btree *BTree[V]) find(key int64) (int, bool) {
	return sort.Find(len(btree.items), func(i int) int {
		return cmp.Compare(key, btree.items[i].key)
	})
}

func (btree *BTree[V]) update(i int, val V) {
	btree.items[i].val = val
}

func (btree *BTree[V]) insertItem(i int, entry *entry[V]) {
	count := len(btree.items)

	if i == count {
		btree.items = append(btree.items, item[V]{entry.key, entry.val})
	} else {
		btree.items = append(btree.items, item[V]{})

		l := i + 1
		copy(btree.items[l:], btree.items[i:count])

		btree.items[i] = item[V]{entry.key, entry.val}
	}

	if len(btree.items) == double {
		lnode := new(node[V])
		for i := range order {
			lnode.keys[i] = btree.items[i].key
			lnode.vals[i] = btree.items[i].val
		}
		lnode.count = order

		rnode := new(node[V])
		for i := range order {
			r := i + order + 1
			rnode.keys[i] = btree.items[r].key
			rnode.vals[i] = btree.items[r].val
		}
		rnode.count = order

		btree.items[0] = btree.items[order]
		btree.items = btree.items[:1]
		btree.nodes = []*node[V]{lnode}
		btree.last = rnode
	}
}

func (btree *BTree[V]) insertEntry(i int, entry *entry[V]) {
	count := len(btree.items)

	if i == count {
		btree.items = append(btree.items, item[V]{entry.key, entry.val})
		btree.nodes = append(btree.nodes, entry.node)
	} else {
		btree.items = append(btree.items, item[V]{})
		btree.nodes = append(btree.nodes, nil)

		l := i + 1
		copy(btree.items[l:], btree.items[i:count])
		copy(btree.nodes[l:], btree.nodes[i:count])

		btree.items[i] = item[V]{entry.key, entry.val}
		btree.nodes[i] = entry.node
	}

	if len(btree.items) == double {
		lnode := new(node[V])
		for i := range order {
			lnode.keys[i] = btree.items[i].key
			lnode.vals[i] = btree.items[i].val
		}
		copy(lnode.nodes[:], btree.nodes[:order])
		lnode.count = order
		lnode.last = btree.nodes[order]

		rnode := new(node[V])
		for i := range order {
			r := i + order + 1
			rnode.keys[i] = btree.items[r].key
			rnode.vals[i] = btree.items[r].val
		}
		copy(rnode.nodes[:], btree.nodes[order+1:])
		rnode.count = order
		rnode.last = btree.last

		btree.items[0] = btree.items[order]
		btree.items = btree.items[:1]
		btree.nodes[0] = lnode
		btree.nodes = btree.nodes[:1]
		btree.last = rnode
	}
}
