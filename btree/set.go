package btree

import "github.com/dacapoday/diffset/iterator"

// IDSet is an ordered set of identifiers. Not thread-safe.
//
// The zero value is an empty set ready to use.
type IDSet struct {
	tree BTree[struct{}]
}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...int64) *IDSet {
	set := new(IDSet)
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

var _ iterator.Collection = (*IDSet)(nil)

// Add inserts id. Returns false if it was already present.
func (set *IDSet) Add(id int64) bool {
	if set.Contains(id) {
		return false
	}
	set.tree.Set(id, struct{}{})
	return true
}

// Contains reports whether id is in the set.
func (set *IDSet) Contains(id int64) bool {
	_, found := set.tree.Get(id)
	return found
}

func (set *IDSet) Len() int {
	return set.tree.Len()
}

func (set *IDSet) Empty() bool {
	return set.tree.Empty()
}

func (set *IDSet) Reset() {
	set.tree.Reset()
}

// Items implements iter.Seq[int64] in ascending order.
func (set *IDSet) Items(yield func(int64) bool) {
	for id := range set.tree.Items {
		if !yield(id) {
			return
		}
	}
}

// Iter returns an iterator over the set in ascending order.
func (set *IDSet) Iter() iterator.Iterator {
	return set.tree.Keys()
}

// Keys returns a forward iterator over the keys in ascending order.
// Keys inserted ahead of the current position are visited.
func (btree *BTree[V]) Keys() *Keys[V] {
	return &Keys[V]{iter: btree.Iter()}
}

// Keys adapts Iter to iterator.Iterator.
type Keys[V any] struct {
	iter    *Iter[V]
	started bool
}

var _ iterator.Iterator = (*Keys[struct{}])(nil)

// Next advances to the next key.
func (keys *Keys[V]) Next() bool {
	if !keys.started {
		keys.started = true
		return keys.iter.SeekFirst()
	}
	return keys.iter.Next()
}

// Value returns the current key.
func (keys *Keys[V]) Value() int64 {
	return keys.iter.Key()
}

// Val returns the value stored under the current key.
func (keys *Keys[V]) Val() V {
	return keys.iter.Val()
}

// Error exists for Iterator interface compatibility.
func (keys *Keys[V]) Error() error {
	return nil
}
