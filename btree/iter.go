package btree

// Iter creates an iterator that stays synchronized with the BTree (not a snapshot).
// Call SeekFirst or Seek to position it before use.
func (btree *BTree[V]) Iter() *Iter[V] {
	return &Iter[V]{
		root:    btree,
		version: btree.version,
		index:   len(btree.items),
	}
}

// Iter is a forward cursor over BTree.
// After the tree is modified, the cursor re-seeks to its current key on next use.
type Iter[V any] struct {
	root    *BTree[V]
	cursors []cursor[V]
	key     int64
	valid   bool
	version uint64
	index   int
}

type cursor[V any] struct {
	node  *node[V]
	index int
}

// Clone creates an independent copy of the iterator at its current position.
func (it *Iter[V]) Clone() *Iter[V] {
	return &Iter[V]{
		root:    it.root,
		cursors: append([]cursor[V](nil), it.cursors...),
		key:     it.key,
		valid:   it.valid,
		version: it.version,
		index:   it.index,
	}
}

func (it *Iter[V]) sync() bool {
	if !it.valid {
		it.version = it.root.version
		return false
	}
	return it.seek(it.key)
}

// Valid returns true if positioned at a valid key-value pair.
func (it *Iter[V]) Valid() bool {
	if it.version != it.root.version {
		return it.sync()
	}
	return it.valid
}

// Key returns the current key.
// Behavior is undefined if Valid() returns false.
func (it *Iter[V]) Key() int64 {
	return it.key
}

// Val returns the current value, or the zero value if invalid.
func (it *Iter[V]) Val() (val V) {
	if !it.Valid() {
		return
	}

	if len(it.cursors) == 0 {
		return it.root.val(it.index)
	}

	cursor := &it.cursors[len(it.cursors)-1]
	return cursor.node.val(cursor.index)
}

// Next advances to the next key. Returns false if no more items.
func (it *Iter[V]) Next() bool {
	if !it.Valid() {
		return false
	}

	var node *node[V]
	if len(it.cursors) == 0 {
		it.index++
		node = it.root.node(it.index)
		if node == nil {
			return it.rootAt(it.index)
		}
	} else {
		l := len(it.cursors) - 1
		c := &it.cursors[l]
		c.index++
		node = c.node.node(c.index)
		if node == nil {
			if c.index < c.node.count {
				it.key = c.node.key(c.index)
				return true
			}
			for l--; l >= 0; l-- {
				c = &it.cursors[l]
				if c.index < c.node.count {
					it.cursors = it.cursors[:l+1]
					it.key = c.node.key(c.index)
					return true
				}
			}
			it.cursors = it.cursors[:0]
			return it.rootAt(it.index)
		}
	}
	return it.first(node)
}

// SeekFirst positions the iterator at the first key. Returns false if BTree is empty.
func (it *Iter[V]) SeekFirst() bool {
	it.version = it.root.version
	it.cursors = it.cursors[:0]
	it.index = 0

	if len(it.root.items) == 0 {
		it.valid = false
		return false
	}

	node := it.root.node(0)
	if node == nil {
		return it.rootAt(0)
	}
	return it.first(node)
}

// Seek positions the iterator at the first key >= the given key.
func (it *Iter[V]) Seek(key int64) bool {
	return it.seek(key)
}

func (it *Iter[V]) seek(key int64) bool {
	it.version = it.root.version
	it.cursors = it.cursors[:0]

	index, found := it.root.find(key)
	it.index = index
	if found {
		return it.rootAt(index)
	}
	node := it.root.node(index)
	if node == nil {
		return it.rootAt(index)
	}

	for {
		index, found = node.find(key)
		it.cursors = append(it.cursors, cursor[V]{node, index})
		if found {
			it.key = node.key(index)
			it.valid = true
			return true
		}
		next := node.node(index)
		if next != nil {
			node = next
			continue
		}
		if index < node.count {
			it.key = node.key(index)
			it.valid = true
			return true
		}
		for l := len(it.cursors) - 1; l >= 0; l-- {
			c := &it.cursors[l]
			if c.index < c.node.count {
				it.cursors = it.cursors[:l+1]
				it.key = c.node.key(c.index)
				it.valid = true
				return true
			}
		}
		it.cursors = it.cursors[:0]
		return it.rootAt(it.index)
	}
}

// rootAt positions at the root item i, or past the end.
func (it *Iter[V]) rootAt(i int) bool {
	if i < len(it.root.items) {
		it.key = it.root.key(i)
		it.valid = true
		return true
	}
	it.valid = false
	return false
}

// first descends to the leftmost key of the subtree at node.
func (it *Iter[V]) first(node *node[V]) bool {
	for {
		it.cursors = append(it.cursors, cursor[V]{node, 0})
		next := node.node(0)
		if next == nil {
			it.key = node.key(0)
			it.valid = true
			return true
		}
		node = next
	}
}
