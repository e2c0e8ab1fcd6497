package diffsets

import (
	"github.com/dacapoday/diffset/btree"
	"github.com/dacapoday/diffset/iterator"
)

// View is the set of identifiers in one state of a DiffSets.
// It reflects later changes to the DiffSets.
type View struct {
	ds    *DiffSets
	state change
}

var _ iterator.Collection = View{}

// Contains reports whether id is in the view.
func (view View) Contains(id int64) bool {
	return view.ds.state(id) == view.state
}

// Len returns the number of identifiers in the view.
func (view View) Len() int {
	if view.state == added {
		return view.ds.added
	}
	return view.ds.removed
}

// Iter returns an iterator over the view in ascending order.
func (view View) Iter() iterator.Iterator {
	return &viewIter{view.ds.changes.Keys(), view.state}
}

type viewIter struct {
	keys  *btree.Keys[change]
	state change
}

func (iter *viewIter) Next() bool {
	for iter.keys.Next() {
		if iter.keys.Val() == iter.state {
			return true
		}
	}
	return false
}

func (iter *viewIter) Value() int64 {
	return iter.keys.Value()
}

func (iter *viewIter) Error() error {
	return nil
}
