// Package diffsets tracks identifiers added and removed by a transaction.
package diffsets

import (
	"github.com/dacapoday/diffset/btree"
	"github.com/dacapoday/diffset/iterator"
)

type change uint8

const (
	unchanged change = iota
	added
	removed
)

// DiffSets records pending additions and removals. Not thread-safe.
//
// Adding an identifier cancels its pending removal and removing one cancels
// its pending addition, so an identifier is never both added and removed.
// Cancelled entries stay in the tree as unchanged.
//
// The zero value is empty and ready to use.
type DiffSets struct {
	changes btree.BTree[change]
	added   int
	removed int
}

// Add records id as added. Returns false if it was already added.
func (ds *DiffSets) Add(id int64) bool {
	switch ds.state(id) {
	case added:
		return false
	case removed:
		ds.changes.Set(id, unchanged)
		ds.removed--
	default:
		ds.changes.Set(id, added)
		ds.added++
	}
	return true
}

// Remove records id as removed. Returns false if it was already removed.
func (ds *DiffSets) Remove(id int64) bool {
	switch ds.state(id) {
	case removed:
		return false
	case added:
		ds.changes.Set(id, unchanged)
		ds.added--
	default:
		ds.changes.Set(id, removed)
		ds.removed++
	}
	return true
}

func (ds *DiffSets) state(id int64) change {
	state, _ := ds.changes.Get(id)
	return state
}

func (ds *DiffSets) IsAdded(id int64) bool {
	return ds.state(id) == added
}

func (ds *DiffSets) IsRemoved(id int64) bool {
	return ds.state(id) == removed
}

// Empty returns true if nothing is pending.
func (ds *DiffSets) Empty() bool {
	return ds.added == 0 && ds.removed == 0
}

// Delta returns the change in cardinality the pending changes would cause,
// assuming added identifiers are absent from and removed ones present in the base.
func (ds *DiffSets) Delta() int {
	return ds.added - ds.removed
}

// Reset discards all pending changes.
func (ds *DiffSets) Reset() {
	ds.changes.Reset()
	ds.added = 0
	ds.removed = 0
}

// Changes implements iter.Seq2[int64, bool] over pending changes in ascending
// order. The bool is true for an addition and false for a removal.
func (ds *DiffSets) Changes(yield func(id int64, add bool) bool) {
	for id, state := range ds.changes.Items {
		if state == unchanged {
			continue
		}
		if !yield(id, state == added) {
			return
		}
	}
}

// Added returns a live view of the added identifiers.
func (ds *DiffSets) Added() View {
	return View{ds, added}
}

// Removed returns a live view of the removed identifiers.
func (ds *DiffSets) Removed() View {
	return View{ds, removed}
}

// Augment applies the pending changes to base.
func (ds *DiffSets) Augment(base iterator.Iterator) *iterator.Diff {
	return iterator.Augment(base, ds.Added(), ds.Removed())
}

// AugmentResource applies the pending changes to base and forwards Close to it.
func (ds *DiffSets) AugmentResource(base iterator.ResourceIterator) *iterator.Diff {
	return iterator.AugmentResource(base, ds.Added(), ds.Removed())
}
