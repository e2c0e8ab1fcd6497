// Package store keeps a committed set of record identifiers and offers
// transactions whose iterators overlay uncommitted changes on a snapshot.
package store

import (
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dacapoday/diffset"
)

// Store is an in-memory set of committed identifiers.
// It is safe for concurrent use by multiple goroutines.
//
// Committed identifiers live in an immutable sorted snapshot that is replaced,
// never modified, on every write. Readers hold a reference to the snapshot
// they started from until they are closed.
//
// Store requires no initialization; the zero value is empty and open.
type Store struct {
	ids    []int64
	closed bool
	refs   atomic.Int64
	view   sync.RWMutex
	mutex  sync.Mutex
}

// Load replaces the committed identifiers with ids, in any order.
// Duplicates are dropped.
func (store *Store) Load(ids iter.Seq[int64]) error {
	sorted := slices.Compact(slices.Sorted(ids))
	return store.swap(func([]int64) ([]int64, error) {
		return sorted, nil
	})
}

// Close discards the committed identifiers.
// Open cursors and transactions keep reading their snapshot.
// No-op if already closed.
func (store *Store) Close() error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.view.Lock()
	defer store.view.Unlock()

	store.closed = true
	store.ids = nil
	return nil
}

// Len returns the number of committed identifiers.
func (store *Store) Len() int {
	store.view.RLock()
	defer store.view.RUnlock()
	return len(store.ids)
}

// Contains reports whether id is committed.
func (store *Store) Contains(id int64) bool {
	store.view.RLock()
	defer store.view.RUnlock()
	_, found := slices.BinarySearch(store.ids, id)
	return found
}

// Add commits id.
func (store *Store) Add(id int64) error {
	return store.Batch(func(yield func(int64, bool) bool) {
		yield(id, true)
	})
}

// Remove commits the removal of id.
func (store *Store) Remove(id int64) error {
	return store.Batch(func(yield func(int64, bool) bool) {
		yield(id, false)
	})
}

// Batch commits sortedChanges atomically. The bool of each change is true
// for an addition and false for a removal. Identifiers must be strictly
// ascending, otherwise nothing is committed and ErrNotSorted is returned.
func (store *Store) Batch(sortedChanges iter.Seq2[int64, bool]) error {
	return store.swap(func(ids []int64) ([]int64, error) {
		return merge(ids, sortedChanges)
	})
}

// Snapshots returns the number of snapshot references held by open cursors
// and transactions.
func (store *Store) Snapshots() int {
	return int(store.refs.Load())
}

// acquire returns the current snapshot and takes a reference on it.
func (store *Store) acquire() (ids []int64, ok bool) {
	store.view.RLock()
	defer store.view.RUnlock()
	if store.closed {
		return nil, false
	}
	store.refs.Add(1)
	return store.ids, true
}

func (store *Store) release() {
	store.refs.Add(-1)
}

// swap replaces the snapshot with the result of update.
// Writers are serialized; readers keep the snapshot they acquired.
func (store *Store) swap(update func(ids []int64) ([]int64, error)) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if store.closed {
		return diffset.ErrClosed
	}

	ids, err := update(store.ids)
	if err != nil {
		return err
	}

	store.view.Lock()
	store.ids = ids
	store.view.Unlock()
	return nil
}

func merge(ids []int64, sortedChanges iter.Seq2[int64, bool]) ([]int64, error) {
	merged := make([]int64, 0, len(ids))
	var i int
	var prev int64
	first := true
	for id, add := range sortedChanges {
		if !first && id <= prev {
			return nil, diffset.ErrNotSorted
		}
		first, prev = false, id

		for i < len(ids) && ids[i] < id {
			merged = append(merged, ids[i])
			i++
		}
		if i < len(ids) && ids[i] == id {
			i++
		}
		if add {
			merged = append(merged, id)
		}
	}
	return append(merged, ids[i:]...), nil
}
