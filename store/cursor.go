package store

import (
	"slices"

	"github.com/dacapoday/diffset"
	"github.com/dacapoday/diffset/iterator"
)

// Scan returns a cursor over the committed identifiers in ascending order.
// The cursor reads the snapshot current at the time of the call.
//
// Important: Caller must call Close to release the snapshot.
func (store *Store) Scan() *Cursor {
	ids, ok := store.acquire()
	if !ok {
		return &Cursor{err: diffset.ErrClosed}
	}
	return &Cursor{store: store, ids: ids, index: -1}
}

// Cursor is a forward iterator over a snapshot of a Store. Not thread-safe.
type Cursor struct {
	store *Store
	ids   []int64
	index int
	err   error
}

var _ iterator.ResourceIterator = (*Cursor)(nil)

// Clone creates an independent cursor over the same snapshot, at the same position.
//
// Important: Caller must call Close on the clone as well.
func (cursor *Cursor) Clone() *Cursor {
	if cursor.store == nil {
		return &Cursor{err: cursor.closedErr()}
	}
	cursor.store.refs.Add(1)
	return &Cursor{store: cursor.store, ids: cursor.ids, index: cursor.index}
}

// Close releases the snapshot.
// Returns ErrClosed if the cursor was already closed.
func (cursor *Cursor) Close() error {
	if cursor.store == nil {
		return diffset.ErrClosed
	}
	cursor.store.release()
	cursor.store = nil
	cursor.ids = nil
	return nil
}

// Next advances to the next identifier.
// Returns false with Error() == ErrClosed once the cursor is closed.
func (cursor *Cursor) Next() bool {
	if cursor.err != nil {
		return false
	}
	if cursor.store == nil {
		cursor.err = diffset.ErrClosed
		return false
	}
	if cursor.index >= len(cursor.ids) {
		return false
	}
	cursor.index++
	return cursor.index < len(cursor.ids)
}

// Value returns the current identifier.
func (cursor *Cursor) Value() int64 {
	return cursor.ids[cursor.index]
}

// Error returns ErrClosed if Next was called on a closed cursor.
func (cursor *Cursor) Error() error {
	return cursor.err
}

// Len returns the number of identifiers in the snapshot.
func (cursor *Cursor) Len() int {
	return len(cursor.ids)
}

// Contains reports whether id is in the snapshot, regardless of position.
func (cursor *Cursor) Contains(id int64) bool {
	_, found := slices.BinarySearch(cursor.ids, id)
	return found
}

func (cursor *Cursor) closedErr() error {
	if cursor.err != nil {
		return cursor.err
	}
	return diffset.ErrClosed
}
