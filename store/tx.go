package store

import (
	"iter"

	"github.com/dacapoday/diffset"
	"github.com/dacapoday/diffset/diffsets"
	"github.com/dacapoday/diffset/iterator"
)

// Begin starts a transaction over the current snapshot.
//
// Important: Caller must call Commit or Rollback to release the snapshot.
func (store *Store) Begin() (tx *Tx) {
	tx = new(Tx)
	tx.Begin(store.Scan(), store.Batch)
	return
}

// Tx accumulates changes against a snapshot until committed. Not thread-safe.
type Tx struct {
	commit   Commit
	snapshot *Cursor
	pending  diffsets.DiffSets
}

// Commit applies ascending changes; the bool is true for an addition.
type Commit = func(sortedChanges iter.Seq2[int64, bool]) error

// Begin binds tx to snapshot, closing any transaction it held before.
// tx takes ownership of snapshot.
func (tx *Tx) Begin(snapshot *Cursor, commit Commit) {
	if tx.commit != nil {
		tx.close()
	}
	tx.commit = commit
	tx.snapshot = snapshot
}

func (tx *Tx) close() {
	tx.commit = nil
	tx.snapshot.Close()
	tx.snapshot = nil
	tx.pending.Reset()
}

// Rollback discards pending changes. No-op if tx is done.
func (tx *Tx) Rollback() {
	if tx.commit == nil {
		return
	}
	tx.close()
}

// Commit applies pending changes and ends tx.
// Returns ErrTxDone if tx was already committed or rolled back.
func (tx *Tx) Commit() (err error) {
	if tx.commit == nil {
		err = diffset.ErrTxDone
		return
	}
	if !tx.pending.Empty() {
		err = tx.commit(tx.pending.Changes)
	}
	tx.close()
	return
}

// Add marks id as present. Cancels a pending removal; no-op if id is
// already visible in the transaction.
func (tx *Tx) Add(id int64) error {
	if tx.commit == nil {
		return diffset.ErrTxDone
	}
	if tx.pending.IsRemoved(id) || !tx.snapshot.Contains(id) {
		tx.pending.Add(id)
	}
	return nil
}

// Remove marks id as absent. Cancels a pending addition; no-op if id is
// not visible in the transaction.
func (tx *Tx) Remove(id int64) error {
	if tx.commit == nil {
		return diffset.ErrTxDone
	}
	if tx.pending.IsAdded(id) || (tx.snapshot.Contains(id) && !tx.pending.IsRemoved(id)) {
		tx.pending.Remove(id)
	}
	return nil
}

// Contains reports whether id is visible in the transaction.
func (tx *Tx) Contains(id int64) bool {
	if tx.commit == nil {
		return false
	}
	if tx.pending.IsAdded(id) {
		return true
	}
	if tx.pending.IsRemoved(id) {
		return false
	}
	return tx.snapshot.Contains(id)
}

// Delta returns how many identifiers committing tx would add, minus how many it would remove.
func (tx *Tx) Delta() int {
	return tx.pending.Delta()
}

// Iter returns an iterator over the transaction's view: the snapshot
// without removed identifiers, followed by added identifiers in ascending
// order. Closing the iterator releases its own reference to the snapshot.
//
// Important: Caller must call Close to release resources.
func (tx *Tx) Iter() *iterator.Diff {
	var snapshot *Cursor
	if tx.commit == nil {
		snapshot = &Cursor{err: diffset.ErrTxDone}
	} else {
		snapshot = tx.snapshot.Clone()
	}
	return tx.pending.AugmentResource(snapshot)
}
