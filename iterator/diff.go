package iterator

import "github.com/dacapoday/diffset"

// Diff applies a set of added and removed identifiers to a base iterator.
//
// Output is every base identifier that is in neither removed nor added, in
// base order, followed by every identifier of added, in added's own order.
// A base identifier that is also added is held back until the added phase, so
// it is emitted once. Removal only filters the base: an identifier present in
// both removed and added is still emitted by the added phase.
//
// Added and removed are only read. The base is owned by the Diff once
// constructed and must not be advanced by anyone else.
/*
Phase List
filteringBase{
	base has next -> filteringBase (emit when not removed and not added)
	base done, added has next -> emittingAdded
	base done, added done -> exhausted
	base error -> exhausted
},
emittingAdded{
	added has next -> emittingAdded
	added done -> exhausted
},
exhausted
*/
type Diff struct {
	base    Iterator
	added   Set
	cursor  Iterator
	removed Set
	binding binding
	phase   phase
	value   int64
	err     error
}

type phase uint8

const (
	filteringBase phase = iota
	emittingAdded
	exhausted
)

// Augment returns a Diff over base that binds no resource.
// Close on the result is a no-op.
func Augment(base Iterator, added Collection, removed Set) *Diff {
	return newDiff(base, added, removed, unbound{})
}

// AugmentResource returns a Diff over base that forwards Close to base.
func AugmentResource(base ResourceIterator, added Collection, removed Set) *Diff {
	return newDiff(base, added, removed, bound{base})
}

func newDiff(base Iterator, added Collection, removed Set, binding binding) *Diff {
	return &Diff{
		base:    base,
		added:   added,
		cursor:  added.Iter(),
		removed: removed,
		binding: binding,
		phase:   filteringBase,
	}
}

var _ ResourceIterator = (*Diff)(nil)

// Next advances to the next identifier of the merged sequence.
// Once it returns false, every later call returns false without doing work.
func (iter *Diff) Next() bool {
	switch iter.phase {
	case filteringBase:
		return iter.nextFromBase()
	case emittingAdded:
		return iter.nextFromAdded()
	default:
		return false
	}
}

func (iter *Diff) nextFromBase() bool {
	for iter.base.Next() {
		id := iter.base.Value()
		if !iter.removed.Contains(id) && !iter.added.Contains(id) {
			iter.value = id
			return true
		}
	}
	if err := iter.base.Error(); err != nil {
		return iter.fail(err)
	}
	return iter.nextFromAdded()
}

func (iter *Diff) nextFromAdded() bool {
	if iter.cursor.Next() {
		iter.phase = emittingAdded
		iter.value = iter.cursor.Value()
		return true
	}
	if err := iter.cursor.Error(); err != nil {
		return iter.fail(err)
	}
	iter.phase = exhausted
	return false
}

func (iter *Diff) fail(err error) bool {
	iter.err = err
	iter.phase = exhausted
	return false
}

// Value returns the current identifier.
func (iter *Diff) Value() int64 {
	return iter.value
}

// Error returns the error reported by the base or the added iterator, unwrapped.
func (iter *Diff) Error() error {
	return iter.err
}

// FromAdded reports whether the current identifier was emitted by the added phase.
func (iter *Diff) FromAdded() bool {
	return iter.phase == emittingAdded
}

// Close forwards to the bound resource on every call.
// Iteration state is left as is.
func (iter *Diff) Close() error {
	return iter.binding.release()
}

type binding interface {
	release() error
}

type unbound struct{}

func (unbound) release() error { return nil }

type bound struct {
	resource diffset.Resource
}

func (b bound) release() error { return b.resource.Close() }
