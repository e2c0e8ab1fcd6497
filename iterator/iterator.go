// Package iterator provides forward-only iterators over record identifiers
// and the Diff iterator, which overlays pending additions and removals on a
// base sequence without materializing the result.
package iterator

import "github.com/dacapoday/diffset"

// Iterator is a forward-only, single-pass producer of identifiers.
//
// Usage:
//
//	for iter.Next() {
//	    id := iter.Value()
//	    // process id
//	}
//	if err := iter.Error(); err != nil {
//	    // handle error
//	}
type Iterator interface {
	// Next advances to the next identifier.
	// Returns false when the sequence is exhausted or an error occurred.
	// Use Error() to distinguish between these cases.
	Next() bool

	// Value returns the identifier at the current position.
	// Behavior is undefined if the last call to Next returned false.
	Value() int64

	// Error returns the error that stopped iteration, or nil when the
	// sequence ended normally.
	Error() error
}

// ResourceIterator is an Iterator holding a resource that must be released.
type ResourceIterator interface {
	Iterator
	diffset.Resource
}

// Set is a read-only membership test.
type Set interface {
	Contains(id int64) bool
}

// Collection is a Set that can also be iterated.
// Each call to Iter returns a fresh iterator in the collection's own order.
type Collection interface {
	Set
	Iter() Iterator
}
