package iterator

// Slice iterates the identifiers of a slice in order.
// The slice is referenced, not copied.
type Slice struct {
	ids   []int64
	index int
}

// FromSlice returns an iterator over ids.
func FromSlice(ids ...int64) *Slice {
	return &Slice{ids: ids, index: -1}
}

var _ Iterator = (*Slice)(nil)

// Next advances to the next identifier.
func (iter *Slice) Next() bool {
	if iter.index >= len(iter.ids) {
		return false
	}
	iter.index++
	return iter.index < len(iter.ids)
}

// Value returns the current identifier.
func (iter *Slice) Value() int64 {
	return iter.ids[iter.index]
}

// Error always returns nil.
func (iter *Slice) Error() error {
	return nil
}
