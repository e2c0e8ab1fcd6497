package iterator

import "iter"

// Values implements iter.Seq[int64] over the remaining identifiers of it.
// Check it.Error() once the range loop ends.
func Values(it Iterator) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
// On error, the identifiers read so far are returned with the error.
func Collect(it Iterator) (ids []int64, err error) {
	for it.Next() {
		ids = append(ids, it.Value())
	}
	err = it.Error()
	return
}
