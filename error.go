package diffset

import "errors"

var (
	ErrClosed    = errors.New("closed")
	ErrTxDone    = errors.New("transaction done")
	ErrNotSorted = errors.New("changes not sorted")
)
