// Package diffset defines basic interfaces for overlaying uncommitted changes
// on sequences of record identifiers.
package diffset

import "io"

// Resource is a handle that must be released once consumption is done or abandoned.
//
// Close is not required to be idempotent; callers that need it must guard themselves.
type Resource interface {
	io.Closer
}
