package treap

import "errors"

var (
	// ErrIndexOutOfRange indicates a position or range endpoint fell
	// outside the sequence's current bounds. Returned before any mutation
	// is attempted, so a rejected call never leaves the tree half-changed.
	ErrIndexOutOfRange = errors.New("treap: index out of range")

	// ErrEmptyRange indicates a range with l > r was supplied. Note that
	// l == r is a valid single-element range, not an error.
	ErrEmptyRange = errors.New("treap: empty range")
)
