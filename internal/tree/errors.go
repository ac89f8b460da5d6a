package tree

import "errors"

var (
	// ErrNotFound indicates a read of a path with no leaf and no children
	// (§4.4 step 4).
	ErrNotFound = errors.New("tree: not found")
)
