package path

import "errors"

var (
	// ErrInvalidPath indicates the input could not be normalized into a
	// canonical path: it was empty, not slash-prefixed, or contained a
	// doubled separator. A single trailing separator is stripped, not
	// rejected.
	ErrInvalidPath = errors.New("path: invalid path")
)
