package engine

import "errors"

var (
	// ErrForbidden indicates rule evaluation denied the operation (§7).
	ErrForbidden = errors.New("engine: forbidden")

	// ErrAsyncDisabled indicates an async operation was attempted before
	// EnableAsync.
	ErrAsyncDisabled = errors.New("engine: async writes not enabled")
)
