package writequeue

import "errors"

var (
	// ErrUnknownOp indicates an Op whose Kind is neither OpSet nor
	// OpDelete. WaitForWrite does not return it: for an id the queue never
	// issued, or whose outcome was already consumed, it waits until ctx is
	// done.
	ErrUnknownOp = errors.New("writequeue: unknown operation id")

	// ErrClosed indicates Enqueue was called after Close.
	ErrClosed = errors.New("writequeue: closed")
)
