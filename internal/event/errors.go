package event

import "errors"

// ErrQueueFull is returned by Ring.Push when the ring has no free slots.
// The producer MUST NOT block on this (§4.5); the engine counts it and
// moves on.
var ErrQueueFull = errors.New("event: ring queue full")
