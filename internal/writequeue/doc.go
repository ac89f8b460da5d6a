// Package writequeue implements the optional async write pipeline of
// §4.6: a mutex-protected FIFO drained by a single background worker in
// batches of up to N operations, with outcomes recorded in a completion
// map keyed by a monotonically increasing operation id. A single worker
// guarantees operations on the same path preserve submission order.
package writequeue
