package kv

import (
	"errors"

	"github.com/cockroachdb/pebble"
)

var (
	// ErrMapFull indicates the backend rejected a write because it is out
	// of storage space.
	ErrMapFull = errors.New("kv: backend full")

	// ErrCorruption indicates the backend detected an internal
	// inconsistency (checksum failure, corrupt manifest, ...).
	ErrCorruption = errors.New("kv: backend corruption")

	// ErrTxnConflict indicates a write transaction lost a write/write
	// race. The engine retries this internally (§7) a bounded number of
	// times before surfacing it.
	ErrTxnConflict = errors.New("kv: transaction conflict")

	// ErrClosed indicates an operation was attempted against a closed
	// transaction or database handle.
	ErrClosed = errors.New("kv: closed")

	// ErrNotFound mirrors pebble.ErrNotFound so callers never need to
	// import pebble directly.
	ErrNotFound = pebble.ErrNotFound
)

// classify maps Pebble's corruption error to ErrCorruption and returns
// every other error unchanged. No Pebble error is mapped to ErrMapFull or
// ErrTxnConflict; nothing in this package returns either of them.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pebble.ErrNotFound):
		return err
	case errors.Is(err, pebble.ErrCorruption):
		return ErrCorruption
	default:
		return err
	}
}
