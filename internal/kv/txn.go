package kv

import (
	"fmt"

	"github.com/cockroachdb/pebble"
)

// KVPair is a single (key, value) result from a range scan.
type KVPair struct {
	Key   []byte
	Value []byte
}

// ReadTxn is an MVCC-consistent read transaction.
type ReadTxn struct {
	snap   *pebble.Snapshot
	closed bool
}

// Get returns the value at key, or ok=false if absent. The returned slice
// is a copy and safe to retain past the transaction's lifetime; Pebble's
// own zero-copy slice is closed immediately after copying to keep the
// adapter's resource-management surface small.
func (t *ReadTxn) Get(key []byte) ([]byte, bool, error) {
	if t.closed {
		return nil, false, ErrClosed
	}
	v, closer, err := t.snap.Get(key)
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv: get: %w", classify(err))
	}
	out := append([]byte(nil), v...)
	closer.Close()
	return out, true, nil
}

// Range scans all keys with the given byte prefix in ascending
// lexicographic order (§4.3, §I5).
func (t *ReadTxn) Range(prefix []byte) ([]KVPair, error) {
	if t.closed {
		return nil, ErrClosed
	}
	return scanPrefix(t.snap, prefix)
}

// Close releases the snapshot.
func (t *ReadTxn) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.snap.Close()
}

// WriteTxn is a single in-flight write transaction. Only one WriteTxn may
// be open per DB at a time (§5).
type WriteTxn struct {
	db     *DB
	batch  *pebble.Batch
	closed bool
}

// Get reads back the transaction's own uncommitted writes merged with
// committed state, matching an indexed-batch read-your-writes view.
func (t *WriteTxn) Get(key []byte) ([]byte, bool, error) {
	if t.closed {
		return nil, false, ErrClosed
	}
	v, closer, err := t.batch.Get(key)
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kv: get: %w", classify(err))
	}
	out := append([]byte(nil), v...)
	closer.Close()
	return out, true, nil
}

// Range scans keys under prefix, merging the transaction's pending writes.
func (t *WriteTxn) Range(prefix []byte) ([]KVPair, error) {
	if t.closed {
		return nil, ErrClosed
	}
	return scanPrefix(t.batch, prefix)
}

// Put writes key=value within the transaction. Visible to subsequent
// Get/Range calls on the same transaction; not visible to other readers
// until Commit.
func (t *WriteTxn) Put(key, val []byte) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.batch.Set(key, val, nil); err != nil {
		return fmt.Errorf("kv: put: %w", classify(err))
	}
	return nil
}

// Del removes key within the transaction.
func (t *WriteTxn) Del(key []byte) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.batch.Delete(key, nil); err != nil {
		return fmt.Errorf("kv: del: %w", classify(err))
	}
	return nil
}

// Commit applies the batch atomically and releases the write mutex.
func (t *WriteTxn) Commit() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	defer t.db.writeMu.Unlock()
	if err := t.batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("kv: commit: %w", classify(err))
	}
	return nil
}

// Rollback discards the batch without applying it.
func (t *WriteTxn) Rollback() {
	if t.closed {
		return
	}
	t.closed = true
	t.batch.Close()
	t.db.writeMu.Unlock()
}

// reader is the subset of *pebble.Snapshot / *pebble.Batch used by
// scanPrefix, so a single scan helper serves both read and write
// transactions.
type reader interface {
	NewIter(opts *pebble.IterOptions) (*pebble.Iterator, error)
}

func scanPrefix(r reader, prefix []byte) ([]KVPair, error) {
	iter, err := r.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("kv: range: %w", classify(err))
	}
	defer iter.Close()

	var out []KVPair
	for iter.First(); iter.Valid(); iter.Next() {
		out = append(out, KVPair{
			Key:   append([]byte(nil), iter.Key()...),
			Value: append([]byte(nil), iter.Value()...),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("kv: range: %w", classify(err))
	}
	return out, nil
}

// prefixUpperBound returns the smallest key greater than every key with
// the given prefix, by incrementing the last byte that isn't already
// 0xFF and truncating the rest. A prefix of all 0xFF bytes (or empty)
// scans to the end of the keyspace.
func prefixUpperBound(prefix []byte) []byte {
	out := append([]byte(nil), prefix...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 0xFF {
			out = out[:i]
			continue
		}
		out[i]++
		return out[:i+1]
	}
	return nil
}
