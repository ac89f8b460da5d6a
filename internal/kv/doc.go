// Package kv is the thin transactional wrapper over the ordered KV backend
// described in §4.3: begin_read/begin_write, get/put/del, and ascending
// prefix range scans. The concrete backend is Pebble
// (github.com/cockroachdb/pebble), an ordered, MVCC-snapshot LSM store.
//
// Pebble batches commit atomically but do not themselves detect
// write/write conflicts the way a fully transactional engine would; per
// §5's concurrency model ("using a backend without [single-writer
// discipline] requires the engine to add its own write mutex"), DB
// serializes write transactions behind writeMu so exactly one write batch
// is ever in flight. No write/write race can occur, and nothing in this
// package returns ErrTxnConflict.
package kv
