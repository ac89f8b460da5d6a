package kv

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
)

// DB is the ordered KV backend handle. It owns the Pebble database and
// the single-writer mutex that gives Elkyn serializable write
// transactions on top of a backend that only guarantees atomic batch
// application (§5).
type DB struct {
	pdb     *pebble.DB
	writeMu sync.Mutex
}

// Open opens (creating if absent) the Pebble store rooted at dir.
func Open(dir string) (*DB, error) {
	pdb, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("kv: open %s: %w", dir, err)
	}
	return &DB{pdb: pdb}, nil
}

// Close flushes and closes the backend.
func (db *DB) Close() error {
	if err := db.pdb.Close(); err != nil {
		return fmt.Errorf("kv: close: %w", err)
	}
	return nil
}

// BeginRead opens an MVCC-consistent read transaction (a Pebble
// snapshot). The caller must Close it when done.
func (db *DB) BeginRead() *ReadTxn {
	return &ReadTxn{snap: db.pdb.NewSnapshot()}
}

// BeginWrite opens a write transaction. Only one write transaction may be
// open at a time; BeginWrite blocks until any prior one commits or rolls
// back.
func (db *DB) BeginWrite() *WriteTxn {
	db.writeMu.Lock()
	return &WriteTxn{db: db, batch: db.pdb.NewIndexedBatch()}
}
