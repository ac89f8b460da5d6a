package elkyn

import (
	"context"

	"github.com/elkyn-db/elkyn/internal/engine"
)

// DB is an embedded Elkyn database rooted at a single on-disk directory.
// A DB is safe for concurrent use from multiple goroutines (§5).
type DB struct {
	e *engine.Engine
}

// Open opens (creating if absent) the database rooted at dataDir. No
// rule document is loaded yet — every Get/Set/Delete is ErrForbidden
// until LoadRules or WatchRulesFile is called.
func Open(dataDir string) (*DB, error) {
	e, err := engine.Open(dataDir)
	if err != nil {
		return nil, err
	}
	return &DB{e: e}, nil
}

// Close stops any async write pipeline and closes the backend.
func (db *DB) Close() error { return db.e.Close() }

// EnableAuth turns on JWT issuance/verification with the given HMAC
// secret.
func (db *DB) EnableAuth(secret string) { db.e.EnableAuth(secret) }

// CreateToken issues a signed token for uid.
func (db *DB) CreateToken(uid, email string) (string, error) {
	return db.e.CreateToken(uid, email)
}

// ValidateToken verifies tok and returns the resulting AuthContext.
func (db *DB) ValidateToken(tok string) (AuthContext, error) {
	return db.e.ValidateToken(tok)
}

// LoadRules parses document and atomically installs it as the active
// rule set. A document that fails to parse leaves the previously loaded
// rules in effect.
func (db *DB) LoadRules(document []byte) error { return db.e.LoadRules(document) }

// WatchRulesFile loads the rule document at rulesPath and reloads it on
// every subsequent change, atomically. The returned stop function ends
// the watch.
func (db *DB) WatchRulesFile(rulesPath string) (stop func(), err error) {
	return db.e.WatchRulesFile(rulesPath)
}

// Get reads the value at path under auth's read authorization. auth may
// be nil, meaning Anonymous.
func (db *DB) Get(path string, auth *AuthContext) (Value, error) {
	return db.e.Get(path, auth)
}

// Set decomposes v at path under auth's write authorization and emits
// the resulting change to matching subscribers.
func (db *DB) Set(path string, v Value, auth *AuthContext) error {
	return db.e.Set(path, v, auth)
}

// Delete removes the subtree rooted at path under auth's write
// authorization and emits the resulting change.
func (db *DB) Delete(path string, auth *AuthContext) error {
	return db.e.Delete(path, auth)
}

// Subscribe registers cb to run for every change at pattern, and for
// its descendants too when includeDescendants is set.
func (db *DB) Subscribe(pattern string, includeDescendants bool, cb Callback) (uint64, error) {
	return db.e.Subscribe(pattern, includeDescendants, cb)
}

// Unsubscribe removes a subscription registered with Subscribe.
func (db *DB) Unsubscribe(id uint64) { db.e.Unsubscribe(id) }

// EnableAsync turns on the optional async write pipeline, draining
// batches of up to batchSize operations (a non-positive value uses the
// package default).
func (db *DB) EnableAsync(batchSize int) { db.e.EnableAsync(batchSize) }

// SetAsync authorizes synchronously, then enqueues the write, returning
// an operation id to pass to WaitForWrite.
func (db *DB) SetAsync(path string, v Value, auth *AuthContext) (uint64, error) {
	return db.e.SetAsync(path, v, auth)
}

// DeleteAsync authorizes synchronously, then enqueues the delete,
// returning an operation id to pass to WaitForWrite.
func (db *DB) DeleteAsync(path string, auth *AuthContext) (uint64, error) {
	return db.e.DeleteAsync(path, auth)
}

// WaitForWrite blocks until the async operation id completes, or ctx is
// done.
func (db *DB) WaitForWrite(ctx context.Context, id uint64) error {
	return db.e.WaitForWrite(ctx, id)
}

// Stats returns a snapshot of the database's operator-facing counters.
func (db *DB) Stats() Stats { return db.e.Stats() }
