// Package tree is the heart of Elkyn (§4.4): it decomposes a Value into
// independently addressable leaves over the ordered KV backend, recomposes
// a subtree back into a Value on read, and performs recursive delete.
//
// # Overview
//
// A compound value (object or array) is never stored as a single blob.
// Every primitive in the tree gets its own key, named by the path that
// reaches it, and every compound node along the way gets a branch marker
// so a reader can tell "this key has children" from "this key doesn't
// exist" without a range scan. This mirrors how the spec's keyspace is
// defined: the store's job is entirely the translation between a Value
// and the flat ordered keyspace underneath it.
//
// # Key Types
//
//	type Store struct { ... } // wraps a kv.DB
//	type Change struct {
//	    Kind ChangeKind // ChangeValue or ChangeDelete
//	    Path path.Path
//	    New  *value.Value
//	    Old  *value.Value
//	    StaleMarkers int
//	}
//
// # Writing a Value
//
//	st := tree.New(db)
//	ch, err := st.Set(p, value.Object(map[string]value.Value{
//	    "name": value.String("Alice"),
//	}))
//	if err != nil {
//	    return err
//	}
//	// ch.Old holds the prior value at p, if any; ch is handed to the
//	// engine facade for event emission once the caller confirms the
//	// surrounding transaction committed.
//
// Set always fully replaces the subtree at p: every existing key under
// p's child prefix is cleared before the new value is decomposed, so a
// set([]) truly empties what was previously an object.
//
// # Reading a Value
//
// Get walks the branch marker at p: a leaf key decodes directly, a
// branch marker triggers a recursive reconstruction of every child key
// under p's child prefix back into an object or array, keyed by the
// marker's shape tag.
//
// # Deleting a Subtree
//
// Delete removes p and everything under its child prefix in one write
// transaction. It does not sweep the branch markers left on p's
// ancestors — that is an explicit Non-goal (§4.4, §9), not an oversight.
// The returned Change.StaleMarkers counts those ancestors so a caller can
// surface them as a diagnostic rather than silently losing the signal.
//
// # Invariants
//
//   - I1: every non-leaf path with children carries a branch marker.
//   - I2: every leaf key holds exactly one primitive encoding.
//   - I3: set(p, v) leaves the keyspace exactly equal to the
//     decomposition of v rooted at p.
//   - I4: delete(p) removes p and every descendant key, and nothing else.
//   - I5: a branch marker's shape tag ('o' or 'a') is authoritative; the
//     array-index-shaped-keys heuristic is only a fallback for a path that
//     has descendant keys but no key of its own.
//
// # Related Packages
//
//   - github.com/elkyn-db/elkyn/internal/kv: the ordered transactional
//     backend this package decomposes values onto.
//   - github.com/elkyn-db/elkyn/internal/value: the tagged-union value
//     model and its leaf encoding.
//   - github.com/elkyn-db/elkyn/internal/engine: the facade that pairs
//     Store operations with rule evaluation and event emission.
package tree
