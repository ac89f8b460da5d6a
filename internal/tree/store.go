package tree

import (
	"fmt"

	"github.com/elkyn-db/elkyn/internal/kv"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
)

// Store decomposes/reassembles Values over a kv.DB, implementing §4.4.
type Store struct {
	db *kv.DB
}

// New wraps db as a tree store.
func New(db *kv.DB) *Store {
	return &Store{db: db}
}

// Get reads the value at p, reconstructing compound subtrees as needed.
func (s *Store) Get(p path.Path) (value.Value, error) {
	r := s.db.BeginRead()
	defer r.Close()
	return get(r, p)
}

// Set decomposes v at prefix p within one write transaction (§4.4
// step 1-5) and returns the Change to emit once the caller has confirmed
// the commit succeeded.
func (s *Store) Set(p path.Path, v value.Value) (Change, error) {
	w := s.db.BeginWrite()

	old, err := readOptional(w, p)
	if err != nil {
		w.Rollback()
		return Change{}, err
	}

	if err := clearSubtree(w, p); err != nil {
		w.Rollback()
		return Change{}, err
	}
	if err := decomposeAt(w, p, v); err != nil {
		w.Rollback()
		return Change{}, err
	}
	if err := ensureAncestorMarkers(w, p); err != nil {
		w.Rollback()
		return Change{}, err
	}

	if err := w.Commit(); err != nil {
		return Change{}, fmt.Errorf("tree: set %s: %w", p, err)
	}

	nv := v
	return Change{Kind: ChangeValue, Path: p, New: &nv, Old: old}, nil
}

// Delete range-deletes child_prefix(p) and p itself within one write
// transaction (§4.4 "Delete"). Ancestor branch markers are left in place
// (§4.4, §9 — an intentional Non-goal, not an oversight); the returned
// Change.StaleMarkers counts them so the engine can surface them as a
// diagnostic counter instead of sweeping them.
func (s *Store) Delete(p path.Path) (Change, error) {
	w := s.db.BeginWrite()

	old, err := readOptional(w, p)
	if err != nil {
		w.Rollback()
		return Change{}, err
	}
	if old == nil {
		w.Rollback()
		return Change{}, fmt.Errorf("tree: delete %s: %w", p, ErrNotFound)
	}

	if err := clearSubtree(w, p); err != nil {
		w.Rollback()
		return Change{}, err
	}

	if err := w.Commit(); err != nil {
		return Change{}, fmt.Errorf("tree: delete %s: %w", p, err)
	}

	ancestors := path.Ancestors(p)
	return Change{Kind: ChangeDelete, Path: p, Old: old, StaleMarkers: len(ancestors)}, nil
}

// readOptional reads p within an in-flight write transaction, returning
// (nil, nil) instead of ErrNotFound when absent — Set/Delete use this to
// capture the optional "old_value" (§4.5) without failing on a fresh
// path.
func readOptional(w *kv.WriteTxn, p path.Path) (*value.Value, error) {
	v, err := get(w, p)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func isNotFound(err error) bool {
	for err != nil {
		if err == ErrNotFound {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// clearSubtree deletes p and every key under child_prefix(p).
func clearSubtree(w *kv.WriteTxn, p path.Path) error {
	prefix := path.ChildPrefix(p)
	rows, err := w.Range([]byte(prefix))
	if err != nil {
		return fmt.Errorf("tree: range %s: %w", prefix, err)
	}
	for _, row := range rows {
		if err := w.Del(row.Key); err != nil {
			return fmt.Errorf("tree: del %s: %w", row.Key, err)
		}
	}
	if _, ok, err := w.Get([]byte(p)); err != nil {
		return fmt.Errorf("tree: get %s: %w", p, err)
	} else if ok {
		if err := w.Del([]byte(p)); err != nil {
			return fmt.Errorf("tree: del %s: %w", p, err)
		}
	}
	return nil
}

// decomposeAt writes v at p: a single leaf for primitives, or a branch
// marker plus recursively decomposed children for compounds (§4.4 step 3).
func decomposeAt(w *kv.WriteTxn, p path.Path, v value.Value) error {
	if v.IsPrimitive() {
		enc, err := value.EncodeLeaf(v)
		if err != nil {
			return fmt.Errorf("tree: encode %s: %w", p, err)
		}
		return w.Put([]byte(p), enc)
	}

	shape := value.ShapeObject
	if v.Kind == value.KindArray {
		shape = value.ShapeArray
	}
	if err := w.Put([]byte(p), value.BranchMarker(shape)); err != nil {
		return fmt.Errorf("tree: put marker %s: %w", p, err)
	}

	if v.Kind == value.KindObject {
		for k, cv := range v.Obj {
			if err := decomposeAt(w, path.Join(p, k), cv); err != nil {
				return err
			}
		}
		return nil
	}
	for i, cv := range v.Arr {
		if err := decomposeAt(w, path.Join(p, indexSegment(i)), cv); err != nil {
			return err
		}
	}
	return nil
}

// ensureAncestorMarkers puts a branch marker on every strict ancestor of
// p that doesn't already carry one (§4.4 step 2-3). An ancestor that
// already has a marker keeps its existing shape tag untouched.
func ensureAncestorMarkers(w *kv.WriteTxn, p path.Path) error {
	for _, a := range path.Ancestors(p) {
		existing, ok, err := w.Get([]byte(a))
		if err != nil {
			return fmt.Errorf("tree: get ancestor %s: %w", a, err)
		}
		if ok {
			if _, isMarker := value.IsBranchMarker(existing); isMarker {
				continue
			}
		}
		if err := w.Put([]byte(a), value.BranchMarker(value.ShapeObject)); err != nil {
			return fmt.Errorf("tree: put ancestor marker %s: %w", a, err)
		}
	}
	return nil
}
