package tree

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/elkyn-db/elkyn/internal/kv"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
)

// indexWidth is the zero-padded decimal width used to encode array
// indices as path segments, chosen (per §4.4 step 3) wide enough that
// lexicographic and numeric order coincide for any array this store will
// hold in practice.
const indexWidth = 10

func indexSegment(i int) string {
	return fmt.Sprintf("%0*d", indexWidth, i)
}

// childSegments returns, in ascending scan order, the distinct immediate
// child segments of p found by range-scanning its child prefix.
func childSegments(rows []kv.KVPair, prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		rest := string(row.Key)[len(prefix):]
		seg := rest
		for i := 0; i < len(rest); i++ {
			if rest[i] == '/' {
				seg = rest[:i]
				break
			}
		}
		if !seen[seg] {
			seen[seg] = true
			out = append(out, seg)
		}
	}
	return out
}

// isArrayShape reports whether segs, sorted, exactly matches the
// canonical {0,1,...,N-1} index-segment set — the fallback heuristic used
// only when a subtree has no branch marker to consult (§9, §4.4 edge
// cases): p itself has no key but keys exist under its child prefix.
// Fresh writes always carry an explicit shape tag (SPEC_FULL.md §C.1); a
// stored marker without a valid 'o'/'a' tag is not recognized as a marker
// and fails to decode as a leaf.
func isArrayShape(segs []string) bool {
	if len(segs) == 0 {
		return false
	}
	sorted := append([]string(nil), segs...)
	sort.Strings(sorted)
	for i, s := range sorted {
		if s != indexSegment(i) {
			return false
		}
	}
	return true
}

type txnReader interface {
	Get(key []byte) ([]byte, bool, error)
	Range(prefix []byte) ([]kv.KVPair, error)
}

// get resolves p against txn, reconstructing compound values as needed.
// It is shared by read and write transactions (the latter needed so Set
// can read prior state for the emitted Change within the same txn).
func get(txn txnReader, p path.Path) (value.Value, error) {
	raw, ok, err := txn.Get([]byte(p))
	if err != nil {
		return value.Value{}, fmt.Errorf("tree: get %s: %w", p, err)
	}
	if ok {
		if shape, isMarker := value.IsBranchMarker(raw); isMarker {
			return reconstruct(txn, p, &shape)
		}
		v, err := value.DecodeLeaf(raw)
		if err != nil {
			return value.Value{}, fmt.Errorf("tree: decode leaf %s: %w", p, err)
		}
		return v, nil
	}

	prefix := path.ChildPrefix(p)
	rows, err := txn.Range([]byte(prefix))
	if err != nil {
		return value.Value{}, fmt.Errorf("tree: range %s: %w", prefix, err)
	}
	if len(rows) == 0 {
		// A decimal segment that is not itself stored is retried as its
		// zero-padded array index, so /arr/1 reaches /arr/0000000001.
		if parent, ok := path.Parent(p); ok {
			seg := string(p)[len(path.ChildPrefix(parent)):]
			if n, err := strconv.Atoi(seg); err == nil && seg[0] >= '0' && seg[0] <= '9' && indexSegment(n) != seg {
				return get(txn, path.Join(parent, indexSegment(n)))
			}
		}
		return value.Value{}, fmt.Errorf("tree: %s: %w", p, ErrNotFound)
	}
	return reconstruct(txn, p, nil)
}

// reconstruct assembles the compound value rooted at p from its
// immediate children. knownShape is non-nil when a branch marker supplied
// an explicit tag; nil triggers the key-shape heuristic fallback.
func reconstruct(txn txnReader, p path.Path, knownShape *value.Shape) (value.Value, error) {
	prefix := path.ChildPrefix(p)
	rows, err := txn.Range([]byte(prefix))
	if err != nil {
		return value.Value{}, fmt.Errorf("tree: range %s: %w", prefix, err)
	}
	segs := childSegments(rows, prefix)

	isArray := false
	if knownShape != nil {
		isArray = *knownShape == value.ShapeArray
	} else {
		isArray = isArrayShape(segs)
	}

	if isArray {
		sorted := append([]string(nil), segs...)
		sort.Strings(sorted)
		items := make([]value.Value, 0, len(sorted))
		for _, seg := range sorted {
			cv, err := get(txn, path.Join(p, seg))
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, cv)
		}
		return value.Array(items), nil
	}

	fields := make(map[string]value.Value, len(segs))
	for _, seg := range segs {
		cv, err := get(txn, path.Join(p, seg))
		if err != nil {
			return value.Value{}, err
		}
		fields[seg] = cv
	}
	return value.Object(fields), nil
}
