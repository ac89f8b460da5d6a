package tree

import (
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
)

// ChangeKind distinguishes the two event kinds named in §4.5.
type ChangeKind uint8

const (
	ChangeValue ChangeKind = iota
	ChangeDelete
)

// Change is computed before commit and handed to the engine facade for
// event emission after commit succeeds (§4.4 step 4-5). It intentionally
// carries no reference into the transaction: callers own it once Set or
// Delete returns.
type Change struct {
	Kind ChangeKind
	Path path.Path
	New  *value.Value // nil for ChangeDelete
	Old  *value.Value // nil if no prior value was read (optional, §3)

	// StaleMarkers counts the ancestor branch markers left in place by a
	// ChangeDelete that the store does not sweep (§4.4, §9 Non-goal). Zero
	// for ChangeValue.
	StaleMarkers int
}
