package elkyn

import (
	"github.com/elkyn-db/elkyn/internal/auth"
	"github.com/elkyn-db/elkyn/internal/engine"
	"github.com/elkyn-db/elkyn/internal/kv"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/rule"
	"github.com/elkyn-db/elkyn/internal/tree"
	"github.com/elkyn-db/elkyn/internal/value"
)

// Error kinds surfaced by the core (§7). An error of one of these kinds is
// errors.Is-comparable against its sentinel. Not every error matches one:
// backend errors other than corruption are passed through unclassified,
// and WaitForWrite returns ctx.Err() when its context ends first.
var (
	ErrInvalidPath  = path.ErrInvalidPath
	ErrInvalidJSON  = value.ErrInvalidJSON
	ErrDecode       = value.ErrDecode
	ErrNotPrimitive = value.ErrNotPrimitive

	ErrNotFound  = tree.ErrNotFound
	ErrForbidden = engine.ErrForbidden

	ErrBackendFull      = kv.ErrMapFull
	ErrBackendCorrupt   = kv.ErrCorruption
	ErrTxnConflict      = kv.ErrTxnConflict
	ErrBackendClosed    = kv.ErrClosed

	ErrAuthDisabled = auth.ErrAuthDisabled
	ErrInvalidToken = auth.ErrInvalidToken
	ErrTokenExpired = auth.ErrTokenExpired

	ErrRuleParse = rule.ErrRuleParse

	ErrAsyncDisabled = engine.ErrAsyncDisabled
)
