package elkyn

import (
	"github.com/elkyn-db/elkyn/internal/auth"
	"github.com/elkyn-db/elkyn/internal/engine"
	"github.com/elkyn-db/elkyn/internal/event"
	"github.com/elkyn-db/elkyn/internal/value"
)

// Value re-exports the tagged-union value type so callers never import
// internal/value directly.
type (
	Value = value.Value
	Kind  = value.Kind
)

// Value kinds.
const (
	KindNull   = value.KindNull
	KindBool   = value.KindBool
	KindNumber = value.KindNumber
	KindString = value.KindString
	KindArray  = value.KindArray
	KindObject = value.KindObject
)

// Value constructors.
var (
	Null   = value.Null
	Bool   = value.Bool
	Number = value.Number
	String = value.String
	Array  = value.Array
	Object = value.Object
	Equal  = value.Equal
)

// FromJSON and ToJSON convert between a Value and its JSON wire form
// (§4.2, §6 "On-disk layout").
var (
	FromJSON = value.FromJSON
	ToJSON   = value.ToJSON
)

// AuthContext is the authentication context threaded through Get/Set/
// Delete and produced by ValidateToken.
type AuthContext = auth.Context

// Anonymous is the AuthContext used for an unauthenticated caller.
var Anonymous = auth.Anonymous

// Event, EventKind and Callback describe the live-subscription payload
// delivered to Subscribe callbacks.
type (
	Event     = event.Event
	EventKind = event.Kind
	Callback  = event.Callback
)

// Event kinds.
const (
	EventValueChanged = event.KindValueChanged
	EventValueDeleted = event.KindValueDeleted
)

// Stats is a read-only snapshot of operator-facing counters.
type Stats = engine.Stats
