package event

import (
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
)

// Kind distinguishes the two event kinds named in §4.5.
type Kind uint8

const (
	KindValueChanged Kind = iota
	KindValueDeleted
)

func (k Kind) String() string {
	if k == KindValueDeleted {
		return "value_deleted"
	}
	return "value_changed"
}

// Event is the payload delivered to in-process callbacks (§4.5). It is
// owned by the caller of Emit and guaranteed valid only for the duration
// of the callback that receives it (§3 Ownership) — subscribers must not
// retain NewValue/OldValue past their callback returning.
type Event struct {
	Kind     Kind
	Path     path.Path
	NewValue *value.Value // nil for KindValueDeleted
	OldValue *value.Value // optional (§3), nil if not captured
}

// Callback is a subscriber's in-process handler.
type Callback func(Event)
