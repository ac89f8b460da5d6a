package event

import "github.com/elkyn-db/elkyn/internal/path"

// subscription is the registry's stored entry.
type subscription struct {
	id                 uint64
	pattern            path.Path
	includeDescendants bool
	callback           Callback
}

// matches implements the baseline pattern-matching contract of §4.5:
// a subscriber at q receives events for q itself, and for any descendant
// of q when includeDescendants is true. The "ancestor subscribers also
// see descendant writes" variant the spec lists as optional is NOT
// implemented — DESIGN.md records this as the deliberate baseline choice.
func (s *subscription) matches(p path.Path) bool {
	if p == s.pattern {
		return true
	}
	if s.includeDescendants && path.HasPrefix(p, s.pattern) {
		return true
	}
	return false
}
