package event

import (
	"sync"
	"sync/atomic"

	"github.com/elkyn-db/elkyn/internal/path"
)

// Registry is the subscription registry of §4.5: a map from monotonic
// subscription id to {pattern, include_descendants, callback}, protected
// by a reader/writer lock. Emission takes the read lock only long enough
// to snapshot matching callbacks into a local slice, then invokes them
// without the lock held — a subscriber callback can safely Subscribe or
// Unsubscribe without deadlocking the registry.
type Registry struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID atomic.Uint64
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[uint64]*subscription)}
}

// Subscribe registers cb for pattern and returns its subscription id.
func (r *Registry) Subscribe(pattern path.Path, includeDescendants bool, cb Callback) uint64 {
	id := r.nextID.Add(1)
	sub := &subscription{id: id, pattern: pattern, includeDescendants: includeDescendants, callback: cb}

	r.mu.Lock()
	r.subs[id] = sub
	r.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription. It is a no-op for an unknown id.
func (r *Registry) Unsubscribe(id uint64) {
	r.mu.Lock()
	delete(r.subs, id)
	r.mu.Unlock()
}

// Emit invokes every matching subscriber's callback, in subscriber
// iteration order, synchronously (§4.5 "Emission ordering"). Panics from
// an individual callback are recovered and counted, never propagated to
// the writer (§7).
func (r *Registry) Emit(e Event) (delivered int, panicked int) {
	matched := r.snapshotMatching(e.Path)
	for _, sub := range matched {
		if invokeSafely(sub.callback, e) {
			delivered++
		} else {
			panicked++
		}
	}
	return delivered, panicked
}

func (r *Registry) snapshotMatching(p path.Path) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription
	for _, sub := range r.subs {
		if sub.matches(p) {
			out = append(out, sub)
		}
	}
	return out
}

func invokeSafely(cb Callback, e Event) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	cb(e)
	return true
}

// Len returns the number of live subscriptions, for Engine.Stats.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
