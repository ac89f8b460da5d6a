// Package event implements the subscription registry, path-pattern
// matching, and the lock-free SPSC ring described in §4.5.
//
// # Overview
//
// A write that commits produces exactly one Change in the tree store,
// and that Change fans out to two independent listener classes:
//
//   - in-process callbacks registered through Registry.Subscribe, invoked
//     synchronously, on the writer's own goroutine, before the write call
//     returns;
//   - out-of-process consumers draining Ring, which buffers a bounded
//     number of encoded events and, when full, drops the new event
//     rather than ever blocking the writer.
//
// These two paths share nothing but the Event value the engine facade
// builds from a Change; either one can be absent without affecting the
// other.
//
// # Key Types
//
//	type Registry struct { ... } // RWMutex-guarded subscription map
//	type Ring struct { ... }     // atomic SPSC ring + value arena
//	type Event struct {
//	    Kind     Kind // KindValueChanged or KindValueDeleted
//	    Path     path.Path
//	    NewValue *value.Value
//	    OldValue *value.Value
//	}
//
// # Subscribing
//
//	reg := event.NewRegistry()
//	id := reg.Subscribe(p, true, func(e event.Event) {
//	    // e is only valid for the duration of this call; copy what you
//	    // need before returning.
//	})
//	defer reg.Unsubscribe(id)
//
// Registry.Emit takes its read lock only long enough to snapshot the
// matching subscribers into a local slice, then calls each callback with
// the lock released — a callback is free to Subscribe or Unsubscribe
// without deadlocking the registry that is currently invoking it.
//
// # Pattern Matching
//
// A subscription at pattern q always receives events for q itself. With
// include_descendants set it also receives events for any path under q's
// child prefix. The variant some rule-engine-shaped systems also support
// — an ancestor subscriber seeing descendant writes without opting in —
// is deliberately not implemented; see pattern.go.
//
// # The SPSC Ring
//
// Ring is a fixed-capacity, power-of-two-sized single-producer
// single-consumer queue: Push (the write path, guarded by an internal
// mutex since multiple writer goroutines may call it concurrently) never
// blocks, returning ErrQueueFull instead of waiting for the one consumer
// to catch up. Each slot stores a fixed-size path buffer and an offset
// into a shared byte arena holding the encoded value, so pushing never
// allocates on the hot path. Dropped pushes are counted, not retried —
// Engine.Stats().DroppedEvents surfaces that counter to an operator.
//
// # Related Packages
//
//   - github.com/elkyn-db/elkyn/internal/tree: produces the Change values
//     this package turns into Events.
//   - github.com/elkyn-db/elkyn/internal/engine: owns one Registry and
//     one Ring per database, wiring both to every committed write.
package event
