package engine

// Stats is a read-only snapshot of operator-facing counters, grounded on
// hivekit's pattern of returning a diagnostic struct rather than exposing
// internals directly.
type Stats struct {
	Writes          uint64
	Reads           uint64
	Forbidden       uint64
	DroppedEvents   uint64
	Subscriptions   int
	AsyncQueueDepth int

	// StaleMarkers counts ancestor branch markers left behind by deletes
	// (§C.2's "ancestor sweep" Non-goal) — a diagnostic for operators, not
	// something the engine ever repairs on its own.
	StaleMarkers uint64
}

// Stats returns a snapshot of the engine's counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Writes:        e.counters.writes.Load(),
		Reads:         e.counters.reads.Load(),
		Forbidden:     e.counters.forbidden.Load(),
		DroppedEvents: e.ring.Dropped(),
		Subscriptions: e.registry.Len(),
		StaleMarkers:  e.counters.staleMarkers.Load(),
	}
	e.queueMu.Lock()
	if e.queue != nil {
		s.AsyncQueueDepth = e.queue.Depth()
	}
	e.queueMu.Unlock()
	return s
}
