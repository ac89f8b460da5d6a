// Package engine is the façade of §4.9: it ties the tree store, the rule
// evaluator, the auth façade, and the event bus together into
// get/set/delete/subscribe.
//
// # Overview
//
// Engine composes; it does not reimplement any of the packages it wraps.
// Every read or write evaluates the relevant rule against the caller's
// AuthContext before touching storage, and every successful write emits
// its Change to the in-process registry and the SPSC ring only after the
// underlying transaction commits — never before, and never on a path
// that failed (§2's control-flow summary, §5's ordering guarantees).
//
// # Key Types
//
//	type Engine struct { ... }
//	type Stats struct {
//	    Writes, Reads, Forbidden, DroppedEvents uint64
//	    Subscriptions, AsyncQueueDepth          int
//	    StaleMarkers                            uint64
//	}
//
// # Opening a Database
//
//	e, err := engine.Open("./data")
//	if err != nil {
//	    return err
//	}
//	defer e.Close()
//
//	if err := e.LoadRules(rulesJSON); err != nil {
//	    return err
//	}
//
// No rules are loaded at Open time, so every get/set/delete is Forbidden
// until LoadRules (or WatchRulesFile) installs a rule set — the same
// default-deny posture the rule package itself enforces.
//
// # Reads and Writes
//
//	v, err := e.Get("/users/alice", authCtx)
//	err = e.Set("/users/alice/age", value.Number(31), authCtx)
//	err = e.Delete("/users/alice", authCtx)
//
// A write transaction that reports a storage-level TxnConflict is
// retried internally, for at most maxTxnConflictRetries attempts in all,
// before the error is surfaced to the caller (§5).
//
// # Subscriptions
//
//	id, err := e.Subscribe("/users", true, func(ev event.Event) { ... })
//	defer e.Unsubscribe(id)
//
// # Async Writes
//
//	e.EnableAsync(writequeue.DefaultBatchSize)
//	id, err := e.SetAsync("/counter", value.Number(1), authCtx)
//	err = e.WaitForWrite(ctx, id)
//
// Async writes still run rule evaluation synchronously, on the caller's
// goroutine, before the operation is ever enqueued — only the storage
// transaction and event emission happen on the background worker.
//
// # Rule Hot-Reload
//
//	stop, err := e.WatchRulesFile("./rules.json")
//	defer stop()
//
// WatchRulesFile loads the file once, then reloads it on every
// subsequent write or create event. A document that fails to parse
// leaves the previously loaded rules live (§7's RuleParseError contract)
// rather than leaving the database rule-less.
//
// # Related Packages
//
//   - github.com/elkyn-db/elkyn/internal/tree: storage decomposition.
//   - github.com/elkyn-db/elkyn/internal/rule: authorization evaluation.
//   - github.com/elkyn-db/elkyn/internal/event: subscription fan-out.
//   - github.com/elkyn-db/elkyn/internal/writequeue: the async write
//     pipeline EnableAsync wires up.
//   - github.com/elkyn-db/elkyn/pkg/elkyn: the public facade built on
//     top of this package.
package engine
