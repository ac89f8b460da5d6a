package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/elkyn-db/elkyn/internal/auth"
	"github.com/elkyn-db/elkyn/internal/event"
	"github.com/elkyn-db/elkyn/internal/kv"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/rule"
	"github.com/elkyn-db/elkyn/internal/tree"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/elkyn-db/elkyn/internal/writequeue"
)

// maxTxnConflictRetries bounds the retry of §5's "conflicts surface as
// TxnConflict and MAY be retried by the engine (bounded retry, e.g., 3
// attempts)".
const maxTxnConflictRetries = 3

// Engine is the façade of §4.9: get/set/delete each evaluate the
// relevant rule, call the tree store, and emit events on success.
type Engine struct {
	db       *kv.DB
	store    *tree.Store
	registry *event.Registry
	ring     *event.Ring
	authf    *auth.Auth

	rulesMu   sync.RWMutex
	evaluator *rule.Evaluator

	queueMu sync.Mutex
	queue   *writequeue.Queue

	counters counters
}

type counters struct {
	writes       atomic.Uint64
	reads        atomic.Uint64
	forbidden    atomic.Uint64
	staleMarkers atomic.Uint64
}

// Open opens (creating if absent) the backend rooted at dataDir. No
// rules are loaded until LoadRules is called — every get/set/delete is
// Forbidden until then, consistent with §4.8's "absence of rules at any
// level is deny".
func Open(dataDir string) (*Engine, error) {
	db, err := kv.Open(dataDir)
	if err != nil {
		return nil, err
	}
	return &Engine{
		db:       db,
		store:    tree.New(db),
		registry: event.NewRegistry(),
		ring:     event.NewRing(event.DefaultRingCapacity, event.DefaultArenaSize),
		authf:    auth.New(),
	}, nil
}

// Close stops any async write queue and closes the backend.
func (e *Engine) Close() error {
	e.queueMu.Lock()
	q := e.queue
	e.queueMu.Unlock()
	if q != nil {
		q.Close()
	}
	return e.db.Close()
}

// EnableAuth turns on JWT issuance/verification (§6 enable_auth).
func (e *Engine) EnableAuth(secret string) {
	e.authf.Enable(secret)
}

// CreateToken issues a signed token for uid (§6 create_token).
func (e *Engine) CreateToken(uid, email string) (string, error) {
	return e.authf.CreateToken(uid, email)
}

// ValidateToken verifies tok and returns its AuthContext (§6
// validate_token).
func (e *Engine) ValidateToken(tok string) (auth.Context, error) {
	return e.authf.ValidateToken(tok)
}

// LoadRules parses document and atomically swaps it in as the active
// rule set (§6 load_rules). A document that fails to parse leaves the
// previously loaded rules live (§7's RuleParseError contract).
func (e *Engine) LoadRules(document []byte) error {
	root, err := rule.ParseDocument(document)
	if err != nil {
		return err
	}
	ev := rule.NewEvaluator(root)
	e.rulesMu.Lock()
	e.evaluator = ev
	e.rulesMu.Unlock()
	return nil
}

func (e *Engine) currentEvaluator() *rule.Evaluator {
	e.rulesMu.RLock()
	defer e.rulesMu.RUnlock()
	return e.evaluator
}

func toRuleAuth(a *auth.Context) rule.Auth {
	if a == nil {
		return rule.Auth{}
	}
	return rule.Auth{Authenticated: a.Authenticated, UID: a.UID, Email: a.Email, Roles: a.Roles}
}

func (e *Engine) allow(t rule.Type, p path.Path, a *auth.Context) bool {
	ev := e.currentEvaluator()
	if ev == nil {
		return false
	}
	return ev.Allow(t, p, toRuleAuth(a))
}

// Get reads the value at pathStr under a's read authorization (§6 get).
// a may be nil, meaning the anonymous AuthContext.
func (e *Engine) Get(pathStr string, a *auth.Context) (value.Value, error) {
	p, err := path.Normalize(pathStr)
	if err != nil {
		return value.Value{}, err
	}
	if !e.allow(rule.TypeRead, p, a) {
		e.counters.forbidden.Add(1)
		return value.Value{}, ErrForbidden
	}
	v, err := e.store.Get(p)
	if err != nil {
		return value.Value{}, err
	}
	e.counters.reads.Add(1)
	return v, nil
}

// Set decomposes v at pathStr under a's write authorization (§6 set),
// then emits the resulting change.
func (e *Engine) Set(pathStr string, v value.Value, a *auth.Context) error {
	p, err := path.Normalize(pathStr)
	if err != nil {
		return err
	}
	if !e.allow(rule.TypeWrite, p, a) {
		e.counters.forbidden.Add(1)
		return ErrForbidden
	}
	ch, err := e.retrySet(p, v)
	if err != nil {
		return err
	}
	e.counters.writes.Add(1)
	e.emit(ch)
	return nil
}

// Delete removes the subtree rooted at pathStr under a's write
// authorization (§6 delete), then emits the resulting change.
func (e *Engine) Delete(pathStr string, a *auth.Context) error {
	p, err := path.Normalize(pathStr)
	if err != nil {
		return err
	}
	if !e.allow(rule.TypeWrite, p, a) {
		e.counters.forbidden.Add(1)
		return ErrForbidden
	}
	ch, err := e.retryDelete(p)
	if err != nil {
		return err
	}
	e.counters.writes.Add(1)
	e.counters.staleMarkers.Add(uint64(ch.StaleMarkers))
	e.emit(ch)
	return nil
}

func (e *Engine) retrySet(p path.Path, v value.Value) (tree.Change, error) {
	var lastErr error
	for attempt := 0; attempt < maxTxnConflictRetries; attempt++ {
		ch, err := e.store.Set(p, v)
		if err == nil {
			return ch, nil
		}
		if !isTxnConflict(err) {
			return tree.Change{}, err
		}
		lastErr = err
	}
	return tree.Change{}, fmt.Errorf("engine: set %s: %w", p, lastErr)
}

func (e *Engine) retryDelete(p path.Path) (tree.Change, error) {
	var lastErr error
	for attempt := 0; attempt < maxTxnConflictRetries; attempt++ {
		ch, err := e.store.Delete(p)
		if err == nil {
			return ch, nil
		}
		if !isTxnConflict(err) {
			return tree.Change{}, err
		}
		lastErr = err
	}
	return tree.Change{}, fmt.Errorf("engine: delete %s: %w", p, lastErr)
}

func isTxnConflict(err error) bool {
	for err != nil {
		if err == kv.ErrTxnConflict {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// emit publishes ch to the in-process registry and the SPSC ring. Ring
// back-pressure is never propagated to the writer (§5, §7): a full ring
// only increments the dropped counter surfaced via Stats.
func (e *Engine) emit(ch tree.Change) {
	ev := event.Event{Path: ch.Path, NewValue: ch.New, OldValue: ch.Old}
	if ch.Kind == tree.ChangeDelete {
		ev.Kind = event.KindValueDeleted
	} else {
		ev.Kind = event.KindValueChanged
	}
	e.registry.Emit(ev)

	var payload []byte
	if ev.NewValue != nil {
		if enc, err := value.EncodeLeaf(*ev.NewValue); err == nil {
			payload = enc
		}
	}
	_ = e.ring.Push(ev.Kind, string(ev.Path), payload)
}

// Subscribe registers cb for pattern (§6 subscribe).
func (e *Engine) Subscribe(patternStr string, includeDescendants bool, cb event.Callback) (uint64, error) {
	p, err := path.Normalize(patternStr)
	if err != nil {
		return 0, err
	}
	return e.registry.Subscribe(p, includeDescendants, cb), nil
}

// Unsubscribe removes a subscription (§6 unsubscribe).
func (e *Engine) Unsubscribe(id uint64) {
	e.registry.Unsubscribe(id)
}
