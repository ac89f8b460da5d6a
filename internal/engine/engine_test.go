package engine

import (
	"errors"
	"testing"

	"github.com/elkyn-db/elkyn/internal/auth"
	"github.com/elkyn-db/elkyn/internal/event"
	"github.com/elkyn-db/elkyn/internal/tree"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func allowAllRules(t *testing.T, e *Engine) {
	t.Helper()
	require.NoError(t, e.LoadRules([]byte(`{".read": "true", ".write": "true"}`)))
}

// scenario 1/2/3, §8, driven through the façade rather than the bare
// tree store.
func TestEngineGetSetRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	allowAllRules(t, e)

	alice := value.Object(map[string]value.Value{
		"name": value.String("Alice"),
		"age":  value.Number(30),
	})
	require.NoError(t, e.Set("/users/alice", alice, nil))

	got, err := e.Get("/users/alice/name", nil)
	require.NoError(t, err)
	require.True(t, value.Equal(got, value.String("Alice")))
}

// Absence of a loaded rule document denies everything (§4.8 "absence of
// rules at any level is deny").
func TestGetWithNoRulesLoadedIsForbidden(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Get("/users/alice", nil)
	require.ErrorIs(t, err, ErrForbidden)
}

// scenario 4, §8.
func TestRuleScopedReadForbidsOtherUsers(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.LoadRules([]byte(`{
		"users": {
			"$uid": {
				".read": "$uid === auth.uid",
				".write": "$uid === auth.uid"
			}
		}
	}`)))

	alice := &auth.Context{Authenticated: true, UID: "alice"}
	require.NoError(t, e.Set("/users/alice", value.String("hi"), alice))

	_, err := e.Get("/users/alice", alice)
	require.NoError(t, err)

	_, err = e.Get("/users/bob", alice)
	require.ErrorIs(t, err, ErrForbidden)
}

// Forbidden and not-found are distinguishable (§7).
func TestForbiddenAndNotFoundAreDistinguishable(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.LoadRules([]byte(`{
		"users": {
			"$uid": {".read": "$uid === auth.uid"}
		}
	}`)))

	alice := &auth.Context{Authenticated: true, UID: "alice"}

	_, err := e.Get("/users/bob", alice)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = e.Get("/users/alice", alice)
	require.True(t, errors.Is(err, tree.ErrNotFound))
	require.False(t, errors.Is(err, ErrForbidden))
}

// scenario 5, §8: a descendant subscriber receives exactly one event for
// a write under it.
func TestSubscribeDescendantReceivesWriteEvent(t *testing.T) {
	e := newTestEngine(t)
	allowAllRules(t, e)

	received := make(chan event.Event, 4)
	_, err := e.Subscribe("/users", true, func(ev event.Event) {
		received <- ev
	})
	require.NoError(t, err)

	require.NoError(t, e.Set("/users/alice/email", value.String("x@y"), nil))

	select {
	case ev := <-received:
		require.Equal(t, event.KindValueChanged, ev.Kind)
		require.EqualValues(t, "/users/alice/email", ev.Path)
	default:
		t.Fatal("expected exactly one delivered event")
	}
	require.Len(t, received, 0)
}

func TestDeleteEmitsValueDeleted(t *testing.T) {
	e := newTestEngine(t)
	allowAllRules(t, e)
	require.NoError(t, e.Set("/x", value.Number(1), nil))

	received := make(chan event.Event, 1)
	_, err := e.Subscribe("/x", false, func(ev event.Event) { received <- ev })
	require.NoError(t, err)

	require.NoError(t, e.Delete("/x", nil))
	ev := <-received
	require.Equal(t, event.KindValueDeleted, ev.Kind)
}

func TestLoadRulesKeepsPriorRulesOnParseFailure(t *testing.T) {
	e := newTestEngine(t)
	allowAllRules(t, e)

	err := e.LoadRules([]byte(`{"users": "not-a-mapping-or-predicate-string-owner"}`))
	require.Error(t, err)

	// The allow-all document from allowAllRules is still active.
	require.NoError(t, e.Set("/still/allowed", value.Bool(true), nil))
}

func TestAsyncSetAndWaitForWrite(t *testing.T) {
	e := newTestEngine(t)
	allowAllRules(t, e)
	e.EnableAsync(0)

	id, err := e.SetAsync("/async/x", value.Number(7), nil)
	require.NoError(t, err)
	require.NoError(t, e.WaitForWrite(t.Context(), id))

	got, err := e.Get("/async/x", nil)
	require.NoError(t, err)
	require.True(t, value.Equal(got, value.Number(7)))
}

func TestStatsCountsReadsWritesAndForbidden(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.LoadRules([]byte(`{
		"open": {".read": "true", ".write": "true"}
	}`)))

	require.NoError(t, e.Set("/open/a", value.Number(1), nil))
	_, err := e.Get("/open/a", nil)
	require.NoError(t, err)
	_, err = e.Get("/closed", nil)
	require.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, e.Delete("/open/a", nil))

	s := e.Stats()
	require.EqualValues(t, 2, s.Writes)
	require.EqualValues(t, 1, s.Reads)
	require.EqualValues(t, 1, s.Forbidden)
	// "/open/a" has two ancestors ("/" and "/open"), both left in place.
	require.EqualValues(t, 2, s.StaleMarkers)
}
