package elkyn_test

import (
	"testing"

	"github.com/elkyn-db/elkyn/pkg/elkyn"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *elkyn.DB {
	t.Helper()
	db, err := elkyn.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenSetGetRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.LoadRules([]byte(`{".read": "true", ".write": "true"}`)))

	v := elkyn.Object(map[string]elkyn.Value{
		"name": elkyn.String("Alice"),
		"age":  elkyn.Number(30),
	})
	require.NoError(t, db.Set("/users/alice", v, nil))

	got, err := db.Get("/users/alice", nil)
	require.NoError(t, err)
	require.True(t, elkyn.Equal(got, v))
}

func TestGetForbiddenWithoutRules(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Get("/anything", nil)
	require.ErrorIs(t, err, elkyn.ErrForbidden)
}

func TestSubscribeReceivesChange(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.LoadRules([]byte(`{".read": "true", ".write": "true"}`)))

	received := make(chan elkyn.Event, 1)
	_, err := db.Subscribe("/x", false, func(ev elkyn.Event) { received <- ev })
	require.NoError(t, err)

	require.NoError(t, db.Set("/x", elkyn.Number(1), nil))
	ev := <-received
	require.Equal(t, elkyn.EventValueChanged, ev.Kind)
}

func TestAuthTokenLifecycle(t *testing.T) {
	db := openTestDB(t)
	db.EnableAuth("test-secret")

	tok, err := db.CreateToken("alice", "alice@example.com")
	require.NoError(t, err)

	ctx, err := db.ValidateToken(tok)
	require.NoError(t, err)
	require.Equal(t, "alice", ctx.UID)
}
