package tree

import (
	"testing"

	"github.com/elkyn-db/elkyn/internal/kv"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := kv.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func mustPath(t *testing.T, s string) path.Path {
	t.Helper()
	p, err := path.Normalize(s)
	require.NoError(t, err)
	return p
}

// scenario 1, §8.
func TestSetObjectAndReadLeaves(t *testing.T) {
	s := newTestStore(t)
	alice := value.Object(map[string]value.Value{
		"name":   value.String("Alice"),
		"age":    value.Number(30),
		"active": value.Bool(true),
	})
	_, err := s.Set(mustPath(t, "/users/alice"), alice)
	require.NoError(t, err)

	name, err := s.Get(mustPath(t, "/users/alice/name"))
	require.NoError(t, err)
	require.True(t, value.Equal(name, value.String("Alice")))

	age, err := s.Get(mustPath(t, "/users/alice/age"))
	require.NoError(t, err)
	require.True(t, value.Equal(age, value.Number(30)))

	active, err := s.Get(mustPath(t, "/users/alice/active"))
	require.NoError(t, err)
	require.True(t, value.Equal(active, value.Bool(true)))

	whole, err := s.Get(mustPath(t, "/users/alice"))
	require.NoError(t, err)
	require.True(t, value.Equal(whole, alice))
}

// scenario 2, §8.
func TestOverwriteDropsOldFields(t *testing.T) {
	s := newTestStore(t)
	p := mustPath(t, "/users/alice")
	_, err := s.Set(p, value.Object(map[string]value.Value{
		"name": value.String("Alice"),
		"age":  value.Number(30),
	}))
	require.NoError(t, err)

	_, err = s.Set(p, value.Object(map[string]value.Value{"name": value.String("Alice2")}))
	require.NoError(t, err)

	_, err = s.Get(mustPath(t, "/users/alice/age"))
	require.ErrorIs(t, err, ErrNotFound)

	got, err := s.Get(p)
	require.NoError(t, err)
	require.True(t, value.Equal(got, value.Object(map[string]value.Value{"name": value.String("Alice2")})))
}

// scenario 3, §8.
func TestArrayRoundTrip(t *testing.T) {
	s := newTestStore(t)
	p := mustPath(t, "/arr")
	arr := value.Array([]value.Value{value.Number(10), value.Number(20), value.Number(30)})
	_, err := s.Set(p, arr)
	require.NoError(t, err)

	got, err := s.Get(p)
	require.NoError(t, err)
	require.True(t, value.Equal(got, arr))

	second, err := s.Get(mustPath(t, "/arr/1"))
	require.NoError(t, err)
	require.True(t, value.Equal(second, value.Number(20)))
}

func TestDeleteRemovesDescendants(t *testing.T) {
	s := newTestStore(t)
	p := mustPath(t, "/users/alice")
	_, err := s.Set(p, value.Object(map[string]value.Value{
		"email": value.String("a@b.com"),
	}))
	require.NoError(t, err)

	change, err := s.Delete(p)
	require.NoError(t, err)
	require.Equal(t, ChangeDelete, change.Kind)

	_, err = s.Get(p)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(mustPath(t, "/users/alice/email"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEmptyObjectAndArrayDistinguished(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Set(mustPath(t, "/a"), value.Object(map[string]value.Value{}))
	require.NoError(t, err)
	_, err = s.Set(mustPath(t, "/b"), value.Array([]value.Value{}))
	require.NoError(t, err)

	a, err := s.Get(mustPath(t, "/a"))
	require.NoError(t, err)
	require.Equal(t, value.KindObject, a.Kind)

	b, err := s.Get(mustPath(t, "/b"))
	require.NoError(t, err)
	require.Equal(t, value.KindArray, b.Kind)
}

func TestWriteNullStoresNullNotDelete(t *testing.T) {
	s := newTestStore(t)
	p := mustPath(t, "/x")
	_, err := s.Set(p, value.Null)
	require.NoError(t, err)

	got, err := s.Get(p)
	require.NoError(t, err)
	require.Equal(t, value.KindNull, got.Kind)
}
