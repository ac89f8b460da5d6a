package event

import (
	"testing"

	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/stretchr/testify/require"
)

// scenario 5, §8.
func TestRegistryDescendantMatch(t *testing.T) {
	r := NewRegistry()
	var received []Event
	r.Subscribe(path.Path("/users"), true, func(e Event) {
		received = append(received, e)
	})

	nv := value.String("x@y")
	r.Emit(Event{Kind: KindValueChanged, Path: path.Path("/users/alice/email"), NewValue: &nv})

	require.Len(t, received, 1)
	require.Equal(t, path.Path("/users/alice/email"), received[0].Path)
	require.Equal(t, KindValueChanged, received[0].Kind)
}

func TestRegistryExactMatchOnly(t *testing.T) {
	r := NewRegistry()
	var count int
	r.Subscribe(path.Path("/users/bob"), false, func(Event) { count++ })

	r.Emit(Event{Kind: KindValueChanged, Path: path.Path("/users/bob")})
	r.Emit(Event{Kind: KindValueChanged, Path: path.Path("/users/bob/email")})

	require.Equal(t, 1, count)
}

func TestRegistryUnsubscribe(t *testing.T) {
	r := NewRegistry()
	var count int
	id := r.Subscribe(path.Path("/a"), true, func(Event) { count++ })
	r.Unsubscribe(id)
	r.Emit(Event{Kind: KindValueChanged, Path: path.Path("/a")})
	require.Equal(t, 0, count)
}

func TestRegistryRecoversPanickingCallback(t *testing.T) {
	r := NewRegistry()
	r.Subscribe(path.Path("/a"), false, func(Event) { panic("boom") })
	delivered, panicked := r.Emit(Event{Kind: KindValueChanged, Path: path.Path("/a")})
	require.Equal(t, 0, delivered)
	require.Equal(t, 1, panicked)
}

func TestRingPushPop(t *testing.T) {
	ring := NewRing(4, 64)
	err := ring.Push(KindValueChanged, "/a/b", []byte("hello"))
	require.NoError(t, err)

	slot, val, ok := ring.Pop()
	require.True(t, ok)
	require.Equal(t, "/a/b", slot.Path())
	require.Equal(t, []byte("hello"), val)
	require.Equal(t, uint64(1), slot.Sequence)
}

func TestRingFullReturnsErrQueueFull(t *testing.T) {
	ring := NewRing(2, 64)
	require.NoError(t, ring.Push(KindValueChanged, "/a", nil))
	require.NoError(t, ring.Push(KindValueChanged, "/b", nil))
	err := ring.Push(KindValueChanged, "/c", nil)
	require.ErrorIs(t, err, ErrQueueFull)
	require.Equal(t, uint64(1), ring.Dropped())
}

func TestRingSequenceMonotonic(t *testing.T) {
	ring := NewRing(1024, DefaultArenaSize)
	const n = 5000
	// Push in batches smaller than the capacity and drain each batch, so
	// the ring never fills (a full ring returns ErrQueueFull).
	const batch = 1000
	var last uint64
	for done := 0; done < n; done += batch {
		for i := 0; i < batch; i++ {
			require.NoError(t, ring.Push(KindValueChanged, "/x", []byte("v")))
		}
		for i := 0; i < batch; i++ {
			slot, _, ok := ring.Pop()
			require.True(t, ok)
			require.Greater(t, slot.Sequence, last)
			last = slot.Sequence
		}
	}
}
