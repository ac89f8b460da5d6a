package writequeue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/stretchr/testify/require"
)

func TestQueueExecutesAndReportsOutcome(t *testing.T) {
	var mu sync.Mutex
	var seen []path.Path
	q := New(func(op Op) error {
		mu.Lock()
		seen = append(seen, op.Path)
		mu.Unlock()
		return nil
	}, 10)
	defer q.Close()

	id, err := q.Enqueue(OpSet, path.Path("/a"), value.Number(1))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, q.WaitForWrite(ctx, id))

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []path.Path{"/a"}, seen)
}

func TestQueuePreservesSubmissionOrderPerPath(t *testing.T) {
	var mu sync.Mutex
	var order []int
	q := New(func(op Op) error {
		mu.Lock()
		order = append(order, int(op.Value.Number))
		mu.Unlock()
		return nil
	}, 10)
	defer q.Close()

	var ids []uint64
	for i := 0; i < 20; i++ {
		id, err := q.Enqueue(OpSet, path.Path("/a"), value.Number(float64(i)))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for _, id := range ids {
		require.NoError(t, q.WaitForWrite(ctx, id))
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		require.Equal(t, i, v)
	}
}

func TestWaitForWriteReturnsExecutorError(t *testing.T) {
	boom := require.Error
	q := New(func(op Op) error { return context.DeadlineExceeded }, 10)
	defer q.Close()

	id, err := q.Enqueue(OpDelete, path.Path("/missing"), value.Value{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err = q.WaitForWrite(ctx, id)
	boom(t, err)
}
