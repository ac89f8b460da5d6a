package engine

import (
	"context"

	"github.com/elkyn-db/elkyn/internal/auth"
	"github.com/elkyn-db/elkyn/internal/path"
	"github.com/elkyn-db/elkyn/internal/rule"
	"github.com/elkyn-db/elkyn/internal/tree"
	"github.com/elkyn-db/elkyn/internal/value"
	"github.com/elkyn-db/elkyn/internal/writequeue"
)

// EnableAsync turns on the optional async write pipeline of §4.6,
// draining batches of up to batchSize (writequeue.DefaultBatchSize if
// <= 0). Calling it twice is a no-op.
func (e *Engine) EnableAsync(batchSize int) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	if e.queue != nil {
		return
	}
	e.queue = writequeue.New(e.execAsync, batchSize)
}

// execAsync is the writequeue.Executor that runs a queued operation
// through the same synchronous path Set/Delete use (§4.6: "each
// executed via the synchronous path").
func (e *Engine) execAsync(op writequeue.Op) error {
	var ch tree.Change
	var err error
	switch op.Kind {
	case writequeue.OpSet:
		ch, err = e.retrySet(op.Path, op.Value)
	case writequeue.OpDelete:
		ch, err = e.retryDelete(op.Path)
	default:
		return writequeue.ErrUnknownOp
	}
	if err != nil {
		return err
	}
	e.counters.writes.Add(1)
	e.counters.staleMarkers.Add(uint64(ch.StaleMarkers))
	e.emit(ch)
	return nil
}

func (e *Engine) asyncQueue() (*writequeue.Queue, error) {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	if e.queue == nil {
		return nil, ErrAsyncDisabled
	}
	return e.queue, nil
}

// SetAsync authorizes synchronously, then enqueues the write itself
// (§6 set_async).
func (e *Engine) SetAsync(pathStr string, v value.Value, a *auth.Context) (uint64, error) {
	p, err := path.Normalize(pathStr)
	if err != nil {
		return 0, err
	}
	if !e.allow(rule.TypeWrite, p, a) {
		e.counters.forbidden.Add(1)
		return 0, ErrForbidden
	}
	q, err := e.asyncQueue()
	if err != nil {
		return 0, err
	}
	return q.Enqueue(writequeue.OpSet, p, v)
}

// DeleteAsync authorizes synchronously, then enqueues the delete itself
// (§6 delete_async).
func (e *Engine) DeleteAsync(pathStr string, a *auth.Context) (uint64, error) {
	p, err := path.Normalize(pathStr)
	if err != nil {
		return 0, err
	}
	if !e.allow(rule.TypeWrite, p, a) {
		e.counters.forbidden.Add(1)
		return 0, ErrForbidden
	}
	q, err := e.asyncQueue()
	if err != nil {
		return 0, err
	}
	return q.Enqueue(writequeue.OpDelete, p, value.Value{})
}

// WaitForWrite blocks until the async operation id completes (§6
// wait_for_write), or ctx is done.
func (e *Engine) WaitForWrite(ctx context.Context, id uint64) error {
	q, err := e.asyncQueue()
	if err != nil {
		return err
	}
	return q.WaitForWrite(ctx, id)
}
