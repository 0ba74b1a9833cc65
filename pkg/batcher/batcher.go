// Package batcher buffers items in the background and hands them to a flush
// callback in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add and Flush after Stop.
var ErrStopped = errors.New("batcher stopped")

type entry[T any] struct {
	item T
	// done is set for flush barriers instead of items.
	done chan error
}

// Batcher buffers items and flushes them by size, by interval, or on demand.
// A flush failure drops the batch and is reported by the next Flush call.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	entries       chan entry[T]
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	errMu sync.Mutex
	err   error

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. rps caps how many flushes run per second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		entries:       make(chan entry[T], flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	return b.send(ctx, entry[T]{item: item})
}

// Flush writes every item added before the call by the same goroutine and
// returns the first flush error seen since the previous Flush.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	done := make(chan error, 1)
	if err := b.send(ctx, entry[T]{done: done}); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case err := <-done:
		return err
	}
}

func (b *Batcher[T]) send(ctx context.Context, e entry[T]) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.entries <- e:
		return nil
	}
}

func (b *Batcher[T]) takeErr() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	err := b.err
	b.err = nil
	return err
}

func (b *Batcher[T]) setErr(err error) {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	if b.err == nil {
		b.err = err
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flushCallback(ctx, buf); err != nil {
			b.setErr(err)
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	handle := func(e entry[T]) {
		if e.done != nil {
			flush()
			e.done <- b.takeErr()
			return
		}
		buf = append(buf, e.item)
		if len(buf) >= b.flushSize {
			flush()
		}
	}

	drain := func() {
		for {
			select {
			case e := <-b.entries:
				handle(e)
			default:
				flush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case e := <-b.entries:
			handle(e)

		case <-ticker.C:
			flush()
		}
	}
}
