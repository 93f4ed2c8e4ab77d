package relay

import (
	"sync"
	"testing"
	"time"
)

type call[R any] struct {
	err     error
	results R
}

// capture records every final-callback invocation.
type capture[R any] struct {
	mu    sync.Mutex
	calls []call[R]
	ch    chan struct{}
}

func newCapture[R any]() *capture[R] {
	return &capture[R]{ch: make(chan struct{}, 1)}
}

func (c *capture[R]) callback(err error, results R) {
	c.mu.Lock()
	c.calls = append(c.calls, call[R]{err: err, results: results})
	c.mu.Unlock()

	select {
	case c.ch <- struct{}{}:
	default:
	}
}

func (c *capture[R]) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// mustCall waits for the first callback invocation.
func (c *capture[R]) mustCall(t *testing.T) call[R] {
	t.Helper()

	select {
	case <-c.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected final callback, got none")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[0]
}

// mustCallNow asserts the callback already ran exactly once.
func (c *capture[R]) mustCallNow(t *testing.T) call[R] {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) != 1 {
		t.Fatalf("expected exactly one synchronous callback, got %d", len(c.calls))
	}
	return c.calls[0]
}

// deferred collects continuations so a test can fire them in any order.
type deferred[T any] struct {
	mu    sync.Mutex
	dones map[int]Done[T]
}

func newDeferred[T any]() *deferred[T] {
	return &deferred[T]{dones: make(map[int]Done[T])}
}

func (d *deferred[T]) hold(i int, done Done[T]) {
	d.mu.Lock()
	d.dones[i] = done
	d.mu.Unlock()
}

func (d *deferred[T]) fire(t *testing.T, i int, err error, values ...T) {
	t.Helper()

	d.mu.Lock()
	done, ok := d.dones[i]
	d.mu.Unlock()
	if !ok {
		t.Fatalf("task %d was never launched", i)
	}
	done(err, values...)
}
