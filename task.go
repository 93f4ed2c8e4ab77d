package relay

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
)

// Done is an error-first continuation. A nil err marks success; values carry
// the success payload, which may be empty.
type Done[T any] func(err error, values ...T)

// Task is a unit of asynchronous work. It must invoke done exactly once,
// either before returning or later from any goroutine.
type Task[T any] func(ctx context.Context, done Done[T])

var (
	// ErrNilTask is reported when a task, iteratee or transform is nil.
	ErrNilTask = errors.New("relay: nil task")

	// ErrNegativeCount is reported by Times when n is negative.
	ErrNegativeCount = errors.New("relay: negative count")

	// ErrNoTransforms is returned by Compose when called without transforms.
	ErrNoTransforms = errors.New("relay: no transforms to compose")
)

// Payload holds the success values one task reported, in order.
type Payload[T any] struct {
	values []T
}

// Value returns the reported value, or the first one when the task reported
// several. It returns the zero value when the task reported none.
func (p Payload[T]) Value() T {
	return first(p.values)
}

// Values returns every reported value in order.
func (p Payload[T]) Values() []T {
	return p.values
}

// Len reports how many values the task passed to its continuation.
func (p Payload[T]) Len() int {
	return len(p.values)
}

func newPayload[T any](values []T) Payload[T] {
	return Payload[T]{values: slices.Clone(values)}
}

func first[T any](values []T) T {
	if len(values) == 0 {
		var zero T
		return zero
	}
	return values[0]
}

// PanicError is reported in place of a task that panicked before invoking
// its continuation.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("relay: panic recovered: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// invoke runs launch and turns a panic into fail(err) if the task has not
// reported yet. A panic after the task reported belongs to code downstream of
// the continuation and is re-raised.
func (c config) invoke(launch func(), reported func() bool, fail func(error)) {
	if !c.panicToError {
		launch()
		return
	}

	defer func() {
		if r := recover(); r != nil {
			if reported() {
				panic(r)
			}
			c.logger.Warn().Str("name", c.name).Interface("panic", r).Msg("relay: task panicked")
			fail(&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	launch()
}
