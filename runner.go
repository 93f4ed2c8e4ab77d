package relay

import (
	"context"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Runner runs blocking functions as Tasks on tracked goroutines.
//
// Coordinators never cancel work they launched: after a short-circuit, the
// remaining tasks keep running and their reports are discarded. A Runner is
// how a host joins that leftover work. It never cancels anything itself.
type Runner struct {
	eg  *errgroup.Group
	cfg config
}

// NewRunner creates a Runner. WithPanicToError and WithLogger apply to the
// functions it runs.
func NewRunner(opts ...Option) *Runner {
	return &Runner{
		eg:  new(errgroup.Group),
		cfg: newConfig(opts),
	}
}

// Go adapts fn into a Task. Each launch runs fn on its own goroutine with
// the coordinator's ctx and reports its outcome through the continuation.
func Go[T any](r *Runner, fn func(context.Context) (T, error)) Task[T] {
	return func(ctx context.Context, done Done[T]) {
		if fn == nil {
			done(ErrNilTask)
			return
		}

		r.eg.Go(func() (retErr error) {
			var (
				value    T
				taskErr  error
				returned bool
			)

			defer func() {
				if !returned && taskErr == nil {
					// fn panicked and the panic is propagating.
					return
				}
				if taskErr != nil {
					done(taskErr)
					retErr = taskErr
					return
				}
				done(nil, value)
			}()

			if r.cfg.panicToError {
				defer func() {
					if p := recover(); p != nil {
						r.cfg.logger.Warn().Str("name", r.cfg.name).Interface("panic", p).Msg("relay: runner task panicked")
						taskErr = &PanicError{Value: p, Stack: debug.Stack()}
					}
				}()
			}

			value, taskErr = fn(ctx)
			returned = true
			return
		})
	}
}

// GoTransform adapts fn into a pipeline stage run on the runner.
func GoTransform[T any](r *Runner, fn func(context.Context, T) (T, error)) Transform[T] {
	return func(ctx context.Context, arg T, done Done[T]) {
		if fn == nil {
			done(ErrNilTask)
			return
		}
		Go(r, func(ctx context.Context) (T, error) {
			return fn(ctx, arg)
		})(ctx, done)
	}
}

// Wait blocks until every function started by the runner has returned and
// reports the first error one of them returned, in completion order.
func (r *Runner) Wait() error {
	return r.eg.Wait()
}
