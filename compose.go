package relay

import (
	"context"
	"slices"
	"sync"
)

// Transform is one pipeline stage. It reports the value handed to the
// stage before it.
type Transform[T any] func(ctx context.Context, arg T, done Done[T])

// Composed runs a pipeline built by Compose.
type Composed[T any] func(ctx context.Context, arg T, callback func(err error, result T))

// Compose builds f(g(h(arg))) out of continuation-passing transforms: the
// last transform runs first and each result feeds the one before it.
//
// Every stage receives the ctx passed to the composed function. An error
// from any stage goes straight to the callback and no further stage runs.
// A stage that reports more than once has the extra reports ignored, and
// zero values are passed along like any other result.
func Compose[T any](fns ...Transform[T]) (Composed[T], error) {
	return NewPipeline(fns)
}

// NewPipeline is Compose with options applied to every invocation.
func NewPipeline[T any](fns []Transform[T], opts ...Option) (Composed[T], error) {
	if len(fns) == 0 {
		return nil, ErrNoTransforms
	}
	for _, fn := range fns {
		if fn == nil {
			return nil, ErrNilTask
		}
	}

	fns = slices.Clone(fns)
	cfg := newConfig(opts)

	return func(ctx context.Context, arg T, callback func(err error, result T)) {
		if callback == nil {
			callback = func(error, T) {}
		}

		ctx, inv := begin(ctx, cfg, CoordinatorCompose, len(fns))
		p := &pipeline[T]{
			ctx:      ctx,
			cfg:      cfg,
			inv:      inv,
			fns:      fns,
			cursor:   len(fns) - 1,
			callback: callback,
		}
		p.run(p.cursor, arg)
	}, nil
}

// pipeline is the state of one Composed invocation.
type pipeline[T any] struct {
	mu       sync.Mutex
	ctx      context.Context
	cfg      config
	inv      *invocation
	fns      []Transform[T]
	cursor   int
	sealed   bool
	callback func(err error, result T)
}

func (p *pipeline[T]) run(i int, arg T) {
	fn := p.fns[i]
	done := func(err error, values ...T) {
		p.advance(i, err, values)
	}
	p.cfg.invoke(
		func() { fn(p.ctx, arg, done) },
		func() bool { return p.hasReported(i) },
		func(err error) { p.advance(i, err, nil) },
	)
}

func (p *pipeline[T]) hasReported(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sealed || p.cursor != i
}

func (p *pipeline[T]) advance(i int, err error, values []T) {
	p.mu.Lock()
	// The cursor only moves past a stage once, so a stale index marks a
	// repeated report.
	if p.sealed || p.cursor != i {
		p.mu.Unlock()
		p.inv.discard(err)
		return
	}
	p.cursor--

	if err != nil {
		p.sealed = true
		p.mu.Unlock()
		p.inv.settle(err)
		var zero T
		p.callback(err, zero)
		return
	}

	result := first(values)
	if p.cursor < 0 {
		p.sealed = true
		p.mu.Unlock()
		p.inv.settle(nil)
		p.callback(nil, result)
		return
	}
	next := p.cursor
	p.mu.Unlock()

	p.run(next, result)
}
