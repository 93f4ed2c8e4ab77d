package relay

import (
	"context"
	"sync"
)

// Iteratee is invoked by Times once per index.
type Iteratee[T any] func(ctx context.Context, i int, done Done[T])

type fanOut[T any] struct {
	mu       sync.Mutex
	inv      *invocation
	n        int
	results  []T
	reported []bool
	sealed   bool
	callback func(err error, results []T)
}

// Times calls iteratee for i in 0..n-1, in ascending order, without waiting
// for each call to report. Results are collected in completion order, not
// index order; only the first value of each report is kept.
//
// The first error seals the invocation and is passed to callback; later
// reports are discarded. For n == 0 callback(nil, []) runs before Times
// returns, and a negative n reports ErrNegativeCount the same way.
func Times[T any](ctx context.Context, n int, iteratee Iteratee[T], callback func(err error, results []T), opts ...Option) {
	if callback == nil {
		callback = func(error, []T) {}
	}

	cfg := newConfig(opts)
	ctx, inv := begin(ctx, cfg, CoordinatorTimes, n)

	switch {
	case n < 0:
		inv.settle(ErrNegativeCount)
		callback(ErrNegativeCount, nil)
		return
	case iteratee == nil:
		inv.settle(ErrNilTask)
		callback(ErrNilTask, nil)
		return
	case n == 0:
		inv.settle(nil)
		callback(nil, []T{})
		return
	}

	f := &fanOut[T]{
		inv:      inv,
		n:        n,
		results:  make([]T, 0, n),
		reported: make([]bool, n),
		callback: callback,
	}

	for i := 0; i < n; i++ {
		done := func(err error, values ...T) {
			f.complete(i, err, values)
		}
		cfg.invoke(
			func() { iteratee(ctx, i, done) },
			func() bool { return f.hasReported(i) },
			func(err error) { f.complete(i, err, nil) },
		)
	}
}

func (f *fanOut[T]) hasReported(i int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reported[i]
}

func (f *fanOut[T]) complete(i int, err error, values []T) {
	f.mu.Lock()
	if f.reported[i] || f.sealed {
		f.reported[i] = true
		f.mu.Unlock()
		f.inv.discard(err)
		return
	}
	f.reported[i] = true

	if err != nil {
		f.sealed = true
		f.mu.Unlock()
		f.inv.settle(err)
		f.callback(err, nil)
		return
	}

	f.results = append(f.results, first(values))
	if len(f.results) < f.n {
		f.mu.Unlock()
		return
	}
	f.sealed = true
	results := f.results
	f.mu.Unlock()

	f.inv.settle(nil)
	f.callback(nil, results)
}
