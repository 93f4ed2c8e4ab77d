package relay

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// waitFor blocks until the capture sees its callback or a second passes.
func waitFor[R any](c *capture[R]) (call[R], bool) {
	select {
	case <-c.ch:
	case <-time.After(time.Second):
		return call[R]{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[0], len(c.calls) == 1
}

// TestParallel_PropertyBased checks that for any set of succeeding tasks,
// some reporting synchronously and some from goroutines, the callback fires
// once with every value at its task's index.
func TestParallel_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("results align with task indexes", prop.ForAll(
		func(values []int) bool {
			tasks := make([]Task[int], len(values))
			for i, v := range values {
				tasks[i] = func(_ context.Context, done Done[int]) {
					if i%2 == 0 {
						done(nil, v)
						return
					}
					go done(nil, v)
				}
			}

			c := newCapture[[]Payload[int]]()
			Parallel(context.Background(), tasks, c.callback)
			got, ok := waitFor(c)
			if !ok || got.err != nil || len(got.results) != len(values) {
				return false
			}
			for i, v := range values {
				if got.results[i].Value() != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

// TestTimes_PropertyBased checks that Times reports exactly one result per
// index for any n, whatever order the iteratees finish in.
func TestTimes_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every index reports once", prop.ForAll(
		func(n int) bool {
			c := newCapture[[]int]()
			Times(context.Background(), n, func(_ context.Context, i int, done Done[int]) {
				if i%3 == 0 {
					done(nil, i)
					return
				}
				go done(nil, i)
			}, c.callback)

			got, ok := waitFor(c)
			if !ok || got.err != nil || len(got.results) != n {
				return false
			}
			sorted := append([]int(nil), got.results...)
			sort.Ints(sorted)
			for i, v := range sorted {
				if v != i {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t)
}

// TestCompose_PropertyBased checks that composing "add k" stages yields the
// initial value plus the sum of every k.
func TestCompose_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("composed additions sum", prop.ForAll(
		func(start int, ks []int) bool {
			if len(ks) == 0 {
				ks = []int{0}
			}
			fns := make([]Transform[int], len(ks))
			want := start
			for i, k := range ks {
				want += k
				fns[i] = func(_ context.Context, n int, done Done[int]) {
					done(nil, n+k)
				}
			}

			fn, err := Compose(fns...)
			if err != nil {
				return false
			}
			c := newCapture[int]()
			fn(context.Background(), start, c.callback)
			got, ok := waitFor(c)
			return ok && got.err == nil && got.results == want
		},
		gen.IntRange(-1000, 1000),
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.TestingRun(t)
}
