package relay

import (
	"context"
	"sync"
)

// fanIn is the per-invocation state shared by Parallel and ParallelMap.
type fanIn[T any] struct {
	mu        sync.Mutex
	inv       *invocation
	slots     []Payload[T]
	reported  []bool
	completed int
	sealed    bool
	finish    func(err error, slots []Payload[T])
}

// Parallel launches every task without waiting for the previous one and
// calls callback once with the results in task order, or with the first
// error any task reports.
//
// All tasks are launched before Parallel returns. A task may report
// synchronously, during the launch loop, or later from any goroutine.
// A task that reports a single value is read back with Payload.Value; one
// that reports several keeps them all in Payload.Values. Zero values count
// as successful results.
//
// Once an error is delivered, tasks still running are not stopped; their
// reports are discarded. An empty task list calls callback(nil, []) before
// returning.
func Parallel[T any](ctx context.Context, tasks []Task[T], callback func(err error, results []Payload[T]), opts ...Option) {
	if callback == nil {
		callback = func(error, []Payload[T]) {}
	}
	runParallel(ctx, newConfig(opts), tasks, callback)
}

// ParallelMap is Parallel over a keyed collection. The results map has
// exactly the keys of tasks. Tasks are launched in map iteration order.
func ParallelMap[K comparable, T any](ctx context.Context, tasks map[K]Task[T], callback func(err error, results map[K]Payload[T]), opts ...Option) {
	if callback == nil {
		callback = func(error, map[K]Payload[T]) {}
	}

	keys := make([]K, 0, len(tasks))
	ordered := make([]Task[T], 0, len(tasks))
	for k, task := range tasks {
		keys = append(keys, k)
		ordered = append(ordered, task)
	}

	runParallel(ctx, newConfig(opts), ordered, func(err error, slots []Payload[T]) {
		if err != nil {
			callback(err, nil)
			return
		}
		results := make(map[K]Payload[T], len(keys))
		for i, k := range keys {
			results[k] = slots[i]
		}
		callback(nil, results)
	})
}

func runParallel[T any](ctx context.Context, cfg config, tasks []Task[T], finish func(error, []Payload[T])) {
	ctx, inv := begin(ctx, cfg, CoordinatorParallel, len(tasks))
	if len(tasks) == 0 {
		inv.settle(nil)
		finish(nil, []Payload[T]{})
		return
	}

	// Bookkeeping is sized before the first launch so a task reporting
	// synchronously finds its slot ready.
	f := &fanIn[T]{
		inv:      inv,
		slots:    make([]Payload[T], len(tasks)),
		reported: make([]bool, len(tasks)),
		finish:   finish,
	}

	for i, task := range tasks {
		if task == nil {
			f.complete(i, ErrNilTask, nil)
			continue
		}

		done := func(err error, values ...T) {
			f.complete(i, err, values)
		}
		cfg.invoke(
			func() { task(ctx, done) },
			func() bool { return f.hasReported(i) },
			func(err error) { f.complete(i, err, nil) },
		)
	}
}

func (f *fanIn[T]) hasReported(i int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reported[i]
}

func (f *fanIn[T]) complete(i int, err error, values []T) {
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
		f.finish(err, nil)
		return
	}

	f.slots[i] = newPayload(values)
	f.completed++
	if f.completed < len(f.slots) {
		f.mu.Unlock()
		return
	}
	f.sealed = true
	slots := f.slots
	f.mu.Unlock()

	f.inv.settle(nil)
	f.finish(nil, slots)
}
