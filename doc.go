// Package relay provides continuation-passing coordination primitives for Go.
//
// A Task reports through an error-first continuation (Done) exactly once,
// synchronously or later from any goroutine. Three coordinators combine tasks:
//   - Parallel / ParallelMap: launch every task at once, deliver results in
//     the input's shape (slice index or map key)
//   - Times: launch one iteratee n times, deliver results in completion order
//   - Compose: chain transforms right to left, f(g(h(x)))
//
// Semantics:
//   - the final callback fires at most once per invocation
//   - the first error (in time, not input order) seals the invocation and is
//     passed through unchanged; partial results are dropped
//   - a nil error marks success, so zero values are valid results
//   - already-launched work is never cancelled; late reports are discarded
//   - empty inputs (no tasks, n == 0) call back before returning
//   - every invocation owns its own state
//
// Options:
//   - WithLogger(zerolog.Logger): debug lifecycle events
//   - WithTracer(trace.Tracer): one span per invocation, passed to tasks via ctx
//   - WithMetrics(*Metrics) / WithObserver(Observer): lifecycle hooks
//   - WithPanicToError(true): a task panicking before it reports fails with
//     *PanicError (default)
//
// Runner adapts blocking func(ctx) (T, error) calls into Tasks and lets the
// host wait for every goroutine it started.
package relay
