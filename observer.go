package relay

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

// Coordinator names used in events, span names and metric labels.
const (
	CoordinatorParallel = "parallel"
	CoordinatorTimes    = "times"
	CoordinatorCompose  = "compose"
)

// Event describes one coordinator invocation.
type Event struct {
	Coordinator string
	Name        string
	// Size is the number of tasks, the iteration count, or the pipeline length.
	Size  int
	Start time.Time
}

// Observer receives lifecycle notifications. Implementations must be safe
// for concurrent use: Discarded may be called from any goroutine.
type Observer interface {
	// Started is called once, before any task launches.
	Started(ev Event)
	// Settled is called once, right before the final callback runs.
	Settled(ev Event, err error)
	// Discarded is called for each completion that arrives after the
	// invocation sealed, and for repeated continuation calls.
	Discarded(ev Event, err error)
}

// invocation carries the per-call instrumentation: span, logger and
// observers.
type invocation struct {
	cfg   config
	event Event
	span  trace.Span
}

func begin(ctx context.Context, cfg config, coordinator string, size int) (context.Context, *invocation) {
	if ctx == nil {
		ctx = context.Background()
	}

	inv := &invocation{
		cfg: cfg,
		event: Event{
			Coordinator: coordinator,
			Name:        cfg.name,
			Size:        size,
			Start:       time.Now(),
		},
	}
	ctx, inv.span = cfg.tracer.Start(ctx, "relay."+coordinator, trace.WithAttributes(
		attribute.String("relay.name", cfg.name),
		attribute.Int("relay.size", size),
	))

	cfg.logger.Debug().
		Str("coordinator", coordinator).
		Str("name", cfg.name).
		Int("size", size).
		Msg("relay: started")
	for _, o := range cfg.observers {
		o.Started(inv.event)
	}
	return ctx, inv
}

func (inv *invocation) settle(err error) {
	if err != nil {
		inv.span.RecordError(err)
		inv.span.SetStatus(codes.Error, err.Error())
	}
	inv.span.End()

	inv.cfg.logger.Debug().
		Str("coordinator", inv.event.Coordinator).
		Str("name", inv.event.Name).
		Dur("elapsed", time.Since(inv.event.Start)).
		Err(err).
		Msg("relay: settled")
	for _, o := range inv.cfg.observers {
		o.Settled(inv.event, err)
	}
}

func (inv *invocation) discard(err error) {
	inv.span.AddEvent("relay.discarded")

	inv.cfg.logger.Debug().
		Str("coordinator", inv.event.Coordinator).
		Str("name", inv.event.Name).
		Err(err).
		Msg("relay: completion discarded")
	for _, o := range inv.cfg.observers {
		o.Discarded(inv.event, err)
	}
}
