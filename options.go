package relay

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jaeyoung0509/relay"

// Option configures a coordinator invocation or a Runner.
type Option func(*config)

type config struct {
	name         string
	logger       zerolog.Logger
	tracer       trace.Tracer
	observers    []Observer
	panicToError bool
}

func defaultConfig() config {
	return config{
		logger:       zerolog.Nop(),
		tracer:       otel.Tracer(instrumentationName),
		panicToError: true,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithName labels the invocation in logs, spans and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for lifecycle debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer overrides the tracer that opens one span per invocation.
func WithTracer(tracer trace.Tracer) Option {
	if tracer == nil {
		panic("relay: nil tracer")
	}

	return func(c *config) {
		c.tracer = tracer
	}
}

// WithObserver registers an Observer. It may be given more than once.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("relay: nil observer")
	}

	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// WithMetrics reports invocations to m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("relay: nil metrics")
	}
	return WithObserver(m)
}

// WithPanicToError converts a panic raised before a task reports into that
// task's error. Disabled, the panic propagates to the caller.
func WithPanicToError(enabled bool) Option {
	return func(c *config) {
		c.panicToError = enabled
	}
}
