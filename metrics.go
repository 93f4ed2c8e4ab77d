package relay

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an Observer that exports coordinator activity to Prometheus.
type Metrics struct {
	invocations *prometheus.CounterVec
	settled     *prometheus.CounterVec
	discarded   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates and registers the relay collectors with reg. A nil reg
// registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_invocations_total",
			Help: "Coordinator invocations started.",
		}, []string{"coordinator"}),
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_settled_total",
			Help: "Coordinator invocations that delivered their final callback, by outcome.",
		}, []string{"coordinator", "outcome"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_discarded_total",
			Help: "Task reports ignored because the invocation had sealed or the task reported twice.",
		}, []string{"coordinator"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "relay_settle_seconds",
			Help:    "Time from launch to final callback.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"coordinator"}),
	}
	reg.MustRegister(m.invocations, m.settled, m.discarded, m.duration)
	return m
}

// Started implements Observer.
func (m *Metrics) Started(ev Event) {
	m.invocations.WithLabelValues(ev.Coordinator).Inc()
}

// Settled implements Observer.
func (m *Metrics) Settled(ev Event, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.settled.WithLabelValues(ev.Coordinator, outcome).Inc()
	m.duration.WithLabelValues(ev.Coordinator).Observe(time.Since(ev.Start).Seconds())
}

// Discarded implements Observer.
func (m *Metrics) Discarded(ev Event, _ error) {
	m.discarded.WithLabelValues(ev.Coordinator).Inc()
}
