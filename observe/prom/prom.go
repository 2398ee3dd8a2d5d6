// Package prom exports scheduler task lifecycle metrics to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NetPo4ki/go-handoff/sched"
)

// Observer implements sched.Observer on Prometheus collectors. Counters are
// labelled by task priority; priority is a small closed set, so cardinality
// stays bounded.
type Observer struct {
	enqueued *prometheus.CounterVec
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	panicked *prometheus.CounterVec
	inFlight prometheus.Gauge
	duration prometheus.Histogram
}

// New creates an Observer and registers its collectors with reg. A nil reg
// leaves the collectors unregistered, which is handy in tests.
func New(reg prometheus.Registerer) *Observer {
	o := &Observer{
		enqueued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name: "tasks_enqueued_total",
			Help: "Tasks submitted to the scheduler.",
		}, []string{"priority"}),
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name: "tasks_started_total",
			Help: "Tasks that began executing.",
		}, []string{"priority"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name: "tasks_finished_total",
			Help: "Tasks that finished executing, including panicked ones.",
		}, []string{"priority"}),
		panicked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name: "tasks_panicked_total",
			Help: "Tasks that ended in a panic.",
		}, []string{"priority"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name: "tasks_in_flight",
			Help: "Tasks currently executing.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "handoff", Subsystem: "sched",
			Name:    "task_duration_seconds",
			Help:    "Wall-clock task execution time.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(o.enqueued, o.started, o.finished, o.panicked, o.inFlight, o.duration)
	}
	return o
}

func (o *Observer) TaskEnqueued(attrs sched.Attributes) {
	o.enqueued.WithLabelValues(attrs.Priority.String()).Inc()
}

func (o *Observer) TaskStarted(attrs sched.Attributes) {
	o.inFlight.Inc()
	o.started.WithLabelValues(attrs.Priority.String()).Inc()
}

func (o *Observer) TaskFinished(attrs sched.Attributes, dur time.Duration, panicked bool) {
	o.inFlight.Dec()
	o.finished.WithLabelValues(attrs.Priority.String()).Inc()
	if panicked {
		o.panicked.WithLabelValues(attrs.Priority.String()).Inc()
	}
	o.duration.Observe(dur.Seconds())
}
