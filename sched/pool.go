package sched

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/NetPo4ki/go-handoff/barrier"
	"github.com/NetPo4ki/go-handoff/taskgroup"
)

// Option configures a Pool.
type Option func(*Options)

// Options holds Pool configuration.
type Options struct {
	Observer       Observer
	MaxConcurrency int
	Group          *taskgroup.Group
}

func defaultOptions() Options { return Options{} }

// WithObserver attaches an observer notified of task lifecycle events.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }

// WithMaxConcurrency caps the number of tasks running at once. Zero or
// negative means unlimited.
func WithMaxConcurrency(n int) Option { return func(o *Options) { o.MaxConcurrency = n } }

// WithGroup makes the pool report each task's start and completion to g.
// Suspend/resume events remain the task body's responsibility, since only
// it knows where its blocking points are.
func WithGroup(g *taskgroup.Group) Option { return func(o *Options) { o.Group = g } }

// Observer receives task lifecycle events from a Pool. Implementations must
// be safe for concurrent use.
type Observer interface {
	TaskEnqueued(attrs Attributes)
	TaskStarted(attrs Attributes)
	TaskFinished(attrs Attributes, dur time.Duration, panicked bool)
}

// Pool is a Scheduler that runs each enqueued task on its own goroutine,
// optionally capped to a maximum concurrency. Enqueue never blocks; Wait
// joins everything enqueued so far.
//
// A panic in a task body is reported to the observer and then allowed to
// propagate. Task panics here signal contract violations, and converting
// them to values a caller might ignore would defeat fail-fast diagnosis.
type Pool struct {
	opts    Options
	obs     Observer
	group   *taskgroup.Group
	sem     *semaphore.Weighted
	pending *barrier.Counter
}

// NewPool creates a pool with the given options.
func NewPool(optFns ...Option) *Pool {
	p := &Pool{opts: defaultOptions(), pending: barrier.NewCounter()}
	for _, fn := range optFns {
		fn(&p.opts)
	}
	p.obs = p.opts.Observer
	p.group = p.opts.Group
	if p.opts.MaxConcurrency > 0 {
		p.sem = semaphore.NewWeighted(int64(p.opts.MaxConcurrency))
	}
	return p
}

// Enqueue schedules t to run on a new goroutine. It returns immediately.
func (p *Pool) Enqueue(t Task) {
	p.pending.Add(1)
	if p.obs != nil {
		p.obs.TaskEnqueued(t.attrs)
	}
	go func() {
		defer p.pending.Done()
		if p.sem != nil {
			// Background context: nothing in this core cancels a
			// submitted task, so acquisition cannot fail.
			_ = p.sem.Acquire(context.Background(), 1)
			defer p.sem.Release(1)
		}
		if p.group != nil {
			p.group.TaskStarted()
			defer p.group.TaskAboutToBeCompleted()
		}
		var start time.Time
		if p.obs != nil {
			start = time.Now()
			p.obs.TaskStarted(t.attrs)
		}
		finished := false
		defer func() {
			if p.obs != nil {
				p.obs.TaskFinished(t.attrs, time.Since(start), !finished)
			}
		}()
		t.Run()
		finished = true
	}()
}

// Wait blocks until every task enqueued so far has finished. The pool stays
// usable afterwards; Enqueue and Wait may be interleaved for its whole
// lifetime.
func (p *Pool) Wait() {
	p.pending.Wait()
}
