// Package sched defines the scheduling substrate the handoff primitives sit
// on: a unit of schedulable work with its attributes, the Scheduler
// interface, a process-wide bound scheduler, and Pool, a goroutine-backed
// Scheduler implementation.
package sched

import "sync/atomic"

// Priority is a scheduling hint carried by task attributes. The core does
// not interpret it; observers and Scheduler implementations may.
type Priority int8

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "normal"
	}
}

// Attributes describe a task to the scheduler and its observers.
type Attributes struct {
	// Name is a diagnostic label. Keep the set of names small if an
	// observer exports per-name data.
	Name string
	// Priority is a scheduling hint.
	Priority Priority
}

// Task is a unit of schedulable work: a function closure plus attributes.
type Task struct {
	fn    func()
	attrs Attributes
}

// NewTask binds fn to attrs. A nil fn yields a task that does nothing.
func NewTask(fn func(), attrs Attributes) Task {
	return Task{fn: fn, attrs: attrs}
}

// Attributes returns the task's attributes.
func (t Task) Attributes() Attributes { return t.attrs }

// Run executes the task's function on the calling goroutine.
func (t Task) Run() {
	if t.fn != nil {
		t.fn()
	}
}

// Scheduler accepts units of work for eventual execution. Enqueue must not
// block on the task's own execution, and implementations must run each
// enqueued task at most once: resubmitting a task would break the
// single-assignment contract of any promise its closure owns.
type Scheduler interface {
	Enqueue(t Task)
}

type boundScheduler struct{ s Scheduler }

var bound atomic.Pointer[boundScheduler]

// Bind installs s as the process-wide scheduler returned by Get. Binding nil
// is equivalent to Unbind.
func Bind(s Scheduler) {
	if s == nil {
		bound.Store(nil)
		return
	}
	bound.Store(&boundScheduler{s: s})
}

// Unbind clears the process-wide scheduler.
func Unbind() {
	bound.Store(nil)
}

// Bound reports whether a process-wide scheduler is currently installed.
func Bound() bool {
	return bound.Load() != nil
}

// Get returns the process-wide scheduler. It panics if none is bound:
// scheduling work with no scheduler installed is a programming error.
func Get() Scheduler {
	h := bound.Load()
	if h == nil {
		panic("sched: no scheduler bound; call sched.Bind first")
	}
	return h.s
}
