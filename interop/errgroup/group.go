// Package errgroup provides an adapter that mimics golang.org/x/sync/errgroup
// semantics over the handoff scheduler and task-group primitives. It enables
// incremental migration of errgroup-shaped call sites without changing their
// structure. Unlike x/sync/errgroup, there is no cancellation: every task
// submitted to the group runs to completion, and Wait reports the first
// error after the fact.
package errgroup

import (
	"sync"

	"github.com/NetPo4ki/go-handoff/sched"
	"github.com/NetPo4ki/go-handoff/taskgroup"
)

// Group runs error-returning functions on a scheduler and joins them through
// a task group.
type Group struct {
	s     sched.Scheduler
	tasks *taskgroup.Group

	mu       sync.Mutex
	firstErr error
}

// New creates a Group executing on s. A nil s uses the process-bound
// scheduler, panicking if none is bound.
func New(s sched.Scheduler) *Group {
	if s == nil {
		s = sched.Get()
	}
	return &Group{s: s, tasks: taskgroup.New()}
}

// Go submits a function. It should return a non-nil error to signal failure.
//
// The task enters the cohort at submission, not at first run, so a Wait
// racing a slow scheduler can never observe a false "done".
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.tasks.TaskStarted()
	g.s.Enqueue(sched.NewTask(func() {
		defer g.tasks.TaskAboutToBeCompleted()
		if err := f(); err != nil {
			g.mu.Lock()
			if g.firstErr == nil {
				g.firstErr = err
			}
			g.mu.Unlock()
		}
	}, sched.Attributes{Name: "errgroup"}))
}

// Wait blocks until all functions submitted so far have returned. It returns
// the first non-nil error, or nil if every function succeeded.
func (g *Group) Wait() error {
	g.tasks.WaitForAllComplete()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.firstErr
}
