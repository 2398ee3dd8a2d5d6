// Package taskgroup tracks the lifecycle of a cohort of scheduled tasks.
// A Group lets callers block until every task in the cohort has completed,
// or until every task has either completed or is currently suspended — the
// latter detects quiescence of cooperatively scheduled work without
// requiring it to finish.
package taskgroup

import "github.com/NetPo4ki/go-handoff/barrier"

// Group monitors the state of the tasks in one cohort. It holds no per-task
// identity, only two aggregate counts: tasks that have started but not yet
// completed, and tasks that are currently running (started, not completed,
// not suspended). The two counts are deliberately independent so that
// suspend/resume churn never touches the completion count.
//
// Whoever runs a task emits its events. For any one task, TaskStarted must
// come first, TaskAboutToBeCompleted must come last, and suspend/resume
// pairs in between must balance. The Group assumes a well-formed caller; a
// malformed sequence desynchronizes the counts and is a programming error.
type Group struct {
	completed            *barrier.Counter
	completedOrSuspended *barrier.Counter
}

// New returns an empty group.
func New() *Group {
	return &Group{
		completed:            barrier.NewCounter(),
		completedOrSuspended: barrier.NewCounter(),
	}
}

// TaskStarted records a task entering the cohort. Call exactly once per task.
func (g *Group) TaskStarted() {
	g.completed.Add(1)
	g.completedOrSuspended.Add(1)
}

// TaskAboutToBeCompleted records a task reaching its completion. Call
// exactly once per task, as its final event, while the task is running
// (a suspended task resumes before it can complete). The task leaves both
// tallies: it is no longer in flight and no longer running.
func (g *Group) TaskAboutToBeCompleted() {
	g.completed.Done()
	g.completedOrSuspended.Done()
}

// TaskAboutToBeSuspended records a task yielding control without finishing,
// e.g. because it is blocked awaiting a dependency. The task still counts as
// in-flight for WaitForAllComplete.
func (g *Group) TaskAboutToBeSuspended() {
	g.completedOrSuspended.Done()
}

// TaskAboutToBeResumed records a previously suspended task resuming. A task
// may suspend and resume any number of times before completing.
func (g *Group) TaskAboutToBeResumed() {
	g.completedOrSuspended.Add(1)
}

// Suspended emits the suspend event, runs during, and emits the resume
// event when during returns. It is a convenience for task bodies that want
// to mark a blocking call as a suspension point.
func (g *Group) Suspended(during func()) {
	g.TaskAboutToBeSuspended()
	defer g.TaskAboutToBeResumed()
	during()
}

// WaitForAllComplete blocks until every task in the cohort has completed.
// Safe for any number of concurrent waiters; all are released together.
func (g *Group) WaitForAllComplete() {
	g.completed.Wait()
}

// WaitForAllCompleteOrSuspended blocks until every task in the cohort has
// either completed or is currently suspended, i.e. none are actively
// running.
func (g *Group) WaitForAllCompleteOrSuspended() {
	g.completedOrSuspended.Wait()
}
