package future

import "github.com/NetPo4ki/go-handoff/sched"

// Schedule submits f to the process-bound scheduler and returns a Future
// for its result. It panics if no scheduler is bound. The enqueued task
// closure owns the promise, so exactly one execution performs exactly one
// Set; schedulers that might rerun a task must not be used with Schedule.
//
// Arguments for f are captured in its closure.
func Schedule[R any](f func() R, attrs sched.Attributes) *Future[R] {
	return ScheduleOn(sched.Get(), f, attrs)
}

// ScheduleOn is Schedule against an explicit scheduler.
func ScheduleOn[R any](s sched.Scheduler, f func() R, attrs sched.Attributes) *Future[R] {
	p := NewPromise[R]()
	s.Enqueue(sched.NewTask(func() {
		p.Set(f())
	}, attrs))
	return p.Future()
}
