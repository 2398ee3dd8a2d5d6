// Package future provides a single-assignment value handoff between
// concurrent producers and consumers, split into a write-once Promise and a
// read-many Future, plus helpers that schedule a function and hand back a
// Future for its result.
package future

import (
	"runtime"

	"github.com/NetPo4ki/go-handoff/barrier"
)

// cell is the storage shared by a Promise and all Futures derived from it:
// a single-assignment value slot guarded by a one-way gate. The value slot
// is written exactly once, before the gate is signalled, and read only
// after the gate is observed set.
type cell[T any] struct {
	value T
	gate  *barrier.Gate
}

func (c *cell[T]) assertFulfilled() {
	if !c.gate.IsSet() {
		panic("future: promise dropped without a value; a broken promise is a programming error")
	}
}

// Promise is the write capability over a shared cell: it supplies the value
// exactly once via Set. Hold exactly one Promise per cell; the single-writer
// contract is enforced at run time by the double-Set panic, since Go cannot
// make the handle move-only.
//
// Every constructed Promise commits to eventually calling Set. A Promise
// that becomes unreachable with no value set trips a fatal broken-promise
// diagnostic from its cleanup; readers blocked on an answer that will never
// come deserve a crash over a silent hang.
type Promise[T any] struct {
	shared *cell[T]
}

// NewPromise allocates a fresh cell with an unset gate and returns its
// write capability.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{shared: &cell[T]{gate: barrier.NewGate()}}
	runtime.AddCleanup(p, func(c *cell[T]) { c.assertFulfilled() }, p.shared)
	return p
}

// Set writes v into the cell and signals the gate, waking all current and
// future readers. Calling Set on an already-signalled promise is a
// programming error and panics; a second writer is a logic bug in the
// caller, never a condition to paper over.
func (p *Promise[T]) Set(v T) {
	// Check before writing so a sequential double Set cannot clobber a
	// value readers may already be using.
	if p.shared.gate.IsSet() {
		panic("future: promise already signaled")
	}
	p.shared.value = v
	if !p.shared.gate.Signal() {
		panic("future: promise already signaled")
	}
}

// Future returns a new read handle on the promise's cell. It may be called
// any number of times, including zero; every Future sees the same value.
func (p *Promise[T]) Future() *Future[T] {
	return &Future[T]{shared: p.shared}
}

// Future is the read capability over a shared cell. Futures may be copied
// and shared freely, and outlive their Promise; the cell stays alive as
// long as any handle does.
type Future[T any] struct {
	shared *cell[T]
}

// Get blocks the calling goroutine until the value is set, then returns it.
// Safe to call concurrently from any number of goroutines, on shared or
// distinct Future handles.
func (f *Future[T]) Get() T {
	f.shared.gate.Wait()
	return f.shared.value
}

// Poll never blocks. It returns the value and true if it has been set, or
// the zero value and false otherwise.
func (f *Future[T]) Poll() (T, bool) {
	if f.shared.gate.IsSet() {
		return f.shared.value, true
	}
	var zero T
	return zero, false
}

// Done returns a channel that is closed once the value is set, for use in
// select statements, e.g. to choose among several futures.
func (f *Future[T]) Done() <-chan struct{} {
	return f.shared.gate.Done()
}
