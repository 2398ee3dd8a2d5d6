// Package barrier provides the low-level wait primitives the rest of the
// module is built on: Gate, a manual-reset one-way latch, and Counter, a
// counting barrier that releases all waiters when it reaches zero.
package barrier

import "sync/atomic"

// Gate is a one-way binary latch. It starts unset, transitions to set at
// most once, and never resets. Waiters block until the gate is set; waiters
// arriving after the set return immediately.
//
// The zero Gate is not usable; use NewGate.
type Gate struct {
	set  atomic.Bool
	done chan struct{}
}

// NewGate returns an unset gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Signal sets the gate and wakes all current and future waiters. It reports
// whether this call performed the unset-to-set transition; exactly one call
// ever returns true.
func (g *Gate) Signal() bool {
	if !g.set.CompareAndSwap(false, true) {
		return false
	}
	close(g.done)
	return true
}

// IsSet reports whether the gate is set, without blocking.
func (g *Gate) IsSet() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Wait blocks the calling goroutine until the gate is set.
func (g *Gate) Wait() {
	<-g.done
}

// Done returns a channel that is closed when the gate is set, for use in
// select statements.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
