package barrier

import "sync"

// Counter is a counting barrier. Any number of goroutines may increment and
// decrement it concurrently; Wait blocks until the count is zero and all
// blocked waiters are released together when it gets there.
//
// Unlike sync.WaitGroup, the count may leave zero again after a Wait has
// returned, so a single Counter can track a population that grows and
// shrinks for its whole lifetime.
//
// The zero Counter is not usable; use NewCounter.
type Counter struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

// NewCounter returns a counter with a count of zero.
func NewCounter() *Counter {
	c := &Counter{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Add adds delta, which may be negative, to the count. Driving the count
// below zero is a programming error and panics.
func (c *Counter) Add(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += delta
	if c.count < 0 {
		panic("barrier: counter underflow")
	}
	if c.count == 0 {
		c.cond.Broadcast()
	}
}

// Done decrements the count by one.
func (c *Counter) Done() {
	c.Add(-1)
}

// Wait blocks until the count is zero. A waiter arriving while the count is
// already zero returns immediately.
func (c *Counter) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.count != 0 {
		c.cond.Wait()
	}
}
