package barrier

import (
	"sync"
	"testing"
	"time"
)

func TestCounterWaitAtZeroReturnsImmediately(t *testing.T) {
	t.Parallel()
	c := NewCounter()
	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("Wait on a zero counter should not block")
	}
}

func TestCounterReleasesAllWaitersTogether(t *testing.T) {
	t.Parallel()
	c := NewCounter()
	c.Add(3)
	const W = 8
	var wg sync.WaitGroup
	released := make(chan struct{}, W)
	for i := 0; i < W; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Wait()
			released <- struct{}{}
		}()
	}
	c.Done()
	c.Done()
	time.Sleep(20 * time.Millisecond)
	if len(released) != 0 {
		t.Fatalf("%d waiters released while count was non-zero", len(released))
	}
	c.Done()
	wg.Wait()
	if len(released) != W {
		t.Fatalf("expected %d waiters released, got %d", W, len(released))
	}
}

func TestCounterReusableAfterZero(t *testing.T) {
	t.Parallel()
	c := NewCounter()
	c.Add(1)
	c.Done()
	c.Wait()
	// The count may grow again after having reached zero.
	c.Add(2)
	blocked := make(chan struct{})
	go func() {
		c.Wait()
		close(blocked)
	}()
	select {
	case <-blocked:
		t.Fatal("Wait returned while reused count was non-zero")
	case <-time.After(20 * time.Millisecond):
	}
	c.Add(-2)
	select {
	case <-blocked:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("Wait did not return after count returned to zero")
	}
}

func TestCounterUnderflowPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on counter underflow")
		}
	}()
	c := NewCounter()
	c.Done()
}
