package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_ExecutesSubmittedTasks(t *testing.T) {
	pool := NewPool(4, 16, nil)
	pool.Start()

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		ok := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
		if !ok {
			t.Fatalf("submit %d rejected", i)
		}
	}
	wg.Wait()
	pool.Stop()

	if got := atomic.LoadInt64(&count); got != 10 {
		t.Errorf("executed %d tasks, want 10", got)
	}
}

func TestPool_RejectsWhenQueueFull(t *testing.T) {
	// One worker, queue of one; the worker is parked on a blocking task
	// so the queue fills immediately.
	pool := NewPool(1, 1, nil)
	pool.Start()
	defer pool.Stop()

	release := make(chan struct{})
	started := make(chan struct{})
	pool.Submit(func() {
		close(started)
		<-release
	})
	<-started

	pool.Submit(func() {}) // occupies the single queue slot
	if pool.Submit(func() {}) {
		t.Errorf("expected rejection with a full queue")
	}
	close(release)
}

func TestPool_StopWaitsForInFlightTasks(t *testing.T) {
	pool := NewPool(2, 4, nil)
	pool.Start()

	var done int64
	for i := 0; i < 4; i++ {
		pool.Submit(func() {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&done, 1)
		})
	}
	pool.Stop()

	if got := atomic.LoadInt64(&done); got != 4 {
		t.Errorf("stop returned before all tasks finished: %d of 4", got)
	}
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := NewPool(1, 1, nil)
	pool.Start()
	pool.Stop()

	if pool.Submit(func() {}) {
		t.Errorf("submit after stop must be rejected")
	}
	if pool.Submit(nil) {
		t.Errorf("nil task must be rejected")
	}
}
