package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestClock_AfterFires(t *testing.T) {
	c := NewClock(nil)
	done := make(chan struct{})

	c.After(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected After callback to fire")
	}
}

func TestClock_AfterCancelled(t *testing.T) {
	c := NewClock(nil)
	var fired atomic.Bool

	task := c.After(20*time.Millisecond, func() { fired.Store(true) })
	task.Cancel()
	task.Cancel()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("Cancelled task should not fire")
	}
	if !task.Cancelled() {
		t.Error("Expected task to report cancelled")
	}
}

func TestClock_EveryStopsAfterCancel(t *testing.T) {
	c := NewClock(nil)
	var count atomic.Int32
	reached := make(chan struct{})

	var holder atomic.Value
	task := c.Every(5*time.Millisecond, func() {
		if count.Add(1) == 3 {
			holder.Load().(Task).Cancel()
			close(reached)
		}
	})
	holder.Store(task)

	select {
	case <-reached:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected 3 ticks")
	}

	time.Sleep(30 * time.Millisecond)
	if got := count.Load(); got != 3 {
		t.Errorf("Expected ticking to stop at 3, got %d", got)
	}
}

func TestClock_DropsQueuedCallbackAfterCancel(t *testing.T) {
	queued := make(chan func(), 4)
	c := NewClock(func(fn func()) { queued <- fn })
	var fired atomic.Bool

	task := c.After(time.Millisecond, func() { fired.Store(true) })

	var fn func()
	select {
	case fn = <-queued:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected callback to be dispatched")
	}

	task.Cancel()
	fn()
	if fired.Load() {
		t.Error("Callback queued before cancel should be dropped")
	}
}
