package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

// Dispatcher runs fn on the goroutine owning the UI state
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) { fn() }

// Background runs fn on a new goroutine
func Background(fn func()) { go fn() }

// Clock schedules tasks on real timers
type Clock struct {
	dispatch Dispatcher
}

// NewClock creates a wall-clock scheduler. A nil dispatcher runs callbacks on
// the timer goroutine.
func NewClock(dispatch Dispatcher) *Clock {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Clock{dispatch: dispatch}
}

type clockTask struct {
	cancelled atomic.Bool
	once      sync.Once
	stop      chan struct{}
	timer     *time.Timer
}

func (t *clockTask) Cancel() {
	t.once.Do(func() {
		t.cancelled.Store(true)
		if t.timer != nil {
			t.timer.Stop()
		}
		if t.stop != nil {
			close(t.stop)
		}
	})
}

func (t *clockTask) Cancelled() bool {
	return t.cancelled.Load()
}

// run drops callbacks that were queued before the task got cancelled
func (c *Clock) run(t *clockTask, fn func(), once bool) {
	c.dispatch(func() {
		if t.Cancelled() {
			return
		}
		if once {
			t.cancelled.Store(true)
		}
		fn()
	})
}

// Every starts a ticker goroutine for the task
func (c *Clock) Every(interval time.Duration, fn func()) Task {
	t := &clockTask{stop: make(chan struct{})}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				c.run(t, fn, false)
			}
		}
	}()

	return t
}

// After arms a one-shot timer for the task
func (c *Clock) After(delay time.Duration, fn func()) Task {
	t := &clockTask{}
	t.timer = time.AfterFunc(delay, func() {
		c.run(t, fn, true)
	})
	return t
}
