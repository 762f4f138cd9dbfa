package schedule

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by a virtual clock. Nothing fires until
// Advance is called; callbacks run synchronously on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

// NewManual creates a manual scheduler at virtual time zero
func NewManual() *Manual {
	return &Manual{}
}

type manualTask struct {
	owner     *Manual
	seq       int
	next      time.Duration
	interval  time.Duration // zero for one-shot tasks
	fn        func()
	cancelled bool
}

func (t *manualTask) Cancel() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.cancelled = true
}

func (t *manualTask) Cancelled() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.cancelled
}

// Every schedules fn at now+interval, now+2*interval, ...
func (m *Manual) Every(interval time.Duration, fn func()) Task {
	if interval <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return m.add(interval, interval, fn)
}

// After schedules fn once at now+delay
func (m *Manual) After(delay time.Duration, fn func()) Task {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTask{
		owner:    m,
		seq:      m.seq,
		next:     m.now + delay,
		interval: interval,
		fn:       fn,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the elapsed virtual time
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that may still fire
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.tasks {
		if !t.cancelled {
			count++
		}
	}
	return count
}

// Advance moves the virtual clock forward by d, firing every task that comes
// due in order. Tasks scheduled by a callback fire too if they fall inside
// the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// nextDue pops the earliest task due at or before target and moves the clock to it
func (m *Manual) nextDue(target time.Duration) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	m.tasks = live

	if len(m.tasks) == 0 {
		return nil
	}

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].next == m.tasks[j].next {
			return m.tasks[i].seq < m.tasks[j].seq
		}
		return m.tasks[i].next < m.tasks[j].next
	})

	t := m.tasks[0]
	if t.next > target {
		return nil
	}

	m.now = t.next
	if t.interval > 0 {
		t.next += t.interval
	} else {
		t.cancelled = true
	}
	return t
}
