package schedule

import "time"

// Task is a handle to a scheduled callback. Cancel is idempotent; Cancelled
// reports whether the callback can no longer fire.
type Task interface {
	Cancel()
	Cancelled() bool
}

// Scheduler defines the interface for timer-driven work.
type Scheduler interface {
	// Every runs fn each interval until the returned task is cancelled
	Every(interval time.Duration, fn func()) Task

	// After runs fn once after delay unless the returned task is cancelled first
	After(delay time.Duration, fn func()) Task
}
