package schedule

// Package schedule provides cancellable scheduled tasks. The wall-clock
// scheduler hands every callback to a dispatcher (fyne.Do in the app) so the
// rest of the shell only ever runs on the UI goroutine. The manual scheduler
// advances a virtual clock and is used by tests.
