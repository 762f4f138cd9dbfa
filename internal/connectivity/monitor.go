// Package connectivity tracks whether the device can reach the network. There
// are no online/offline events on the desktop, so the monitor dials a known
// address on a schedule and reports state changes.
package connectivity

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

// Defaults used when Config leaves a field empty
const (
	DefaultInterval = 30 * time.Second
	DefaultTimeout  = 2 * time.Second
	DefaultAddress  = "1.1.1.1:53"
)

// Checker reports nil when the network is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// DialChecker opens and closes a TCP connection to Address
type DialChecker struct {
	Address string
}

// NewDialChecker creates a checker for address
func NewDialChecker(address string) DialChecker {
	if address == "" {
		address = DefaultAddress
	}
	return DialChecker{Address: address}
}

// Check dials Address until ctx is done
func (d DialChecker) Check(ctx context.Context) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", d.Address, err)
	}
	return conn.Close()
}

// Config tunes the monitor
type Config struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Monitor re-checks connectivity every interval
type Monitor struct {
	checker   Checker
	scheduler schedule.Scheduler
	interval  time.Duration
	timeout   time.Duration
	run       schedule.Dispatcher
	deliver   schedule.Dispatcher
	log       logrus.FieldLogger

	mu       sync.Mutex
	online   bool
	known    bool
	checking bool
	stopped  bool
	task     schedule.Task
	onChange func(online bool)
}

// NewMonitor creates a stopped monitor. Checks run on the calling goroutine
// until SetDispatchers says otherwise.
func NewMonitor(cfg Config, checker Checker, scheduler schedule.Scheduler, logger logrus.FieldLogger) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Monitor{
		checker:   checker,
		scheduler: scheduler,
		interval:  cfg.Interval,
		timeout:   cfg.Timeout,
		run:       schedule.Immediate,
		deliver:   schedule.Immediate,
		log:       logger.WithField("component", "connectivity"),
	}
}

// SetDispatchers sets where checks run and where their results are applied.
// The app runs checks in the background and delivers with fyne.Do.
func (m *Monitor) SetDispatchers(run, deliver schedule.Dispatcher) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run != nil {
		m.run = run
	}
	if deliver != nil {
		m.deliver = deliver
	}
}

// SetChangeCallback registers fn, called on the first result and on every
// change after it
func (m *Monitor) SetChangeCallback(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Start checks now and then every interval. Calling it twice is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.task != nil {
		m.mu.Unlock()
		return
	}
	m.stopped = false
	m.task = m.scheduler.Every(m.interval, m.Check)
	m.mu.Unlock()

	m.Check()
}

// Stop cancels the periodic check; a result already in flight is dropped
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	if m.task != nil {
		m.task.Cancel()
		m.task = nil
	}
}

// Check runs one check unless another is still in flight
func (m *Monitor) Check() {
	m.mu.Lock()
	if m.checking || m.checker == nil {
		m.mu.Unlock()
		return
	}
	m.checking = true
	run, deliver := m.run, m.deliver
	m.mu.Unlock()

	run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		err := m.checker.Check(ctx)
		deliver(func() { m.record(err) })
	})
}

// Online returns the last known state; known is false before the first result
func (m *Monitor) Online() (online, known bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online, m.known
}

func (m *Monitor) record(err error) {
	online := err == nil

	m.mu.Lock()
	m.checking = false
	if m.stopped {
		m.mu.Unlock()
		return
	}
	initial := !m.known
	changed := initial || m.online != online
	m.online = online
	m.known = true
	callback := m.onChange
	m.mu.Unlock()

	if !changed {
		return
	}

	entry := m.log.WithFields(logrus.Fields{"online": online, "initial": initial})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Info("connection status")

	if callback != nil {
		callback(online)
	}
}
