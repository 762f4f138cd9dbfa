package connectivity

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

type fakeChecker struct {
	err   error
	calls int
}

func (f *fakeChecker) Check(context.Context) error {
	f.calls++
	return f.err
}

func newMonitor(t *testing.T) (*Monitor, *fakeChecker, *schedule.Manual, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	clock := schedule.NewManual()
	checker := &fakeChecker{}
	m := NewMonitor(Config{Interval: time.Second}, checker, clock, logger)
	return m, checker, clock, hook
}

func TestMonitor_UnknownBeforeStart(t *testing.T) {
	m, _, _, _ := newMonitor(t)
	if _, known := m.Online(); known {
		t.Error("state should be unknown before the first check")
	}
}

func TestMonitor_StartChecksImmediately(t *testing.T) {
	m, checker, _, hook := newMonitor(t)
	var changes []bool
	m.SetChangeCallback(func(online bool) { changes = append(changes, online) })

	m.Start()

	if online, known := m.Online(); !online || !known {
		t.Errorf("expected online after the first check, got online=%v known=%v", online, known)
	}
	if checker.calls != 1 {
		t.Errorf("expected 1 check, got %d", checker.calls)
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("expected one online change, got %v", changes)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.InfoLevel || entry.Data["initial"] != true {
		t.Errorf("expected the initial status to be logged, got %+v", entry)
	}
}

func TestMonitor_ReportsChangesOnly(t *testing.T) {
	m, checker, clock, _ := newMonitor(t)
	var changes []bool
	m.SetChangeCallback(func(online bool) { changes = append(changes, online) })
	m.Start()

	clock.Advance(time.Second)
	if len(changes) != 1 {
		t.Fatalf("same state should not be reported again, got %v", changes)
	}

	checker.err = errors.New("no route")
	clock.Advance(time.Second)
	if online, _ := m.Online(); online {
		t.Error("expected offline after a failed check")
	}

	checker.err = nil
	clock.Advance(time.Second)

	want := []bool{true, false, true}
	if len(changes) != len(want) {
		t.Fatalf("expected %v, got %v", want, changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: expected %v, got %v", i, want[i], changes[i])
		}
	}
	if checker.calls != 4 {
		t.Errorf("expected 4 checks, got %d", checker.calls)
	}
}

func TestMonitor_Stop(t *testing.T) {
	m, checker, clock, _ := newMonitor(t)
	m.Start()
	m.Start()
	if clock.Pending() != 1 {
		t.Fatalf("expected one periodic task, got %d", clock.Pending())
	}

	m.Stop()
	clock.Advance(5 * time.Second)
	if checker.calls != 1 {
		t.Errorf("no checks expected after stop, got %d", checker.calls)
	}
}

func TestMonitor_SkipsOverlappingChecks(t *testing.T) {
	m, checker, _, _ := newMonitor(t)
	var pending []func()
	m.SetDispatchers(schedule.Immediate, func(fn func()) { pending = append(pending, fn) })

	m.Check()
	m.Check()
	if checker.calls != 1 {
		t.Fatalf("second check should wait for the first, got %d calls", checker.calls)
	}

	for _, fn := range pending {
		fn()
	}
	m.Check()
	if checker.calls != 2 {
		t.Errorf("expected a new check once the result landed, got %d calls", checker.calls)
	}
}

func TestDialChecker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := NewDialChecker(addr).Check(ctx); err != nil {
		t.Errorf("expected %s to be reachable: %v", addr, err)
	}

	ln.Close()
	if err := NewDialChecker(addr).Check(ctx); err == nil {
		t.Error("expected a closed listener to fail")
	}
}

func TestNewDialChecker_DefaultAddress(t *testing.T) {
	if got := NewDialChecker("").Address; got != DefaultAddress {
		t.Errorf("expected %s, got %s", DefaultAddress, got)
	}
}
