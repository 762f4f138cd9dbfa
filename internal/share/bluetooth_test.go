package share

import (
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

func TestBluetoothStub_NotifiesAfterDelay(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	clock := schedule.NewManual()

	var notified []string
	stub := NewBluetoothStub(clock, 0, func(title string) {
		notified = append(notified, title)
	}, logger)

	stub.Share("Cacao")

	if entry := hook.LastEntry(); entry == nil || entry.Data["title"] != "Cacao" {
		t.Errorf("Expected share intent to be logged, got %+v", entry)
	}

	clock.Advance(999 * time.Millisecond)
	if len(notified) != 0 {
		t.Fatalf("Notification fired early: %v", notified)
	}

	clock.Advance(time.Millisecond)
	if len(notified) != 1 || notified[0] != "Cacao" {
		t.Errorf("Expected one notification for Cacao, got %v", notified)
	}
}

func TestBluetoothStub_IndependentShares(t *testing.T) {
	clock := schedule.NewManual()
	count := 0
	stub := NewBluetoothStub(clock, 500*time.Millisecond, func(string) { count++ }, nil)

	stub.Share("a")
	clock.Advance(200 * time.Millisecond)
	stub.Share("b")
	clock.Advance(time.Second)

	if count != 2 {
		t.Errorf("Expected 2 notifications, got %d", count)
	}
}
