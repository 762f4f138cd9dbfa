package gesture

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		startX, endX float32
		expected     model.SwipeDirection
	}{
		{300, 150, model.SwipeLeft},
		{150, 300, model.SwipeRight},
		{200, 100, model.SwipeNone}, // exactly the threshold
		{100, 200, model.SwipeNone},
		{200, 99, model.SwipeLeft},
		{120, 120, model.SwipeNone},
		{0, 101, model.SwipeRight},
	}

	for _, test := range tests {
		result := Classify(test.startX, test.endX, DefaultSwipeThreshold)
		if result != test.expected {
			t.Errorf("Classify(%v, %v) = %s, expected %s", test.startX, test.endX, result, test.expected)
		}
	}
}

func newTestDetector(onSwipe func(model.SwipeDirection)) *Detector {
	logger, _ := logtest.NewNullLogger()
	return NewDetector(0, onSwipe, logger)
}

func TestDetector_StartEnd(t *testing.T) {
	var got []model.SwipeDirection
	d := newTestDetector(func(dir model.SwipeDirection) { got = append(got, dir) })

	if d.Threshold() != DefaultSwipeThreshold {
		t.Errorf("Expected default threshold, got %v", d.Threshold())
	}

	d.Start(300)
	if dir := d.End(150); dir != model.SwipeLeft {
		t.Errorf("Expected swipe-left, got %s", dir)
	}

	d.Start(150)
	if dir := d.End(300); dir != model.SwipeRight {
		t.Errorf("Expected swipe-right, got %s", dir)
	}

	d.Start(150)
	if dir := d.End(180); dir != model.SwipeNone {
		t.Errorf("Expected none for jitter, got %s", dir)
	}

	if len(got) != 2 || got[0] != model.SwipeLeft || got[1] != model.SwipeRight {
		t.Errorf("Expected callbacks [left right], got %v", got)
	}
}

func TestDetector_EndWithoutStart(t *testing.T) {
	called := false
	d := newTestDetector(func(model.SwipeDirection) { called = true })

	if dir := d.End(500); dir != model.SwipeNone {
		t.Errorf("Expected none, got %s", dir)
	}
	if called {
		t.Error("Callback should not fire without a start")
	}
}

func TestDetector_Cancel(t *testing.T) {
	d := newTestDetector(nil)

	d.Start(300)
	d.Cancel()
	if dir := d.End(0); dir != model.SwipeNone {
		t.Errorf("Expected none after cancel, got %s", dir)
	}
}

func TestDetector_TouchEvents(t *testing.T) {
	var got model.SwipeDirection
	d := newTestDetector(func(dir model.SwipeDirection) { got = dir })

	d.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 200)}})
	d.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(260, 210)}})

	if got != model.SwipeRight {
		t.Errorf("Expected swipe-right from touch events, got %s", got)
	}
}

func TestDetector_Drag(t *testing.T) {
	var got model.SwipeDirection
	d := newTestDetector(func(dir model.SwipeDirection) { got = dir })

	d.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(290, 50)},
		Dragged:    fyne.NewDelta(-10, 0),
	})
	d.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 50)},
		Dragged:    fyne.NewDelta(-170, 0),
	})
	d.DragEnd()

	if got != model.SwipeLeft {
		t.Errorf("Expected swipe-left from drag, got %s", got)
	}
}
