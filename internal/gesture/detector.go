// Package gesture classifies horizontal touch sequences into swipes.
package gesture

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// DefaultSwipeThreshold is the minimum horizontal travel of a swipe
const DefaultSwipeThreshold float32 = 100

// Classify returns the swipe direction of a touch that started at startX and
// ended at endX. A travel of exactly threshold is not a swipe.
func Classify(startX, endX, threshold float32) model.SwipeDirection {
	diff := startX - endX
	switch {
	case diff > threshold:
		return model.SwipeLeft
	case diff < -threshold:
		return model.SwipeRight
	default:
		return model.SwipeNone
	}
}

// Detector tracks one touch sequence at a time
type Detector struct {
	mu        sync.Mutex
	threshold float32
	startX    float32
	endX      float32
	tracking  bool
	onSwipe   func(model.SwipeDirection)
	log       logrus.FieldLogger
}

// NewDetector creates a detector. A non-positive threshold uses the default.
func NewDetector(threshold float32, onSwipe func(model.SwipeDirection), logger logrus.FieldLogger) *Detector {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Detector{
		threshold: threshold,
		onSwipe:   onSwipe,
		log:       logger.WithField("component", "gesture"),
	}
}

// Threshold returns the configured swipe threshold
func (d *Detector) Threshold() float32 {
	return d.threshold
}

// Start records the X coordinate where the sequence began
func (d *Detector) Start(x float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.startX = x
	d.tracking = true
}

// End records the final X coordinate and classifies the sequence. An End
// without a Start is not a swipe.
func (d *Detector) End(x float32) model.SwipeDirection {
	d.mu.Lock()
	if !d.tracking {
		d.mu.Unlock()
		return model.SwipeNone
	}
	d.endX = x
	d.tracking = false
	dir := Classify(d.startX, d.endX, d.threshold)
	startX := d.startX
	d.mu.Unlock()

	if dir == model.SwipeNone {
		return dir
	}

	d.log.WithFields(logrus.Fields{
		"direction": dir.String(),
		"start_x":   startX,
		"end_x":     x,
	}).Debug("swipe detected")

	if d.onSwipe != nil {
		d.onSwipe(dir)
	}
	return dir
}

// Cancel drops the sequence in progress
func (d *Detector) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tracking = false
}

// TouchDown handles touch down events for gesture detection
func (d *Detector) TouchDown(event *mobile.TouchEvent) {
	d.Start(event.Position.X)
}

// TouchUp handles touch up events for gesture detection
func (d *Detector) TouchUp(event *mobile.TouchEvent) {
	d.End(event.Position.X)
}

// TouchCancel handles touch cancel events
func (d *Detector) TouchCancel(*mobile.TouchEvent) {
	d.Cancel()
}

// Dragged feeds desktop pointer drags into the same detector
func (d *Detector) Dragged(event *fyne.DragEvent) {
	d.mu.Lock()
	if !d.tracking {
		// the first drag event already moved by Dragged.DX
		d.startX = event.Position.X - event.Dragged.DX
		d.tracking = true
	}
	d.endX = event.Position.X
	d.mu.Unlock()
}

// DragEnd classifies the drag that just finished
func (d *Detector) DragEnd() {
	d.mu.Lock()
	endX := d.endX
	d.mu.Unlock()
	d.End(endX)
}
