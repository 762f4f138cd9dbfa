package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/gesture"
)

// SwipeSurface wraps the whole screen stack and feeds touch sequences to the
// gesture detector
type SwipeSurface struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	detector *gesture.Detector
}

var _ mobile.Touchable = (*SwipeSurface)(nil)

// NewSwipeSurface creates a new swipe surface
func NewSwipeSurface(content fyne.CanvasObject, detector *gesture.Detector) *SwipeSurface {
	s := &SwipeSurface{
		content:  content,
		detector: detector,
	}
	s.ExtendBaseWidget(s)
	return s
}

// TouchDown handles touch down events
func (s *SwipeSurface) TouchDown(event *mobile.TouchEvent) {
	if s.detector != nil {
		s.detector.TouchDown(event)
	}
}

// TouchUp handles touch up events
func (s *SwipeSurface) TouchUp(event *mobile.TouchEvent) {
	if s.detector != nil {
		s.detector.TouchUp(event)
	}
}

// TouchCancel handles touch cancel events
func (s *SwipeSurface) TouchCancel(event *mobile.TouchEvent) {
	if s.detector != nil {
		s.detector.TouchCancel(event)
	}
}

// CreateRenderer creates the widget renderer
func (s *SwipeSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// SwipeScroll is a vertical scroll container that also reports pointer drags
// to the gesture detector. Drags land on the innermost draggable, which is
// the screen's scroll, so the detector has to listen there.
type SwipeScroll struct {
	container.Scroll

	detector *gesture.Detector
}

var _ fyne.Draggable = (*SwipeScroll)(nil)

// NewSwipeScroll creates a vertical scroll around content
func NewSwipeScroll(content fyne.CanvasObject, detector *gesture.Detector) *SwipeScroll {
	s := &SwipeScroll{detector: detector}
	s.Direction = container.ScrollVerticalOnly
	s.Content = content
	s.ExtendBaseWidget(s)
	return s
}

// Dragged scrolls on mobile and tracks the horizontal movement
func (s *SwipeScroll) Dragged(event *fyne.DragEvent) {
	s.Scroll.Dragged(event)
	if s.detector != nil {
		s.detector.Dragged(event)
	}
}

// DragEnd classifies the finished drag
func (s *SwipeScroll) DragEnd() {
	s.Scroll.DragEnd()
	if s.detector != nil {
		s.detector.DragEnd()
	}
}
