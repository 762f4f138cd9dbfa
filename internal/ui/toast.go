package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

// Toaster shows one transient notification at a time at the bottom of the
// window
type Toaster struct {
	canvas    fyne.Canvas
	scheduler schedule.Scheduler

	mu      sync.Mutex
	popup   *widget.PopUp
	label   *widget.Label
	autoHid schedule.Task
}

// NewToaster creates a toaster drawing on canvas. Auto-hide timers run on
// scheduler.
func NewToaster(canvas fyne.Canvas, scheduler schedule.Scheduler) *Toaster {
	return &Toaster{canvas: canvas, scheduler: scheduler}
}

// SetScheduler swaps the scheduler used by later auto-hide timers
func (t *Toaster) SetScheduler(scheduler schedule.Scheduler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scheduler = scheduler
}

// Show replaces any visible toast with message
func (t *Toaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.autoHid != nil {
		t.autoHid.Cancel()
		t.autoHid = nil
	}

	if t.popup == nil {
		t.label = widget.NewLabel(message)
		t.label.Wrapping = fyne.TextWrapWord
		closeBtn := widget.NewButton(IconClose, t.Hide)
		closeBtn.Importance = widget.LowImportance
		t.popup = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, t.label), t.canvas)
	} else {
		t.label.SetText(message)
	}

	canvasSize := t.canvas.Size()
	width := ToastWidth
	if canvasSize.Width > 0 && canvasSize.Width-2*ToastMargin < width {
		width = canvasSize.Width - 2*ToastMargin
	}
	t.popup.Resize(fyne.NewSize(width, ToastHeight))
	t.popup.Move(fyne.NewPos((canvasSize.Width-width)/2, canvasSize.Height-ToastHeight-ToastMargin))
	t.popup.Show()

	if t.scheduler != nil {
		t.autoHid = t.scheduler.After(ToastAutoHide, t.Hide)
	}
}

// Hide removes the visible toast, if any
func (t *Toaster) Hide() {
	t.mu.Lock()
	popup := t.popup
	t.mu.Unlock()

	if popup != nil {
		popup.Hide()
	}
}

// Visible reports whether a toast is on screen
func (t *Toaster) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.popup != nil && t.popup.Visible()
}

// Message returns the text of the last toast
func (t *Toaster) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.label == nil {
		return ""
	}
	return t.label.Text
}
