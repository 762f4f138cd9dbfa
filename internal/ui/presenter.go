package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/gesture"
	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// ScreenStack stacks one scroll container per screen and shows at most one of
// them. It renders everything the shell asks for.
type ScreenStack struct {
	screens  map[model.ScreenID]*SwipeScroll
	stack    *fyne.Container
	toaster  *Toaster
	detector *gesture.Detector

	downloadTitle *widget.Label
	downloadSize  *widget.Label
	progressBar   *widget.ProgressBar
	percentLabel  *widget.Label
	viewerTitle   *widget.Label

	onViewerTitle func(title string)
}

// NewScreenStack creates an empty stack; screens are added with AddScreen
func NewScreenStack(toaster *Toaster) *ScreenStack {
	idle := model.DownloadJob{}
	s := &ScreenStack{
		screens:       make(map[model.ScreenID]*SwipeScroll),
		stack:         container.NewStack(),
		toaster:       toaster,
		downloadTitle: widget.NewLabel(""),
		downloadSize:  widget.NewLabel(""),
		progressBar:   widget.NewProgressBar(),
		percentLabel:  widget.NewLabel(idle.PercentLabel()),
		viewerTitle:   widget.NewLabel(""),
	}
	s.downloadTitle.TextStyle = fyne.TextStyle{Bold: true}
	s.downloadTitle.Wrapping = fyne.TextWrapWord
	s.percentLabel.Alignment = fyne.TextAlignCenter
	s.viewerTitle.TextStyle = fyne.TextStyle{Bold: true}
	s.viewerTitle.Wrapping = fyne.TextWrapWord
	s.progressBar.Min = 0
	s.progressBar.Max = 1
	s.progressBar.TextFormatter = func() string { return "" }
	return s
}

// AddScreen registers content for id, hidden until shown
func (s *ScreenStack) AddScreen(id model.ScreenID, content fyne.CanvasObject) {
	if old, ok := s.screens[id]; ok {
		s.stack.Remove(old)
	}
	scroll := NewSwipeScroll(content, s.detector)
	scroll.Hide()
	s.screens[id] = scroll
	s.stack.Add(scroll)
}

// SetSwipeDetector sets the detector that screens added afterwards report
// drags to
func (s *ScreenStack) SetSwipeDetector(detector *gesture.Detector) {
	s.detector = detector
	for _, scroll := range s.screens {
		scroll.detector = detector
	}
}

// SetScreenContent replaces the content of an existing screen in place
func (s *ScreenStack) SetScreenContent(id model.ScreenID, content fyne.CanvasObject) {
	scroll, ok := s.screens[id]
	if !ok {
		s.AddScreen(id, content)
		return
	}
	scroll.Content = content
	scroll.Refresh()
}

// SetViewerTitleCallback registers a hook fired whenever the viewer opens on
// a new title
func (s *ScreenStack) SetViewerTitleCallback(callback func(title string)) {
	s.onViewerTitle = callback
}

// Container returns the stacked screens
func (s *ScreenStack) Container() *fyne.Container {
	return s.stack
}

// Toaster returns the notification toaster
func (s *ScreenStack) Toaster() *Toaster {
	return s.toaster
}

// Visible reports whether screen id is shown
func (s *ScreenStack) Visible(id model.ScreenID) bool {
	scroll, ok := s.screens[id]
	return ok && scroll.Visible()
}

// ShowScreen shows screen id
func (s *ScreenStack) ShowScreen(id model.ScreenID) {
	if scroll, ok := s.screens[id]; ok {
		scroll.Show()
	}
}

// HideScreen hides screen id
func (s *ScreenStack) HideScreen(id model.ScreenID) {
	if scroll, ok := s.screens[id]; ok {
		scroll.Hide()
	}
}

// ScrollToTop resets the scroll offset of screen id
func (s *ScreenStack) ScrollToTop(id model.ScreenID) {
	if scroll, ok := s.screens[id]; ok {
		scroll.ScrollToTop()
	}
}

// SetDownloadInfo fills the downloading screen header
func (s *ScreenStack) SetDownloadInfo(title, sizeLabel string) {
	s.downloadTitle.SetText(title)
	s.downloadSize.SetText(sizeLabel)
}

// SetProgress updates the progress bar and its percent label from job
func (s *ScreenStack) SetProgress(job model.DownloadJob) {
	s.progressBar.SetValue(job.Progress())
	s.percentLabel.SetText(job.PercentLabel())
}

// SetViewerTitle sets the title shown by the viewer
func (s *ScreenStack) SetViewerTitle(title string) {
	s.viewerTitle.SetText(title)
	if s.onViewerTitle != nil {
		s.onViewerTitle(title)
	}
}

// Notify shows message as a toast
func (s *ScreenStack) Notify(message string) {
	if s.toaster != nil {
		s.toaster.Show(message)
	}
}

// DownloadWidgets returns the widgets of the downloading screen
func (s *ScreenStack) DownloadWidgets() (title, size *widget.Label, bar *widget.ProgressBar, percent *widget.Label) {
	return s.downloadTitle, s.downloadSize, s.progressBar, s.percentLabel
}

// ViewerTitleLabel returns the viewer heading
func (s *ScreenStack) ViewerTitleLabel() *widget.Label {
	return s.viewerTitle
}
