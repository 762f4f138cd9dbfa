package shell

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/config"
	"github.com/catatumbo/nube-catatumbo/internal/download"
	"github.com/catatumbo/nube-catatumbo/internal/gesture"
	"github.com/catatumbo/nube-catatumbo/internal/model"
	"github.com/catatumbo/nube-catatumbo/internal/navigation"
	"github.com/catatumbo/nube-catatumbo/internal/schedule"
	"github.com/catatumbo/nube-catatumbo/internal/share"
)

// Session is the per-window UI state
type Session struct {
	CurrentResource string
	ViewerTitle     string
}

// Deps wires a Shell
type Deps struct {
	Config    config.Config
	View      View
	Scheduler schedule.Scheduler
	Store     ProgressStore
	Messages  Messages
	Logger    logrus.FieldLogger
}

// Shell coordinates the router, the download simulator and the side channels
type Shell struct {
	router     *navigation.Router
	scheduler  schedule.Scheduler
	downloads  download.Downloader
	sharer     share.Sharer
	detector   *gesture.Detector
	store      ProgressStore
	view       View
	messages   Messages
	log        logrus.FieldLogger
	onNavigate func(model.ScreenID)

	mu      sync.Mutex
	session Session
}

// New builds the shell and its components. No screen is active until the
// first NavigateTo.
func New(deps Deps) *Shell {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	messages := deps.Messages
	if messages == nil {
		messages = plainMessages{}
	}

	s := &Shell{
		store:    deps.Store,
		view:     deps.View,
		messages: messages,
		log:      logger.WithField("component", "shell"),
	}

	var presenter navigation.Presenter
	var progressView download.ProgressView
	if deps.View != nil {
		presenter = deps.View
		progressView = deps.View
	}

	s.router = navigation.NewRouter(presenter, logger, model.AllScreens()...)
	s.router.SetBackTarget(model.ScreenLibrary, model.ScreenHome)
	s.router.SetBackTarget(model.ScreenShare, model.ScreenHome)
	s.router.SetBackTarget(model.ScreenViewer, model.ScreenLibrary)
	s.router.SetChangeCallback(func(id model.ScreenID) {
		if s.onNavigate != nil {
			s.onNavigate(id)
		}
	})

	s.scheduler = s.guardedScheduler(deps.Scheduler)
	s.downloads = download.NewService(download.Config{
		TickInterval:    deps.Config.Download.Tick,
		Step:            deps.Config.Download.Step,
		CompletionDelay: deps.Config.Download.CompletionDelay,
		ReturnScreen:    model.ScreenLibrary,
		Logger:          logger,
	}, s.scheduler, s.router, progressView)
	s.downloads.SetCompleteCallback(s.onDownloadComplete)

	s.sharer = share.NewBluetoothStub(s.scheduler, deps.Config.Share.Delay, func(title string) {
		s.notify(s.messages.DevicesFound(title))
	}, logger)

	s.detector = gesture.NewDetector(deps.Config.Gesture.SwipeThreshold, func(dir model.SwipeDirection) {
		s.Guard("swipe", func() { s.HandleSwipe(dir) })
	}, logger)

	return s
}

// SetNavigateCallback sets a callback fired after every screen change
func (s *Shell) SetNavigateCallback(callback func(model.ScreenID)) {
	s.onNavigate = callback
}

// Router exposes the screen router
func (s *Shell) Router() *navigation.Router {
	return s.router
}

// Scheduler returns the scheduler the shell's components run on. Every
// callback is wrapped with Guard.
func (s *Shell) Scheduler() schedule.Scheduler {
	return s.scheduler
}

// Gestures exposes the swipe detector bound to HandleSwipe
func (s *Shell) Gestures() *gesture.Detector {
	return s.detector
}

// Session returns a copy of the session state
func (s *Shell) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// NavigateTo activates screen id; unknown ids leave nothing shown
func (s *Shell) NavigateTo(id model.ScreenID) {
	s.router.NavigateTo(id)
}

// StartDownload begins the simulated download of a resource. It is rejected
// with download.ErrDownloadInProgress while another download is live.
func (s *Shell) StartDownload(title, sizeLabel string) error {
	if job, busy := s.downloads.Current(); busy {
		s.notify(s.messages.DownloadBusy(job.Title))
		return fmt.Errorf("start download: %w", download.ErrDownloadInProgress)
	}

	s.mu.Lock()
	s.session.CurrentResource = title
	s.mu.Unlock()

	if _, err := s.downloads.Start(title, sizeLabel); err != nil {
		return fmt.Errorf("start download: %w", err)
	}
	return nil
}

// DownloadResource starts the download of a catalog entry
func (s *Shell) DownloadResource(r model.Resource) error {
	return s.StartDownload(r.GetDisplayTitle(), r.SizeLabel())
}

// ViewResource opens the viewer for title
func (s *Shell) ViewResource(title string) {
	s.mu.Lock()
	s.session.ViewerTitle = title
	s.mu.Unlock()

	if s.view != nil {
		s.view.SetViewerTitle(title)
	}
	s.router.NavigateTo(model.ScreenViewer)
}

// ShareViaBluetooth hands title to the share stub
func (s *Shell) ShareViaBluetooth(title string) {
	s.sharer.Share(title)
}

// SaveProgress records the last known progress of a resource
func (s *Shell) SaveProgress(resourceID string, progress int) {
	if s.store == nil {
		return
	}
	s.store.Save(resourceID, progress)
}

// LoadProgress returns the saved progress of a resource
func (s *Shell) LoadProgress(resourceID string) (model.ProgressRecord, bool) {
	if s.store == nil {
		return model.ProgressRecord{}, false
	}
	return s.store.Load(resourceID)
}

// ClearProgress forgets the saved progress of a resource
func (s *Shell) ClearProgress(resourceID string) {
	if s.store == nil {
		return
	}
	s.store.Remove(resourceID)
	s.log.WithField("resource", resourceID).Debug("progress cleared")
}

// OpenCategory shows the library; every category card leads there
func (s *Shell) OpenCategory(categoryID string) {
	s.log.WithField("category", categoryID).Debug("category opened")
	s.router.NavigateTo(model.ScreenLibrary)
}

// OpenLibrary shows the library
func (s *Shell) OpenLibrary() {
	s.router.NavigateTo(model.ScreenLibrary)
}

// OpenShare shows the share screen
func (s *Shell) OpenShare() {
	s.router.NavigateTo(model.ScreenShare)
}

// Back activates the back control of the active screen, if it has one
func (s *Shell) Back() bool {
	return s.router.Back()
}

// HandleSwipe reacts to a classified swipe. Left swipes are only logged; right
// swipes go back unless the home screen is active.
func (s *Shell) HandleSwipe(dir model.SwipeDirection) {
	switch dir {
	case model.SwipeLeft:
		s.log.Debug("swipe left detected")
	case model.SwipeRight:
		active, ok := s.router.Active()
		if !ok || active.IsHome() {
			return
		}
		s.router.Back()
	}
}

// Guard runs fn and recovers any panic, logging it instead of crashing the UI
func (s *Shell) Guard(name string, fn func()) {
	defer s.Recover(name)
	fn()
}

// Recover logs a panic in progress. It must be deferred directly.
func (s *Shell) Recover(name string) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		s.log.WithError(err).WithFields(logrus.Fields{
			"handler": name,
			"stack":   string(debug.Stack()),
		}).Error("recovered from panic")
	}
}

func (s *Shell) onDownloadComplete(job model.DownloadJob) {
	if !job.Status.IsFinished() {
		return
	}
	s.mu.Lock()
	title := s.session.CurrentResource
	s.mu.Unlock()
	if title == "" {
		title = job.Title
	}
	s.notify(s.messages.DownloadCompleted(title))
}

func (s *Shell) notify(message string) {
	if s.view != nil {
		s.view.Notify(message)
	}
}

// guardedScheduler wraps timer callbacks with Guard
func (s *Shell) guardedScheduler(inner schedule.Scheduler) schedule.Scheduler {
	return guarded{inner: inner, shell: s}
}

type guarded struct {
	inner schedule.Scheduler
	shell *Shell
}

func (g guarded) Every(interval time.Duration, fn func()) schedule.Task {
	return g.inner.Every(interval, func() { g.shell.Guard("tick", fn) })
}

func (g guarded) After(delay time.Duration, fn func()) schedule.Task {
	return g.inner.After(delay, func() { g.shell.Guard("timer", fn) })
}

// IsBusy reports whether err means a download is already running
func IsBusy(err error) bool {
	return errors.Is(err, download.ErrDownloadInProgress)
}

type plainMessages struct{}

func (plainMessages) DownloadCompleted(title string) string {
	return "✓ Download completed: " + title
}

func (plainMessages) DownloadBusy(title string) string {
	return "Another download is in progress: " + title
}

func (plainMessages) DevicesFound(string) string {
	return "Nearby devices found. The final version will list the available devices here."
}
