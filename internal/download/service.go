package download

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/model"
	"github.com/catatumbo/nube-catatumbo/internal/navigation"
	"github.com/catatumbo/nube-catatumbo/internal/schedule"
)

// Simulation defaults
const (
	DefaultTickInterval    = 300 * time.Millisecond
	DefaultStep            = 10
	DefaultCompletionDelay = 800 * time.Millisecond

	// JobIDPrefix prefixes generated job identifiers
	JobIDPrefix = "download-"
)

// ErrDownloadInProgress is returned when a download is started while another
// one still holds the download slot.
var ErrDownloadInProgress = errors.New("download already in progress")

// Config tunes the simulation
type Config struct {
	TickInterval    time.Duration
	Step            int
	CompletionDelay time.Duration
	ReturnScreen    model.ScreenID
	Logger          logrus.FieldLogger
}

// Service drives the simulated download
type Service struct {
	cfg       Config
	scheduler schedule.Scheduler
	navigator navigation.Navigator
	view      ProgressView
	log       logrus.FieldLogger

	mu         sync.Mutex
	job        *model.DownloadJob
	ticker     schedule.Task
	finisher   schedule.Task
	onUpdate   func(model.DownloadJob) // callback for UI updates
	onComplete func(model.DownloadJob)
}

// NewService creates a new download service. A nil view is allowed.
func NewService(cfg Config, scheduler schedule.Scheduler, navigator navigation.Navigator, view ProgressView) *Service {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.CompletionDelay <= 0 {
		cfg.CompletionDelay = DefaultCompletionDelay
	}
	if cfg.ReturnScreen == "" {
		cfg.ReturnScreen = model.ScreenLibrary
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Service{
		cfg:       cfg,
		scheduler: scheduler,
		navigator: navigator,
		view:      view,
		log:       cfg.Logger.WithField("component", "download"),
	}
}

// SetUpdateCallback sets the callback function for progress updates
func (s *Service) SetUpdateCallback(callback func(model.DownloadJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetCompleteCallback sets the callback fired after the return to the library
func (s *Service) SetCompleteCallback(callback func(model.DownloadJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = callback
}

// Start switches to the downloading screen and begins ticking. Only one job
// may be live; a second call is rejected with ErrDownloadInProgress.
func (s *Service) Start(title, sizeLabel string) (model.DownloadJob, error) {
	s.mu.Lock()
	if s.job != nil && s.job.Status.IsActive() {
		current := *s.job
		s.mu.Unlock()
		return model.DownloadJob{}, fmt.Errorf("start %q while %q is running: %w", title, current.Title, ErrDownloadInProgress)
	}

	job := &model.DownloadJob{
		ID:        generateJobID(),
		Title:     title,
		SizeLabel: sizeLabel,
		Status:    model.JobStatusDownloading,
		StartedAt: time.Now(),
	}
	s.job = job
	snapshot := *job
	s.mu.Unlock()

	if s.view != nil {
		s.view.SetDownloadInfo(title, sizeLabel)
		s.view.SetProgress(snapshot)
	}

	// The screen switch must complete before any progress is scheduled.
	s.navigator.NavigateTo(model.ScreenDownloading)

	ticker := s.scheduler.Every(s.cfg.TickInterval, func() { s.tick(job) })

	s.mu.Lock()
	if s.job == job && job.Status == model.JobStatusDownloading {
		s.ticker = ticker
	} else {
		ticker.Cancel()
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"job":   snapshot.ID,
		"title": title,
		"size":  sizeLabel,
	}).Info("download started")

	s.notifyUpdate(snapshot)
	return snapshot, nil
}

// Current returns the live job, if any
func (s *Service) Current() (model.DownloadJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job == nil || !s.job.Status.IsActive() {
		return model.DownloadJob{}, false
	}
	return *s.job, true
}

// tick advances progress by one step and stops ticking at 100
func (s *Service) tick(job *model.DownloadJob) {
	s.mu.Lock()
	if s.job != job || job.Status != model.JobStatusDownloading {
		s.mu.Unlock()
		return
	}

	job.Percent += s.cfg.Step
	finished := job.Percent >= 100
	if finished {
		job.Percent = 100
		job.Status = model.JobStatusFinishing
		if s.ticker != nil {
			s.ticker.Cancel()
			s.ticker = nil
		}
		s.finisher = s.scheduler.After(s.cfg.CompletionDelay, func() { s.complete(job) })
	}
	snapshot := *job
	s.mu.Unlock()

	if s.view != nil {
		s.view.SetProgress(snapshot)
	}
	s.notifyUpdate(snapshot)
}

// complete resets the progress display and returns to the library
func (s *Service) complete(job *model.DownloadJob) {
	s.mu.Lock()
	if s.job != job || job.Status != model.JobStatusFinishing {
		s.mu.Unlock()
		return
	}
	job.Status = model.JobStatusCompleted
	job.FinishedAt = time.Now()
	s.finisher = nil
	snapshot := *job
	onComplete := s.onComplete
	s.mu.Unlock()

	if s.view != nil {
		// the bar goes back to an empty idle state
		s.view.SetProgress(model.DownloadJob{ID: snapshot.ID, Title: snapshot.Title, Status: model.JobStatusIdle})
	}
	s.navigator.NavigateTo(s.cfg.ReturnScreen)

	s.log.WithFields(logrus.Fields{
		"job":   snapshot.ID,
		"title": snapshot.Title,
	}).Info("download completed")

	s.notifyUpdate(snapshot)
	if onComplete != nil {
		onComplete(snapshot)
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job model.DownloadJob) {
	s.mu.Lock()
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(job)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return JobIDPrefix + uuid.New().String()
}
