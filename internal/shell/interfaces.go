package shell

import (
	"github.com/catatumbo/nube-catatumbo/internal/download"
	"github.com/catatumbo/nube-catatumbo/internal/model"
	"github.com/catatumbo/nube-catatumbo/internal/navigation"
)

// View is everything the shell asks the renderer to do
type View interface {
	navigation.Presenter
	download.ProgressView
	SetViewerTitle(title string)
	Notify(message string)
}

// ProgressStore persists per-resource progress
type ProgressStore interface {
	Save(resourceID string, progress int)
	Load(resourceID string) (model.ProgressRecord, bool)
	Remove(resourceID string)
}

// Messages renders user-facing notification text
type Messages interface {
	DownloadCompleted(title string) string
	DownloadBusy(title string) string
	DevicesFound(title string) string
}
