package download

import (
	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.DownloadJob))
	SetCompleteCallback(func(model.DownloadJob))
	Start(title, sizeLabel string) (model.DownloadJob, error)
	Current() (model.DownloadJob, bool)
}

// ProgressView renders the downloading screen.
type ProgressView interface {
	SetDownloadInfo(title, sizeLabel string)
	SetProgress(job model.DownloadJob)
}
