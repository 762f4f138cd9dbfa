package model

import (
	"fmt"
	"time"
)

// DownloadJob is the single simulated download in flight
type DownloadJob struct {
	ID         string
	Title      string
	SizeLabel  string
	Status     JobStatus
	Percent    int // 0 to 100
	StartedAt  time.Time
	FinishedAt time.Time
}

// Progress returns the completion ratio from 0.0 to 1.0, suitable for progress bars
func (dj *DownloadJob) Progress() float64 {
	switch {
	case dj.Percent <= 0:
		return 0
	case dj.Percent >= 100:
		return 1
	}
	return float64(dj.Percent) / 100.0
}

// PercentLabel returns the percent formatted for display, e.g. "40%"
func (dj *DownloadJob) PercentLabel() string {
	return fmt.Sprintf("%d%%", dj.Percent)
}
