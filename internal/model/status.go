package model

// JobStatus represents the lifecycle state of a simulated download
type JobStatus string

const (
	// JobStatusIdle means no download has been started yet
	JobStatusIdle JobStatus = "Idle"

	// JobStatusDownloading means progress is still being advanced by the ticker
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusFinishing means progress reached 100 and the return to the
	// library is pending
	JobStatusFinishing JobStatus = "Finishing"

	// JobStatusCompleted means the completion notification was emitted
	JobStatusCompleted JobStatus = "Completed"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while the job still occupies the single download slot
func (js JobStatus) IsActive() bool {
	return js == JobStatusDownloading || js == JobStatusFinishing
}

// IsFinished returns true once the completion notification was emitted
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted
}
