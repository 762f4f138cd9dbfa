package model

import "time"

// TimestampLayout is the ISO-8601 layout used for persisted timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ProgressRecord is the last known progress of a resource
type ProgressRecord struct {
	ResourceID string `json:"resource"`
	Progress   int    `json:"progress"`
	Timestamp  string `json:"timestamp"`
}

// NewProgressRecord builds a record stamped with the given time in UTC
func NewProgressRecord(resourceID string, progress int, at time.Time) ProgressRecord {
	return ProgressRecord{
		ResourceID: resourceID,
		Progress:   progress,
		Timestamp:  at.UTC().Format(TimestampLayout),
	}
}

// Time parses the record timestamp
func (pr ProgressRecord) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, pr.Timestamp)
}
