// Package progress persists the last known progress of library resources in
// the app preferences, one JSON record per resource.
package progress

import (
	"encoding/json"
	"time"

	"fyne.io/fyne/v2"
	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// KeyPrefix namespaces progress records among other preferences
const KeyPrefix = "catatumbo_"

// Store reads and writes progress records. Every operation degrades silently
// when preferences are unavailable.
type Store struct {
	prefs fyne.Preferences
	now   func() time.Time
	log   logrus.FieldLogger
}

// NewStore creates a store over prefs. prefs may be nil.
func NewStore(prefs fyne.Preferences, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		prefs: prefs,
		now:   time.Now,
		log:   logger.WithField("component", "progress"),
	}
}

// Key returns the preference key of a resource
func Key(resourceID string) string {
	return KeyPrefix + resourceID
}

// Available reports whether a preferences medium is attached
func (s *Store) Available() bool {
	return s != nil && s.prefs != nil
}

// Save overwrites the record of resourceID with the current time
func (s *Store) Save(resourceID string, progress int) {
	if !s.Available() {
		return
	}

	record := model.NewProgressRecord(resourceID, progress, s.now())
	data, err := json.Marshal(record)
	if err != nil {
		s.log.WithError(err).WithField("resource", resourceID).Warn("encode progress record")
		return
	}

	s.prefs.SetString(Key(resourceID), string(data))
}

// Load returns the last saved record. Missing, unavailable and malformed
// records all report false.
func (s *Store) Load(resourceID string) (model.ProgressRecord, bool) {
	if !s.Available() {
		return model.ProgressRecord{}, false
	}

	raw := s.prefs.String(Key(resourceID))
	if raw == "" {
		return model.ProgressRecord{}, false
	}

	var record *model.ProgressRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.log.WithError(err).WithField("resource", resourceID).Debug("discarding malformed progress record")
		return model.ProgressRecord{}, false
	}
	if record == nil {
		s.log.WithField("resource", resourceID).Debug("discarding null progress record")
		return model.ProgressRecord{}, false
	}
	return *record, true
}

// Remove deletes the record of resourceID
func (s *Store) Remove(resourceID string) {
	if !s.Available() {
		return
	}
	s.prefs.RemoveValue(Key(resourceID))
}
