package config

import (
	"fyne.io/fyne/v2"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage   = "app_language"
	KeyLastScreen = "last_screen"
)

// Default values
const (
	DefaultLanguage   = "es"
	DefaultLastScreen = model.ScreenHome
)

// Settings manages user preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

// GetLastScreen returns the screen to restore at startup. Only screens that
// are safe to reopen without context are returned.
func (s *Settings) GetLastScreen() model.ScreenID {
	id := model.ScreenID(s.app.Preferences().String(KeyLastScreen))
	switch id {
	case model.ScreenHome, model.ScreenLibrary, model.ScreenShare:
		return id
	}
	return DefaultLastScreen
}

// SetLastScreen remembers the active screen
func (s *Settings) SetLastScreen(id model.ScreenID) {
	s.app.Preferences().SetString(KeyLastScreen, string(id))
}
