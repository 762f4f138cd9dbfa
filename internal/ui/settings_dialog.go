package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onLanguage   func(code string)

	// UI components
	languageSelect *widget.Select
	codes          map[string]string
}

// NewSettingsDialog creates a new settings dialog. onLanguage runs after a
// different language was saved.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onLanguage func(code string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
		window:       window,
		onLanguage:   onLanguage,
		codes:        make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	names := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.codes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(320, 200))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed || sd.languageSelect.Selected == "" {
		return
	}

	code := sd.codes[sd.languageSelect.Selected]
	if code == sd.settings.GetLanguage() {
		return
	}
	sd.settings.SetLanguage(code)
	if sd.onLanguage != nil {
		sd.onLanguage(code)
	}
}
