package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTagline           = "tagline"
	KeyCategories        = "categories"
	KeyLibrary           = "library"
	KeyShare             = "share"
	KeyShareHint         = "share_hint"
	KeyBack              = "back"
	KeyView              = "view"
	KeyDownload          = "download"
	KeySend              = "send"
	KeyDownloading       = "downloading"
	KeyDownloadWait      = "download_wait"
	KeyViewer            = "viewer"
	KeyViewerBody        = "viewer_body"
	KeyReadingProgress   = "reading_progress"
	KeySavedProgress     = "saved_progress"
	KeySavedProgressAt   = "saved_progress_at"
	KeyClearProgress     = "clear_progress"
	KeyOnline            = "online"
	KeyOffline           = "offline"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyFile              = "file"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadBusy      = "download_busy"
	KeyDevicesFound      = "devices_found"
	KeySharing           = "sharing"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "es",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Spanish
	if texts, exists := l.texts["es"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with fmt verbs filled in
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"es": "Español",
		"en": "English",
	}
}

// DownloadCompleted renders the completion toast
func (l *Localization) DownloadCompleted(title string) string {
	return l.Format(KeyDownloadCompleted, title)
}

// DownloadBusy renders the toast shown when a download is already running
func (l *Localization) DownloadBusy(title string) string {
	return l.Format(KeyDownloadBusy, title)
}

// DevicesFound renders the Bluetooth placeholder toast
func (l *Localization) DevicesFound(string) string {
	return l.GetText(KeyDevicesFound)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "Nube Catatumbo",
		KeyTagline:           "Biblioteca virtual sin conexión",
		KeyCategories:        "Categorías",
		KeyLibrary:           "Biblioteca",
		KeyShare:             "Compartir",
		KeyShareHint:         "Envía recursos a teléfonos cercanos por Bluetooth",
		KeyBack:              "Volver",
		KeyView:              "Ver",
		KeyDownload:          "Descargar",
		KeySend:              "Enviar",
		KeyDownloading:       "Descargando",
		KeyDownloadWait:      "Mantén la aplicación abierta mientras termina la descarga",
		KeyViewer:            "Visor",
		KeyViewerBody:        "El contenido del recurso aparecerá aquí.",
		KeyReadingProgress:   "Progreso",
		KeySavedProgress:     "Guardado: %d%%",
		KeySavedProgressAt:   "Guardado: %d%% · %s",
		KeyClearProgress:     "Borrar progreso",
		KeyOnline:            "En línea",
		KeyOffline:           "Sin conexión",
		KeySettings:          "Ajustes",
		KeyLanguage:          "Idioma",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeyFile:              "Archivo",
		KeyDownloadCompleted: "✓ Descarga completada: %s",
		KeyDownloadBusy:      "Espera a que termine la descarga de %s",
		KeyDevicesFound:      "Dispositivos cercanos encontrados. En la versión final, aquí aparecerá la lista de dispositivos disponibles.",
		KeySharing:           "Buscando dispositivos…",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Nube Catatumbo",
		KeyTagline:           "Offline virtual library",
		KeyCategories:        "Categories",
		KeyLibrary:           "Library",
		KeyShare:             "Share",
		KeyShareHint:         "Send resources to nearby phones over Bluetooth",
		KeyBack:              "Back",
		KeyView:              "View",
		KeyDownload:          "Download",
		KeySend:              "Send",
		KeyDownloading:       "Downloading",
		KeyDownloadWait:      "Keep the app open while the download finishes",
		KeyViewer:            "Viewer",
		KeyViewerBody:        "The resource content will appear here.",
		KeyReadingProgress:   "Progress",
		KeySavedProgress:     "Saved: %d%%",
		KeySavedProgressAt:   "Saved: %d%% · %s",
		KeyClearProgress:     "Clear progress",
		KeyOnline:            "Online",
		KeyOffline:           "Offline",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyFile:              "File",
		KeyDownloadCompleted: "✓ Download completed: %s",
		KeyDownloadBusy:      "Wait for %s to finish downloading",
		KeyDevicesFound:      "Nearby devices found. The final version will list the available devices here.",
		KeySharing:           "Looking for devices…",
	}
}
