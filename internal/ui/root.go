package ui

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/catatumbo/nube-catatumbo/internal/config"
	"github.com/catatumbo/nube-catatumbo/internal/connectivity"
	"github.com/catatumbo/nube-catatumbo/internal/model"
	"github.com/catatumbo/nube-catatumbo/internal/progress"
	"github.com/catatumbo/nube-catatumbo/internal/schedule"
	"github.com/catatumbo/nube-catatumbo/internal/shell"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	cfg          config.Config
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	shell        *shell.Shell
	stack        *ScreenStack
	store        *progress.Store
	connection   *connectivity.Monitor
	log          logrus.FieldLogger

	titleLabel  *widget.Label
	statusLabel *widget.Label
	settingsBtn *widget.Button

	// Library state
	category string
	rows     []*ResourceRow

	// Viewer state
	viewerResource model.Resource
	viewerSlider   *widget.Slider
	viewerSaved    *widget.Label
	viewerClear    *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cfg config.Config, scheduler schedule.Scheduler, logger logrus.FieldLogger) *RootUI {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		cfg:          cfg,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		log:          logger.WithField("component", "ui"),
	}

	toaster := NewToaster(window.Canvas(), nil)
	ui.stack = NewScreenStack(toaster)
	ui.store = progress.NewStore(app.Preferences(), logger)
	ui.shell = shell.New(shell.Deps{
		Config:    cfg,
		View:      ui.stack,
		Scheduler: scheduler,
		Store:     ui.store,
		Messages:  localization,
		Logger:    logger,
	})
	ui.shell.SetNavigateCallback(ui.onNavigate)
	// toast timers and screen drags go through the shell's guard
	toaster.SetScheduler(ui.shell.Scheduler())
	ui.stack.SetSwipeDetector(ui.shell.Gestures())
	ui.stack.SetViewerTitleCallback(ui.onViewerOpened)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// Shell returns the application shell
func (ui *RootUI) Shell() *shell.Shell {
	return ui.shell
}

// Screens returns the screen presenter
func (ui *RootUI) Screens() *ScreenStack {
	return ui.stack
}

// SetConnectivity attaches the monitor driving the header status label. It
// must be called before Start.
func (ui *RootUI) SetConnectivity(monitor *connectivity.Monitor) {
	ui.connection = monitor
	if monitor == nil {
		return
	}
	monitor.SetChangeCallback(func(online bool) {
		ui.shell.Guard("connection", func() {
			ui.setConnectionStatus(online)
		})
	})
}

// Start logs startup diagnostics, starts the connection monitor and shows the
// screen that was open when the app last closed
func (ui *RootUI) Start() {
	ui.log.WithFields(logrus.Fields{
		"mobile":  ui.mobile.IsMobileDevice(),
		"os":      runtime.GOOS,
		"storage": ui.store.Available(),
	}).Info("startup diagnostics")

	if ui.connection != nil {
		ui.connection.Start()
	}
	ui.shell.NavigateTo(ui.settings.GetLastScreen())
}

// setConnectionStatus shows the online or offline badge
func (ui *RootUI) setConnectionStatus(online bool) {
	if online {
		ui.statusLabel.SetText(ui.localization.GetText(KeyOnline))
		ui.statusLabel.Importance = widget.SuccessImportance
	} else {
		ui.statusLabel.SetText(ui.localization.GetText(KeyOffline))
		ui.statusLabel.Importance = widget.WarningImportance
	}
	ui.statusLabel.Show()
	ui.statusLabel.Refresh()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.stack.AddScreen(model.ScreenHome, ui.buildHome())
	ui.stack.AddScreen(model.ScreenLibrary, ui.buildLibrary())
	ui.stack.AddScreen(model.ScreenShare, ui.buildShare())
	ui.stack.AddScreen(model.ScreenDownloading, ui.buildDownloading())
	ui.stack.AddScreen(model.ScreenViewer, ui.buildViewer())

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Hide()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.action("settings", ui.onShowSettings))
	ui.settingsBtn.Importance = widget.LowImportance

	var brand fyne.CanvasObject = widget.NewLabel(IconLogo)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		brand = logoImage
	} else {
		ui.log.WithError(err).Debug("logo not loaded, using text fallback")
	}

	header := container.NewBorder(nil, nil, container.NewHBox(brand, ui.titleLabel), container.NewHBox(ui.statusLabel, ui.settingsBtn))
	surface := NewSwipeSurface(ui.stack.Container(), ui.shell.Gestures())

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, surface))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.action("settings", ui.onShowSettings))

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, ui.action("language", func() {
			ui.onLanguageChange(langCode)
		}))
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts rebuilds every screen with the current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	if ui.connection != nil {
		if online, known := ui.connection.Online(); known {
			ui.setConnectionStatus(online)
		}
	}

	ui.stack.SetScreenContent(model.ScreenHome, ui.buildHome())
	ui.stack.SetScreenContent(model.ScreenShare, ui.buildShare())
	ui.stack.SetScreenContent(model.ScreenDownloading, ui.buildDownloading())
	ui.stack.SetScreenContent(model.ScreenViewer, ui.buildViewer())
	ui.refreshLibrary()
	if ui.viewerResource.ID != "" {
		ui.onViewerOpened(ui.viewerResource.GetDisplayTitle())
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange).Show()
}

// onTypedKey maps Escape and Backspace to the back control
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyEscape, fyne.KeyBackspace:
		ui.shell.Guard("key", func() {
			ui.shell.Back()
		})
	}
}

// onNavigate remembers the screen and refreshes screens that show saved state
func (ui *RootUI) onNavigate(id model.ScreenID) {
	ui.settings.SetLastScreen(id)
	if id == model.ScreenLibrary {
		ui.refreshLibrary()
	}
}

// action wraps a UI callback with the shell's panic guard
func (ui *RootUI) action(name string, fn func()) func() {
	return func() {
		ui.shell.Guard(name, fn)
	}
}

func (ui *RootUI) onView(r model.Resource) {
	ui.viewerResource = r
	ui.shell.ViewResource(r.GetDisplayTitle())
}

func (ui *RootUI) onDownload(r model.Resource) {
	if err := ui.shell.DownloadResource(r); err != nil {
		if shell.IsBusy(err) {
			return
		}
		ui.log.WithError(err).WithField("resource", r.ID).Warn("download not started")
	}
}

func (ui *RootUI) onSend(r model.Resource) {
	ui.stack.Notify(ui.localization.GetText(KeySharing))
	ui.shell.ShareViaBluetooth(r.GetDisplayTitle())
}

func (ui *RootUI) onOpenCategory(id string) {
	ui.category = id
	ui.shell.OpenCategory(id)
}

func (ui *RootUI) onOpenLibrary() {
	ui.category = ""
	ui.shell.OpenLibrary()
}

// findResource looks a catalog entry up by its display title
func (ui *RootUI) findResource(title string) (model.Resource, bool) {
	for _, r := range ui.cfg.Catalog {
		if r.GetDisplayTitle() == title {
			return r, true
		}
	}
	return model.Resource{}, false
}
