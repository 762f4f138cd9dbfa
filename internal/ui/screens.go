package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// buildHome creates the category grid and the main actions
func (ui *RootUI) buildHome() fyne.CanvasObject {
	tagline := widget.NewLabel(ui.localization.GetText(KeyTagline))
	tagline.Alignment = fyne.TextAlignCenter
	tagline.Wrapping = fyne.TextWrapWord

	heading := widget.NewLabel(ui.localization.GetText(KeyCategories))
	heading.TextStyle = fyne.TextStyle{Bold: true}

	cards := make([]fyne.CanvasObject, 0, len(ui.cfg.Categories))
	for _, category := range ui.cfg.Categories {
		id := category.ID
		icon := widget.NewLabel(category.Icon)
		icon.Alignment = fyne.TextAlignCenter
		title := widget.NewLabel(category.Title)
		title.Alignment = fyne.TextAlignCenter
		title.Wrapping = fyne.TextWrapWord
		cards = append(cards, NewCard(container.NewVBox(icon, title), ui.action("category", func() {
			ui.onOpenCategory(id)
		})))
	}

	libraryBtn := NewMobileButton(IconLibrary+" "+ui.localization.GetText(KeyLibrary), ui.action("library", ui.onOpenLibrary))
	libraryBtn.Importance = widget.HighImportance
	shareBtn := NewMobileButton(IconShare+" "+ui.localization.GetText(KeyShare), ui.action("share", ui.shell.OpenShare))

	return container.NewPadded(container.NewVBox(
		tagline,
		heading,
		ui.mobile.CreateAdaptiveContainer(cards...),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, libraryBtn, shareBtn),
	))
}

// buildLibrary creates the resource list; rows are filled by refreshLibrary
func (ui *RootUI) buildLibrary() fyne.CanvasObject {
	ui.rows = nil
	heading := widget.NewLabel(ui.libraryHeading())
	heading.TextStyle = fyne.TextStyle{Bold: true}

	list := container.NewVBox()
	for _, r := range ui.cfg.ResourcesIn(ui.category) {
		row := NewResourceRow(r, ui.localization)
		row.SetCallbacks(
			ui.guardResource("view", ui.onView),
			ui.guardResource("download", ui.onDownload),
			ui.guardResource("send", ui.onSend),
		)
		ui.rows = append(ui.rows, row)
		list.Add(row.Container())
	}

	return container.NewPadded(container.NewVBox(
		container.NewBorder(nil, nil, ui.backButton(), nil, heading),
		list,
	))
}

// buildShare creates the Bluetooth share list
func (ui *RootUI) buildShare() fyne.CanvasObject {
	heading := widget.NewLabel(ui.localization.GetText(KeyShare))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	hint := widget.NewLabel(ui.localization.GetText(KeyShareHint))
	hint.Wrapping = fyne.TextWrapWord

	list := container.NewVBox()
	send := ui.guardResource("send", ui.onSend)
	for _, r := range ui.cfg.Catalog {
		resource := r
		title := widget.NewLabel(r.GetDisplayTitle())
		title.Truncation = fyne.TextTruncateEllipsis
		sendBtn := NewMobileButton(IconSend+" "+ui.localization.GetText(KeySend), func() { send(resource) })
		list.Add(container.NewBorder(nil, nil, nil, sendBtn, container.NewVBox(title, widget.NewLabel(r.Meta()))))
	}

	return container.NewPadded(container.NewVBox(
		container.NewBorder(nil, nil, ui.backButton(), nil, heading),
		hint,
		widget.NewSeparator(),
		list,
	))
}

// buildDownloading lays out the widgets the download simulator drives
func (ui *RootUI) buildDownloading() fyne.CanvasObject {
	heading := widget.NewLabel(IconDownload + " " + ui.localization.GetText(KeyDownloading))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter

	title, size, bar, percent := ui.stack.DownloadWidgets()
	wait := widget.NewLabel(ui.localization.GetText(KeyDownloadWait))
	wait.Wrapping = fyne.TextWrapWord
	wait.Importance = widget.LowImportance

	return container.NewPadded(container.NewVBox(heading, title, size, bar, percent, wait))
}

// buildViewer creates the resource viewer with its progress slider
func (ui *RootUI) buildViewer() fyne.CanvasObject {
	body := widget.NewLabel(ui.localization.GetText(KeyViewerBody))
	body.Wrapping = fyne.TextWrapWord

	ui.viewerSaved = widget.NewLabel("")
	ui.viewerSaved.Importance = widget.SuccessImportance

	ui.viewerClear = widget.NewButton(ui.localization.GetText(KeyClearProgress), ui.action("clear-progress", ui.clearViewerProgress))
	ui.viewerClear.Importance = widget.LowImportance

	ui.viewerSlider = widget.NewSlider(0, 100)
	ui.viewerSlider.Step = ViewerProgressStep
	ui.viewerSlider.OnChangeEnded = func(value float64) {
		ui.shell.Guard("viewer-progress", func() {
			ui.saveViewerProgress(int(value))
		})
	}

	return container.NewPadded(container.NewVBox(
		container.NewBorder(nil, nil, ui.backButton(), nil, ui.stack.ViewerTitleLabel()),
		body,
		widget.NewSeparator(),
		widget.NewLabel(ui.localization.GetText(KeyReadingProgress)),
		ui.viewerSlider,
		container.NewBorder(nil, nil, nil, ui.viewerClear, ui.viewerSaved),
	))
}

// refreshLibrary updates the saved progress shown on every row
func (ui *RootUI) refreshLibrary() {
	ui.stack.SetScreenContent(model.ScreenLibrary, ui.buildLibrary())
	for _, row := range ui.rows {
		record, found := ui.shell.LoadProgress(row.Resource().ID)
		row.SetSavedProgress(ui.savedText(record), found)
	}
}

// onViewerOpened loads the saved progress of the resource being viewed
func (ui *RootUI) onViewerOpened(title string) {
	if ui.viewerResource.GetDisplayTitle() != title {
		r, ok := ui.findResource(title)
		if !ok {
			r = model.Resource{ID: title, Title: title}
		}
		ui.viewerResource = r
	}

	if ui.viewerSlider == nil {
		return
	}
	record, found := ui.shell.LoadProgress(ui.viewerResource.ID)
	if !found {
		ui.resetViewerProgress()
		return
	}
	ui.viewerSlider.SetValue(float64(record.Progress))
	ui.viewerSaved.SetText(ui.savedText(record))
	ui.viewerClear.Enable()
}

func (ui *RootUI) saveViewerProgress(value int) {
	if ui.viewerResource.ID == "" {
		return
	}
	ui.shell.SaveProgress(ui.viewerResource.ID, value)
	if record, found := ui.shell.LoadProgress(ui.viewerResource.ID); found {
		ui.viewerSaved.SetText(ui.savedText(record))
	} else {
		ui.viewerSaved.SetText(ui.localization.Format(KeySavedProgress, value))
	}
	ui.viewerClear.Enable()
}

// clearViewerProgress forgets the saved progress of the open resource
func (ui *RootUI) clearViewerProgress() {
	if ui.viewerResource.ID == "" {
		return
	}
	ui.shell.ClearProgress(ui.viewerResource.ID)
	ui.resetViewerProgress()
}

func (ui *RootUI) resetViewerProgress() {
	ui.viewerSlider.SetValue(0)
	ui.viewerSaved.SetText("")
	ui.viewerClear.Disable()
}

// savedText describes a saved record, with its local save time when the
// timestamp parses
func (ui *RootUI) savedText(record model.ProgressRecord) string {
	at, err := record.Time()
	if err != nil {
		return ui.localization.Format(KeySavedProgress, record.Progress)
	}
	return ui.localization.Format(KeySavedProgressAt, record.Progress, at.Local().Format(SavedTimeLayout))
}

func (ui *RootUI) backButton() *widget.Button {
	btn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), ui.action("back", func() {
		ui.shell.Back()
	}))
	btn.Importance = widget.LowImportance
	return btn
}

func (ui *RootUI) libraryHeading() string {
	for _, c := range ui.cfg.Categories {
		if c.ID == ui.category {
			return c.Icon + " " + c.Title
		}
	}
	return IconLibrary + " " + ui.localization.GetText(KeyLibrary)
}

// guardResource wraps a resource handler with the shell's panic guard
func (ui *RootUI) guardResource(name string, fn func(model.Resource)) func(model.Resource) {
	return func(r model.Resource) {
		ui.shell.Guard(name, func() { fn(r) })
	}
}
