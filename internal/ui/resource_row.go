package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/catatumbo/nube-catatumbo/internal/model"
)

// ResourceRow is one library entry with its actions
type ResourceRow struct {
	resource model.Resource

	container   *fyne.Container
	titleLabel  *widget.Label
	metaLabel   *widget.Label
	savedLabel  *widget.Label
	viewBtn     *MobileButton
	downloadBtn *MobileButton
	sendBtn     *MobileButton

	// Callbacks
	onView     func(model.Resource)
	onDownload func(model.Resource)
	onSend     func(model.Resource)
}

// NewResourceRow creates a row for resource
func NewResourceRow(resource model.Resource, loc *Localization) *ResourceRow {
	row := &ResourceRow{resource: resource}

	row.titleLabel = widget.NewLabel(resource.GetDisplayTitle())
	row.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	row.titleLabel.Wrapping = fyne.TextWrapWord

	row.metaLabel = widget.NewLabel(resource.Meta())
	row.metaLabel.Importance = widget.LowImportance

	row.savedLabel = widget.NewLabel("")
	row.savedLabel.Importance = widget.SuccessImportance
	row.savedLabel.Hide()

	row.viewBtn = NewMobileButton(IconPlay+" "+loc.GetText(KeyView), func() {
		if row.onView != nil {
			row.onView(row.resource)
		}
	})
	row.viewBtn.Importance = widget.HighImportance

	row.downloadBtn = NewMobileButton(IconDownload+" "+loc.GetText(KeyDownload), func() {
		if row.onDownload != nil {
			row.onDownload(row.resource)
		}
	})

	row.sendBtn = NewMobileButton(IconSend+" "+loc.GetText(KeySend), func() {
		if row.onSend != nil {
			row.onSend(row.resource)
		}
	})
	row.sendBtn.Importance = widget.LowImportance

	row.container = container.NewVBox(
		row.titleLabel,
		row.metaLabel,
		row.savedLabel,
		container.NewGridWithColumns(3, row.viewBtn, row.downloadBtn, row.sendBtn),
		widget.NewSeparator(),
	)

	return row
}

// SetCallbacks sets the action handlers
func (r *ResourceRow) SetCallbacks(onView, onDownload, onSend func(model.Resource)) {
	r.onView = onView
	r.onDownload = onDownload
	r.onSend = onSend
}

// SetSavedProgress shows the saved reading progress; hidden when not found
func (r *ResourceRow) SetSavedProgress(text string, found bool) {
	if !found {
		r.savedLabel.Hide()
		return
	}
	r.savedLabel.SetText(text)
	r.savedLabel.Show()
}

// Resource returns the row's resource
func (r *ResourceRow) Resource() model.Resource {
	return r.resource
}

// Container returns the row's container
func (r *ResourceRow) Container() *fyne.Container {
	return r.container
}
