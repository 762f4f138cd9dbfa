package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific layout helpers
type MobileUI struct{}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI() *MobileUI {
	return &MobileUI{}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CategoryColumns returns how many category cards fit in a row
func (m *MobileUI) CategoryColumns() int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return CategoryColumns
	}
	return CategoryColumns * 2
}

// CreateAdaptiveContainer creates a grid that adapts to orientation
func (m *MobileUI) CreateAdaptiveContainer(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewGridWithColumns(m.CategoryColumns(), objects...)
}
