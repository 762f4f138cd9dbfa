package model

// ScreenID identifies one full-panel view of the shell
type ScreenID string

const (
	ScreenHome        ScreenID = "home"
	ScreenLibrary     ScreenID = "library"
	ScreenShare       ScreenID = "share"
	ScreenDownloading ScreenID = "downloading"
	ScreenViewer      ScreenID = "viewer"
)

// String returns the string representation of ScreenID
func (id ScreenID) String() string {
	return string(id)
}

// IsHome reports whether the screen is the designated home screen
func (id ScreenID) IsHome() bool {
	return id == ScreenHome
}

// AllScreens returns the fixed set of screens in display order
func AllScreens() []ScreenID {
	return []ScreenID{ScreenHome, ScreenLibrary, ScreenShare, ScreenDownloading, ScreenViewer}
}

// Screen is a pre-declared view; only Active ever changes
type Screen struct {
	ID     ScreenID
	Active bool
}
