package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBack     = "←"
	IconPlay     = "▶"
	IconDownload = "⬇"
	IconSend     = "📶"
	IconLibrary  = "📚"
	IconShare    = "📱"
	IconClose    = "×"
	IconSettings = "⚙"
	IconLogo     = "🌩️"
)

// SavedTimeLayout formats the time a progress record was saved
const SavedTimeLayout = "02/01 15:04"

// Layout sizing
const (
	WindowWidth  float32 = 390
	WindowHeight float32 = 780

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	CardMinWidth  float32 = 150
	CardMinHeight float32 = 96

	CategoryColumns = 2
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 90
	ToastMargin   float32 = 16
	ToastAutoHide         = 5 * time.Second
)

// Viewer progress slider
const (
	ViewerProgressStep = 5
)
