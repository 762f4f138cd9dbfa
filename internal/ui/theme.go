package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Catatumbo palette
var (
	ColorSelvaVerde       = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	ColorNaranjaAtardecer = color.RGBA{R: 239, G: 108, B: 0, A: 255}
	ColorCieloAzul        = color.RGBA{R: 66, G: 165, B: 245, A: 255}
	ColorTierra           = color.RGBA{R: 121, G: 85, B: 72, A: 255}
)

// CatatumboTheme is a touch-friendly theme using the regional palette
type CatatumboTheme struct{}

// NewCatatumboTheme creates the app theme
func NewCatatumboTheme() fyne.Theme {
	return &CatatumboTheme{}
}

// Color returns theme colors
func (t *CatatumboTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorSelvaVerde
	case theme.ColorNameFocus:
		return ColorCieloAzul
	case theme.ColorNameSuccess:
		return ColorSelvaVerde
	case theme.ColorNameWarning:
		return ColorNaranjaAtardecer
	case theme.ColorNameHyperlink:
		return ColorTierra
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 20, G: 24, B: 20, A: 255}
		}
		return color.RGBA{R: 248, G: 246, B: 240, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CatatumboTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CatatumboTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, slightly larger than default for touch
func (t *CatatumboTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 10
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
