package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CoilTheme provides a custom theme for the application.
type CoilTheme struct{}

var _ fyne.Theme = (*CoilTheme)(nil)

func (t *CoilTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xB8, G: 0x73, B: 0x33, A: 0xFF} // Copper
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0x80} // Solder mask green
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xE0, G: 0x9A, B: 0x3E, A: 0x80}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *CoilTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CoilTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CoilTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInlineIcon:
		return 18
	default:
		return theme.DefaultTheme().Size(name)
	}
}
