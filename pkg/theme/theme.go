package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GaugeTheme is the dark variant of the default theme with the window
// background matching the gauge faces.
type GaugeTheme struct{}

var _ fyne.Theme = GaugeTheme{}

var (
	Background = color.RGBA{R: 23, G: 23, B: 24, A: 255}
	Hover      = color.RGBA{R: 0x21, G: 0x99, B: 0xF3, A: 255}
)

func (GaugeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return Background
	case theme.ColorNameHover:
		return Hover
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (GaugeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (GaugeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (GaugeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameScrollBarSmall:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInputRadius:
		return 5
	default:
		return theme.DefaultTheme().Size(name)
	}
}
