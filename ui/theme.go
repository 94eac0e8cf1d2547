package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GalleryTheme styles the demo window. Everything not overridden delegates
// to the default theme so dark/light variants keep working.
type GalleryTheme struct{}

var _ fyne.Theme = (*GalleryTheme)(nil)

func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 92, G: 58, B: 88, A: 255} // plum
	case theme.ColorNameButton:
		return color.NRGBA{R: 71, G: 45, B: 68, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameText:
		return 13
	}
	return theme.DefaultTheme().Size(name)
}
