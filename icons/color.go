package icons

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"fyne-decor/internal/colorutil"
	"fyne-decor/internal/logger"
)

// Mode selects which palette color an unspecified icon color resolves to.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDisabled
)

// ColorSpec is the closed set of accepted icon color shapes. A nil spec means
// "use the palette color for the requested mode".
type ColorSpec interface {
	colorSpec()
}

// Hex is a "#rgb", "#rrggbb" or "#rrggbbaa" string.
type Hex string

func (Hex) colorSpec() {}

// RGBA carries explicit channel values or a converted native color.
type RGBA color.NRGBA

func (RGBA) colorSpec() {}

// PerVariant keys a color by appearance variant. Resolving it correctly needs
// a live appearance signal from the theming layer, which is outside this
// package; it currently resolves to the palette foreground color.
type PerVariant struct {
	Dark  string
	Light string
}

func (PerVariant) colorSpec() {}

// Palette exposes the two host colors the resolver reads.
type Palette interface {
	Foreground() color.Color
	Disabled() color.Color
}

type themePalette struct{}

func (themePalette) Foreground() color.Color {
	return fyne.CurrentApp().Settings().Theme().Color(
		theme.ColorNameForeground, fyne.CurrentApp().Settings().ThemeVariant())
}

func (themePalette) Disabled() color.Color {
	return fyne.CurrentApp().Settings().Theme().Color(
		theme.ColorNameDisabled, fyne.CurrentApp().Settings().ThemeVariant())
}

// ThemePalette returns a Palette backed by the active fyne theme.
func ThemePalette() Palette { return themePalette{} }

var fallbackBlack = color.NRGBA{A: 255}

// resolveColor turns a spec, mode and palette into one concrete color. It
// never fails: unparseable or unsupported specs degrade to opaque black,
// logged at most, so a bad color can not abort a render.
func resolveColor(spec ColorSpec, mode Mode, pal Palette) color.NRGBA {
	switch s := spec.(type) {
	case nil:
		if mode == ModeDisabled {
			return colorutil.ToNRGBA(pal.Disabled())
		}
		return colorutil.ToNRGBA(pal.Foreground())
	case Hex:
		c, err := colorutil.ParseHex(string(s))
		if err != nil {
			logger.Warnf("icons: %v, falling back to black", err)
			return fallbackBlack
		}
		return c
	case RGBA:
		return color.NRGBA(s)
	case PerVariant:
		logger.Debugf("icons: per-variant color (%q/%q) resolved to palette foreground", s.Dark, s.Light)
		return colorutil.ToNRGBA(pal.Foreground())
	default:
		logger.Warnf("icons: unsupported color spec %T, falling back to black", spec)
		return fallbackBlack
	}
}
