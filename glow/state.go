package glow

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// noPointer marks a decoration whose pointer never entered.
var noPointer = fyne.Position{X: -1, Y: -1}

// State is the per-decoration interaction record. It is owned exclusively by
// the decoration it belongs to and mutated only on the toolkit's event
// dispatch goroutine.
type State struct {
	Hovering bool
	Pressed  bool

	// Pointer is the last local pointer position, noPointer before the
	// first enter.
	Pointer fyne.Position

	// Stops holds one or two accent colors: gradient center, then edge.
	// A missing edge stop renders as the center color faded to alpha 0.
	Stops []color.Color

	// Opacity is the alpha ceiling in [0,255], precomputed at attach time
	// from the caller's [0,1] multiplier.
	Opacity float64

	// Radius is the corner radius memoized on first paint; RadiusSet
	// distinguishes "computed as zero" from "not yet computed".
	Radius    float32
	RadiusSet bool

	// Style is the widget-local style text supplied by the host.
	Style string
}
