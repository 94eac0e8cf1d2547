package glow

import (
	"image"
	"math"

	"fyne-decor/internal/colorutil"
)

// Gradient radius multipliers. A press concentrates the glow so it reads as
// heavier than a plain hover.
const (
	hoverRadiusScale   = 0.9
	pressedRadiusScale = 0.6
	hoverAlphaScale    = 0.6
)

// composeOverlay renders the radial hover gradient into a pixel buffer of
// w x h, clipped to the decoration's (possibly rounded) rectangle inset one
// pixel on the trailing edges. scale converts the state's point coordinates
// to pixels. When the state is not hovering, or the pointer never entered,
// the overlay is fully transparent.
func composeOverlay(st *State, w, h int, scale float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if st == nil || !st.Hovering || st.Pointer == noPointer || w < 2 || h < 2 {
		return img
	}

	radiusScale := hoverRadiusScale
	alpha := st.Opacity * hoverAlphaScale
	if st.Pressed {
		radiusScale = pressedRadiusScale
		alpha = st.Opacity
	}
	gradRadius := float64(max(w, h)) * radiusScale

	center := colorutil.WithAlpha(st.Stops[0], clampAlpha(alpha))
	edge := colorutil.WithAlpha(st.Stops[0], 0)
	if len(st.Stops) > 1 {
		edge = colorutil.ToNRGBA(st.Stops[1])
	}

	px := float64(st.Pointer.X) * scale
	py := float64(st.Pointer.Y) * scale
	cw := float64(w - 1)
	ch := float64(h - 1)
	corner := float64(st.Radius) * scale

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			cov := clipCoverage(float64(x)+0.5, float64(y)+0.5, cw, ch, corner)
			if cov <= 0 {
				continue
			}
			t := math.Hypot(float64(x)-px, float64(y)-py) / gradRadius
			if t > 1 {
				t = 1
			}
			c := colorutil.Blend(center, edge, t)
			if cov < 1 {
				c.A = uint8(float64(c.A)*cov + 0.5)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// clipCoverage returns the coverage of the clip shape at a point: 1 inside,
// 0 outside, and a fractional value across a one pixel band around rounded
// corners so the boundary stays antialiased.
func clipCoverage(x, y, cw, ch, corner float64) float64 {
	if x < 0 || y < 0 || x >= cw || y >= ch {
		return 0
	}
	if corner <= 0 {
		return 1
	}
	maxCorner := math.Min(cw, ch) / 2
	if corner > maxCorner {
		corner = maxCorner
	}

	// Distance from the nearest corner circle center, when inside a corner
	// square.
	var dx, dy float64
	switch {
	case x < corner && y < corner:
		dx, dy = corner-x, corner-y
	case x > cw-corner && y < corner:
		dx, dy = x-(cw-corner), corner-y
	case x < corner && y > ch-corner:
		dx, dy = corner-x, y-(ch-corner)
	case x > cw-corner && y > ch-corner:
		dx, dy = x-(cw-corner), y-(ch-corner)
	default:
		return 1
	}

	d := math.Hypot(dx, dy)
	cov := corner + 0.5 - d
	if cov < 0 {
		return 0
	}
	if cov > 1 {
		return 1
	}
	return cov
}

func clampAlpha(a float64) uint8 {
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a + 0.5)
}
