// Package colorutil provides the shared color math used by the glow overlay
// and the icon color resolver.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ToNRGBA converts any color.Color to non-premultiplied 8-bit channels.
func ToNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.Color, alpha uint8) color.NRGBA {
	n := ToNRGBA(c)
	n.A = alpha
	return n
}

// Blend linearly interpolates between two colors (0.0 = c1, 1.0 = c2),
// channel-wise including alpha.
func Blend(c1, c2 color.Color, weight float64) color.NRGBA {
	if weight <= 0 {
		return ToNRGBA(c1)
	}
	if weight >= 1 {
		return ToNRGBA(c2)
	}
	a := ToNRGBA(c1)
	b := ToNRGBA(c2)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*(1-weight) + float64(y)*weight + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// ParseHex parses "#rgb", "#rrggbb" and "#rrggbbaa" notations.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("hex color %q: missing '#' prefix", s)
	}

	alpha := uint8(255)
	rgb := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("hex color %q: bad alpha: %w", s, err)
		}
		alpha = uint8(a)
		rgb = s[:7]
	}

	c, err := colorful.Hex(rgb)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
