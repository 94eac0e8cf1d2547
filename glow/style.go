package glow

import (
	"regexp"
	"strconv"
)

// globalStyle is the application-wide style text supplied by the host
// environment. The decoration only ever reads it.
var globalStyle string

// SetGlobalStyle replaces the application-wide style text consulted when a
// widget's own style declares no corner radius. Decorations memoize their
// radius on first paint, so later changes do not restyle existing overlays.
func SetGlobalStyle(style string) {
	globalStyle = style
}

var borderRadiusPattern = regexp.MustCompile(`border-radius\s*:\s*([0-9]+)`)

// extractRadius scans the sources in order and returns the radius from the
// first source containing any border-radius declaration. Within a source the
// last declaration wins, matching cascading-style precedence where later
// rules override earlier ones. No match anywhere means radius 0.
func extractRadius(sources ...string) int {
	for _, src := range sources {
		matches := borderRadiusPattern.FindAllStringSubmatch(src, -1)
		if len(matches) == 0 {
			continue
		}
		n, err := strconv.Atoi(matches[len(matches)-1][1])
		if err != nil {
			continue
		}
		return n
	}
	return 0
}
