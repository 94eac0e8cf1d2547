package icons

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// svgDoc is raw icon markup plus pending transforms. Transforms are applied
// textually at render time by wrapping the inner markup in group elements, so
// the source string stays untouched and shareable.
type svgDoc struct {
	source   string
	rotation int
}

func newSVG(source string) *svgDoc {
	return &svgDoc{source: source}
}

func (s *svgDoc) Rotate(degrees int) {
	s.rotation = degrees % 360
}

// Render emits the markup with the rotation transform applied to the path
// data and the fill directive layered outside it.
func (s *svgDoc) Render(fill color.NRGBA) string {
	open, body, closing, ok := s.split()
	if !ok {
		return s.source
	}

	if s.rotation != 0 {
		cx, cy := s.center(open)
		body = fmt.Sprintf(`<g transform="rotate(%d %s %s)">%s</g>`,
			s.rotation, trimFloat(cx), trimFloat(cy), body)
	}

	fillAttr := fmt.Sprintf(`fill="#%02x%02x%02x"`, fill.R, fill.G, fill.B)
	if fill.A < 255 {
		fillAttr += fmt.Sprintf(` fill-opacity="%s"`, trimFloat(float64(fill.A)/255))
	}
	return open + "<g " + fillAttr + ">" + body + "</g>" + closing
}

// split separates the markup into the opening <svg ...> tag, the inner
// content and the closing tag. ok is false when the markup has no
// recognizable svg element.
func (s *svgDoc) split() (open, body, closing string, ok bool) {
	start := strings.Index(s.source, "<svg")
	if start < 0 {
		return "", "", "", false
	}
	tagEnd := strings.Index(s.source[start:], ">")
	if tagEnd < 0 {
		return "", "", "", false
	}
	tagEnd += start + 1

	end := strings.LastIndex(s.source, "</svg>")
	if end < tagEnd {
		return "", "", "", false
	}
	return s.source[:tagEnd], s.source[tagEnd:end], s.source[end:], true
}

// center derives the rotation pivot from the viewBox of the opening tag.
// Material icons use "0 0 24 24"; anything unparsable pivots at (12, 12).
func (s *svgDoc) center(openTag string) (cx, cy float64) {
	cx, cy = 12, 12
	idx := strings.Index(openTag, `viewBox="`)
	if idx < 0 {
		return cx, cy
	}
	rest := openTag[idx+len(`viewBox="`):]
	quote := strings.Index(rest, `"`)
	if quote < 0 {
		return cx, cy
	}
	fields := strings.Fields(rest[:quote])
	if len(fields) != 4 {
		return cx, cy
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return cx, cy
		}
		vals[i] = v
	}
	return vals[0] + vals[2]/2, vals[1] + vals[3]/2
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
