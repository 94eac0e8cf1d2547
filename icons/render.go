package icons

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Kind selects the result shape of a render: a frozen raster snapshot or a
// reusable handle that re-resolves its color on every paint.
type Kind int

const (
	KindImage Kind = iota
	KindHandle
)

// ErrInvalidKind is returned when a Request names neither result kind.
var ErrInvalidKind = errors.New("invalid icon result kind")

const defaultSize = 50

// Request describes one icon render. Zero values mean: outline set, default
// 50x50 size, palette color for ModeNormal, no rotation, raster result.
type Request struct {
	Name     string
	Filled   bool
	Width    int
	Height   int
	Color    ColorSpec
	Rotation int
	Mode     Mode
	Kind     Kind

	// Palette overrides the theme-backed palette, mainly for tests and
	// headless tooling.
	Palette Palette
}

// Result carries exactly one of Handle or Image, matching the requested Kind.
// The caller owns it; the engine keeps no reference.
type Result struct {
	Handle fyne.Resource
	Image  *image.NRGBA
}

// Render resolves the icon markup, applies rotation and color, and produces
// the requested result kind. Unknown names fail with ErrNotFound; an
// unrecognized Kind fails with ErrInvalidKind.
func Render(req Request) (Result, error) {
	src, err := lookup(req.Name, req.Filled)
	if err != nil {
		return Result{}, err
	}

	doc := newSVG(src)
	if req.Rotation != 0 {
		doc.Rotate(req.Rotation)
	}

	pal := req.Palette
	if pal == nil {
		pal = ThemePalette()
	}

	switch req.Kind {
	case KindHandle:
		return Result{Handle: &Resource{
			name:    req.Name,
			doc:     doc,
			spec:    req.Color,
			mode:    req.Mode,
			palette: pal,
		}}, nil
	case KindImage:
		w, h := req.Width, req.Height
		if w <= 0 || h <= 0 {
			w, h = defaultSize, defaultSize
		}
		fill := resolveColor(req.Color, req.Mode, pal)
		img, err := rasterize(doc.Render(fill), w, h)
		if err != nil {
			return Result{}, fmt.Errorf("rasterize %q: %w", req.Name, err)
		}
		return Result{Image: img}, nil
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidKind, req.Kind)
	}
}

// Resource is a mode-reactive icon handle implementing fyne.Resource.
// Content re-resolves the fill color against the palette on every call, so
// theme changes show up the next time the toolkit reads the resource. A
// raster result is by contrast a frozen snapshot of one mode.
type Resource struct {
	name    string
	doc     *svgDoc
	spec    ColorSpec
	mode    Mode
	palette Palette
}

var _ fyne.Resource = (*Resource)(nil)

func (r *Resource) Name() string {
	return r.name + ".svg"
}

func (r *Resource) Content() []byte {
	fill := resolveColor(r.spec, r.mode, r.palette)
	return []byte(r.doc.Render(fill))
}

// InMode returns a handle sharing this one's markup but resolving its color
// for a different paint mode.
func (r *Resource) InMode(mode Mode) *Resource {
	derived := *r
	derived.mode = mode
	return &derived
}

// rasterize renders icon markup into a pixel buffer of the given size.
func rasterize(src string, w, h int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
