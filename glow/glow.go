// Package glow layers a radial hover gradient onto arbitrary canvas objects
// without touching their implementation. A decoration wraps the object,
// repaints its content unchanged and composes the glow on top, tracking
// pointer and press state through a transparent catcher stacked above the
// whole subtree.
package glow

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"fyne-decor/internal/logger"
)

// decorations maps every registered object, root or descendant, to the
// decoration owning it. Fyne mutates widgets and delivers events on the
// single driver goroutine, so the table needs no locking.
var decorations = map[fyne.CanvasObject]*Glow{}

// Glow decorates a canvas object with a pointer-following radial gradient.
type Glow struct {
	widget.BaseWidget

	content fyne.CanvasObject
	overlay *canvas.Raster
	state   *State
	id      string

	// repaint overrides the default overlay refresh when set, so tests
	// can observe how state changes coalesce into redraw requests.
	repaint func()
}

// Enable attaches a hover gradient to content and returns the decorated
// widget to place in the object tree. It is idempotent: calling it again on
// the same object, on any of its registered descendants, or on the returned
// decoration itself hands back the existing decoration untouched.
//
// stops carries one or two colors: a single accent fades to transparent, a
// pair fades accent to edge. Nil broadcasts to a white accent. opacity is a
// [0,1] multiplier, clamped.
func Enable(content fyne.CanvasObject, stops []color.Color, opacity float64) *Glow {
	if content == nil {
		return nil
	}
	if g, ok := content.(*Glow); ok {
		return g
	}
	if g, ok := decorations[content]; ok {
		return g
	}

	if len(stops) == 0 {
		stops = []color.Color{color.White}
	}
	if len(stops) > 2 {
		stops = stops[:2]
	}
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	g := &Glow{
		content: content,
		state: &State{
			Pointer: noPointer,
			Stops:   stops,
			Opacity: 255 * opacity,
		},
		id: uuid.NewString()[:8],
	}
	g.ExtendBaseWidget(g)
	registerTree(content, g)
	// The wrapper itself resolves too, so Lookup and Enable agree on it.
	decorations[g] = g
	logger.Debugf("glow %s: attached, %d stop(s), alpha ceiling %.0f", g.id, len(stops), g.state.Opacity)
	return g
}

// Lookup returns the decoration owning obj, resolving the wrapper itself and
// registered descendants to their root, or nil when obj is undecorated.
func Lookup(obj fyne.CanvasObject) *Glow {
	return decorations[obj]
}

// registerTree records obj and, depth-first, every container descendant as
// belonging to g. It runs once at attach time; children added to a container
// afterwards are not retroactively covered.
func registerTree(obj fyne.CanvasObject, g *Glow) {
	decorations[obj] = g
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			registerTree(child, g)
		}
	}
}

// SetStyle supplies the widget-local style text consulted for a
// border-radius declaration. It must be set before the first paint: the
// radius is memoized then and later edits are not picked up.
func (g *Glow) SetStyle(style string) {
	if g.state != nil {
		g.state.Style = style
	}
}

// State exposes the interaction record, primarily for tests and tooling.
func (g *Glow) State() *State {
	return g.state
}

// Content returns the wrapped object.
func (g *Glow) Content() fyne.CanvasObject {
	return g.content
}

// CreateRenderer implements fyne.Widget.
func (g *Glow) CreateRenderer() fyne.WidgetRenderer {
	g.overlay = canvas.NewRaster(g.drawOverlay)
	return &glowRenderer{
		glow:    g,
		catcher: newCatcher(g),
	}
}

// drawOverlay is the raster generator: it resolves the corner radius on
// first use and hands composition to the gradient. w and h are device
// pixels; the state's coordinates are points.
func (g *Glow) drawOverlay(w, h int) image.Image {
	st := g.state
	if st == nil || w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	if !st.RadiusSet {
		st.Radius = float32(extractRadius(st.Style, globalStyle))
		st.RadiusSet = true
	}
	scale := 1.0
	if sz := g.Size(); sz.Width > 0 {
		scale = float64(w) / float64(sz.Width)
	}
	return composeOverlay(st, w, h, scale)
}

// requestRepaint schedules a redraw of the overlay. The toolkit coalesces
// refreshes, so a burst of state changes between paints becomes one visual
// update.
func (g *Glow) requestRepaint() {
	if g.repaint != nil {
		g.repaint()
		return
	}
	if g.overlay != nil {
		g.overlay.Refresh()
		return
	}
	g.Refresh()
}

// dispose tears the decoration down: every side table entry owned by it is
// dropped and the state is released, so events already queued against the
// catcher become no-ops.
func (g *Glow) dispose() {
	if g.state == nil {
		return
	}
	for obj, owner := range decorations {
		if owner == g {
			delete(decorations, obj)
		}
	}
	g.state = nil
	logger.Debugf("glow %s: detached", g.id)
}

type glowRenderer struct {
	glow    *Glow
	catcher *catcher
}

func (r *glowRenderer) Layout(size fyne.Size) {
	r.glow.content.Resize(size)
	r.glow.overlay.Resize(size)
	r.catcher.Resize(size)
}

func (r *glowRenderer) MinSize() fyne.Size {
	return r.glow.content.MinSize()
}

func (r *glowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.glow.content, r.glow.overlay, r.catcher}
}

func (r *glowRenderer) Refresh() {
	r.glow.content.Refresh()
	r.glow.overlay.Refresh()
}

func (r *glowRenderer) Destroy() {
	r.glow.dispose()
}

// catcher is the transparent sibling stacked above the decorated subtree.
// Without it, interactive children would consume pointer traffic and the
// root would never observe hover or leave transitions. Because the driver
// resolves a click or hover to a single topmost object, the catcher has to
// relay what it receives: after mutating the root's state it hit-tests the
// wrapped subtree and hands the event to the topmost interactive child, so
// buttons still tap and entries still focus underneath the decoration. Once
// the decoration is torn down every callback is a guarded no-op.
type catcher struct {
	widget.BaseWidget

	glow *Glow

	// hovered is the child currently receiving relayed hover traffic,
	// needed to synthesize MouseOut when the pointer crosses children.
	hovered desktop.Hoverable
}

var (
	_ desktop.Hoverable      = (*catcher)(nil)
	_ desktop.Mouseable      = (*catcher)(nil)
	_ fyne.Tappable          = (*catcher)(nil)
	_ fyne.SecondaryTappable = (*catcher)(nil)
	_ fyne.DoubleTappable    = (*catcher)(nil)
)

func newCatcher(g *Glow) *catcher {
	c := &catcher{glow: g}
	c.ExtendBaseWidget(c)
	return c
}

func (c *catcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (c *catcher) state() *State {
	if c.glow == nil {
		return nil
	}
	return c.glow.state
}

// MouseIn implements desktop.Hoverable.
func (c *catcher) MouseIn(ev *desktop.MouseEvent) {
	st := c.state()
	if st == nil {
		return
	}
	st.Hovering = true
	st.Pointer = ev.Position
	c.glow.requestRepaint()
	c.relayHover(ev)
}

// MouseMoved implements desktop.Hoverable. Motion inside the bounds updates
// the pointer and repaints only when the position actually changed; motion
// reported outside drops the hover.
func (c *catcher) MouseMoved(ev *desktop.MouseEvent) {
	st := c.state()
	if st == nil {
		return
	}
	size := c.Size()
	inside := ev.Position.X >= 0 && ev.Position.Y >= 0 &&
		ev.Position.X < size.Width && ev.Position.Y < size.Height
	if inside {
		st.Hovering = true
		if st.Pointer != ev.Position {
			st.Pointer = ev.Position
			c.glow.requestRepaint()
		}
		c.relayHover(ev)
		return
	}
	if st.Hovering {
		st.Hovering = false
		c.glow.requestRepaint()
	}
	c.dropHover()
}

// MouseOut implements desktop.Hoverable.
func (c *catcher) MouseOut() {
	st := c.state()
	if st == nil {
		return
	}
	st.Hovering = false
	c.glow.requestRepaint()
	c.dropHover()
}

// MouseDown implements desktop.Mouseable. The press is recorded, then
// relayed: a focusable child under the pointer gains focus and a mouseable
// one receives the event in its own coordinates.
func (c *catcher) MouseDown(ev *desktop.MouseEvent) {
	st := c.state()
	if st == nil {
		return
	}
	st.Pressed = true
	c.glow.requestRepaint()

	target, pos := objectAt(c.glow.content, ev.Position, isInteractive)
	if target == nil {
		return
	}
	if f, ok := target.(fyne.Focusable); ok {
		if cv := fyne.CurrentApp().Driver().CanvasForObject(c); cv != nil {
			cv.Focus(f)
		}
	}
	if m, ok := target.(desktop.Mouseable); ok {
		m.MouseDown(relayMouse(ev, pos))
	}
}

// MouseUp implements desktop.Mouseable.
func (c *catcher) MouseUp(ev *desktop.MouseEvent) {
	st := c.state()
	if st == nil {
		return
	}
	st.Pressed = false
	c.glow.requestRepaint()

	if target, pos := objectAt(c.glow.content, ev.Position, isInteractive); target != nil {
		if m, ok := target.(desktop.Mouseable); ok {
			m.MouseUp(relayMouse(ev, pos))
		}
	}
}

// Tapped implements fyne.Tappable by delegating to the topmost tappable
// child under the event.
func (c *catcher) Tapped(ev *fyne.PointEvent) {
	if c.state() == nil {
		return
	}
	if target, pos := objectAt(c.glow.content, ev.Position, isInteractive); target != nil {
		if tp, ok := target.(fyne.Tappable); ok {
			tp.Tapped(relayPoint(ev, pos))
		}
	}
}

// TappedSecondary implements fyne.SecondaryTappable.
func (c *catcher) TappedSecondary(ev *fyne.PointEvent) {
	if c.state() == nil {
		return
	}
	if target, pos := objectAt(c.glow.content, ev.Position, isInteractive); target != nil {
		if tp, ok := target.(fyne.SecondaryTappable); ok {
			tp.TappedSecondary(relayPoint(ev, pos))
		}
	}
}

// DoubleTapped implements fyne.DoubleTappable.
func (c *catcher) DoubleTapped(ev *fyne.PointEvent) {
	if c.state() == nil {
		return
	}
	if target, pos := objectAt(c.glow.content, ev.Position, isInteractive); target != nil {
		if tp, ok := target.(fyne.DoubleTappable); ok {
			tp.DoubleTapped(relayPoint(ev, pos))
		}
	}
}

// relayHover keeps the hoverable child under the pointer in sync, turning
// the catcher's single hover stream into MouseIn/MouseMoved/MouseOut pairs
// on the children the pointer crosses.
func (c *catcher) relayHover(ev *desktop.MouseEvent) {
	target, pos := objectAt(c.glow.content, ev.Position, isHoverable)
	if target == nil {
		c.dropHover()
		return
	}
	h := target.(desktop.Hoverable)
	relayed := relayMouse(ev, pos)
	if h != c.hovered {
		c.dropHover()
		c.hovered = h
		h.MouseIn(relayed)
		return
	}
	h.MouseMoved(relayed)
}

func (c *catcher) dropHover() {
	if c.hovered != nil {
		c.hovered.MouseOut()
		c.hovered = nil
	}
}

// objectAt walks the subtree under obj looking for the topmost visible
// object at pos that satisfies match, descending into plain containers but
// stopping at widget boundaries the way the event driver does. The returned
// position is translated into the found object's coordinate space.
func objectAt(obj fyne.CanvasObject, pos fyne.Position, match func(fyne.CanvasObject) bool) (fyne.CanvasObject, fyne.Position) {
	if obj == nil || !obj.Visible() {
		return nil, pos
	}
	size := obj.Size()
	if pos.X < 0 || pos.Y < 0 || pos.X >= size.Width || pos.Y >= size.Height {
		return nil, pos
	}
	if cont, ok := obj.(*fyne.Container); ok {
		// Later siblings draw on top, so scan back to front.
		for i := len(cont.Objects) - 1; i >= 0; i-- {
			child := cont.Objects[i]
			if found, fpos := objectAt(child, pos.Subtract(child.Position()), match); found != nil {
				return found, fpos
			}
		}
		return nil, pos
	}
	if match(obj) {
		return obj, pos
	}
	return nil, pos
}

// isInteractive mirrors the set of interfaces the driver considers when
// resolving a click to an object.
func isInteractive(obj fyne.CanvasObject) bool {
	switch obj.(type) {
	case fyne.Tappable, fyne.SecondaryTappable, fyne.DoubleTappable, fyne.Focusable, desktop.Mouseable:
		return true
	}
	return false
}

func isHoverable(obj fyne.CanvasObject) bool {
	_, ok := obj.(desktop.Hoverable)
	return ok
}

func relayMouse(ev *desktop.MouseEvent, pos fyne.Position) *desktop.MouseEvent {
	relayed := *ev
	relayed.Position = pos
	return &relayed
}

func relayPoint(ev *fyne.PointEvent, pos fyne.Position) *fyne.PointEvent {
	relayed := *ev
	relayed.Position = pos
	return &relayed
}
