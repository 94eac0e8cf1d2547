package glow

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAccent = color.NRGBA{R: 255, A: 255}

func newTestGlow(t *testing.T, content fyne.CanvasObject) (*Glow, *catcher) {
	t.Helper()
	test.NewApp()

	g := Enable(content, []color.Color{testAccent}, 1.0)
	require.NotNil(t, g)

	r, ok := g.CreateRenderer().(*glowRenderer)
	require.True(t, ok)
	r.Layout(fyne.NewSize(100, 50))

	t.Cleanup(g.dispose)
	return g, r.catcher
}

func moveEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestEnableIsIdempotent(t *testing.T) {
	test.NewApp()

	rect := canvas.NewRectangle(color.Black)
	g := Enable(rect, nil, 1.0)
	require.NotNil(t, g)
	t.Cleanup(g.dispose)

	assert.Same(t, g, Enable(rect, []color.Color{testAccent}, 0.2))
	assert.Same(t, g, Enable(g, nil, 0.5), "enabling the decoration itself is a no-op")
	assert.Same(t, g, Lookup(g), "the wrapper resolves to its own decoration")

	// The second call must not have touched the original configuration.
	assert.Equal(t, 255.0, g.State().Opacity)
	assert.Len(t, g.State().Stops, 1)
}

func TestEnableCoversDescendants(t *testing.T) {
	test.NewApp()

	child := canvas.NewRectangle(color.Black)
	inner := container.NewVBox(child)
	root := container.NewStack(inner)

	g := Enable(root, []color.Color{testAccent}, 1.0)
	require.NotNil(t, g)
	t.Cleanup(g.dispose)

	assert.Same(t, g, Lookup(inner))
	assert.Same(t, g, Lookup(child))
	assert.Same(t, g, Enable(child, nil, 0.1), "enabling a covered child resolves to the root decoration")

	// Children added after attachment are not covered.
	late := canvas.NewRectangle(color.White)
	inner.Add(late)
	assert.Nil(t, Lookup(late))
}

func TestEnableNormalizesArguments(t *testing.T) {
	test.NewApp()

	assert.Nil(t, Enable(nil, nil, 1.0))

	g := Enable(canvas.NewRectangle(color.Black), nil, 2.5)
	t.Cleanup(g.dispose)
	require.Len(t, g.State().Stops, 1)
	assert.Equal(t, 255.0, g.State().Opacity, "opacity multiplier is clamped to [0,1]")

	stops := []color.Color{testAccent, color.White, color.Black}
	g2 := Enable(canvas.NewRectangle(color.Black), stops, -1)
	t.Cleanup(g2.dispose)
	assert.Len(t, g2.State().Stops, 2, "at most two stops are kept")
	assert.Equal(t, 0.0, g2.State().Opacity)
}

func TestPointerStateMachine(t *testing.T) {
	g, c := newTestGlow(t, canvas.NewRectangle(color.Black))
	st := g.State()

	assert.False(t, st.Hovering)
	assert.Equal(t, noPointer, st.Pointer)

	c.MouseIn(moveEvent(10, 10))
	assert.True(t, st.Hovering)
	assert.Equal(t, fyne.NewPos(10, 10), st.Pointer)

	c.MouseMoved(moveEvent(30, 20))
	assert.Equal(t, fyne.NewPos(30, 20), st.Pointer)

	// Motion outside the bounds drops the hover but keeps the position.
	c.MouseMoved(moveEvent(500, 500))
	assert.False(t, st.Hovering)
	assert.Equal(t, fyne.NewPos(30, 20), st.Pointer)

	c.MouseMoved(moveEvent(5, 5))
	assert.True(t, st.Hovering)

	c.MouseDown(moveEvent(5, 5))
	assert.True(t, st.Pressed)
	c.MouseUp(moveEvent(5, 5))
	assert.False(t, st.Pressed)

	c.MouseOut()
	assert.False(t, st.Hovering)
}

func TestDisposedDecorationIgnoresEvents(t *testing.T) {
	rect := canvas.NewRectangle(color.Black)
	g, c := newTestGlow(t, rect)

	g.dispose()
	assert.Nil(t, g.State())
	assert.Nil(t, Lookup(rect))

	// Queued events arriving after teardown must be harmless no-ops.
	assert.NotPanics(t, func() {
		c.MouseIn(moveEvent(1, 1))
		c.MouseMoved(moveEvent(2, 2))
		c.MouseDown(moveEvent(2, 2))
		c.MouseUp(moveEvent(2, 2))
		c.Tapped(&fyne.PointEvent{Position: fyne.NewPos(2, 2)})
		c.MouseOut()
	})

	// A second dispose is equally harmless.
	assert.NotPanics(t, g.dispose)
}

func TestRepaintCoalescesPointerNoise(t *testing.T) {
	g, c := newTestGlow(t, canvas.NewRectangle(color.Black))

	repaints := 0
	g.repaint = func() { repaints++ }

	c.MouseIn(moveEvent(10, 10))
	assert.Equal(t, 1, repaints)

	// Repeated reports of the same position must not trigger redraws.
	c.MouseMoved(moveEvent(10, 10))
	c.MouseMoved(moveEvent(10, 10))
	assert.Equal(t, 1, repaints)

	c.MouseMoved(moveEvent(11, 10))
	assert.Equal(t, 2, repaints, "a position change repaints exactly once")

	// Leaving repaints once; further motion outside is silent.
	c.MouseMoved(moveEvent(500, 500))
	c.MouseMoved(moveEvent(600, 600))
	assert.Equal(t, 3, repaints)

	c.MouseDown(moveEvent(11, 10))
	c.MouseUp(moveEvent(11, 10))
	assert.Equal(t, 5, repaints)
}

func TestTapReachesDecoratedButton(t *testing.T) {
	test.NewApp()

	tapped := false
	btn := widget.NewButton("run", func() { tapped = true })
	g := Enable(container.NewStack(btn), []color.Color{testAccent}, 1.0)
	require.NotNil(t, g)
	t.Cleanup(g.dispose)

	r, ok := g.CreateRenderer().(*glowRenderer)
	require.True(t, ok)
	r.Layout(fyne.NewSize(120, 40))

	r.catcher.Tapped(&fyne.PointEvent{Position: fyne.NewPos(60, 20)})
	assert.True(t, tapped, "the catcher relays taps to the wrapped button")

	// A tap outside the subtree reaches nothing.
	tapped = false
	r.catcher.Tapped(&fyne.PointEvent{Position: fyne.NewPos(-5, 20)})
	assert.False(t, tapped)
}

// childRecorder is an interactive widget counting the events relayed to it.
type childRecorder struct {
	widget.BaseWidget

	taps, downs, ups int
	ins, moves, outs int
	lastDown         fyne.Position
}

func newChildRecorder() *childRecorder {
	r := &childRecorder{}
	r.ExtendBaseWidget(r)
	return r
}

func (r *childRecorder) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (r *childRecorder) Tapped(*fyne.PointEvent) { r.taps++ }

func (r *childRecorder) MouseDown(ev *desktop.MouseEvent) {
	r.downs++
	r.lastDown = ev.Position
}

func (r *childRecorder) MouseUp(*desktop.MouseEvent)    { r.ups++ }
func (r *childRecorder) MouseIn(*desktop.MouseEvent)    { r.ins++ }
func (r *childRecorder) MouseMoved(*desktop.MouseEvent) { r.moves++ }
func (r *childRecorder) MouseOut()                      { r.outs++ }

func TestPressAndHoverRelayedInChildCoordinates(t *testing.T) {
	test.NewApp()

	left := newChildRecorder()
	right := newChildRecorder()
	content := container.NewWithoutLayout(left, right)
	left.Resize(fyne.NewSize(50, 40))
	right.Resize(fyne.NewSize(50, 40))
	right.Move(fyne.NewPos(50, 0))

	g := Enable(content, []color.Color{testAccent}, 1.0)
	require.NotNil(t, g)
	t.Cleanup(g.dispose)

	r, ok := g.CreateRenderer().(*glowRenderer)
	require.True(t, ok)
	r.Layout(fyne.NewSize(100, 40))
	c := r.catcher

	c.MouseIn(moveEvent(10, 10))
	assert.Equal(t, 1, left.ins)
	c.MouseMoved(moveEvent(20, 10))
	assert.Equal(t, 1, left.moves)

	// Crossing into the sibling closes one hover and opens the other.
	c.MouseMoved(moveEvent(70, 10))
	assert.Equal(t, 1, left.outs)
	assert.Equal(t, 1, right.ins)

	c.MouseDown(moveEvent(70, 10))
	require.Equal(t, 1, right.downs)
	assert.Equal(t, fyne.NewPos(20, 10), right.lastDown, "events arrive in the child's coordinate space")
	c.MouseUp(moveEvent(70, 10))
	assert.Equal(t, 1, right.ups)
	assert.Zero(t, left.downs)

	// Leaving the decoration closes out the hovered child.
	c.MouseOut()
	assert.Equal(t, 1, right.outs)
}

func TestRadiusIsMemoizedAtFirstPaint(t *testing.T) {
	g, c := newTestGlow(t, canvas.NewRectangle(color.Black))
	g.SetStyle("Card { border-radius: 4; } Card:hover { border-radius: 7 }")

	c.MouseIn(moveEvent(50, 25))
	g.drawOverlay(100, 50)
	assert.Equal(t, float32(7), g.State().Radius, "last declaration wins")

	// A style change after the first paint does not restyle the overlay.
	g.SetStyle("border-radius: 99")
	g.drawOverlay(100, 50)
	assert.Equal(t, float32(7), g.State().Radius)
}

func TestRadiusFallsBackToGlobalStyle(t *testing.T) {
	SetGlobalStyle("QWidget { border-radius: 5 }")
	t.Cleanup(func() { SetGlobalStyle("") })

	g, c := newTestGlow(t, canvas.NewRectangle(color.Black))
	c.MouseIn(moveEvent(50, 25))
	g.drawOverlay(100, 50)
	assert.Equal(t, float32(5), g.State().Radius)
}
