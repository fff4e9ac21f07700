package ranger

import (
	"fmt"
	"time"
)

// recordingCanvas logs every drawing call as a short string.
type recordingCanvas struct {
	w, h  int
	calls []string
	texts []string
	tris  [][3]Vec2
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordingCanvas) Clear(Color)      { c.calls = append(c.calls, "clear") }
func (c *recordingCanvas) SetPixel(x, y int, _ Color) {
	c.calls = append(c.calls, fmt.Sprintf("pixel %d,%d", x, y))
}
func (c *recordingCanvas) DrawLine(x1, y1, x2, y2 float64, _ Color) {
	c.calls = append(c.calls, fmt.Sprintf("line %.0f,%.0f %.0f,%.0f", x1, y1, x2, y2))
}
func (c *recordingCanvas) DrawRect(r Rect, filled bool, _ Color) {
	c.calls = append(c.calls, fmt.Sprintf("rect %.0f,%.0f %.0fx%.0f filled=%v", r.X, r.Y, r.Width, r.Height, filled))
}
func (c *recordingCanvas) FillTriangle(a, b, d Vec2, _ Color) {
	c.calls = append(c.calls, "triangle")
	c.tris = append(c.tris, [3]Vec2{a, b, d})
}
func (c *recordingCanvas) DrawText(s string, x, y float64, _ Color) {
	c.calls = append(c.calls, "text")
	c.texts = append(c.texts, s)
}

// fakePlatform serves queued events, one batch per poll.
type fakePlatform struct {
	canvas   *recordingCanvas
	batches  [][]InputEvent
	presents int
	err      error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{canvas: newRecordingCanvas(200, 100)}
}

func (p *fakePlatform) PollEvents() []InputEvent {
	if len(p.batches) == 0 {
		return nil
	}
	b := p.batches[0]
	p.batches = p.batches[1:]
	return b
}

func (p *fakePlatform) Canvas() Canvas { return p.canvas }

func (p *fakePlatform) Present() error {
	p.presents++
	return p.err
}

// fakeClock returns a fixed time that tests move forward explicitly.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func (c *fakeClock) Sleep(d time.Duration)   { c.slept = append(c.slept, d) }

// recorder collects lifecycle and draw calls in order.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

// instrument attaches draw, update, enter, and exit hooks that log to r.
func (r *recorder) instrument(n *Node) *Node {
	name := n.Name
	n.OnDraw = func(*RenderContext) { r.add("draw %s", name) }
	n.OnUpdate = func(float64) { r.add("update %s", name) }
	n.OnEnter = func(*SceneManager) { r.add("enter %s", name) }
	n.OnExit = func() { r.add("exit %s", name) }
	n.OnBeginExit = func() { r.add("begin-exit %s", name) }
	n.OnEndEnter = func() { r.add("end-enter %s", name) }
	return n
}

func (r *recorder) reset() {
	r.events = nil
}
