package ranger

import "fmt"

// RenderContext is the shared state threaded through a Visit: the current
// transform, the saved-transform stack, the draw color, and the canvas.
// Drawing calls take coordinates in the current node's space and transform
// them to device pixels before reaching the canvas. A nil canvas makes all
// drawing calls no-ops, which keeps traversal usable without a backend.
type RenderContext struct {
	canvas  Canvas
	view    *ViewSpace
	current AffineTransform
	stack   []AffineTransform
	color   Color

	// kids holds the child snapshots of every container being visited,
	// innermost last; marks records where each snapshot starts.
	kids  []*Node
	marks []int
}

// NewRenderContext creates a context drawing to canvas through view. Either
// may be nil.
func NewRenderContext(canvas Canvas, view *ViewSpace) *RenderContext {
	c := &RenderContext{
		canvas: canvas,
		view:   view,
		stack:  make([]AffineTransform, 0, 32),
		color:  ColorWhite,
	}
	c.Reset()
	return c
}

// Reset drops any saved state and sets the current transform to the view.
func (c *RenderContext) Reset() {
	c.stack = c.stack[:0]
	c.current = c.View()
}

// View returns the view-to-device matrix, or the identity without a view.
func (c *RenderContext) View() AffineTransform {
	if c.view == nil {
		return IdentityTransform
	}
	return c.view.Transform()
}

// ViewSpace returns the context's view space, which may be nil.
func (c *RenderContext) ViewSpace() *ViewSpace {
	return c.view
}

// Canvas returns the drawing surface, which may be nil.
func (c *RenderContext) Canvas() Canvas {
	return c.canvas
}

// Save pushes the current transform.
func (c *RenderContext) Save() {
	c.stack = append(c.stack, c.current)
}

// Restore pops the transform pushed by the matching Save.
// Panics on an unbalanced Restore.
func (c *RenderContext) Restore() {
	if len(c.stack) == 0 {
		panic("ranger: RenderContext.Restore without matching Save")
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// pushChildren snapshots children for one container's visit. The snapshot
// stays valid until the matching popChildren even if the tree changes.
func (c *RenderContext) pushChildren(children []*Node) []*Node {
	mark := len(c.kids)
	c.marks = append(c.marks, mark)
	c.kids = append(c.kids, children...)
	return c.kids[mark:len(c.kids):len(c.kids)]
}

func (c *RenderContext) popChildren() {
	mark := c.marks[len(c.marks)-1]
	c.marks = c.marks[:len(c.marks)-1]
	clear(c.kids[mark:])
	c.kids = c.kids[:mark]
}

// Depth returns the number of outstanding Saves.
func (c *RenderContext) Depth() int {
	return len(c.stack)
}

// Apply post-multiplies t onto the current transform.
func (c *RenderContext) Apply(t AffineTransform) {
	c.current = c.current.Multiply(t)
}

// Current returns the current node-to-device transform.
func (c *RenderContext) Current() AffineTransform {
	return c.current
}

// SetDrawColor sets the color used by subsequent drawing calls.
func (c *RenderContext) SetDrawColor(col Color) {
	c.color = col
}

// DrawColor returns the current draw color.
func (c *RenderContext) DrawColor() Color {
	return c.color
}

// Clear fills the whole canvas.
func (c *RenderContext) Clear(col Color) {
	if c.canvas != nil {
		c.canvas.Clear(col)
	}
}

// TransformVertices writes src transformed to device space into dst, growing
// it as needed, and returns the result.
func (c *RenderContext) TransformVertices(dst, src []Vec2) []Vec2 {
	if cap(dst) < len(src) {
		dst = make([]Vec2, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i].X, dst[i].Y = c.current.TransformPoint(v.X, v.Y)
	}
	return dst
}

// RenderLines draws device-space points as independent segments: 0-1, 2-3, ...
func (c *RenderContext) RenderLines(points []Vec2) {
	if c.canvas == nil {
		return
	}
	for i := 0; i+1 < len(points); i += 2 {
		c.canvas.DrawLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, c.color)
	}
}

// RenderLoop draws device-space points as a closed polygon outline.
func (c *RenderContext) RenderLoop(points []Vec2) {
	if c.canvas == nil || len(points) < 2 {
		return
	}
	for i := range points {
		j := (i + 1) % len(points)
		c.canvas.DrawLine(points[i].X, points[i].Y, points[j].X, points[j].Y, c.color)
	}
}

// RenderAABB draws the device-space box spanning two already transformed
// corners.
func (c *RenderContext) RenderAABB(a, b Vec2, filled bool) {
	if c.canvas == nil {
		return
	}
	r := Rect{X: min(a.X, b.X), Y: min(a.Y, b.Y), Width: abs(b.X - a.X), Height: abs(b.Y - a.Y)}
	c.canvas.DrawRect(r, filled, c.color)
}

// FillTriangle fills a triangle given in device space.
func (c *RenderContext) FillTriangle(a, b, d Vec2) {
	if c.canvas == nil {
		return
	}
	c.canvas.FillTriangle(a, b, d, c.color)
}

// RenderText draws s at the local-space point (x, y).
func (c *RenderContext) RenderText(s string, x, y float64) {
	if c.canvas == nil {
		return
	}
	dx, dy := c.current.TransformPoint(x, y)
	c.canvas.DrawText(s, dx, dy, c.color)
}

// DeviceText draws s at device pixel coordinates, ignoring the transform.
func (c *RenderContext) DeviceText(s string, x, y float64) {
	if c.canvas == nil {
		return
	}
	c.canvas.DrawText(s, x, y, c.color)
}

// DeviceTextf formats and draws at device pixel coordinates.
func (c *RenderContext) DeviceTextf(x, y float64, format string, args ...any) {
	c.DeviceText(fmt.Sprintf(format, args...), x, y)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
