// Package software is a headless ranger platform that rasterizes frames
// into memory with gg. It needs no window or GPU, so it serves tests,
// scripted capture runs, and servers that render scenes to PNG.
package software

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/ranger"
)

// DefaultFontSize is the pixel size of the built-in text face.
const DefaultFontSize = 14

// Canvas implements ranger.Canvas on a gg context.
type Canvas struct {
	dc   *gg.Context
	face text.Face
}

var _ ranger.Canvas = (*Canvas)(nil)

// NewCanvas creates a width x height canvas with the Go Regular font loaded.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: invalid canvas size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("software: load font: %w", err)
	}
	c := &Canvas{dc: gg.NewContext(width, height), face: source.Face(DefaultFontSize)}
	c.dc.SetFont(c.face)
	c.dc.SetLineWidth(1)
	return c, nil
}

func toRGBA(c ranger.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c *Canvas) setColor(col ranger.Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col ranger.Color) {
	c.dc.ClearWithColor(toRGBA(col))
}

// SetPixel sets one pixel.
func (c *Canvas) SetPixel(x, y int, col ranger.Color) {
	c.dc.SetPixel(x, y, toRGBA(col))
}

// DrawLine strokes a one pixel wide segment.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col ranger.Color) {
	c.setColor(col)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.stroke()
}

// DrawRect fills or outlines r.
func (c *Canvas) DrawRect(r ranger.Rect, filled bool, col ranger.Color) {
	c.setColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	if filled {
		c.fill()
		return
	}
	c.stroke()
}

// FillTriangle fills the triangle abd.
func (c *Canvas) FillTriangle(a, b, d ranger.Vec2, col ranger.Color) {
	c.setColor(col)
	c.dc.MoveTo(a.X, a.Y)
	c.dc.LineTo(b.X, b.Y)
	c.dc.LineTo(d.X, d.Y)
	c.dc.ClosePath()
	c.fill()
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(s string, x, y float64, col ranger.Color) {
	c.setColor(col)
	c.dc.DrawString(s, x, y+DefaultFontSize)
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil {
		ranger.Logger().Warn("software: fill failed", "err", err)
	}
}

func (c *Canvas) stroke() {
	if err := c.dc.Stroke(); err != nil {
		ranger.Logger().Warn("software: stroke failed", "err", err)
	}
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// flush completes pending drawing before the frame is read.
func (c *Canvas) flush() error {
	return c.dc.FlushGPU()
}
