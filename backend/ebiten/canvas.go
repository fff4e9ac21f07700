package ebitenbackend

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/ranger"
)

// FontSize is the pixel size of the built-in text face.
const FontSize = 14

// Canvas implements ranger.Canvas on the ebiten screen image. It draws into
// whatever image the current Draw call handed over; outside a frame every
// call is a no-op.
type Canvas struct {
	width, height int
	target        *ebiten.Image
	face          *text.GoTextFace
	white         *ebiten.Image
	verts         [3]ebiten.Vertex
}

var _ ranger.Canvas = (*Canvas)(nil)

var triangleIndices = []uint16{0, 1, 2}

// NewCanvas creates a canvas for a width x height screen.
func NewCanvas(width, height int) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebiten: load font: %w", err)
	}
	return &Canvas{
		width:  width,
		height: height,
		face:   &text.GoTextFace{Source: src, Size: FontSize},
	}, nil
}

// begin points the canvas at the frame's screen image.
func (c *Canvas) begin(screen *ebiten.Image) {
	c.target = screen
}

func (c *Canvas) end() {
	c.target = nil
}

// whitePixel returns a lazily created 1x1 white image used as the source
// for untextured triangles.
func (c *Canvas) whitePixel() *ebiten.Image {
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(ranger.ColorWhite.NRGBA())
	}
	return c.white
}

// Size returns the logical screen size.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills the screen with col.
func (c *Canvas) Clear(col ranger.Color) {
	if c.target != nil {
		c.target.Fill(col.NRGBA())
	}
}

// SetPixel sets one pixel.
func (c *Canvas) SetPixel(x, y int, col ranger.Color) {
	if c.target != nil {
		c.target.Set(x, y, col.NRGBA())
	}
}

// DrawLine strokes an antialiased one pixel line.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col ranger.Color) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x1), float32(y1), float32(x2), float32(y2), 1, col.NRGBA(), true)
}

// DrawRect fills or outlines r.
func (c *Canvas) DrawRect(r ranger.Rect, filled bool, col ranger.Color) {
	if c.target == nil {
		return
	}
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	if filled {
		vector.DrawFilledRect(c.target, x, y, w, h, col.NRGBA(), true)
		return
	}
	vector.StrokeRect(c.target, x, y, w, h, 1, col.NRGBA(), true)
}

// FillTriangle fills the triangle abd.
func (c *Canvas) FillTriangle(a, b, d ranger.Vec2, col ranger.Color) {
	if c.target == nil {
		return
	}
	setTriangleVertices(&c.verts, a, b, d, col)
	c.target.DrawTriangles(c.verts[:], triangleIndices, c.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// setTriangleVertices fills dst with straight-alpha colored vertices that
// sample the white pixel.
func setTriangleVertices(dst *[3]ebiten.Vertex, a, b, d ranger.Vec2, col ranger.Color) {
	for i, p := range [3]ranger.Vec2{a, b, d} {
		dst[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(col.R),
			ColorG: float32(col.G),
			ColorB: float32(col.B),
			ColorA: float32(col.A),
		}
	}
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(s string, x, y float64, col ranger.Color) {
	if c.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.NRGBA())
	text.Draw(c.target, s, c.face, op)
}
