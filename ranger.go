package ranger

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Palette entries used by the built-in nodes and overlays.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
	ColorLime   = Color{0.5, 1, 0, 1}
	ColorOrange = Color{1, 0.5, 0, 1}
	ColorSilver = Color{0.75, 0.75, 0.75, 1}
)

// ColorFromHex builds an opaque Color from a 0xRRGGBB value.
func ColorFromHex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts the color to 8-bit straight-alpha form for drawing backends.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, vertices, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType tags the behavior of a Node during traversal and scene management.
type NodeType uint8

const (
	NodeTypeNil        NodeType = iota // sentinel for "no node"
	NodeTypeLeaf                       // renders itself, never has children
	NodeTypeGroup                      // container carrying a transform
	NodeTypeFilter                     // container that blocks inherited transform components
	NodeTypeScene                      // root of a scene tree
	NodeTypeTransition                 // scene that sits between two other scenes
)

var nodeTypeNames = [...]string{"Nil", "Leaf", "Group", "Filter", "Scene", "Transition"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

// IsContainer reports whether nodes of this type own a children list.
func (t NodeType) IsContainer() bool {
	switch t {
	case NodeTypeGroup, NodeTypeFilter, NodeTypeScene, NodeTypeTransition:
		return true
	}
	return false
}

// SceneAction is returned by a running scene's transition query.
type SceneAction uint8

const (
	NoAction              SceneAction = iota // keep running
	Replace                                  // replace with the held replacement scene
	ReplaceTake                              // same as Replace; the replacement is consumed
	ReplaceTakeUnregister                    // replace and unregister the scene's timing targets
)

var sceneActionNames = [...]string{"NoAction", "Replace", "ReplaceTake", "ReplaceTakeUnregister"}

func (a SceneAction) String() string {
	if int(a) < len(sceneActionNames) {
		return sceneActionNames[a]
	}
	return "Unknown"
}

// TimingPriority selects the scheduler tier a timing target belongs to.
// System targets are updated before Normal targets.
type TimingPriority uint8

const (
	PrioritySystem TimingPriority = iota
	PriorityNormal
)

func (p TimingPriority) String() string {
	if p == PrioritySystem {
		return "System"
	}
	return "Normal"
}
