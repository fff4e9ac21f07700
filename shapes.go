package ranger

// Unit geometry shared by the shape nodes. Shapes are one unit across and
// centered on the origin; size them with SetScale or SetNonuniformScale.
var (
	crossVertices = []Vec2{
		{-0.5, 0}, {0.5, 0},
		{0, -0.5}, {0, 0.5},
	}
	rectangleVertices = []Vec2{
		{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
	}
	triangleVertices = []Vec2{
		{-0.5, 0.5}, {0.5, 0.5}, {0, -0.5},
	}
)

// NewCrossNode creates a leaf that draws a plus sign as two line segments.
func NewCrossNode(ids IDSource, name string, parent *Node) *Node {
	n := NewLeaf(ids, name, parent)
	n.Vertices = crossVertices
	n.OnDraw = func(ctx *RenderContext) {
		n.bucket = ctx.TransformVertices(n.bucket, n.Vertices)
		ctx.SetDrawColor(n.Color)
		ctx.RenderLines(n.bucket)
	}
	return n
}

// NewRectangleNode creates a leaf that draws a unit square, filled or as an
// outline depending on filled.
func NewRectangleNode(ids IDSource, name string, parent *Node, filled bool) *Node {
	n := NewLeaf(ids, name, parent)
	n.Vertices = rectangleVertices
	n.Filled = filled
	n.OnDraw = func(ctx *RenderContext) {
		n.bucket = ctx.TransformVertices(n.bucket, n.Vertices)
		ctx.SetDrawColor(n.Color)
		if n.Filled {
			b := n.bucket
			ctx.FillTriangle(b[0], b[1], b[2])
			ctx.FillTriangle(b[0], b[2], b[3])
			return
		}
		ctx.RenderLoop(n.bucket)
	}
	return n
}

// NewTriangleNode creates a leaf that draws a unit triangle pointing up.
// It is filled by default.
func NewTriangleNode(ids IDSource, name string, parent *Node) *Node {
	n := NewLeaf(ids, name, parent)
	n.Vertices = triangleVertices
	n.Filled = true
	n.OnDraw = func(ctx *RenderContext) {
		n.bucket = ctx.TransformVertices(n.bucket, n.Vertices)
		ctx.SetDrawColor(n.Color)
		if n.Filled {
			ctx.FillTriangle(n.bucket[0], n.bucket[1], n.bucket[2])
			return
		}
		ctx.RenderLoop(n.bucket)
	}
	return n
}

// NewTextNode creates a leaf that draws text at its origin.
func NewTextNode(ids IDSource, name string, parent *Node, text string) *Node {
	n := NewLeaf(ids, name, parent)
	n.Text = text
	n.OnDraw = func(ctx *RenderContext) {
		ctx.SetDrawColor(n.Color)
		ctx.RenderText(n.Text, 0, 0)
	}
	return n
}

// NewLayer creates a group whose first child is a filled background
// rectangle covering width x height around the group's origin. The
// background is returned so callers can recolor or resize it.
func NewLayer(ids IDSource, name string, parent *Node, width, height float64, col Color) (*Node, *Node) {
	layer := NewGroup(ids, name, parent)
	bg := NewRectangleNode(ids, name+"Background", layer, true)
	bg.SetNonuniformScale(width, height)
	bg.Color = col
	return layer, bg
}

// NewOrbitAnchor creates a group that spins its children by step degrees per
// fixed update, interpolating the rotation between updates. It is a Normal
// timing target and returns the motion driving it.
func NewOrbitAnchor(ids IDSource, name string, parent *Node, step float64) (*Node, *AngularMotion) {
	n := NewGroup(ids, name, parent)
	n.SetTimingTarget(PriorityNormal)
	motion := &AngularMotion{}
	motion.SetStepValue(step)
	n.OnUpdate = motion.Update
	n.OnInterpolate = func(t float64) {
		n.SetRotationDegrees(motion.Interpolate(t))
	}
	return n, motion
}
