package ranger

// Visit traverses n and its subtree once, composing transforms onto ctx and
// drawing along the way. Invisible nodes skip their entire subtree. Children
// are visited in insertion order. Children added while the node is being
// visited are first drawn next frame; children removed are skipped.
func (n *Node) Visit(ctx *RenderContext, interpolation float64) {
	if !n.Visible {
		return
	}
	if n.Type == NodeTypeFilter {
		n.visitFilter(ctx, interpolation)
		return
	}

	ctx.Save()
	defer ctx.Restore()

	if n.OnInterpolate != nil {
		n.OnInterpolate(interpolation)
	}

	ctx.Apply(n.localTransform())

	if n.OnDraw != nil {
		n.OnDraw(ctx)
	}
	if len(n.children) == 0 {
		return
	}
	children := ctx.pushChildren(n.children)
	defer ctx.popChildren()
	for _, child := range children {
		if child.Parent == n {
			child.Visit(ctx, interpolation)
		}
	}
}

// NodeToWorld composes n's local matrix with every ancestor's, from n up to
// the root. Filter nodes contribute only the components they let through.
func NodeToWorld(n *Node) AffineTransform {
	t := IdentityTransform
	for c := n; c != nil; c = c.Parent {
		if c.Type == NodeTypeFilter {
			if c.Parent == nil {
				panic(filterParentPanic(c))
			}
			p := c.Parent
			t = p.filteredTransform(c.excludeTranslation, c.excludeRotation, c.excludeScale).Multiply(t)
			c = p
			continue
		}
		t = c.localTransform().Multiply(t)
	}
	return t
}

// MapDeviceToView converts device (pixel) coordinates to view space.
func MapDeviceToView(ctx *RenderContext, x, y float64) (float64, float64) {
	return ctx.View().Invert().TransformPoint(x, y)
}

// MapDeviceToNode converts device (pixel) coordinates to n's local space.
func MapDeviceToNode(ctx *RenderContext, x, y float64, n *Node) (float64, float64) {
	world := ctx.View().Multiply(NodeToWorld(n))
	return world.Invert().TransformPoint(x, y)
}
