package ranger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitInvisibleSkipsSubtree(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	hidden := rec.instrument(NewGroup(ids, "hidden", root))
	rec.instrument(NewLeaf(ids, "under-hidden", hidden))
	rec.instrument(NewLeaf(ids, "shown", root))

	hidden.Visible = false
	root.Visit(NewRenderContext(nil, nil), 0)

	assert.Equal(t, []string{"draw root", "draw shown"}, rec.events)
}

func TestVisitInvisibleRootDrawsNothing(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	rec.instrument(NewLeaf(ids, "child", root))
	root.Visible = false

	ctx := NewRenderContext(nil, nil)
	root.Visit(ctx, 0)
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, ctx.Depth())
}

func TestVisitChildrenInInsertionOrder(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	a := rec.instrument(NewGroup(ids, "a", root))
	rec.instrument(NewLeaf(ids, "a1", a))
	rec.instrument(NewLeaf(ids, "a2", a))
	rec.instrument(NewLeaf(ids, "b", root))
	rec.instrument(NewLeaf(ids, "c", root))

	root.Visit(NewRenderContext(nil, nil), 0)

	assert.Equal(t, []string{
		"draw root", "draw a", "draw a1", "draw a2", "draw b", "draw c",
	}, rec.events)
}

func TestVisitReusesCachedMatrixWhenClean(t *testing.T) {
	ids := &IDGenerator{}
	root := NewGroup(ids, "root", nil)
	child := NewLeaf(ids, "child", root)
	root.SetPosition(10, 0)

	ctx := NewRenderContext(nil, nil)
	root.Visit(ctx, 0)
	root.Visit(ctx, 0)
	root.Visit(ctx, 0)
	assert.Equal(t, 1, root.recomputes)
	assert.Equal(t, 1, child.recomputes)

	root.SetPosition(20, 0)
	root.Visit(ctx, 0)
	assert.Equal(t, 2, root.recomputes)
	assert.Equal(t, 2, child.recomputes, "parent change ripples to the child")
}

func TestVisitComposesTransforms(t *testing.T) {
	ids := &IDGenerator{}
	root := NewGroup(ids, "root", nil)
	root.SetPosition(100, 50)
	root.SetScale(2)
	child := NewLeaf(ids, "child", root)
	child.SetPosition(5, 5)

	var seen AffineTransform
	child.OnDraw = func(ctx *RenderContext) { seen = ctx.Current() }

	ctx := NewRenderContext(nil, nil)
	root.Visit(ctx, 0)

	x, y := seen.TransformPoint(0, 0)
	assertNear(t, "x", x, 110)
	assertNear(t, "y", y, 60)
	assertMatrix(t, "restored", ctx.Current(), IdentityTransform)
}

func TestVisitCallsInterpolateBeforeCompose(t *testing.T) {
	ids := &IDGenerator{}
	n := NewLeaf(ids, "spinner", nil)
	var got float64
	n.OnInterpolate = func(f float64) {
		got = f
		n.SetRotationDegrees(90 * f)
	}
	var seen AffineTransform
	n.OnDraw = func(ctx *RenderContext) { seen = ctx.Current() }

	n.Visit(NewRenderContext(nil, nil), 0.5)
	assert.Equal(t, 0.5, got)
	assertMatrix(t, "interpolated rotation", seen, NewRotate(45))
}

func TestVisitRestoresWhenDrawPanics(t *testing.T) {
	ids := &IDGenerator{}
	root := NewGroup(ids, "root", nil)
	root.SetPosition(10, 10)
	bad := NewLeaf(ids, "bad", root)
	bad.OnDraw = func(*RenderContext) { panic("boom") }

	ctx := NewRenderContext(nil, nil)
	require.Panics(t, func() { root.Visit(ctx, 0) })
	assert.Equal(t, 0, ctx.Depth())
	assertMatrix(t, "restored", ctx.Current(), IdentityTransform)
}

// --- NodeToWorld and device mapping ---

func TestNodeToWorldComposesAncestors(t *testing.T) {
	ids := &IDGenerator{}
	root := NewGroup(ids, "root", nil)
	root.SetPosition(10, 0)
	mid := NewGroup(ids, "mid", root)
	mid.SetRotationDegrees(90)
	leaf := NewLeaf(ids, "leaf", mid)
	leaf.SetPosition(5, 0)

	x, y := NodeToWorld(leaf).TransformPoint(0, 0)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 5)
}

func TestNodeToWorldMatchesRenderedTransform(t *testing.T) {
	ids := &IDGenerator{}
	root := NewScene(ids, "root")
	root.SetPosition(3, 4)
	parent := NewGroup(ids, "parent", root)
	parent.SetPosition(5, 5)
	parent.SetRotationDegrees(90)
	parent.SetScale(2)
	filter := NewTransformFilter(ids, "filter", parent)
	leaf := NewLeaf(ids, "leaf", filter)
	leaf.SetPosition(1, 0)

	var seen AffineTransform
	leaf.OnDraw = func(ctx *RenderContext) { seen = ctx.Current() }
	root.Visit(NewRenderContext(nil, nil), 0)

	assertMatrix(t, "world", NodeToWorld(leaf), seen)
}

func TestMapDeviceToViewCentered(t *testing.T) {
	view := NewViewSpace(200, 100, 400, 200, true)
	ctx := NewRenderContext(nil, view)

	x, y := MapDeviceToView(ctx, 100, 50)
	assertNear(t, "center x", x, 0)
	assertNear(t, "center y", y, 0)

	x, y = MapDeviceToView(ctx, 200, 100)
	assertNear(t, "corner x", x, 200)
	assertNear(t, "corner y", y, 100)
}

func TestMapDeviceToNode(t *testing.T) {
	ids := &IDGenerator{}
	view := NewViewSpace(200, 200, 200, 200, false)
	ctx := NewRenderContext(nil, view)
	scene := NewScene(ids, "scene")
	n := NewGroup(ids, "n", scene)
	n.SetPosition(50, 50)
	n.SetScale(10)

	x, y := MapDeviceToNode(ctx, 60, 70, n)
	assertNear(t, "x", x, 1)
	assertNear(t, "y", y, 2)
}

func TestVisitSurvivesSiblingRemovedDuringDraw(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	a := rec.instrument(NewLeaf(ids, "a", root))
	b := rec.instrument(NewLeaf(ids, "b", root))
	rec.instrument(NewLeaf(ids, "c", root))
	a.OnDraw = func(*RenderContext) {
		rec.add("draw a")
		b.RemoveFromParent()
	}

	ctx := NewRenderContext(nil, nil)
	require.NotPanics(t, func() { root.Visit(ctx, 0) })
	assert.Equal(t, []string{"draw root", "draw a", "draw c"}, rec.events)
	assert.Equal(t, 0, ctx.Depth())
}

func TestVisitSurvivesSelfRemovalDuringDraw(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	a := rec.instrument(NewLeaf(ids, "a", root))
	rec.instrument(NewLeaf(ids, "b", root))
	a.OnDraw = func(*RenderContext) {
		rec.add("draw a")
		a.RemoveFromParent()
	}

	root.Visit(NewRenderContext(nil, nil), 0)
	assert.Equal(t, []string{"draw root", "draw a", "draw b"}, rec.events)
	assert.Equal(t, 1, root.NumChildren())
}

func TestVisitDefersChildAddedDuringDraw(t *testing.T) {
	ids := &IDGenerator{}
	rec := &recorder{}
	root := rec.instrument(NewGroup(ids, "root", nil))
	a := rec.instrument(NewLeaf(ids, "a", root))
	added := false
	a.OnDraw = func(*RenderContext) {
		rec.add("draw a")
		if !added {
			added = true
			rec.instrument(NewLeaf(ids, "late", root))
		}
	}

	ctx := NewRenderContext(nil, nil)
	root.Visit(ctx, 0)
	assert.Equal(t, []string{"draw root", "draw a"}, rec.events)

	rec.reset()
	root.Visit(ctx, 0)
	assert.Equal(t, []string{"draw root", "draw a", "draw late"}, rec.events)
}
