package ranger

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AngularMotion advances an angle by a fixed step on every update and
// blends between the previous and current angle at render time. Only the
// step between updates is interpolated; the settled angle is never blended
// twice.
type AngularMotion struct {
	from  float64
	angle float64
	step  float64
}

// SetStepValue sets the degrees added per fixed update.
func (m *AngularMotion) SetStepValue(degrees float64) {
	m.step = degrees
}

// StepValue returns the degrees added per fixed update.
func (m *AngularMotion) StepValue() float64 {
	return m.step
}

// Update advances the angle by one step. dt is unused: the step is per
// fixed update.
func (m *AngularMotion) Update(dt float64) {
	m.from = m.angle
	m.angle += m.step
	if m.angle >= 360 || m.angle <= -360 {
		wrap := float64(int(m.angle/360)) * 360
		m.angle -= wrap
		m.from -= wrap
	}
}

// Interpolate returns the angle a fraction t of the way through the current
// step, t in [0, 1).
func (m *AngularMotion) Interpolate(t float64) float64 {
	return m.from + (m.angle-m.from)*t
}

// Angle returns the angle reached by the last update.
func (m *AngularMotion) Angle() float64 {
	return m.angle
}

// --- Tweens ---

// TweenGroup animates up to 4 values on a Node simultaneously. Create one via
// the convenience constructors (TweenPosition, TweenScale, TweenRotation,
// TweenColor) and either call Update(dt) yourself or hand it to a
// NewTweenDriver node so the scheduler advances it. Values are applied
// through the node's setters, so the subtree is marked dirty. If the target
// is flushed out of its tree the group stops immediately.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	apply    func(v [4]float64)
	target   *Node
	attached bool
	Done     bool
}

func newTweenGroup(node *Node, count int, apply func(v [4]float64)) *TweenGroup {
	return &TweenGroup{count: count, apply: apply, target: node, attached: node.Parent != nil}
}

// Update advances all tweens by dt seconds and applies the values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.attached && g.target.Parent == nil {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenPosition animates the node's position to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, 2, func(v [4]float64) { node.SetPosition(v[0], v[1]) })
	g.tweens[0] = gween.New(float32(node.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.y), float32(toY), duration, fn)
	return g
}

// TweenScale animates the node's scale factors to (toSX, toSY).
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, 2, func(v [4]float64) { node.SetNonuniformScale(v[0], v[1]) })
	g.tweens[0] = gween.New(float32(node.scaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.scaleY), float32(toSY), duration, fn)
	return g
}

// TweenRotation animates the node's rotation to the given degrees.
func TweenRotation(node *Node, toDegrees float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, 1, func(v [4]float64) { node.SetRotationDegrees(v[0]) })
	g.tweens[0] = gween.New(float32(node.rotation), float32(toDegrees), duration, fn)
	return g
}

// TweenColor animates all four components of node.Color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node, 4, func(v [4]float64) { node.Color = Color{v[0], v[1], v[2], v[3]} })
	g.tweens[0] = gween.New(float32(node.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(node.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(node.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(node.Color.A), float32(to.A), duration, fn)
	return g
}

// NewTweenDriver creates an invisible leaf under parent that advances groups
// on every scheduler update and drops them once done. It is a Normal timing
// target; register it with the scheduler.
func NewTweenDriver(ids IDSource, name string, parent *Node, groups ...*TweenGroup) *Node {
	groups = append([]*TweenGroup(nil), groups...)
	n := NewLeaf(ids, name, parent)
	n.Visible = false
	n.SetTimingTarget(PriorityNormal)
	n.OnUpdate = func(dt float64) {
		live := groups[:0]
		for _, g := range groups {
			g.Update(float32(dt))
			if !g.Done {
				live = append(live, g)
			}
		}
		clear(groups[len(live):])
		groups = live
	}
	return n
}
