package ranger

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewBootScene creates a scene that hands over to replacement on its first
// frame. It is typically the first scene pushed.
func NewBootScene(ids IDSource, name string, replacement *Node) *Node {
	n := NewScene(ids, name)
	n.SetReplacement(replacement)
	n.OnTransition = func(*SceneManager) SceneAction {
		return Replace
	}
	return n
}

// PauseTimer counts elapsed seconds toward a fixed pause.
type PauseTimer struct {
	pauseFor float64
	elapsed  float64
}

// NewPauseTimer creates a timer that becomes ready after d.
func NewPauseTimer(d time.Duration) *PauseTimer {
	return &PauseTimer{pauseFor: d.Seconds()}
}

// SetPauseFor changes the pause length without resetting progress.
func (t *PauseTimer) SetPauseFor(d time.Duration) {
	t.pauseFor = d.Seconds()
}

// Update advances the timer by dt seconds.
func (t *PauseTimer) Update(dt float64) {
	t.elapsed += dt
}

// Ready reports whether the pause has elapsed.
func (t *PauseTimer) Ready() bool {
	return t.elapsed >= t.pauseFor
}

// Reset restarts the pause.
func (t *PauseTimer) Reset() {
	t.elapsed = 0
}

// NewSplashScene creates a scene that shows title for pauseFor and then
// requests a Replace with replacement. The scene is a Normal timing target;
// register it with the scheduler so the pause can elapse.
func NewSplashScene(ids IDSource, name, title string, replacement *Node, pauseFor time.Duration) *Node {
	n := NewScene(ids, name)
	n.SetReplacement(replacement)
	n.SetTimingTarget(PriorityNormal)
	n.Text = title

	timer := NewPauseTimer(pauseFor)
	n.UserData = timer

	n.OnUpdate = timer.Update
	n.OnEnter = func(*SceneManager) {
		timer.Reset()
	}
	n.OnTransition = func(*SceneManager) SceneAction {
		if timer.Ready() {
			return Replace
		}
		return NoAction
	}
	n.OnDraw = func(ctx *RenderContext) {
		if n.Text == "" {
			return
		}
		ctx.SetDrawColor(n.Color)
		ctx.RenderText(n.Text, 0, 0)
	}
	return n
}

// NewTransitionScene creates a transition that keeps drawing the scene it
// replaced while fading it to color over duration seconds, then hands over
// to next. The transition is a System timing target; register it with the
// scheduler before it runs.
func NewTransitionScene(ids IDSource, name string, next *Node, duration float32, fn ease.TweenFunc, col Color) *Node {
	if fn == nil {
		fn = ease.Linear
	}
	n := newNode(ids, name, NodeTypeTransition, nil)
	n.SetReplacement(next)
	n.SetTimingTarget(PrioritySystem)
	n.Color = col

	tween := gween.New(0, 1, duration, fn)
	var progress float64
	var done bool

	n.OnUpdate = func(dt float64) {
		if done {
			return
		}
		v, finished := tween.Update(float32(dt))
		progress = float64(v)
		done = finished
	}
	n.OnTransition = func(*SceneManager) SceneAction {
		if done {
			return ReplaceTakeUnregister
		}
		return NoAction
	}
	n.OnDraw = func(ctx *RenderContext) {
		if out := n.outgoing; out != nil {
			out.Visit(ctx, 0)
		}
		canvas := ctx.Canvas()
		if canvas == nil {
			return
		}
		w, h := canvas.Size()
		ctx.SetDrawColor(n.Color.WithAlpha(n.Color.A * progress))
		ctx.RenderAABB(Vec2{}, Vec2{X: float64(w), Y: float64(h)}, true)
	}
	return n
}

// Outgoing returns the scene a transition is replacing, or nil.
func (n *Node) Outgoing() *Node {
	return n.outgoing
}
