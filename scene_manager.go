package ranger

import "fmt"

// SceneManager owns the scene stack and drives the running scene each frame.
// Scene swaps requested through push, pop, replace, or a scene's transition
// are deferred to the top of the next Visit so a traversal in progress is
// never invalidated.
type SceneManager struct {
	ctx       *RenderContext
	scenes    *SceneStack
	data      GlobalSceneData
	scheduler *Scheduler
	presenter Presenter
	sink      IOEventSink

	clear      bool
	clearColor Color

	statsColor  Color
	coordsColor Color

	// flush flag captured when a transition scene was promoted; applies to
	// the scene it holds as outgoing.
	outgoingFlush bool
}

// NewSceneManager creates a manager drawing through ctx. The scheduler is
// used to unregister timing targets of scenes that leave with
// ReplaceTakeUnregister and may be nil.
func NewSceneManager(ctx *RenderContext, scheduler *Scheduler) *SceneManager {
	return &SceneManager{
		ctx:         ctx,
		scenes:      NewSceneStack(),
		scheduler:   scheduler,
		clear:       true,
		clearColor:  ColorBlack,
		statsColor:  ColorWhite.WithAlpha(0.5),
		coordsColor: ColorLime,
	}
}

// SetClear controls whether PreProcess clears the canvas, and with what color.
func (sm *SceneManager) SetClear(enabled bool, col Color) {
	sm.clear = enabled
	sm.clearColor = col
}

// SetPresenter sets the target PostProcess presents to.
func (sm *SceneManager) SetPresenter(p Presenter) {
	sm.presenter = p
}

// SetEventSink sets an optional sink that sees every dispatched IO event.
func (sm *SceneManager) SetEventSink(sink IOEventSink) {
	sm.sink = sink
}

// Context returns the render context.
func (sm *SceneManager) Context() *RenderContext { return sm.ctx }

// Data returns the input state shared by all scenes.
func (sm *SceneManager) Data() *GlobalSceneData { return &sm.data }

// Stack returns the scene stack.
func (sm *SceneManager) Stack() *SceneStack { return sm.scenes }

// Scheduler returns the scheduler, which may be nil.
func (sm *SceneManager) Scheduler() *Scheduler { return sm.scheduler }

// RunningScene returns the running scene or the Nil sentinel.
func (sm *SceneManager) RunningScene() *Node { return sm.scenes.Running() }

// PushScene schedules scene to run on top of the current one.
func (sm *SceneManager) PushScene(scene *Node) {
	sm.scenes.Push(scene)
}

// PopScene schedules a return to the scene beneath the top.
func (sm *SceneManager) PopScene() {
	sm.scenes.Pop()
}

// ReplaceScene schedules scene to replace the running scene.
// Panics if no scene is running.
func (sm *SceneManager) ReplaceScene(scene *Node) {
	if sm.scenes.Running().IsNil() {
		panic("ranger: ReplaceScene with no running scene")
	}
	sm.scenes.Replace(scene)
}

// PreProcess prepares the context for a frame and clears the canvas if
// clearing is enabled.
func (sm *SceneManager) PreProcess() {
	sm.ctx.Reset()
	if sm.clear {
		sm.ctx.Clear(sm.clearColor)
	}
}

// Visit resolves any pending scene swap, lets the running scene request a
// transition, and visits it. It returns false once the stack is empty,
// which tells the caller to stop the loop.
func (sm *SceneManager) Visit(interpolation float64) bool {
	if sm.scenes.IsEmpty() {
		Logger().Info("ranger: no scenes to visit")
		return false
	}

	if !sm.scenes.Next().IsNil() {
		sm.swap()
	}

	sm.ctx.Save()
	defer sm.ctx.Restore()

	sm.data.updateViewCoords(sm.ctx)

	running := sm.scenes.Running()
	if action := running.transition(sm); action != NoAction {
		if action == ReplaceTakeUnregister && sm.scheduler != nil {
			sm.scheduler.UnregisterTimingTargets(running)
		}
		if repl := running.TakeTransitionScene(); repl != nil {
			sm.scenes.Replace(repl)
		} else {
			Logger().Warn("ranger: transition requested without a replacement",
				"scene", running.String(), "action", action.String())
		}
	}

	running.Visit(sm.ctx, interpolation)
	return true
}

// swap promotes the pending scene, exiting the running scene first unless
// the incoming scene is a transition, in which case the transition takes the
// running scene as its outgoing scene. A transition replacing another
// transition inherits that transition's outgoing scene.
func (sm *SceneManager) swap() {
	st := sm.scenes
	next, running := st.Next(), st.Running()

	if next.Type != NodeTypeTransition {
		switch {
		case running.IsNil():
		case running.Type == NodeTypeTransition:
			if out := running.outgoing; out != nil {
				running.outgoing = nil
				sm.exitScene(out, sm.outgoingFlush)
			}
		default:
			sm.exitScene(running, st.FlushRequested())
		}
	} else if !running.IsNil() {
		if running.Type == NodeTypeTransition {
			// Chained transitions pass the held scene along.
			next.outgoing, running.outgoing = running.outgoing, nil
		} else {
			next.outgoing = running
			sm.outgoingFlush = st.FlushRequested()
		}
	}

	st.promote()
	running = st.Running()
	Logger().Debug("ranger: running scene", "scene", running.String())

	if running.Type != NodeTypeTransition && !running.IsNil() {
		running.enter(sm)
		if running.OnEndEnter != nil {
			running.OnEndEnter()
		}
	}
}

func (sm *SceneManager) exitScene(scene *Node, flush bool) {
	if scene.OnBeginExit != nil {
		scene.OnBeginExit()
	}
	scene.exit()
	if flush {
		scene.Flush()
	}
}

// PostProcess presents the frame.
func (sm *SceneManager) PostProcess() error {
	if sm.presenter == nil {
		return nil
	}
	if err := sm.presenter.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// IOEvent routes an input event to the running scene. Mouse events update
// the shared mouse position first. Every node in the running scene receives
// the event; nodes registered with RegisterForIOEvents receive it with
// Target and local coordinates filled in.
func (sm *SceneManager) IOEvent(ev IOEvent) {
	switch ev.Type {
	case IOEventMouse:
		sm.data.SetMouse(ev.X, ev.Y)
	case IOEventNone:
		return
	}

	if sm.sink != nil {
		sm.sink.EmitIOEvent(ev)
	}

	running := sm.scenes.Running()
	if running.IsNil() {
		return
	}
	Walk(running, func(n *Node) bool {
		if n.OnIOEvent == nil {
			return true
		}
		if sm.data.isTarget(n) {
			local := ev
			local.Target = n
			local.LocalX, local.LocalY = MapDeviceToNode(sm.ctx, float64(ev.X), float64(ev.Y), n)
			n.OnIOEvent(local)
		} else {
			n.OnIOEvent(ev)
		}
		return true
	})
}

// RegisterForIOEvents registers the node with id in root's subtree for
// targeted delivery. Unknown ids are logged and ignored.
func (sm *SceneManager) RegisterForIOEvents(root *Node, id uint32) bool {
	return sm.data.register(root, id)
}

// UnregisterForIOEvents reverses RegisterForIOEvents.
func (sm *SceneManager) UnregisterForIOEvents(root *Node, id uint32) bool {
	return sm.data.unregister(root, id)
}

// RenderStats draws the performance overlay along the bottom edge.
func (sm *SceneManager) RenderStats(s Stats) {
	_, h := sm.deviceSize()
	sm.ctx.SetDrawColor(sm.statsColor)
	sm.ctx.DeviceTextf(5, h-24,
		"Fps:%.0f, Ups:%5.1f, ren:%3.2f, upd:%3.2f, blt:%5.2fms",
		s.FPS, s.UPS, ms(s.AvgRender), ms(s.AvgUpdate), ms(s.AvgBlit))
}

// RenderCoordinates draws the device and view mouse coordinates.
func (sm *SceneManager) RenderCoordinates() {
	mx, my := sm.data.Mouse()
	vx, vy := sm.data.View()
	sm.ctx.SetDrawColor(sm.coordsColor)
	sm.ctx.DeviceTextf(10, 10, "M: %d, %d", mx, my)
	sm.ctx.DeviceTextf(10, 30, "V: %5.2f, %5.2f", vx, vy)
}

func (sm *SceneManager) deviceSize() (float64, float64) {
	if v := sm.ctx.ViewSpace(); v != nil {
		return v.WindowWidth, v.WindowHeight
	}
	if c := sm.ctx.Canvas(); c != nil {
		w, h := c.Size()
		return float64(w), float64(h)
	}
	return 0, 0
}

// Close flushes every scene left on the stack.
func (sm *SceneManager) Close() {
	sm.scenes.Close()
	sm.data.targets = nil
}
