// Package demo holds the scene graphs the ranger command can launch.
package demo

import (
	"time"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/ranger"
	"github.com/phanxgames/ranger/ecs"
)

// Node names used by Template0, exported for tests and tree dumps.
const (
	NameBoot     = "Boot"
	NameSplash   = "Splash"
	NameFade     = "Fade"
	NameGame     = "GameScene"
	NameAnchor   = "OrbitAnchor"
	NameOrbiter  = "Orbiter"
	NameSpinner  = "Spinner"
	NameFollower = "Follower"
)

// SplashDuration is how long the splash title stays up.
const SplashDuration = 250 * time.Millisecond

// Template0 builds the sample game: a boot scene hands over to a splash,
// which fades into a scene with an orbiting triangle, a spinning box that
// ignores the orbit's translation, a title, a crosshair, and a marker that
// follows the mouse. Space pauses the orbit. Input is mirrored into a
// Donburi world through the ECS sink.
func Template0(w *ranger.World) bool {
	cfg := w.Properties().Config
	viewW, viewH := cfg.ViewWidth, cfg.ViewHeight
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = float64(cfg.WindowWidth), float64(cfg.WindowHeight)
	}

	game := buildGameScene(w, viewW, viewH)
	fade := ranger.NewTransitionScene(w, NameFade, game, 0.5, ease.InOutQuad, ranger.ColorBlack)
	splash := ranger.NewSplashScene(w, NameSplash, "Ranger", fade, SplashDuration)
	boot := ranger.NewBootScene(w, NameBoot, splash)

	sch := w.Scheduler()
	sch.RegisterTimingTargets(splash)
	sch.RegisterTimingTargets(fade)
	sch.RegisterTimingTargets(game)

	w.PushScene(boot)
	return true
}

func buildGameScene(w *ranger.World, viewW, viewH float64) *ranger.Node {
	game := ranger.NewScene(w, NameGame)
	layer, _ := ranger.NewLayer(w, "Layer", game, viewW, viewH, ranger.ColorFromHex(0x1e1e2e))

	anchor, _ := ranger.NewOrbitAnchor(w, NameAnchor, layer, 2)

	orbiter := ranger.NewTriangleNode(w, NameOrbiter, anchor)
	orbiter.SetPosition(200, 0)
	orbiter.SetScale(50)
	orbiter.Color = ranger.ColorOrange

	// Keeps the label upright and unscaled while it rides the orbit.
	upright := ranger.NewTransformFilter(w, "UprightFilter", orbiter)
	ranger.NewTextNode(w, "OrbiterLabel", upright, "orbiter")

	// Spins with the anchor but stays at the layer origin.
	spin := ranger.NewTransformFilter(w, "SpinFilter", anchor)
	spin.ExcludeTranslation(true)
	spin.ExcludeRotation(false)
	spinner := ranger.NewRectangleNode(w, NameSpinner, spin, false)
	spinner.SetScale(80)
	spinner.Color = ranger.ColorYellow

	title := ranger.NewTextNode(w, "Title", game, "RANGER IS A GO!")
	title.SetPosition(-viewW/2+20, -viewH/2+60)
	title.SetRotationDegrees(45)
	title.Color = ranger.ColorWhite

	cross := ranger.NewCrossNode(w, "Crosshair", game)
	cross.SetNonuniformScale(viewW, viewH)
	cross.Color = ranger.ColorSilver.WithAlpha(0.4)

	follower := ranger.NewCrossNode(w, NameFollower, game)
	follower.SetScale(24)
	follower.Color = ranger.ColorLime

	world := donburi.NewWorld()
	ecs.Attach(world, game)
	ecs.Attach(world, anchor)
	ecs.IOEventType.Subscribe(world, func(_ donburi.World, ev ranger.IOEvent) {
		if ev.Type == ranger.IOEventKeyboard && ev.Pressed && ev.Key == "Space" {
			anchor.SetPaused(!anchor.Paused())
			ranger.Logger().Info("orbit toggled", "paused", anchor.Paused())
		}
	})

	// Drains queued ECS events once per fixed update.
	pump := ranger.NewLeaf(w, "EventPump", game)
	pump.Visible = false
	pump.SetTimingTarget(ranger.PrioritySystem)
	pump.OnUpdate = func(float64) {
		ecs.IOEventType.ProcessEvents(world)
	}

	game.OnEnter = func(sm *ranger.SceneManager) {
		sm.SetEventSink(ecs.NewDonburiSink(world))
		sm.RegisterForIOEvents(game, follower.ID)
		ranger.Logger().Debug("game scene tree\n" + ranger.PrintTree(game))
	}
	game.OnExit = func() {
		ranger.Logger().Debug("game scene exited")
	}
	follower.OnIOEvent = func(ev ranger.IOEvent) {
		if ev.Type != ranger.IOEventMouse || ev.Target == nil {
			return
		}
		// Local coordinates are relative to the follower itself.
		x, y := follower.Position()
		sx, _ := follower.Scale()
		follower.SetPosition(x+ev.LocalX*sx, y+ev.LocalY*sx)
	}
	return game
}
