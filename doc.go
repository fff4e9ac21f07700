// Package ranger is a retained-mode 2D scene-graph engine with a scene stack
// and a fixed-timestep loop.
//
// Ranger keeps the engine core free of any window system: a [Platform]
// supplies input events, a [Canvas] to draw on, and presentation. Two
// platforms ship with the module: backend/ebiten opens a window with
// [Ebitengine], and backend/software renders headlessly with [gg].
//
// # Quick start
//
//	world, err := ranger.NewWorld(ranger.DefaultWorldProperties(), ebitenbackend.Factory)
//	if err != nil { ... }
//	world.Configure()
//	status, err := world.Launch(func(w *ranger.World) bool {
//		game := ranger.NewScene(w, "Game")
//		ranger.NewTriangleNode(w, "Tri", game).SetScale(50)
//		w.PushScene(ranger.NewBootScene(w, "Boot", game))
//		return true
//	})
//
// # Scene graph
//
// Every element is a [Node]. Nodes form trees rooted at scenes. A node's
// kind is its [NodeType]: leaves draw, groups carry a transform for their
// children, and transform filters ([NewTransformFilter]) let children
// inherit only some of their parent's translation, rotation, and scale.
// Behavior is attached through callback fields such as [Node.OnDraw] and
// [Node.OnUpdate]. Constructors take an [IDSource], normally the [World].
//
// Transform setters ripple a dirty flag down the subtree; a node's local
// matrix is recomputed during [Node.Visit] only when dirty.
//
// # Scenes
//
// The [SceneManager] keeps a stack of scenes. Push, pop, and replace
// requests set a pending scene which is swapped in at the top of the next
// frame, exiting and optionally flushing the outgoing scene before the
// incoming scene enters. A running scene can ask to be replaced by
// returning a [SceneAction] from [Node.OnTransition].
//
// # Timing
//
// The [Core] loop drains elapsed time in fixed [UpdatePeriod] steps through
// the [Scheduler], then renders once with the leftover fraction as an
// interpolation factor for smooth motion.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package ranger
