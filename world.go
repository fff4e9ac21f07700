package ranger

import (
	"context"
	"errors"
	"fmt"
)

// Status strings returned by World.
const (
	StatusConfigured = "Configured"
	StatusExited     = "Exited"
)

// ErrBuildFailed is returned by Launch when the build callback reports failure.
var ErrBuildFailed = errors.New("Game failed to build.") //nolint:staticcheck // user-facing message

// ErrNotConfigured is returned when a World is used before Configure.
var ErrNotConfigured = errors.New("ranger: world not configured")

// WorldProperties are the settings a World is created with. Values read from
// ConfigFile during Configure override them.
type WorldProperties struct {
	Config
	ConfigFile string
}

// DefaultWorldProperties returns DefaultConfig with the default config file.
func DefaultWorldProperties() WorldProperties {
	return WorldProperties{Config: DefaultConfig(), ConfigFile: DefaultConfigFile}
}

// PlatformFactory creates the window and input collaborator for a config.
type PlatformFactory func(cfg Config) (Platform, error)

// Runner is implemented by platforms that own the main loop themselves and
// call Core.Iterate from their own frame callback.
type Runner interface {
	Run(ctx context.Context, core *Core) error
}

// World ties the engine together: it generates node ids, owns the scheduler
// and scene manager, and runs the core loop.
type World struct {
	props   WorldProperties
	factory PlatformFactory
	ids     IDGenerator

	platform   Platform
	view       *ViewSpace
	scheduler  *Scheduler
	sm         *SceneManager
	core       *Core
	configured bool
}

// NewWorld creates a world. Nothing is allocated on the platform until
// Configure.
func NewWorld(props WorldProperties, factory PlatformFactory) (*World, error) {
	if factory == nil {
		return nil, errors.New("ranger: nil platform factory")
	}
	if err := props.Validate(); err != nil {
		return nil, fmt.Errorf("world properties: %w", err)
	}
	return &World{
		props:     props,
		factory:   factory,
		scheduler: NewScheduler(),
	}, nil
}

// GenID returns the next node id for this world.
func (w *World) GenID() uint32 {
	return w.ids.GenID()
}

// Properties returns the effective settings.
func (w *World) Properties() WorldProperties {
	return w.props
}

// Scheduler returns the world's scheduler.
func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// SceneManager returns the scene manager, or nil before Configure.
func (w *World) SceneManager() *SceneManager {
	return w.sm
}

// Core returns the loop, or nil before Configure.
func (w *World) Core() *Core {
	return w.core
}

// Platform returns the platform, or nil before Configure.
func (w *World) Platform() Platform {
	return w.platform
}

// Configure reads the config file, creates the platform, and wires the scene
// manager and loop. Calling it again is a no-op.
func (w *World) Configure() (string, error) {
	if w.configured {
		return StatusConfigured, nil
	}

	cfg := w.props.Config
	if w.props.ConfigFile != "" {
		if err := loadConfigInto(w.props.ConfigFile, &cfg); err != nil {
			return "", err
		}
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("config %s: %w", w.props.ConfigFile, err)
	}
	w.props.Config = cfg
	SetDebugMode(cfg.Debug)

	platform, err := w.factory(cfg)
	if err != nil {
		return "", fmt.Errorf("create platform: %w", err)
	}
	w.platform = platform

	w.view = NewViewSpace(float64(cfg.WindowWidth), float64(cfg.WindowHeight),
		cfg.ViewWidth, cfg.ViewHeight, cfg.ViewCentered)
	ctx := NewRenderContext(platform.Canvas(), w.view)

	w.sm = NewSceneManager(ctx, w.scheduler)
	w.sm.SetClear(cfg.PerformClear, ColorBlack)
	w.sm.SetPresenter(platform)

	w.core = NewCore(platform, w.sm, w.scheduler)
	w.core.ShowStats = cfg.ShowStats
	w.core.ShowCoordinates = cfg.ShowCoordinates
	w.core.FrameLimit = cfg.FrameLimit && !cfg.VSync
	if clock, ok := platform.(Clock); ok {
		w.core.SetClock(clock.Now)
	}

	w.configured = true
	Logger().Info("ranger: world configured",
		"title", cfg.Title,
		"window", fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight),
		"view", fmt.Sprintf("%gx%g", w.view.ViewWidth, w.view.ViewHeight))
	return StatusConfigured, nil
}

// PushScene pushes scene onto the scene manager.
func (w *World) PushScene(scene *Node) {
	if w.sm == nil {
		panic("ranger: PushScene before Configure")
	}
	w.sm.PushScene(scene)
}

// Step runs a single loop iteration. It reports false once the loop should
// stop, like Core.Iterate.
func (w *World) Step() (bool, error) {
	if w.core == nil {
		return false, ErrNotConfigured
	}
	return w.core.Iterate()
}

// Launch runs build to construct the initial scenes and then runs the loop
// until it stops. See LaunchContext.
func (w *World) Launch(build func(w *World) bool) (string, error) {
	return w.LaunchContext(context.Background(), build)
}

// LaunchContext configures the world if needed, runs build, and runs the
// loop until it stops or ctx is cancelled. A false build result aborts with
// ErrBuildFailed. Scenes left on the stack are flushed on return.
func (w *World) LaunchContext(ctx context.Context, build func(w *World) bool) (string, error) {
	if _, err := w.Configure(); err != nil {
		return "", err
	}
	if !build(w) {
		return "", ErrBuildFailed
	}
	defer w.sm.Close()

	Logger().Info("ranger: launching")
	var err error
	if r, ok := w.platform.(Runner); ok {
		err = r.Run(ctx, w.core)
	} else {
		err = w.core.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return "", fmt.Errorf("run: %w", err)
	}
	Logger().Info("ranger: exited")
	return StatusExited, nil
}
