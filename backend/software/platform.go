package software

import (
	"fmt"
	"time"

	"github.com/phanxgames/ranger"
)

// Platform is an in-memory ranger.Platform. Input comes from the inject
// queue or an attached Script; frames stay in the Canvas until read.
type Platform struct {
	canvas *Canvas

	// MaxFrames stops the loop after that many presented frames when > 0.
	MaxFrames int
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string
	// OnPresent, when set, is called after every presented frame.
	OnPresent func(frame int, c *Canvas)
	// FrameStep, when > 0, makes Now advance by exactly that much per
	// presented frame so runs do not depend on machine speed.
	FrameStep time.Duration

	injectQueue     []ranger.InputEvent
	script          *Script
	screenshotQueue []string
	frames          int
	quit            bool
	now             func() time.Time
}

var (
	_ ranger.Platform = (*Platform)(nil)
	_ ranger.Clock    = (*Platform)(nil)
)

// frameEpoch is the time of frame zero when FrameStep is set.
var frameEpoch = time.Unix(0, 0).UTC()

// New creates a platform with a width x height canvas.
func New(width, height int) (*Platform, error) {
	canvas, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	return &Platform{canvas: canvas, ScreenshotDir: "screenshots", now: time.Now}, nil
}

// Factory creates a platform sized from cfg. It satisfies
// ranger.PlatformFactory.
func Factory(cfg ranger.Config) (ranger.Platform, error) {
	p, err := New(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		return nil, fmt.Errorf("software platform: %w", err)
	}
	return p, nil
}

// Canvas returns the drawing surface.
func (p *Platform) Canvas() ranger.Canvas {
	return p.canvas
}

// SoftwareCanvas returns the concrete canvas, for reading frames back.
func (p *Platform) SoftwareCanvas() *Canvas {
	return p.canvas
}

// Frames returns the number of frames presented so far.
func (p *Platform) Frames() int {
	return p.frames
}

// SetScript attaches a script that is stepped once per polled frame.
func (p *Platform) SetScript(s *Script) {
	p.script = s
}

// Now returns the wall clock, or frameEpoch plus one FrameStep per
// presented frame when FrameStep is set.
func (p *Platform) Now() time.Time {
	if p.FrameStep <= 0 {
		return p.now()
	}
	return frameEpoch.Add(time.Duration(p.frames) * p.FrameStep)
}

// PollEvents advances the script, then hands out at most one injected
// event. A quit is reported once MaxFrames frames have been presented or
// InjectQuit was called.
func (p *Platform) PollEvents() []ranger.InputEvent {
	if p.quit || (p.MaxFrames > 0 && p.frames >= p.MaxFrames) {
		return []ranger.InputEvent{{Type: ranger.InputQuit}}
	}
	if p.script != nil {
		p.script.step(p)
	}
	if len(p.injectQueue) == 0 {
		return nil
	}
	ev := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	return []ranger.InputEvent{ev}
}

// Present completes the frame and writes any queued screenshots.
func (p *Platform) Present() error {
	if err := p.canvas.flush(); err != nil {
		return fmt.Errorf("flush canvas: %w", err)
	}
	p.frames++
	if err := p.flushScreenshots(); err != nil {
		return err
	}
	if p.OnPresent != nil {
		p.OnPresent(p.frames, p.canvas)
	}
	return nil
}
