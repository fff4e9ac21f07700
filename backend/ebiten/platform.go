// Package ebitenbackend runs ranger worlds in a window using ebiten. Ebiten
// owns the main loop: each Draw call runs one Core iteration against the
// screen image.
package ebitenbackend

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/ranger"
)

// Platform is a ranger.Platform and ranger.Runner backed by an ebiten window.
type Platform struct {
	cfg    ranger.Config
	canvas *Canvas
	input  inputState
	events []ranger.InputEvent

	ctx  context.Context
	core *ranger.Core
	done bool
	err  error
}

var (
	_ ranger.Platform = (*Platform)(nil)
	_ ranger.Runner   = (*Platform)(nil)
	_ ebiten.Game     = (*Platform)(nil)
)

// Factory configures the ebiten window from cfg and returns the platform.
// It satisfies ranger.PlatformFactory.
func Factory(cfg ranger.Config) (ranger.Platform, error) {
	canvas, err := NewCanvas(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		return nil, err
	}
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(cfg.PerformClear)
	return &Platform{cfg: cfg, canvas: canvas}, nil
}

// Canvas returns the screen canvas.
func (p *Platform) Canvas() ranger.Canvas {
	return p.canvas
}

// PollEvents returns the input gathered since the previous poll.
func (p *Platform) PollEvents() []ranger.InputEvent {
	evs := p.events
	p.events = nil
	return evs
}

// Present is a no-op: ebiten shows the screen once Draw returns.
func (p *Platform) Present() error {
	return nil
}

// Run opens the window and blocks until the core stops, the window closes,
// or ctx is cancelled.
func (p *Platform) Run(ctx context.Context, core *ranger.Core) error {
	p.ctx, p.core = ctx, core
	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", err)
	}
	return p.err
}

// Update gathers input and ends the game once the core has stopped.
func (p *Platform) Update() error {
	if p.done {
		return ebiten.Termination
	}
	if p.ctx != nil && p.ctx.Err() != nil {
		p.err = p.ctx.Err()
		return ebiten.Termination
	}
	p.events = p.input.poll(p.events)
	return nil
}

// Draw runs one core iteration into screen.
func (p *Platform) Draw(screen *ebiten.Image) {
	if p.done || p.core == nil {
		return
	}
	p.canvas.begin(screen)
	defer p.canvas.end()

	ok, err := p.core.Iterate()
	if err != nil {
		p.err = err
	}
	if !ok {
		p.done = true
	}
}

// Layout keeps the logical screen at the configured window size.
func (p *Platform) Layout(int, int) (int, int) {
	return p.cfg.WindowWidth, p.cfg.WindowHeight
}
