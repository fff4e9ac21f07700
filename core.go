package ranger

import (
	"context"
	"time"
)

const (
	// UpdatesPerSecond is the fixed logical update rate.
	UpdatesPerSecond = 30
	// UpdatePeriod is the fixed step handed to the scheduler.
	UpdatePeriod = time.Second / UpdatesPerSecond
	// FramesPerSecond is the render rate ceiling used for optional pacing.
	FramesPerSecond = 120
	// FramePeriod is the frame budget at FramesPerSecond.
	FramePeriod = time.Second / FramesPerSecond
)

// Core is the fixed-timestep loop. Logical updates run in UpdatePeriod steps
// drained from an accumulated lag; rendering happens once per iteration with
// the leftover lag passed on as an interpolation factor.
type Core struct {
	platform  Platform
	sm        *SceneManager
	scheduler *Scheduler

	// ShowStats draws the performance overlay each frame.
	ShowStats bool
	// ShowCoordinates draws the mouse coordinate overlay each frame.
	ShowCoordinates bool
	// FrameLimit sleeps away the unused part of FramePeriod. Best effort;
	// vsync or the OS scheduler ultimately governs timing.
	FrameLimit bool

	lag       time.Duration
	last      time.Time
	started   bool
	stats     statsCollector
	observers []StatsObserver

	now   func() time.Time
	sleep func(time.Duration)
}

// NewCore creates a loop driving sm and scheduler from platform.
func NewCore(platform Platform, sm *SceneManager, scheduler *Scheduler) *Core {
	return &Core{
		platform:  platform,
		sm:        sm,
		scheduler: scheduler,
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// SetClock replaces the wall clock the loop measures frames with.
func (c *Core) SetClock(now func() time.Time) {
	c.now = now
}

// AddStatsObserver registers o to receive each published Stats snapshot.
func (c *Core) AddStatsObserver(o StatsObserver) {
	c.observers = append(c.observers, o)
}

// Stats returns the most recent snapshot.
func (c *Core) Stats() Stats {
	return c.stats.current
}

// Advance adds elapsed to the lag and runs one scheduler update per whole
// UpdatePeriod it contains. It returns the number of updates run.
func (c *Core) Advance(elapsed time.Duration) int {
	c.lag += elapsed
	updates := 0
	for c.lag >= UpdatePeriod {
		c.scheduler.Update(UpdatePeriod.Seconds())
		c.lag -= UpdatePeriod
		updates++
	}
	return updates
}

// Interpolation returns the leftover lag as a fraction of UpdatePeriod,
// in [0, 1).
func (c *Core) Interpolation() float64 {
	return float64(c.lag) / float64(UpdatePeriod)
}

// Iterate runs one frame: input, updates, render, present. It returns false
// when the loop should stop: the platform asked to quit, escape was pressed,
// or no scenes remain.
func (c *Core) Iterate() (bool, error) {
	frameStart := c.now()
	if !c.started {
		c.last = frameStart
		c.started = true
	}

	if !c.pollInput() {
		return false, nil
	}

	elapsed := frameStart.Sub(c.last)
	c.last = frameStart

	t := c.now()
	updates := c.Advance(elapsed)
	updateTime := c.now().Sub(t)

	t = c.now()
	c.sm.PreProcess()
	if !c.sm.Visit(c.Interpolation()) {
		return false, nil
	}
	if c.ShowStats {
		c.sm.RenderStats(c.stats.current)
	}
	if c.ShowCoordinates {
		c.sm.RenderCoordinates()
	}
	renderTime := c.now().Sub(t)

	t = c.now()
	if err := c.sm.PostProcess(); err != nil {
		return false, err
	}
	blitTime := c.now().Sub(t)

	if c.stats.add(elapsed, renderTime, updateTime, blitTime, updates) {
		for _, o := range c.observers {
			o.ObserveStats(c.stats.current)
		}
	}

	if c.FrameLimit {
		if spent := c.now().Sub(frameStart); spent < FramePeriod {
			c.sleep(FramePeriod - spent)
		}
	}
	return true, nil
}

// pollInput translates platform events into IO events. It returns false on
// quit or escape.
func (c *Core) pollInput() bool {
	for _, ev := range c.platform.PollEvents() {
		switch ev.Type {
		case InputQuit:
			return false
		case InputKeyDown:
			if ev.Key == KeyEscape {
				return false
			}
			c.sm.IOEvent(IOEvent{Type: IOEventKeyboard, Key: ev.Key, Pressed: true})
		case InputKeyUp:
			c.sm.IOEvent(IOEvent{Type: IOEventKeyboard, Key: ev.Key})
		case InputMouseMotion:
			c.sm.IOEvent(NewMouseEvent(ev.X, ev.Y))
		}
	}
	return true
}

// Run iterates until the loop stops or ctx is cancelled.
func (c *Core) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ok, err := c.Iterate()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
