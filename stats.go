package ranger

import "time"

// Stats is a once-per-second snapshot of loop performance.
type Stats struct {
	FPS       float64       // frames rendered in the last second
	UPS       float64       // fixed updates run in the last second
	AvgRender time.Duration // mean time spent visiting the scene per frame
	AvgUpdate time.Duration // mean time spent in scheduler updates per frame
	AvgBlit   time.Duration // mean time spent presenting per frame
}

// StatsObserver receives a Stats snapshot every time one is published.
type StatsObserver interface {
	ObserveStats(s Stats)
}

// StatsObserverFunc adapts a function to StatsObserver.
type StatsObserverFunc func(s Stats)

// ObserveStats calls f(s).
func (f StatsObserverFunc) ObserveStats(s Stats) { f(s) }

// statsCollector accumulates per-frame samples and publishes averages every
// accumulated second.
type statsCollector struct {
	elapsed     time.Duration
	frames      int
	updates     int
	renderTotal time.Duration
	updateTotal time.Duration
	blitTotal   time.Duration
	current     Stats
}

// add records one frame. It reports whether a new snapshot was published.
func (c *statsCollector) add(elapsed, render, update, blit time.Duration, updates int) bool {
	c.elapsed += elapsed
	c.frames++
	c.updates += updates
	c.renderTotal += render
	c.updateTotal += update
	c.blitTotal += blit

	if c.elapsed < time.Second {
		return false
	}

	secs := c.elapsed.Seconds()
	n := time.Duration(c.frames)
	c.current = Stats{
		FPS:       float64(c.frames) / secs,
		UPS:       float64(c.updates) / secs,
		AvgRender: c.renderTotal / n,
		AvgUpdate: c.updateTotal / n,
		AvgBlit:   c.blitTotal / n,
	}
	*c = statsCollector{current: c.current}
	return true
}

// ms converts a duration to fractional milliseconds.
func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
