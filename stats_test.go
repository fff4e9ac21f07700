package ranger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsCollectorPublishesAfterOneSecond(t *testing.T) {
	var c statsCollector
	for range 3 {
		assert.False(t, c.add(250*time.Millisecond, 2*time.Millisecond, time.Millisecond, 4*time.Millisecond, 7))
	}
	assert.True(t, c.add(250*time.Millisecond, 2*time.Millisecond, time.Millisecond, 4*time.Millisecond, 8))

	s := c.current
	assert.InDelta(t, 4, s.FPS, 1e-9)
	assert.InDelta(t, 29, s.UPS, 1e-9)
	assert.Equal(t, 2*time.Millisecond, s.AvgRender)
	assert.Equal(t, time.Millisecond, s.AvgUpdate)
	assert.Equal(t, 4*time.Millisecond, s.AvgBlit)

	assert.False(t, c.add(time.Millisecond, 0, 0, 0, 0), "window restarts after publishing")
	assert.Equal(t, s, c.current)
}

func TestMs(t *testing.T) {
	assert.Equal(t, 1.5, ms(1500*time.Microsecond))
}
