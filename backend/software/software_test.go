package software

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/ranger"
)

var red = ranger.Color{R: 1, A: 1}

func pixel(t *testing.T, c *Canvas, x, y int) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(c.Image().At(x, y)).(color.NRGBA)
}

func newPlatform(t *testing.T, w, h int) *Platform {
	t.Helper()
	p, err := New(w, h)
	require.NoError(t, err)
	p.ScreenshotDir = t.TempDir()
	return p
}

func TestNewCanvasRejectsBadSize(t *testing.T) {
	_, err := NewCanvas(0, 10)
	assert.Error(t, err)
}

func TestCanvasClearAndSetPixel(t *testing.T) {
	c, err := NewCanvas(8, 8)
	require.NoError(t, err)
	w, h := c.Size()
	assert.Equal(t, []int{8, 8}, []int{w, h})

	c.Clear(ranger.ColorBlack)
	c.SetPixel(3, 4, red)
	assert.Equal(t, color.NRGBA{A: 255}, pixel(t, c, 0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, pixel(t, c, 3, 4))
}

func TestCanvasFilledShapesCoverInterior(t *testing.T) {
	c, err := NewCanvas(64, 64)
	require.NoError(t, err)
	c.Clear(ranger.ColorBlack)

	c.DrawRect(ranger.Rect{X: 10, Y: 10, Width: 20, Height: 20}, true, red)
	c.FillTriangle(ranger.Vec2{X: 40, Y: 60}, ranger.Vec2{X: 60, Y: 60}, ranger.Vec2{X: 50, Y: 40}, ranger.ColorLime)

	assert.Equal(t, uint8(255), pixel(t, c, 20, 20).R)
	assert.Equal(t, uint8(0), pixel(t, c, 5, 5).R, "outside the rect stays clear")
	assert.Equal(t, uint8(255), pixel(t, c, 50, 55).G)
}

func TestPlatformDeliversOneEventPerPoll(t *testing.T) {
	p := newPlatform(t, 8, 8)
	p.InjectMove(1, 2)
	p.InjectKey("A")
	assert.Equal(t, 3, p.Pending())

	assert.Equal(t, []ranger.InputEvent{{Type: ranger.InputMouseMotion, X: 1, Y: 2}}, p.PollEvents())
	assert.Equal(t, []ranger.InputEvent{{Type: ranger.InputKeyDown, Key: "A"}}, p.PollEvents())
	assert.Equal(t, []ranger.InputEvent{{Type: ranger.InputKeyUp, Key: "A"}}, p.PollEvents())
	assert.Nil(t, p.PollEvents())
}

func TestPlatformInjectSweep(t *testing.T) {
	p := newPlatform(t, 8, 8)
	p.InjectSweep(0, 0, 10, 20, 3)
	var got [][2]int
	for p.Pending() > 0 {
		ev := p.PollEvents()[0]
		got = append(got, [2]int{ev.X, ev.Y})
	}
	assert.Equal(t, [][2]int{{0, 0}, {5, 10}, {10, 20}}, got)
}

func TestPlatformQuits(t *testing.T) {
	p := newPlatform(t, 8, 8)
	p.MaxFrames = 2
	require.NoError(t, p.Present())
	assert.Nil(t, p.PollEvents())
	require.NoError(t, p.Present())
	assert.Equal(t, ranger.InputQuit, p.PollEvents()[0].Type)

	q := newPlatform(t, 8, 8)
	q.InjectQuit()
	assert.Equal(t, ranger.InputQuit, q.PollEvents()[0].Type)
}

func TestPlatformOnPresent(t *testing.T) {
	p := newPlatform(t, 8, 8)
	var frames []int
	p.OnPresent = func(frame int, c *Canvas) {
		frames = append(frames, frame)
		assert.Same(t, p.SoftwareCanvas(), c)
	}
	require.NoError(t, p.Present())
	require.NoError(t, p.Present())
	assert.Equal(t, []int{1, 2}, frames)
	assert.Equal(t, 2, p.Frames())
}

func TestScreenshotWritesPNG(t *testing.T) {
	p := newPlatform(t, 8, 8)
	p.Screenshot("after click!")
	require.NoError(t, p.Present())

	matches, err := filepath.Glob(filepath.Join(p.ScreenshotDir, "*_after_click_.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))

	require.NoError(t, p.Present())
	matches, _ = filepath.Glob(filepath.Join(p.ScreenshotDir, "*.png"))
	assert.Len(t, matches, 1, "the queue is drained after writing")
}

func TestSanitizeLabel(t *testing.T) {
	assert.Equal(t, "unlabeled", sanitizeLabel("  "))
	assert.Equal(t, "a_b-c.d", sanitizeLabel("a/b-c.d"))
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := LoadScript([]byte(`{`))
	assert.Error(t, err)
	_, err = LoadScript([]byte(`{"steps": []}`))
	assert.Error(t, err)
	_, err = LoadScript([]byte(`{"steps": [{"action": "dance"}]}`))
	assert.ErrorContains(t, err, "unknown action")
}

func TestScriptSequencesActions(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 4, "y": 5},
		{"action": "wait", "frames": 2},
		{"action": "key", "key": "Space"},
		{"action": "quit"}
	]}`))
	require.NoError(t, err)
	p := newPlatform(t, 8, 8)
	p.SetScript(s)

	var polled [][]ranger.InputEvent
	for range 8 {
		evs := p.PollEvents()
		polled = append(polled, evs)
		if len(evs) > 0 && evs[0].Type == ranger.InputQuit {
			break
		}
	}

	assert.Equal(t, []ranger.InputEvent{{Type: ranger.InputMouseMotion, X: 4, Y: 5}}, polled[0])
	assert.Nil(t, polled[1], "wait frame 1")
	assert.Nil(t, polled[2], "wait frame 2")
	assert.Equal(t, ranger.InputKeyDown, polled[3][0].Type)
	assert.Equal(t, ranger.InputKeyUp, polled[4][0].Type)
	assert.Equal(t, ranger.InputQuit, polled[len(polled)-1][0].Type)
	assert.True(t, s.Done())
}

func TestWorldRendersThroughSoftwarePlatform(t *testing.T) {
	props := ranger.DefaultWorldProperties()
	props.ConfigFile = ""
	props.WindowWidth, props.WindowHeight = 64, 64
	props.ViewWidth, props.ViewHeight = 64, 64

	var platform *Platform
	w, err := ranger.NewWorld(props, func(cfg ranger.Config) (ranger.Platform, error) {
		p, err := New(cfg.WindowWidth, cfg.WindowHeight)
		if err != nil {
			return nil, err
		}
		p.MaxFrames = 3
		platform = p
		return p, nil
	})
	require.NoError(t, err)

	status, err := w.Launch(func(w *ranger.World) bool {
		scene := ranger.NewScene(w, "scene")
		rect := ranger.NewRectangleNode(w, "rect", scene, true)
		rect.SetScale(20)
		rect.Color = red
		w.PushScene(scene)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, ranger.StatusExited, status)
	assert.Equal(t, 3, platform.Frames())

	c := platform.SoftwareCanvas()
	assert.Equal(t, uint8(255), pixel(t, c, 36, 28).R, "centered view puts the origin mid-canvas")
	assert.Equal(t, uint8(0), pixel(t, c, 2, 2).R)
}

func TestPlatformFrameStepClock(t *testing.T) {
	p, err := New(8, 8)
	require.NoError(t, err)
	p.FrameStep = ranger.UpdatePeriod

	start := p.Now()
	require.NoError(t, p.Present())
	require.NoError(t, p.Present())
	assert.Equal(t, 2*ranger.UpdatePeriod, p.Now().Sub(start))
}

func TestWorldUsesFrameStepClock(t *testing.T) {
	props := ranger.DefaultWorldProperties()
	props.ConfigFile = ""
	props.WindowWidth, props.WindowHeight = 16, 16
	props.ViewWidth, props.ViewHeight = 16, 16

	w, err := ranger.NewWorld(props, func(cfg ranger.Config) (ranger.Platform, error) {
		p, err := New(cfg.WindowWidth, cfg.WindowHeight)
		if err != nil {
			return nil, err
		}
		p.MaxFrames = 8
		p.FrameStep = ranger.UpdatePeriod
		return p, nil
	})
	require.NoError(t, err)

	updates := 0
	_, err = w.Launch(func(w *ranger.World) bool {
		scene := ranger.NewScene(w, "scene")
		ticker := ranger.NewLeaf(w, "ticker", scene)
		ticker.SetTimingTarget(ranger.PriorityNormal)
		ticker.OnUpdate = func(float64) { updates++ }
		w.Scheduler().Register(ticker)
		w.PushScene(scene)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updates, "one update per frame after the first")
}
