package ranger

import "time"

// Canvas is the drawing surface a backend provides. Coordinates are device
// pixels; RenderContext applies node transforms before calling in.
type Canvas interface {
	Size() (width, height int)
	Clear(c Color)
	SetPixel(x, y int, c Color)
	DrawLine(x1, y1, x2, y2 float64, c Color)
	DrawRect(r Rect, filled bool, c Color)
	FillTriangle(a, b, c Vec2, col Color)
	DrawText(s string, x, y float64, c Color)
}

// Presenter shows the finished frame.
type Presenter interface {
	Present() error
}

// Platform is the window and input collaborator driven by Core.
type Platform interface {
	Presenter
	PollEvents() []InputEvent
	Canvas() Canvas
}

// Clock is implemented by platforms that keep their own time, such as a
// headless platform stepping a fixed amount per frame. A World whose
// platform is a Clock drives its Core from it.
type Clock interface {
	Now() time.Time
}

// InputEventType identifies a raw platform event.
type InputEventType uint8

const (
	InputQuit        InputEventType = iota // window closed or quit requested
	InputKeyDown                           // key pressed
	InputKeyUp                             // key released
	InputMouseMotion                       // pointer moved to (X, Y)
)

// KeyEscape is the key name backends report for the escape key.
const KeyEscape = "Escape"

// InputEvent is a raw event polled from a Platform. Key holds the key name
// for keyboard events; X and Y hold device coordinates for pointer events.
type InputEvent struct {
	Type InputEventType
	Key  string
	X, Y int
}
