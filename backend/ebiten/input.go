package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/ranger"
)

// inputState turns ebiten's polled input state into ranger input events.
type inputState struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	cursorX  int
	cursorY  int
	hasMoved bool
}

// poll appends this tick's events to dst.
func (s *inputState) poll(dst []ranger.InputEvent) []ranger.InputEvent {
	if ebiten.IsWindowBeingClosed() {
		return append(dst, ranger.InputEvent{Type: ranger.InputQuit})
	}
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	dst = appendKeyEvents(dst, s.pressed, s.released)

	x, y := ebiten.CursorPosition()
	return s.appendMotion(dst, x, y)
}

// appendMotion reports a pointer move when the cursor changed position.
func (s *inputState) appendMotion(dst []ranger.InputEvent, x, y int) []ranger.InputEvent {
	if s.hasMoved && x == s.cursorX && y == s.cursorY {
		return dst
	}
	s.cursorX, s.cursorY, s.hasMoved = x, y, true
	return append(dst, ranger.InputEvent{Type: ranger.InputMouseMotion, X: x, Y: y})
}

// appendKeyEvents converts key transitions, presses first. Key names are
// ebiten's, so the escape key reports ranger.KeyEscape.
func appendKeyEvents(dst []ranger.InputEvent, pressed, released []ebiten.Key) []ranger.InputEvent {
	for _, k := range pressed {
		dst = append(dst, ranger.InputEvent{Type: ranger.InputKeyDown, Key: k.String()})
	}
	for _, k := range released {
		dst = append(dst, ranger.InputEvent{Type: ranger.InputKeyUp, Key: k.String()})
	}
	return dst
}
