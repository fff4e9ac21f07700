package software

import "github.com/phanxgames/ranger"

// InjectMove queues a pointer move to device coordinates (x, y). Each
// queued event is delivered on its own frame.
func (p *Platform) InjectMove(x, y int) {
	p.injectQueue = append(p.injectQueue, ranger.InputEvent{Type: ranger.InputMouseMotion, X: x, Y: y})
}

// InjectKeyDown queues a key press.
func (p *Platform) InjectKeyDown(key string) {
	p.injectQueue = append(p.injectQueue, ranger.InputEvent{Type: ranger.InputKeyDown, Key: key})
}

// InjectKeyUp queues a key release.
func (p *Platform) InjectKeyUp(key string) {
	p.injectQueue = append(p.injectQueue, ranger.InputEvent{Type: ranger.InputKeyUp, Key: key})
}

// InjectKey queues a press followed by a release. Consumes two frames.
func (p *Platform) InjectKey(key string) {
	p.InjectKeyDown(key)
	p.InjectKeyUp(key)
}

// InjectSweep queues pointer moves from (fromX, fromY) to (toX, toY) spread
// linearly over frames frames. Minimum frames is 2 (start and end).
func (p *Platform) InjectSweep(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := range frames {
		t := float64(i) / float64(frames-1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		p.InjectMove(int(x+0.5), int(y+0.5))
	}
}

// InjectQuit makes the next poll report a quit.
func (p *Platform) InjectQuit() {
	p.quit = true
}

// Pending returns the number of queued events not yet delivered.
func (p *Platform) Pending() int {
	return len(p.injectQueue)
}
