package ranger

// IOEventType identifies an event routed to the running scene.
type IOEventType uint8

const (
	IOEventNone IOEventType = iota
	IOEventMouse
	IOEventJoystick
	IOEventKeyboard
)

var ioEventNames = [...]string{"None", "Mouse", "Joystick", "Keyboard"}

func (t IOEventType) String() string {
	if int(t) < len(ioEventNames) {
		return ioEventNames[t]
	}
	return "Unknown"
}

// IOEvent carries input to scene nodes. X and Y are device coordinates.
// Keyboard events carry the key name and whether it was pressed or released.
// For nodes registered with RegisterForIOEvents, Target is the receiving
// node and LocalX/LocalY are the device coordinates mapped into its space.
type IOEvent struct {
	Type    IOEventType
	X, Y    int
	Key     string
	Pressed bool
	Target  *Node
	LocalX  float64
	LocalY  float64
}

// NewMouseEvent creates a mouse event at device coordinates.
func NewMouseEvent(x, y int) IOEvent {
	return IOEvent{Type: IOEventMouse, X: x, Y: y}
}

// IOEventSink receives every IO event the SceneManager dispatches. Used to
// bridge input into other systems such as an ECS world.
type IOEventSink interface {
	EmitIOEvent(ev IOEvent)
}

// GlobalSceneData holds input state shared by every scene.
type GlobalSceneData struct {
	mouseX, mouseY int
	mouseChanged   bool
	viewX, viewY   float64
	targets        []*Node
}

// SetMouse records the device mouse position.
func (d *GlobalSceneData) SetMouse(x, y int) {
	d.mouseX, d.mouseY = x, y
	d.mouseChanged = true
}

// Mouse returns the last device mouse position.
func (d *GlobalSceneData) Mouse() (int, int) {
	return d.mouseX, d.mouseY
}

// View returns the last mouse position mapped into view space.
func (d *GlobalSceneData) View() (float64, float64) {
	return d.viewX, d.viewY
}

// updateViewCoords remaps the mouse into view space if it moved.
func (d *GlobalSceneData) updateViewCoords(ctx *RenderContext) {
	if !d.mouseChanged {
		return
	}
	d.viewX, d.viewY = MapDeviceToView(ctx, float64(d.mouseX), float64(d.mouseY))
	d.mouseChanged = false
}

// Targets returns the nodes registered for targeted IO events.
func (d *GlobalSceneData) Targets() []*Node {
	return d.targets
}

func (d *GlobalSceneData) isTarget(n *Node) bool {
	for _, t := range d.targets {
		if t == n {
			return true
		}
	}
	return false
}

// register adds the node with id under root. Unknown ids are ignored.
func (d *GlobalSceneData) register(root *Node, id uint32) bool {
	n := FindNode(id, root)
	if n == nil {
		Logger().Warn("ranger: cannot register for io events, node not found", "id", id)
		return false
	}
	if !d.isTarget(n) {
		d.targets = append(d.targets, n)
	}
	return true
}

// unregister removes the node with id under root. Unknown ids are ignored.
func (d *GlobalSceneData) unregister(root *Node, id uint32) bool {
	n := FindNode(id, root)
	if n == nil {
		Logger().Warn("ranger: cannot unregister from io events, node not found", "id", id)
		return false
	}
	out := d.targets[:0]
	for _, t := range d.targets {
		if t.ID != n.ID {
			out = append(out, t)
		}
	}
	clear(d.targets[len(out):])
	d.targets = out
	return true
}
