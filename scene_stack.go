package ranger

// SceneStack tracks pushed scenes plus the running and next scene. Running
// and next are never nil; an empty slot holds the stack's Nil sentinel.
type SceneStack struct {
	scenes  []*Node
	nilNode *Node
	running *Node
	next    *Node
	flush   bool
}

// NewSceneStack creates an empty stack with both slots set to Nil.
func NewSceneStack() *SceneStack {
	nilNode := NewNil()
	return &SceneStack{
		nilNode: nilNode,
		running: nilNode,
		next:    nilNode,
	}
}

// Push makes scene the next scene, clears the flush flag, and appends it.
func (st *SceneStack) Push(scene *Node) {
	st.flush = false
	st.next = scene
	st.scenes = append(st.scenes, scene)
	Logger().Debug("ranger: scene pushed", "scene", scene.String(), "depth", len(st.scenes))
}

// Pop removes the top scene and makes the scene beneath it the next scene,
// signalling that the outgoing scene should be flushed. Popping the last
// scene leaves next as Nil; popping an empty stack is a logged no-op.
func (st *SceneStack) Pop() {
	if len(st.scenes) == 0 {
		Logger().Warn("ranger: pop on empty scene stack")
		return
	}
	top := st.scenes[len(st.scenes)-1]
	st.scenes[len(st.scenes)-1] = nil
	st.scenes = st.scenes[:len(st.scenes)-1]

	st.next = st.nilNode
	if len(st.scenes) > 0 {
		st.next = st.scenes[len(st.scenes)-1]
	}
	st.flush = true
	Logger().Debug("ranger: scene popped", "scene", top.String(), "next", st.next.String())
}

// Replace makes scene the next scene, swaps it for the current top of the
// stack, and signals a flush.
func (st *SceneStack) Replace(scene *Node) {
	st.next = scene
	if len(st.scenes) > 0 {
		st.scenes[len(st.scenes)-1] = nil
		st.scenes = st.scenes[:len(st.scenes)-1]
	}
	st.scenes = append(st.scenes, scene)
	st.flush = true
	Logger().Debug("ranger: scene replaced", "scene", scene.String())
}

// IsEmpty reports whether no scenes are on the stack.
func (st *SceneStack) IsEmpty() bool {
	return len(st.scenes) == 0
}

// Len returns the number of scenes on the stack.
func (st *SceneStack) Len() int {
	return len(st.scenes)
}

// Running returns the running scene (possibly the Nil sentinel).
func (st *SceneStack) Running() *Node {
	return st.running
}

// Next returns the pending scene (possibly the Nil sentinel).
func (st *SceneStack) Next() *Node {
	return st.next
}

// FlushRequested reports whether the outgoing scene should be flushed.
func (st *SceneStack) FlushRequested() bool {
	return st.flush
}

// promote moves next into the running slot and resets next to Nil.
func (st *SceneStack) promote() {
	st.running = st.next
	st.next = st.nilNode
}

// Close flushes every scene still on the stack and empties it.
func (st *SceneStack) Close() {
	Logger().Debug("ranger: closing scene stack", "scenes", len(st.scenes))
	for _, scene := range st.scenes {
		scene.Flush()
	}
	clear(st.scenes)
	st.scenes = st.scenes[:0]
	st.running = st.nilNode
	st.next = st.nilNode
}
