package ranger

import "fmt"

// IDSource hands out node ids. A World is the usual source; tests can use
// an IDGenerator directly.
type IDSource interface {
	GenID() uint32
}

// IDGenerator is a monotonic id counter. Zero is reserved for Nil nodes.
// Not safe for concurrent use; ranger is single-threaded.
type IDGenerator struct {
	last uint32
}

// GenID returns the next id, starting at 1.
func (g *IDGenerator) GenID() uint32 {
	g.last++
	return g.last
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// all node kinds; behavior is attached through the On* callback fields, which
// are nil by default.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy. Parent is a back-reference and never owns the parent.
	Parent   *Node
	children []*Node

	Visible bool

	// Transform (local). Rotation is in degrees.
	x, y           float64
	rotation       float64
	scaleX, scaleY float64
	local          AffineTransform
	inverse        AffineTransform
	dirty          bool
	recomputes     int

	// Timing
	timingTarget bool
	paused       bool
	Priority     TimingPriority

	// Appearance, used by nodes that render geometry or text.
	Color    Color
	Text     string
	Vertices []Vec2
	Filled   bool
	bucket   []Vec2

	// Filter policy (NodeTypeFilter)
	excludeTranslation bool
	excludeRotation    bool
	excludeScale       bool

	// Scenes
	replacement *Node
	outgoing    *Node

	// Metadata
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnDraw        func(ctx *RenderContext)
	OnUpdate      func(dt float64)
	OnInterpolate func(interpolation float64)
	OnEnter       func(sm *SceneManager)
	OnExit        func()
	OnBeginExit   func()
	OnEndEnter    func()
	OnTransition  func(sm *SceneManager) SceneAction
	OnIOEvent     func(ev IOEvent)
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node, ids IDSource) {
	n.ID = ids.GenID()
	n.scaleX = 1
	n.scaleY = 1
	n.Color = ColorWhite
	n.Visible = true
	n.dirty = true
	n.local = IdentityTransform
	n.inverse = IdentityTransform
}

func newNode(ids IDSource, name string, typ NodeType, parent *Node) *Node {
	n := &Node{Name: name, Type: typ}
	nodeDefaults(n, ids)
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

// NewNil creates a Nil sentinel node. It has id 0, is never visible and never
// has children.
func NewNil() *Node {
	return &Node{
		Name:    "Nil",
		Type:    NodeTypeNil,
		scaleX:  1,
		scaleY:  1,
		local:   IdentityTransform,
		inverse: IdentityTransform,
	}
}

// NewLeaf creates a renderable node without children and attaches it to
// parent when parent is non-nil.
func NewLeaf(ids IDSource, name string, parent *Node) *Node {
	return newNode(ids, name, NodeTypeLeaf, parent)
}

// NewGroup creates a container node that carries a transform for its children.
func NewGroup(ids IDSource, name string, parent *Node) *Node {
	return newNode(ids, name, NodeTypeGroup, parent)
}

// NewScene creates a scene root. Scenes are pushed onto a SceneManager and
// never have a parent.
func NewScene(ids IDSource, name string) *Node {
	return newNode(ids, name, NodeTypeScene, nil)
}

// IsNil reports whether n is absent or a Nil sentinel. Safe on a nil receiver.
func (n *Node) IsNil() bool {
	return n == nil || n.Type == NodeTypeNil
}

// String returns "'name' (id)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("'%s' (%d)", n.Name, n.ID)
}

// --- Transform setters ---

// SetPosition sets the local position and ripples dirty to the subtree.
func (n *Node) SetPosition(x, y float64) {
	n.x, n.y = x, y
	n.RippleDirty()
}

// Position returns the local position.
func (n *Node) Position() (float64, float64) {
	return n.x, n.y
}

// SetRotationDegrees sets the local rotation and ripples dirty to the subtree.
func (n *Node) SetRotationDegrees(degrees float64) {
	n.rotation = degrees
	n.RippleDirty()
}

// RotationDegrees returns the local rotation.
func (n *Node) RotationDegrees() float64 {
	return n.rotation
}

// SetScale sets a uniform scale and ripples dirty to the subtree.
func (n *Node) SetScale(s float64) {
	n.scaleX, n.scaleY = s, s
	n.RippleDirty()
}

// SetNonuniformScale sets independent X and Y scale factors.
func (n *Node) SetNonuniformScale(sx, sy float64) {
	n.scaleX, n.scaleY = sx, sy
	n.RippleDirty()
}

// Scale returns the local scale factors.
func (n *Node) Scale() (float64, float64) {
	return n.scaleX, n.scaleY
}

// IsDirty reports whether the cached local matrix is stale.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// RippleDirty marks this node and every descendant dirty. Ancestors and
// siblings are left alone.
func (n *Node) RippleDirty() {
	markSubtreeDirty(n)
}

// markSubtreeDirty sets dirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.dirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children and sets child.Parent.
// If child already has a parent, it is removed from that parent first.
// Panics if n is not a container, child is nil, or child is an ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("ranger: cannot add nil child")
	}
	if !n.Type.IsContainer() {
		panic(fmt.Sprintf("ranger: %s node %s cannot have children", n.Type, n))
	}
	if isAncestor(child, n) {
		panic("ranger: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if debugEnabled() {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("ranger: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list and true for container nodes, or nil and
// false for leaf kinds. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() ([]*Node, bool) {
	if !n.Type.IsContainer() {
		return nil, false
	}
	return n.children, true
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// --- Timing ---

// SetTimingTarget makes the node eligible for scheduler updates at the given
// priority. RegisterTimingTargets picks up eligible nodes.
func (n *Node) SetTimingTarget(p TimingPriority) {
	n.timingTarget = true
	n.Priority = p
}

// IsTimingTarget reports whether the node receives scheduler updates.
func (n *Node) IsTimingTarget() bool {
	return n.timingTarget
}

// Paused reports whether scheduler updates are suspended for this node.
func (n *Node) Paused() bool {
	return n.paused
}

// SetPaused suspends or resumes scheduler updates for this node only.
func (n *Node) SetPaused(paused bool) {
	n.paused = paused
}

// update is called by the Scheduler with elapsed seconds.
func (n *Node) update(dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
}

// --- Scenes ---

// SetReplacement sets the scene that replaces n when n requests a transition.
func (n *Node) SetReplacement(scene *Node) {
	n.replacement = scene
}

// TakeTransitionScene returns the held replacement and clears it. A second
// call returns nil.
func (n *Node) TakeTransitionScene() *Node {
	s := n.replacement
	n.replacement = nil
	return s
}

// transition asks the node which scene action it wants this frame.
func (n *Node) transition(sm *SceneManager) SceneAction {
	if n.OnTransition == nil {
		return NoAction
	}
	return n.OnTransition(sm)
}
