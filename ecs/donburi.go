package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/ranger"
)

// IOEventType is the Donburi event type for ranger IO events.
var IOEventType = events.NewEventType[ranger.IOEvent]()

// NodeRef points an entity at a scene node.
type NodeRef struct {
	Node *ranger.Node
}

// NodeComponent holds the scene node an entity stands for.
var NodeComponent = donburi.NewComponentType[NodeRef]()

var nodeQuery = donburi.NewQuery(filter.Contains(NodeComponent))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an IOEventSink backed by a Donburi world. Events
// are queued on IOEventType until the world processes them.
func NewDonburiSink(world donburi.World) ranger.IOEventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitIOEvent(ev ranger.IOEvent) {
	IOEventType.Publish(s.world, ev)
}

// Attach creates an entity carrying a NodeComponent for n.
func Attach(world donburi.World, n *ranger.Node) donburi.Entity {
	e := world.Create(NodeComponent)
	NodeComponent.SetValue(world.Entry(e), NodeRef{Node: n})
	return e
}

// EachNode calls fn for every attached node still present in a scene tree.
// Entities whose node was flushed out of its tree are removed.
func EachNode(world donburi.World, fn func(e donburi.Entity, n *ranger.Node)) {
	var stale []donburi.Entity
	nodeQuery.Each(world, func(entry *donburi.Entry) {
		ref := NodeComponent.Get(entry)
		if ref.Node == nil || (ref.Node.Parent == nil && ref.Node.Type != ranger.NodeTypeScene) {
			stale = append(stale, entry.Entity())
			return
		}
		fn(entry.Entity(), ref.Node)
	})
	for _, e := range stale {
		world.Remove(e)
	}
}
