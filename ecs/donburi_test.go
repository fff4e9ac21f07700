package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/ranger"
)

func TestDonburiSinkPublishesEvents(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []ranger.IOEvent
	IOEventType.Subscribe(world, func(w donburi.World, e ranger.IOEvent) {
		received = append(received, e)
	})

	sink.EmitIOEvent(ranger.NewMouseEvent(100, 200))
	sink.EmitIOEvent(ranger.IOEvent{Type: ranger.IOEventKeyboard, Key: "Space", Pressed: true})
	assert.Empty(t, received, "events are queued until processed")

	IOEventType.ProcessEvents(world)
	require.Len(t, received, 2)
	assert.Equal(t, 100, received[0].X)
	assert.Equal(t, 200, received[0].Y)
	assert.Equal(t, "Space", received[1].Key)
}

func TestDonburiSinkMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	IOEventType.Subscribe(world, func(donburi.World, ranger.IOEvent) { count1++ })
	IOEventType.Subscribe(world, func(donburi.World, ranger.IOEvent) { count2++ })

	sink.EmitIOEvent(ranger.NewMouseEvent(1, 1))
	events.ProcessAllEvents(world)
	assert.Equal(t, 1, count1)
	assert.Equal(t, 1, count2)
}

func TestSceneManagerFeedsDonburi(t *testing.T) {
	world := donburi.NewWorld()
	var received []ranger.IOEvent
	IOEventType.Subscribe(world, func(_ donburi.World, e ranger.IOEvent) {
		received = append(received, e)
	})

	sm := ranger.NewSceneManager(ranger.NewRenderContext(nil, nil), nil)
	sm.SetEventSink(NewDonburiSink(world))
	sm.PushScene(ranger.NewScene(&ranger.IDGenerator{}, "scene"))
	sm.Visit(0)
	sm.IOEvent(ranger.NewMouseEvent(5, 6))

	IOEventType.ProcessEvents(world)
	require.Len(t, received, 1)
	assert.Equal(t, ranger.IOEventMouse, received[0].Type)
}

func TestAttachAndEachNode(t *testing.T) {
	world := donburi.NewWorld()
	ids := &ranger.IDGenerator{}
	scene := ranger.NewScene(ids, "scene")
	ship := ranger.NewLeaf(ids, "ship", scene)
	rock := ranger.NewLeaf(ids, "rock", scene)

	Attach(world, scene)
	Attach(world, ship)
	Attach(world, rock)

	seen := map[string]bool{}
	EachNode(world, func(_ donburi.Entity, n *ranger.Node) { seen[n.Name] = true })
	assert.Equal(t, map[string]bool{"scene": true, "ship": true, "rock": true}, seen)

	scene.RemoveChild(rock)
	seen = map[string]bool{}
	EachNode(world, func(_ donburi.Entity, n *ranger.Node) { seen[n.Name] = true })
	assert.Equal(t, map[string]bool{"scene": true, "ship": true}, seen)
	assert.Equal(t, 2, world.Len())
}
