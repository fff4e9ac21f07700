// Package ecs bridges ranger into a [Donburi] world.
//
// [NewDonburiSink] republishes every IO event the scene manager dispatches
// as a typed Donburi event. Subscribe to [IOEventType] in your systems and
// drain it with ProcessEvents:
//
//	sink := ecs.NewDonburiSink(world)
//	sceneManager.SetEventSink(sink)
//
// [Attach] gives a scene node an entity so systems can query nodes with
// [NodeComponent].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
