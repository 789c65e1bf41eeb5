// Package ecs provides ECS adapters for swirl's interaction signals.
//
// The primary adapter is [NewDonburiState], a [swirl.SceneState] backed by a
// [Donburi] world: the signals live in a singleton entity component, and
// every engine update publishes a typed [SignalEvent]. Subscribe to
// [SignalEventType] in your ECS systems to react to gestures, or read the
// [Signals] component directly from your update loop.
//
// Usage:
//
//	world := donburi.NewWorld()
//	state := ecs.NewDonburiState(world)
//	engine := swirl.NewEngine(state, swirl.DefaultTuning(), 1280, 720)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
