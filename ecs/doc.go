// Package ecs provides ECS adapters for gesture results.
//
// The primary adapter is [NewDonburiStore], which forwards every result the
// engine dispatches (tap, pan, swipe, pinch, rotate, hold, ...) into a
// [Donburi] world as a typed event. Subscribe to [GestureEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
