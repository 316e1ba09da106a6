// Package ecs bridges tilemenu events into an ECS world.
//
// [NewDonburiSink] publishes every menu event to a [Donburi] world as a
// typed event. Subscribe to [MenuEventType] in your ECS systems to react to
// tile activations and page switches.
//
// Usage:
//
//	menu.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
