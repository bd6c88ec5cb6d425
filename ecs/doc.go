// Package ecs provides ECS adapters for inputmix's button edge events.
//
// The primary adapter is [NewDonburiStore], which bridges press and release
// edges of watched buttons into a [Donburi] world as typed events.
// Subscribe to [ButtonEventType] in your ECS systems to receive them.
//
// Usage:
//
//	mixer.SetEventStore(ecs.NewDonburiStore(world))
//	mixer.Watch(jump, fire)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
