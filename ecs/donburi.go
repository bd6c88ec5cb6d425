package ecs

import (
	"github.com/phanxgames/inputmix"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ButtonEventType is the Donburi event type for inputmix button edges.
// Subscribe to this in your ECS systems to receive press and release events
// of watched buttons.
var ButtonEventType = events.NewEventType[inputmix.ButtonEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Button events are published to ButtonEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) inputmix.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event inputmix.ButtonEvent) {
	ButtonEventType.Publish(s.world, event)
}
