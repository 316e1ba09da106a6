package ecs

import (
	"github.com/phanxgames/tilemenu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEvent is the payload published for each menu event. It omits the
// *tilemenu.Menu pointer so systems do not hold on to the menu.
type MenuEvent struct {
	Kind tilemenu.EventKind
	Tile int
	Page int
}

// MenuEventType is the Donburi event type for tilemenu events. Events are
// queued; call ProcessEvents (or events.ProcessAllEvents) each tick.
var MenuEventType = events.NewEventType[MenuEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
func NewDonburiSink(world donburi.World) tilemenu.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(e tilemenu.Event) {
	MenuEventType.Publish(s.world, MenuEvent{Kind: e.Kind, Tile: e.Tile, Page: e.Page})
}
