package ecs

import (
	"testing"

	"github.com/phanxgames/tilemenu"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func tiles(n int) *tilemenu.StaticDelegate {
	d := &tilemenu.StaticDelegate{}
	for i := 0; i < n; i++ {
		d.Tiles = append(d.Tiles, tilemenu.Tile{Title: "t"})
	}
	return d
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []MenuEvent
	MenuEventType.Subscribe(world, func(w donburi.World, e MenuEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(tilemenu.Event{Kind: tilemenu.EventDidActivateTile, Tile: 4, Page: -1})
	sink.EmitEvent(tilemenu.Event{Kind: tilemenu.EventDidSwitchToPage, Tile: -1, Page: 2})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	MenuEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Kind != tilemenu.EventDidActivateTile || received[0].Tile != 4 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != tilemenu.EventDidSwitchToPage || received[1].Page != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_MenuLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	cfg := tilemenu.DefaultConfig()
	cfg.AnimationDuration = 0
	menu, err := tilemenu.New(tiles(9), cfg)
	if err != nil {
		t.Fatal(err)
	}
	menu.SetEventSink(NewDonburiSink(world))

	var kinds []tilemenu.EventKind
	MenuEventType.Subscribe(world, func(w donburi.World, e MenuEvent) {
		kinds = append(kinds, e.Kind)
	})

	if _, err := menu.Display(tilemenu.Vec2{X: 200, Y: 200}, tilemenu.Rect{Width: 400, Height: 400}); err != nil {
		t.Fatal(err)
	}
	menu.GoToNextPage()
	menu.Dismiss()
	events.ProcessAllEvents(world)

	want := []tilemenu.EventKind{
		tilemenu.EventWillDisplay, tilemenu.EventDidDisplay,
		tilemenu.EventWillSwitchToPage, tilemenu.EventDidSwitchToPage,
		tilemenu.EventWillDismiss, tilemenu.EventDidDismiss,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
