// Package tilemenu is a paginated radial tile menu for [Ebitengine] touch
// interfaces, similar to a Home Screen folder popover.
//
// A menu shows a rounded bezel holding up to six tiles arranged in a
// hexagonal ring around a center button. Tiles highlight while touched and
// activate on release. Menus with more than six tiles are split into pages;
// the center button (or a horizontal swipe across the bezel) moves between
// them. The bezel is always moved the minimum distance needed to stay inside
// its parent bounds, including after the parent is resized or rotated.
//
// # Quick start
//
// Tiles come from a [Delegate]. [StaticDelegate] serves a fixed slice:
//
//	menu, err := tilemenu.New(&tilemenu.StaticDelegate{Tiles: tiles}, tilemenu.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	menu.On(tilemenu.EventDidActivateTile, func(e tilemenu.Event) {
//		fmt.Println("picked", e.Tile)
//	})
//
//	// On a tap at (x, y):
//	center, _ := menu.Display(tilemenu.Vec2{X: x, Y: y}, tilemenu.Rect{Width: w, Height: h})
//
// Drive it from your game loop:
//
//	func (g *Game) Update() error {
//		g.menu.HandleInput()
//		g.menu.Update(1.0 / float32(ebiten.TPS()))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.menu.Draw(screen) }
//
// # Layout
//
// [Layout] is a pure function of a [Config] and a center point. Ring slot 0
// sits directly below the center for right-handed menus and directly above
// for left-handed ones; the remaining slots follow in 60° steps. Slots fill
// in order, so the last slot is the thumb gap when a page is not full.
// [FitRect] keeps the bezel inside its parent.
//
// # Events
//
// Observers registered with [Menu.On] and [Menu.OnAny] are called
// synchronously. "Will" events fire before the state changes and "Did"
// events after.
//
// [Ebitengine]: https://ebitengine.org
package tilemenu
