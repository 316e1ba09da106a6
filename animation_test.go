package tilemenu

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenGroupReachesTarget(t *testing.T) {
	var x, y float64 = 10, 20
	g := newTweenGroup(1.0, ease.Linear, tweenTarget{&x, 100}, tweenTarget{&y, 200})

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(x-55) > 0.5 {
		t.Errorf("midway X = %f, want ~55", x)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-100) > 0.01 || math.Abs(y-200) > 0.01 {
		t.Errorf("values = (%f, %f), want (100, 200)", x, y)
	}
}

func TestTweenGroupDelay(t *testing.T) {
	var v float64
	g := newTweenGroup(0.5, ease.Linear, tweenTarget{&v, 1})
	g.delay = 0.5

	g.Update(0.25)
	if v != 0 || g.Done {
		t.Fatalf("value %f during delay, want 0", v)
	}
	g.Update(0.5) // 0.25 of delay, then 0.25 of tween
	if math.Abs(v-0.5) > 0.01 {
		t.Errorf("value = %f, want ~0.5", v)
	}
	g.Update(0.25)
	if !g.Done || math.Abs(v-1) > 0.01 {
		t.Errorf("value = %f done = %v, want 1 done", v, g.Done)
	}
}

func TestTweenGroupCapsFields(t *testing.T) {
	var a, b, c, d, e float64
	g := newTweenGroup(1, ease.Linear,
		tweenTarget{&a, 1}, tweenTarget{&b, 1}, tweenTarget{&c, 1},
		tweenTarget{&d, 1}, tweenTarget{&e, 1})
	g.Update(1)
	if g.count != 4 || e != 0 {
		t.Errorf("count = %d, e = %f", g.count, e)
	}
}

// settle runs updates until nothing animates, failing after a few seconds of
// simulated time.
func settle(t *testing.T, a *appearance) {
	t.Helper()
	for i := 0; i < 300; i++ {
		if !a.animating() {
			return
		}
		a.update(1.0 / 60)
	}
	t.Fatal("animation did not finish")
}

func TestAppearanceShowHide(t *testing.T) {
	var a appearance
	a.show(Vec2{X: 50, Y: 60}, 2, 0.2)
	if !a.drawn || a.alpha != 0 || a.scale != 0.85 || !a.animating() {
		t.Fatalf("start state: %+v", a)
	}
	settle(t, &a)
	if math.Abs(a.alpha-1) > 0.01 || math.Abs(a.scale-1) > 0.01 {
		t.Errorf("shown alpha=%f scale=%f, want 1", a.alpha, a.scale)
	}
	for i, s := range a.tiles {
		if math.Abs(s-1) > 0.01 {
			t.Errorf("tile %d scale = %f, want 1", i, s)
		}
	}
	if a.page != 2 || a.center != (Vec2{X: 50, Y: 60}) {
		t.Errorf("page=%d center=%v", a.page, a.center)
	}

	a.hide(0.2)
	if !a.drawn {
		t.Fatal("hidden before the fade ran")
	}
	settle(t, &a)
	if a.drawn {
		t.Error("still drawn after fade")
	}
}

func TestAppearanceWithoutAnimation(t *testing.T) {
	var a appearance
	a.show(Vec2{}, 0, 0)
	if a.animating() || a.alpha != 1 || a.scale != 1 || a.tiles[5] != 1 {
		t.Errorf("instant show: %+v", a)
	}
	a.slide(Vec2{X: 5, Y: 6}, 0)
	if a.center != (Vec2{X: 5, Y: 6}) {
		t.Errorf("center = %v", a.center)
	}
	a.hide(0)
	if a.drawn || a.animating() {
		t.Error("instant hide left the menu drawn")
	}
}

func TestAppearancePopTilesStaggered(t *testing.T) {
	var a appearance
	a.show(Vec2{}, 0, 0)
	a.switchPage(1, 0.6)
	a.update(0.06)
	if a.tiles[0] <= 0 {
		t.Error("first tile did not start")
	}
	if a.tiles[5] != 0 {
		t.Errorf("last tile = %f, want 0 while delayed", a.tiles[5])
	}
	settle(t, &a)
	if a.page != 1 || math.Abs(a.tiles[5]-1) > 0.01 {
		t.Errorf("page=%d tile5=%f", a.page, a.tiles[5])
	}
}

func TestMenuAnimationLifecycle(t *testing.T) {
	m, _ := newTestMenu(t, 6, func(c *Config) { c.AnimationDuration = 0.2 })
	mustDisplay(t, m, 0, Vec2{X: 200, Y: 200})
	if !m.Animating() {
		t.Fatal("display did not animate")
	}
	for i := 0; i < 60; i++ {
		m.Update(1.0 / 60)
	}
	if m.Animating() {
		t.Fatal("show animation still running after 1s")
	}

	m.Dismiss()
	// State is reset at once while the fade keeps running.
	if m.IsVisible() || !m.look.drawn {
		t.Fatalf("visible=%v drawn=%v", m.IsVisible(), m.look.drawn)
	}
	for i := 0; i < 60; i++ {
		m.Update(1.0 / 60)
	}
	if m.look.drawn {
		t.Error("menu still drawn after the hide animation")
	}
}

func TestMenuRelayoutSlides(t *testing.T) {
	m, _ := newTestMenu(t, 6, func(c *Config) { c.AnimationDuration = 0.2 })
	if _, err := m.Display(Vec2{X: 600, Y: 400}, Rect{Width: 800, Height: 800}); err != nil {
		t.Fatal(err)
	}
	for m.Animating() {
		m.Update(0.05)
	}
	target := m.Relayout(Rect{Width: 500, Height: 800})
	if m.look.center == target {
		t.Fatal("drawn center jumped instead of sliding")
	}
	for i := 0; i < 20; i++ {
		m.Update(0.05)
	}
	if math.Abs(m.look.center.X-target.X) > 0.01 {
		t.Errorf("drawn center = %v, want %v", m.look.center, target)
	}
}

func TestAppearanceSlideReplacesRunningSlide(t *testing.T) {
	var a appearance
	a.show(Vec2{X: 100, Y: 100}, 0, 0)

	a.slide(Vec2{X: 300, Y: 100}, 0.5)
	a.update(0.25)
	a.slide(Vec2{X: 0, Y: 100}, 0.5)
	if len(a.groups) != 1 {
		t.Fatalf("running groups = %d, want 1", len(a.groups))
	}
	settle(t, &a)
	if math.Abs(a.center.X) > 0.01 {
		t.Errorf("center = %v, want x 0", a.center)
	}
}

func TestAppearancePopTilesRestart(t *testing.T) {
	var a appearance
	a.show(Vec2{}, 0, 0)
	a.switchPage(1, 0.6)
	a.update(0.1)
	a.switchPage(2, 0.6)
	if len(a.groups) != TilesPerPage {
		t.Fatalf("running groups = %d, want %d", len(a.groups), TilesPerPage)
	}
	if a.tiles[0] != 0 {
		t.Errorf("tile 0 = %f, want restarted at 0", a.tiles[0])
	}

	a.switchPage(0, 0)
	if a.animating() || a.tiles[3] != 1 {
		t.Errorf("instant switch left pop-ins running: animating=%v tile3=%f", a.animating(), a.tiles[3])
	}
}

func TestMenuRelayoutTwiceSettlesOnLast(t *testing.T) {
	m, _ := newTestMenu(t, 6, func(c *Config) { c.AnimationDuration = 0.2 })
	if _, err := m.Display(Vec2{X: 600, Y: 400}, Rect{Width: 800, Height: 800}); err != nil {
		t.Fatal(err)
	}
	for m.Animating() {
		m.Update(0.05)
	}
	m.Relayout(Rect{Width: 500, Height: 800})
	m.Update(0.05)
	target := m.Relayout(Rect{Width: 420, Height: 800})
	for i := 0; i < 20; i++ {
		m.Update(0.05)
	}
	if math.Abs(m.look.center.X-target.X) > 0.01 {
		t.Errorf("drawn center = %v, want %v", m.look.center, target)
	}
}
