package tilemenu

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenGroup animates up to 4 float64 fields together. Values are written
// back every Update. A positive delay holds the fields at their start values
// until it elapses.
type tweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	delay  float32
	Done   bool
}

func newTweenGroup(duration float32, fn ease.TweenFunc, pairs ...tweenTarget) *tweenGroup {
	g := &tweenGroup{}
	for _, p := range pairs {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[g.count] = p.field
		g.count++
	}
	return g
}

// tweenTarget pairs a field with the value it should end at.
type tweenTarget struct {
	field *float64
	to    float64
}

// Update advances all tweens by dt seconds.
func (g *tweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		dt = -g.delay
		g.delay = 0
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// appearance is the animated presentation state. It outlives a display
// session so the hide animation can run after the menu state is reset.
type appearance struct {
	drawn  bool // anything left to draw
	hiding bool

	center Vec2 // where the bezel is drawn; slides on relayout
	page   int  // page whose tiles are drawn
	scale  float64
	alpha  float64
	tiles  [TilesPerPage]float64 // per-slot pop-in scale

	groups []*tweenGroup
	slider *tweenGroup   // running center slide, if any
	pops   []*tweenGroup // running tile pop-ins
}

func (a *appearance) add(g *tweenGroup) {
	a.groups = append(a.groups, g)
}

// drop stops the given groups, leaving their fields where they are.
func (a *appearance) drop(gs ...*tweenGroup) {
	for _, g := range gs {
		if g == nil {
			continue
		}
		for i, live := range a.groups {
			if live == g {
				copy(a.groups[i:], a.groups[i+1:])
				a.groups[len(a.groups)-1] = nil
				a.groups = a.groups[:len(a.groups)-1]
				break
			}
		}
	}
}

// show starts the display animation at center.
func (a *appearance) show(center Vec2, page int, duration float32) {
	a.clear()
	a.drawn = true
	a.hiding = false
	a.center = center
	a.page = page
	if duration <= 0 {
		a.scale, a.alpha = 1, 1
		a.setTiles(1)
		return
	}
	a.scale, a.alpha = 0.85, 0
	a.add(newTweenGroup(duration, ease.OutBack,
		tweenTarget{&a.scale, 1},
		tweenTarget{&a.alpha, 1},
	))
	a.popTiles(duration)
}

// hide fades the bezel out. The menu state is already reset when this runs.
func (a *appearance) hide(duration float32) {
	a.clear()
	if duration <= 0 {
		a.drawn = false
		a.hiding = false
		return
	}
	a.hiding = true
	a.add(newTweenGroup(duration, ease.InQuad,
		tweenTarget{&a.alpha, 0},
		tweenTarget{&a.scale, 0.9},
	))
}

func (a *appearance) clear() {
	for i := range a.groups {
		a.groups[i] = nil
	}
	a.groups = a.groups[:0]
	a.slider = nil
	a.pops = a.pops[:0]
}

// switchPage pops in the tiles of page one slot after another.
func (a *appearance) switchPage(page int, duration float32) {
	a.page = page
	if duration <= 0 {
		a.drop(a.pops...)
		a.pops = a.pops[:0]
		a.setTiles(1)
		return
	}
	a.popTiles(duration)
}

// slide moves the drawn center to to. A slide already running is replaced
// and the new one starts from wherever it left the center.
func (a *appearance) slide(to Vec2, duration float32) {
	a.drop(a.slider)
	a.slider = nil
	if duration <= 0 {
		a.center = to
		return
	}
	a.slider = newTweenGroup(duration, ease.OutCubic,
		tweenTarget{&a.center.X, to.X},
		tweenTarget{&a.center.Y, to.Y},
	)
	a.add(a.slider)
}

// popTiles restarts the staggered pop-in, replacing one already running.
func (a *appearance) popTiles(duration float32) {
	a.drop(a.pops...)
	a.pops = a.pops[:0]
	a.setTiles(0)
	step := duration / (2 * TilesPerPage)
	for i := range a.tiles {
		g := newTweenGroup(duration, ease.OutBack, tweenTarget{&a.tiles[i], 1})
		g.delay = step * float32(i)
		a.add(g)
		a.pops = append(a.pops, g)
	}
}

func (a *appearance) setTiles(v float64) {
	for i := range a.tiles {
		a.tiles[i] = v
	}
}

// update advances every running group and drops finished ones.
func (a *appearance) update(dt float32) {
	live := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(a.groups); i++ {
		a.groups[i] = nil
	}
	a.groups = live
	if a.hiding && len(a.groups) == 0 {
		a.hiding = false
		a.drawn = false
	}
}

func (a *appearance) animating() bool {
	return len(a.groups) > 0
}
