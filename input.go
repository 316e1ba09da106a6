package tilemenu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// dragDeadZone is the movement in pixels before a press counts as a drag.
const dragDeadZone = 4.0

// pointerState tracks the single pointer that drives a menu: the mouse or
// the first active touch.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	dragging bool

	target    Slot // slot pressed, valid when hasTarget
	hasTarget bool
	onBezel   bool // press started inside the bezel
	stale     bool // press began before the menu was shown or hidden

	touchID  ebiten.TouchID
	touching bool
	touchBuf []ebiten.TouchID
}

// HandleInput reads this frame's pointer input and drives highlight,
// activation, paging and outside-tap dismissal. Injected events, if any, take
// the place of real input one per frame. Call it once per tick before Update.
func (m *Menu) HandleInput() {
	if m.script != nil {
		m.script.step(m)
	}
	if m.processInjectedInput() {
		return
	}
	x, y, pressed := m.readPointer()
	m.processPointer(x, y, pressed)
}

// readPointer returns the primary touch if one is active, else the mouse.
func (m *Menu) readPointer() (float64, float64, bool) {
	ps := &m.pointer
	ps.touchBuf = ebiten.AppendTouchIDs(ps.touchBuf[:0])

	if ps.touching {
		for _, id := range ps.touchBuf {
			if id == ps.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return float64(tx), float64(ty), true
			}
		}
		// Touch lifted: release where it was last seen.
		ps.touching = false
		return ps.lastX, ps.lastY, false
	}
	if len(ps.touchBuf) > 0 && !ps.down {
		ps.touchID = ps.touchBuf[0]
		ps.touching = true
		tx, ty := ebiten.TouchPosition(ps.touchID)
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// processPointer runs the pointer state machine for one frame.
func (m *Menu) processPointer(x, y float64, pressed bool) {
	ps := &m.pointer
	if !m.visible || ps.stale {
		if !pressed {
			ps.stale = false
		}
		ps.down = pressed
		ps.lastX, ps.lastY = x, y
		return
	}

	switch {
	case pressed && !ps.down:
		m.pointerDown(x, y)
	case pressed && ps.down:
		m.pointerMove(x, y)
	case !pressed && ps.down:
		m.pointerUp(x, y)
	}
	ps.lastX, ps.lastY = x, y
}

func (m *Menu) pointerDown(x, y float64) {
	ps := &m.pointer
	ps.down = true
	ps.startX, ps.startY = x, y
	ps.dragging = false
	ps.hasTarget = false
	ps.onBezel = m.BezelRect().Contains(x, y)

	if slot, ok := m.SlotAt(x, y); ok {
		ps.target = slot
		ps.hasTarget = true
		m.SelectTile(slot)
	}
}

func (m *Menu) pointerMove(x, y float64) {
	ps := &m.pointer
	if x == ps.lastX && y == ps.lastY {
		return
	}
	if !ps.dragging {
		dx := x - ps.startX
		dy := y - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > dragDeadZone {
			ps.dragging = true
		}
	}
	if !ps.hasTarget {
		return
	}
	// Highlight follows the finger on and off the pressed tile.
	slot, ok := m.SlotAt(x, y)
	over := ok && slot == ps.target
	_, highlighted := m.Selected()
	switch {
	case over && !highlighted:
		m.SelectTile(ps.target)
	case !over && highlighted:
		m.DeselectTile(ps.target)
	}
}

func (m *Menu) pointerUp(x, y float64) {
	ps := &m.pointer
	ps.down = false
	defer func() {
		ps.hasTarget = false
		ps.dragging = false
	}()

	if ps.dragging && ps.onBezel && m.isSwipe(x, y) {
		if ps.hasTarget {
			m.DeselectTile(ps.target)
		}
		if x < ps.startX {
			m.GoToNextPage()
		} else {
			m.goToPreviousPage()
		}
		return
	}

	if ps.hasTarget {
		if slot, ok := m.SlotAt(x, y); ok && slot == ps.target {
			m.ActivateTile(slot)
		} else {
			m.DeselectTile(ps.target)
		}
		return
	}

	if !ps.onBezel && !m.BezelRect().Contains(x, y) {
		m.TapOutside()
	}
}

// resetGesture abandons the gesture in progress. A pointer that is still down
// is ignored until it is released.
func (ps *pointerState) resetGesture() {
	ps.stale = ps.down
	ps.dragging = false
	ps.hasTarget = false
	ps.onBezel = false
}

// isSwipe reports whether the gesture ending at (x, y) is a mostly
// horizontal stroke of at least SwipeThreshold pixels.
func (m *Menu) isSwipe(x, y float64) bool {
	dx := math.Abs(x - m.pointer.startX)
	dy := math.Abs(y - m.pointer.startY)
	return dx >= m.cfg.SwipeThreshold && dx > dy
}

func (m *Menu) goToPreviousPage() {
	total := m.PageCount()
	if total <= 1 {
		return
	}
	m.SwitchToPage((m.page - 1 + total) % total)
}
