package tilemenu

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	// ErrNilDelegate is returned by New when no delegate is given.
	ErrNilDelegate = errors.New("tilemenu: delegate is required")
	// ErrMenuVisible is returned by SetConfig during a display session.
	ErrMenuVisible = errors.New("tilemenu: config cannot change while the menu is visible")
	// ErrAlreadyVisible is returned when displaying a menu that is showing.
	ErrAlreadyVisible = errors.New("tilemenu: menu is already visible")
	// ErrPageOutOfRange is returned when displaying a page that does not exist.
	ErrPageOutOfRange = errors.New("tilemenu: page out of range")
)

// noSlot marks the absence of a highlighted tile.
const noSlot Slot = -1

// Menu is a paginated radial tile menu. It is not safe for concurrent use;
// call it from the goroutine that runs the game loop.
//
// A Menu is either hidden or visible on one page. Display moves it from
// hidden to visible, SwitchToPage and GoToNextPage change the page, and
// Dismiss hides it again.
type Menu struct {
	delegate Delegate
	cfg      Config
	layout   Layout

	visible    bool
	displaying bool
	dismissing bool
	center     Vec2
	parent     Rect
	page       int
	selected   Slot

	observers observers
	sink      EventSink

	look    appearance
	font    text.Face
	pointer pointerState

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
}

// New creates a hidden menu backed by delegate.
func New(delegate Delegate, cfg Config) (*Menu, error) {
	if delegate == nil {
		return nil, ErrNilDelegate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Menu{
		delegate: delegate,
		cfg:      cfg,
		layout:   newLayout(cfg),
		page:     -1,
		selected: noSlot,
	}, nil
}

// Delegate returns the delegate given to New.
func (m *Menu) Delegate() Delegate { return m.delegate }

// Config returns the active configuration.
func (m *Menu) Config() Config { return m.cfg }

// Layout returns the ring layout for the active configuration.
func (m *Menu) Layout() Layout { return m.layout }

// SetConfig replaces the configuration. It fails while the menu is visible
// or when cfg does not validate.
func (m *Menu) SetConfig(cfg Config) error {
	if m.visible || m.displaying {
		return ErrMenuVisible
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	m.layout = newLayout(cfg)
	return nil
}

// IsVisible reports whether the menu is displayed.
func (m *Menu) IsVisible() bool { return m.visible }

// CenterPoint returns the menu center in parent coordinates, or the zero
// point while hidden.
func (m *Menu) CenterPoint() Vec2 { return m.center }

// Parent returns the bounds the menu was displayed in, or the zero Rect
// while hidden.
func (m *Menu) Parent() Rect { return m.parent }

// CurrentPage returns the zero-based page on display, or -1 while hidden.
func (m *Menu) CurrentPage() int { return m.page }

// PageCount returns the number of pages needed for the delegate's tiles.
// There is always at least one page.
func (m *Menu) PageCount() int {
	n := m.delegate.NumberOfTiles(m)
	if n <= TilesPerPage {
		return 1
	}
	return (n + TilesPerPage - 1) / TilesPerPage
}

// NextPageNumber returns the page after current, wrapping to the first.
// With a single page it returns current.
func (m *Menu) NextPageNumber(current int) int {
	total := m.PageCount()
	if total <= 1 {
		return current
	}
	next := (current + 1) % total
	if next < 0 {
		next += total
	}
	return next
}

// Display shows the first page centered as close to center as the parent
// bounds allow, and returns the center actually used.
func (m *Menu) Display(center Vec2, parent Rect) (Vec2, error) {
	return m.DisplayPage(0, center, parent)
}

// DisplayPage is like Display but opens on the given page. An out of range
// page is rejected without any state change or events. Calls made from a
// WillDisplay observer fail with ErrAlreadyVisible.
func (m *Menu) DisplayPage(page int, center Vec2, parent Rect) (Vec2, error) {
	if m.visible || m.displaying {
		return m.center, ErrAlreadyVisible
	}
	if total := m.PageCount(); page < 0 || page >= total {
		return Vec2{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, page, total)
	}
	m.displaying = true
	defer func() { m.displaying = false }()

	m.emit(EventWillDisplay, -1, -1)

	actual := m.fitCenter(center, parent)
	if actual != center {
		debugf("display at (%.1f, %.1f) moved to (%.1f, %.1f) to fit %v",
			center.X, center.Y, actual.X, actual.Y, parent)
	}
	m.visible = true
	m.center = actual
	m.parent = parent
	m.page = page
	m.selected = noSlot
	m.pointer.resetGesture()
	m.look.show(actual, page, m.cfg.AnimationDuration)

	m.emit(EventDidDisplay, -1, -1)
	return actual, nil
}

// Dismiss hides the menu immediately. Any running animation keeps playing
// but no longer reflects menu state. Calling Dismiss on a hidden menu, or
// from a dismiss observer, does nothing.
func (m *Menu) Dismiss() {
	if !m.visible || m.dismissing {
		return
	}
	m.dismissing = true
	defer func() { m.dismissing = false }()

	m.emit(EventWillDismiss, -1, -1)

	m.visible = false
	m.center = Vec2{}
	m.parent = Rect{}
	m.page = -1
	m.selected = noSlot
	m.pointer.resetGesture()
	m.look.hide(m.cfg.AnimationDuration)

	m.emit(EventDidDismiss, -1, -1)
}

// SwitchToPage shows the given zero-based page. Requests while hidden, for
// the current page, or for a page that does not exist are ignored.
func (m *Menu) SwitchToPage(page int) {
	if !m.visible || page == m.page {
		return
	}
	if page < 0 || page >= m.PageCount() {
		debugf("ignoring switch to page %d of %d", page, m.PageCount())
		return
	}

	m.emit(EventWillSwitchToPage, -1, page)
	if !m.visible {
		return // an observer dismissed the menu
	}
	if m.selected != noSlot {
		m.DeselectTile(m.selected)
	}
	m.page = page
	m.look.switchPage(page, m.cfg.AnimationDuration)
	m.emit(EventDidSwitchToPage, -1, page)
}

// GoToNextPage switches to the following page, wrapping to the first.
func (m *Menu) GoToNextPage() {
	if !m.visible {
		return
	}
	m.SwitchToPage(m.NextPageNumber(m.page))
}

// Relayout tells a visible menu that its parent bounds changed, e.g. after a
// rotation. With StayVisibleOnResize the menu slides to the nearest center
// that keeps the bezel inside the new bounds. It returns the center point.
func (m *Menu) Relayout(parent Rect) Vec2 {
	if !m.visible {
		return m.center
	}
	m.parent = parent
	if !m.cfg.StayVisibleOnResize {
		return m.center
	}
	next := m.fitCenter(m.center, parent)
	if next != m.center {
		debugf("relayout moved center (%.1f, %.1f) -> (%.1f, %.1f)",
			m.center.X, m.center.Y, next.X, next.Y)
		m.center = next
		m.look.slide(next, m.cfg.AnimationDuration)
	}
	return m.center
}

// fitCenter returns center shifted by the distance FitRect moves the bezel.
func (m *Menu) fitCenter(center Vec2, parent Rect) Vec2 {
	bezel := m.layout.BezelRect(center)
	fitted := FitRect(bezel, parent, m.cfg.ScreenMargin)
	return Vec2{
		X: center.X + (fitted.X - bezel.X),
		Y: center.Y + (fitted.Y - bezel.Y),
	}
}

// TileFrame returns the frame of a ring slot in parent coordinates. It
// reports false while hidden or for a non-ring slot.
func (m *Menu) TileFrame(slot Slot) (Rect, bool) {
	if !m.visible || !slot.IsRing() {
		return Rect{}, false
	}
	return m.layout.TileFrame(m.center, slot), true
}

// CenterTileFrame returns the frame of the center button.
func (m *Menu) CenterTileFrame() (Rect, bool) {
	if !m.visible {
		return Rect{}, false
	}
	return m.layout.CenterFrame(m.center), true
}

// BezelRect returns the bezel bounds, or the zero Rect while hidden.
func (m *Menu) BezelRect() Rect {
	if !m.visible {
		return Rect{}
	}
	return m.layout.BezelRect(m.center)
}

// BezelPath returns the bezel outline, or nil while hidden.
func (m *Menu) BezelPath() []Vec2 {
	if !m.visible {
		return nil
	}
	return m.layout.BezelPath(m.center)
}

// TileIndex maps a ring slot on the current page to a global tile index. It
// reports false for slots with no tile.
func (m *Menu) TileIndex(slot Slot) (int, bool) {
	if !m.visible {
		return 0, false
	}
	return m.tileIndexOnPage(m.page, slot)
}

func (m *Menu) tileIndexOnPage(page int, slot Slot) (int, bool) {
	if page < 0 || !slot.IsRing() {
		return 0, false
	}
	idx := page*TilesPerPage + int(slot)
	if idx >= m.delegate.NumberOfTiles(m) {
		return 0, false
	}
	return idx, true
}

// SlotAt returns the occupied slot under (x, y). The center slot is only
// reported when the close button is visible.
func (m *Menu) SlotAt(x, y float64) (Slot, bool) {
	if !m.visible {
		return 0, false
	}
	slot, ok := m.layout.SlotAt(m.center, x, y)
	if !ok {
		return 0, false
	}
	if slot == SlotCenter {
		return slot, m.cfg.CloseButtonVisible
	}
	if _, ok := m.TileIndex(slot); !ok {
		return 0, false
	}
	return slot, true
}

// Selected returns the highlighted slot, if any.
func (m *Menu) Selected() (Slot, bool) {
	return m.selected, m.selected != noSlot
}

// SelectTile highlights the tile in slot. Any other highlighted tile is
// deselected first.
func (m *Menu) SelectTile(slot Slot) {
	if slot == SlotCenter {
		if m.visible && m.cfg.CloseButtonVisible && m.selected != SlotCenter {
			m.DeselectTile(m.selected)
			m.selected = SlotCenter
		}
		return
	}
	idx, ok := m.TileIndex(slot)
	if !ok || m.selected == slot {
		return
	}
	if m.selected != noSlot {
		m.DeselectTile(m.selected)
	}
	m.selected = slot
	m.emit(EventDidSelectTile, idx, -1)
}

// DeselectTile removes the highlight from slot without activating it.
func (m *Menu) DeselectTile(slot Slot) {
	if m.selected != slot || slot == noSlot {
		return
	}
	m.selected = noSlot
	if idx, ok := m.TileIndex(slot); ok {
		m.emit(EventDidDeselectTile, idx, -1)
	}
}

// ActivateTile triggers the tile in slot, then dismisses the menu when
// DismissAfterTileActivated is set. Activating SlotCenter is the same as
// ActivateCenter.
func (m *Menu) ActivateTile(slot Slot) {
	if slot == SlotCenter {
		m.ActivateCenter()
		return
	}
	idx, ok := m.TileIndex(slot)
	if !ok {
		return
	}
	m.selected = noSlot
	m.emit(EventDidActivateTile, idx, -1)
	if a, ok := m.delegate.(TileActivator); ok {
		a.TileActivated(m, idx)
	}
	if m.cfg.DismissAfterTileActivated {
		m.Dismiss()
	}
}

// ActivateCenter presses the center button: it pages forward when there is
// more than one page and closes the menu otherwise.
func (m *Menu) ActivateCenter() {
	if !m.visible {
		return
	}
	if m.selected == SlotCenter {
		m.selected = noSlot
	}
	if m.PageCount() > 1 {
		m.GoToNextPage()
		return
	}
	m.Dismiss()
}

// TapOutside handles a tap beyond the bezel. The menu is dismissed unless the
// delegate vetoes it. It reports whether the menu was dismissed.
func (m *Menu) TapOutside() bool {
	if !m.visible {
		return false
	}
	if v, ok := m.delegate.(DismissVetoer); ok && !v.ShouldDismiss(m) {
		debugf("outside tap dismissal vetoed by delegate")
		return false
	}
	m.Dismiss()
	return true
}

// SetFont sets the face used for tile titles. With no font titles are drawn
// with the debug font.
func (m *Menu) SetFont(face text.Face) {
	m.font = face
}

// Update advances animations by dt seconds. Call it once per tick.
func (m *Menu) Update(dt float32) {
	m.look.update(dt)
}

// Animating reports whether any show, hide, page or relayout animation is
// still running.
func (m *Menu) Animating() bool {
	return m.look.animating()
}
