package tilemenu

// EventKind identifies a menu state transition or tile interaction.
type EventKind uint8

const (
	EventWillDisplay      EventKind = iota // menu is about to be shown
	EventDidDisplay                        // menu has been shown
	EventWillDismiss                       // menu is about to be hidden
	EventDidDismiss                        // menu has been hidden
	EventDidActivateTile                   // tile was triggered
	EventDidSelectTile                     // tile was highlighted but not yet triggered
	EventDidDeselectTile                   // tile was unhighlighted without being triggered
	EventWillSwitchToPage                  // menu is about to show another page
	EventDidSwitchToPage                   // menu now shows another page

	numEventKinds
)

var eventKindNames = [numEventKinds]string{
	"WillDisplay", "DidDisplay", "WillDismiss", "DidDismiss",
	"DidActivateTile", "DidSelectTile", "DidDeselectTile",
	"WillSwitchToPage", "DidSwitchToPage",
}

func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return "EventKind(?)"
}

// Event is delivered to observers. Tile is the zero-based global tile index
// for tile events and Page the zero-based page for page events; both are -1
// when they do not apply.
type Event struct {
	Kind EventKind
	Menu *Menu
	Tile int
	Page int
}

// EventSink receives a copy of every event a menu fires, after the menu's
// own observers. See the ecs sub-package for a Donburi-backed sink.
type EventSink interface {
	EmitEvent(Event)
}

type eventHandler struct {
	id uint32
	fn func(Event)
}

// observers keeps one handler list per kind plus a list for OnAny.
type observers struct {
	byKind [numEventKinds][]eventHandler
	any    []eventHandler
	nextID uint32
}

// Handle allows removing a registered observer.
type Handle struct {
	id   uint32
	reg  *observers
	kind EventKind
	all  bool
}

// Remove unregisters the observer so it no longer fires. Removing twice, or
// removing the zero Handle, is a no-op.
func (h Handle) Remove() {
	if h.reg == nil {
		return
	}
	if h.all {
		h.reg.any = removeHandler(h.reg.any, h.id)
		return
	}
	h.reg.byKind[h.kind] = removeHandler(h.reg.byKind[h.kind], h.id)
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// On registers fn for events of the given kind.
func (m *Menu) On(kind EventKind, fn func(Event)) Handle {
	if kind >= numEventKinds {
		return Handle{}
	}
	m.observers.nextID++
	id := m.observers.nextID
	m.observers.byKind[kind] = append(m.observers.byKind[kind], eventHandler{id: id, fn: fn})
	return Handle{id: id, reg: &m.observers, kind: kind}
}

// OnAny registers fn for every event kind.
func (m *Menu) OnAny(fn func(Event)) Handle {
	m.observers.nextID++
	id := m.observers.nextID
	m.observers.any = append(m.observers.any, eventHandler{id: id, fn: fn})
	return Handle{id: id, reg: &m.observers, all: true}
}

// SetEventSink mirrors every event to sink. Pass nil to detach.
func (m *Menu) SetEventSink(sink EventSink) {
	m.sink = sink
}

// emit delivers e to kind observers, then OnAny observers, then the sink.
// Observers see the registrations as they were when emit began, so one may
// remove itself (or another) without disturbing delivery.
func (m *Menu) emit(kind EventKind, tile, page int) {
	e := Event{Kind: kind, Menu: m, Tile: tile, Page: page}
	debugLogEvent(e)
	byKind := append([]eventHandler(nil), m.observers.byKind[kind]...)
	anyKind := append([]eventHandler(nil), m.observers.any...)
	for _, h := range byKind {
		if h.fn != nil {
			h.fn(e)
		}
	}
	for _, h := range anyKind {
		if h.fn != nil {
			h.fn(e)
		}
	}
	if m.sink != nil {
		m.sink.EmitEvent(e)
	}
}
