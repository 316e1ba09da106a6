package tilemenu

// syntheticPointerEvent is one queued frame of injected pointer input in
// parent coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). Injected events are consumed
// one per HandleInput call, in place of real input.
func (m *Menu) InjectPress(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the pointer held down.
func (m *Menu) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (m *Menu) InjectRelease(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press and release at the same point. Consumes two
// frames.
func (m *Menu) InjectTap(x, y float64) {
	m.InjectPress(x, y)
	m.InjectRelease(x, y)
}

// InjectSwipe queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY). frames is raised to 2 if smaller.
func (m *Menu) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		m.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	m.InjectRelease(toX, toY)
}

// PendingInput returns the number of injected frames not yet consumed.
func (m *Menu) PendingInput() int {
	return len(m.injectQueue)
}

// processInjectedInput feeds one queued event through the pointer state
// machine. It reports whether an event was consumed.
func (m *Menu) processInjectedInput() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	m.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
