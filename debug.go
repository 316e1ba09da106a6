package tilemenu

import (
	"fmt"
	"os"
)

// debugEnabled gates all diagnostic output. Menus are driven from the single
// game loop goroutine, so a plain bool is enough.
var debugEnabled bool

// SetDebug enables or disables diagnostic logging to stderr: state
// transitions, center adjustments, ignored page requests and vetoed
// dismissals.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tilemenu] "+format+"\n", args...)
}

func debugLogEvent(e Event) {
	if !debugEnabled {
		return
	}
	switch e.Kind {
	case EventDidActivateTile, EventDidSelectTile, EventDidDeselectTile:
		debugf("%s tile=%d", e.Kind, e.Tile)
	case EventWillSwitchToPage, EventDidSwitchToPage:
		debugf("%s page=%d", e.Kind, e.Page)
	default:
		debugf("%s", e.Kind)
	}
}
