package tui

// Terminals report key presses, never releases, so a held key arrives as
// an initial press followed by autorepeat events. The hold tracker turns
// that stream back into level-triggered state: each press arms the action
// for holdTicks simulation ticks, and autorepeat keeps re-arming it while
// the key stays down.
//
// holdTicks must outlast the terminal's autorepeat initial delay (about
// 500ms on common setups) or a held key flickers off before the first
// repeat arrives.
const holdTicks = 35

// holdTracker reconstructs which actions are currently held.
type holdTracker struct {
	remaining map[Action]int
}

func newHoldTracker() *holdTracker {
	return &holdTracker{remaining: make(map[Action]int)}
}

// press arms the action for the full hold window.
func (h *holdTracker) press(a Action) {
	h.remaining[a] = holdTicks
}

// held reports whether the action is currently considered down.
func (h *holdTracker) held(a Action) bool {
	return h.remaining[a] > 0
}

// tick ages every armed action by one simulation tick.
func (h *holdTracker) tick() {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

// clear releases every action.
func (h *holdTracker) clear() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
