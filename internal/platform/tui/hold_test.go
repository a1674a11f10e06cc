package tui

import "testing"

func TestHoldTrackerPressAndExpiry(t *testing.T) {
	h := newHoldTracker()

	if h.held(ActionActivate) {
		t.Error("fresh tracker should hold nothing")
	}

	h.press(ActionActivate)
	if !h.held(ActionActivate) {
		t.Error("action should be held right after press")
	}

	// The hold survives for the full window, then expires.
	for i := 0; i < holdTicks-1; i++ {
		h.tick()
	}
	if !h.held(ActionActivate) {
		t.Errorf("action expired after %d ticks, want %d", holdTicks-1, holdTicks)
	}
	h.tick()
	if h.held(ActionActivate) {
		t.Error("action should have expired")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := newHoldTracker()
	h.press(ActionTurnLeft)

	// Simulate terminal autorepeat arriving partway through the window.
	for i := 0; i < holdTicks/2; i++ {
		h.tick()
	}
	h.press(ActionTurnLeft)

	for i := 0; i < holdTicks-1; i++ {
		h.tick()
	}
	if !h.held(ActionTurnLeft) {
		t.Error("repeat press should restart the hold window")
	}
}

func TestHoldTrackerIndependentActions(t *testing.T) {
	h := newHoldTracker()
	h.press(ActionTurnLeft)
	h.press(ActionActivate)

	if !h.held(ActionTurnLeft) || !h.held(ActionActivate) {
		t.Fatal("both actions should be held")
	}
	if h.held(ActionTurnRight) {
		t.Error("unpressed action reported held")
	}

	h.clear()
	if h.held(ActionTurnLeft) || h.held(ActionActivate) {
		t.Error("clear should release everything")
	}
}
