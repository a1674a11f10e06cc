package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a platform-level input action derived from a key press.
// Discrete actions (subsystem selection, quit) apply immediately; the
// held actions feed the hold tracker that reconstructs key-down state.
type Action int

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionActivate
	ActionSelectEngines
	ActionSelectWeapons
	ActionSelectRadar
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit, true
	case "a", "left":
		return ActionTurnLeft, false
	case "d", "right":
		return ActionTurnRight, false
	case "w", "up", " ":
		return ActionActivate, false
	case "1":
		return ActionSelectEngines, false
	case "2":
		return ActionSelectWeapons, false
	case "3":
		return ActionSelectRadar, false
	}

	return ActionNone, false
}
