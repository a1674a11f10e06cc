package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avelisk/systems-critical/internal/audio"
	"github.com/avelisk/systems-critical/internal/core"
	"github.com/avelisk/systems-critical/internal/game"
	"github.com/avelisk/systems-critical/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	state    *game.State
	screen   *core.Screen
	store    *storage.Store
	sound    *audio.Player
	keys     *KeyMapper
	hold     *holdTracker
	config   core.RuntimeConfig
	snap     game.Snapshot
	quitting bool

	// Last finished run, reported after the program exits. The alternate
	// screen swallows anything printed while it is active.
	lastScore int
	lastLevel int
	runsEnded int
}

// NewModel creates the game model. The store and sound player may be nil;
// persistence and audio are then skipped.
func NewModel(cfg core.RuntimeConfig, store *storage.Store, sound *audio.Player) Model {
	state := game.New(cfg)
	return Model{
		state:  state,
		screen: core.NewScreen(80, 24),
		store:  store,
		sound:  sound,
		keys:   NewKeyMapper(),
		hold:   newHoldTracker(),
		config: cfg,
		snap:   state.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Subsystem selection applies
// immediately; movement and activation feed the hold tracker.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case ActionSelectEngines:
		m.state.SelectSubsystem(game.SubsystemEngines)
	case ActionSelectWeapons:
		m.state.SelectSubsystem(game.SubsystemWeapons)
	case ActionSelectRadar:
		m.state.SelectSubsystem(game.SubsystemRadar)
	case ActionTurnLeft, ActionTurnRight, ActionActivate:
		m.hold.press(action)
	}

	return m, nil
}

// handleTick runs one simulation tick and reacts to the events it emits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.state.Step(m.buildInput())

	for _, ev := range result.Events {
		switch ev.Kind {
		case game.EventSoundFire:
			if m.sound != nil {
				m.sound.Fire()
			}
		case game.EventSoundHit:
			if m.sound != nil {
				m.sound.Hit()
			}
		case game.EventGameOver:
			if m.store != nil && ev.Score > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveRun(ev.Score, ev.Level)
			}
			m.lastScore = ev.Score
			m.lastLevel = ev.Level
			m.runsEnded++
			m.hold.clear()
		}
	}

	m.hold.tick()
	m.snap = m.state.Snapshot()
	return m, tickCmd(m.config.TickRate)
}

// buildInput reconstructs the level-triggered input snapshot from held
// keys. What the activate key does depends on the selected subsystem at
// this tick, not at press time.
func (m Model) buildInput() core.InputState {
	var input core.InputState
	if m.hold.held(ActionTurnLeft) {
		input.Turn--
	}
	if m.hold.held(ActionTurnRight) {
		input.Turn++
	}
	if m.hold.held(ActionActivate) {
		switch m.state.Subsystem() {
		case game.SubsystemEngines:
			input.Thrust = 1
		case game.SubsystemWeapons:
			input.Fire = true
		case game.SubsystemRadar:
			input.Radar = true
		}
	}
	return input
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	renderFrame(m.screen, m.snap, m.config.FieldW, m.config.FieldH)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg core.RuntimeConfig, store *storage.Store, sound *audio.Player) error {
	p := tea.NewProgram(
		NewModel(cfg, store, sound),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.runsEnded > 0 {
		log.Info("run over", "score", m.lastScore, "level", m.lastLevel, "runs", m.runsEnded)
	}
	return nil
}
