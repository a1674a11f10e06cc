package game

import (
	"math/rand"
	"time"

	"github.com/avelisk/systems-critical/internal/core"
)

// Status is the display-facing summary of a tick.
type Status struct {
	Score int
	Level int
}

// StepResult is returned by Step after each simulation tick: the updated
// status plus the side-effect requests the tick produced.
type StepResult struct {
	Status Status
	Events []Event
}

// State is the sole mutable root of the simulation. It owns the player
// and the four actor collections exclusively; nothing else mutates them.
// All methods must be called from a single goroutine.
type State struct {
	rng  *rand.Rand
	tick uint64

	player    Actor
	shots     []Actor
	radar     []Actor
	rocks     []Actor
	wormholes []Actor // modeled as a sequence, effectively 0 or 1

	level int
	score int

	fieldW float64
	fieldH float64

	shotCooldown   float64 // unclamped; goes negative while idle
	radarCooldown  float64
	nextRadarLayer int
}

// New creates a simulation in its initial configuration: the player at
// the field center, five rocks and one wormhole spawned around it.
func New(cfg core.RuntimeConfig) *State {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &State{
		rng:    rand.New(rand.NewSource(seed)),
		fieldW: cfg.FieldW,
		fieldH: cfg.FieldH,
	}
	s.reset()
	return s
}

// reset restores the initial configuration, reusing the current RNG so a
// seeded run stays deterministic across deaths.
func (s *State) reset() {
	s.player = NewPlayer()
	s.shots = nil
	s.radar = nil
	s.rocks = SpawnRocks(s.rng, StartingRocks, s.player.Pos, SpawnMinRadius, SpawnMaxRadius)
	s.wormholes = SpawnWormholes(s.rng, 1, s.player.Pos, SpawnMinRadius, SpawnMaxRadius)
	s.level = 0
	s.score = 0
	s.shotCooldown = 0
	s.radarCooldown = 0
	s.nextRadarLayer = 0
}

// SelectSubsystem switches which ship system the activate input drives.
// This is the discrete command counterpart to the level-triggered
// InputState.
func (s *State) SelectSubsystem(sys Subsystem) {
	s.player.Sys = sys
}

// Subsystem returns the currently selected ship system.
func (s *State) Subsystem() Subsystem {
	return s.player.Sys
}

// Status returns the current score and level.
func (s *State) Status() Status {
	return Status{Score: s.score, Level: s.level}
}

// FieldSize returns the playing field dimensions in world units.
func (s *State) FieldSize() (w, h float64) {
	return s.fieldW, s.fieldH
}

// Step advances the simulation by one fixed Dt tick, reading the given
// input snapshot. The update order is: input application, timed firing,
// physics, collisions, pruning, level-end check, death check.
func (s *State) Step(input core.InputState) StepResult {
	s.tick++
	var events []Event

	// Turn and thrust.
	s.player.Facing += Dt * PlayerTurnRate * float64(input.Turn)
	if input.Thrust > 0 {
		s.player.Vel = s.player.Vel.Add(core.VecFromAngle(s.player.Facing).Scale(PlayerThrust * Dt))
	}

	// Cooldowns tick down unconditionally, below zero while idle.
	s.shotCooldown -= Dt
	s.radarCooldown -= Dt

	// Held triggers re-fire whenever their cooldown has elapsed.
	if input.Fire && s.shotCooldown < 0 {
		s.fireShot()
		events = append(events, Event{Kind: EventSoundFire})
	}
	if input.Radar && s.radarCooldown < 0 {
		s.fireRadarPulse()
		events = append(events, Event{Kind: EventSoundFire})
	}

	// Physics. Radar pulses only age; rocks never age; the wormhole gets
	// no update at all (it carries a spawn velocity that is never
	// integrated, so it sits still).
	Integrate(&s.player, Dt)
	WrapPosition(&s.player, s.fieldW, s.fieldH)
	for i := range s.shots {
		Integrate(&s.shots[i], Dt)
		WrapPosition(&s.shots[i], s.fieldW, s.fieldH)
		DecayLife(&s.shots[i], Dt)
	}
	for i := range s.radar {
		DecayLife(&s.radar[i], Dt)
	}
	for i := range s.rocks {
		Integrate(&s.rocks[i], Dt)
		WrapPosition(&s.rocks[i], s.fieldW, s.fieldH)
	}

	s.resolveCollisions(&events)
	s.prune()

	// Wormhole gone means the wave is cleared: award the bonus and
	// spawn the next, denser wave around the player.
	if len(s.wormholes) == 0 {
		s.score += LevelEndScore
		s.level++
		s.wormholes = SpawnWormholes(s.rng, 1, s.player.Pos, SpawnMinRadius, SpawnMaxRadius)
		s.rocks = SpawnRocks(s.rng, s.level*2+StartingRocks, s.player.Pos, SpawnMinRadius, SpawnMaxRadius)
		events = append(events, Event{Kind: EventLevelUp, Level: s.level})
	}

	// Death is a normal transition: report the finished run, then start
	// over from the initial configuration.
	if s.player.Life <= 0 {
		events = append(events, Event{Kind: EventGameOver, Score: s.score, Level: s.level})
		s.reset()
	}

	return StepResult{Status: s.Status(), Events: events}
}

// fireShot spawns a shot at the player's position and facing, moving at
// full shot speed, and re-arms the cooldown.
func (s *State) fireShot() {
	s.shotCooldown = ShotCooldown

	shot := NewShot()
	shot.Pos = s.player.Pos
	shot.Facing = s.player.Facing
	shot.Vel = core.VecFromAngle(shot.Facing).Scale(ShotSpeed)
	s.shots = append(s.shots, shot)
}

// fireRadarPulse spawns a radar ping at the player's position. Each pulse
// takes the next even draw layer so concurrent rings stack in creation
// order.
func (s *State) fireRadarPulse() {
	s.radarCooldown = RadarCooldown

	pulse := NewRadarPulse(s.nextRadarLayer)
	pulse.Pos = s.player.Pos
	s.nextRadarLayer += 2
	s.radar = append(s.radar, pulse)
}

// prune drops every dead actor from every collection. Dead actors never
// participate in the next tick's physics or collision pass. Once the
// last radar pulse fades, the layer counter rewinds.
func (s *State) prune() {
	s.shots = filterAlive(s.shots)
	s.rocks = filterAlive(s.rocks)
	s.radar = filterAlive(s.radar)
	s.wormholes = filterAlive(s.wormholes)
	if len(s.radar) == 0 {
		s.nextRadarLayer = 0
	}
}

func filterAlive(actors []Actor) []Actor {
	alive := actors[:0]
	for _, a := range actors {
		if a.Life > 0 {
			alive = append(alive, a)
		}
	}
	return alive
}
