// Package game implements the Systems Critical simulation core: a player
// ship on a wrapped 2D field, rocks, shots, radar pulses and a wormhole
// level exit, advanced by a fixed-timestep Step function. The package is
// pure logic with no terminal, audio or storage dependencies.
package game

import "github.com/avelisk/systems-critical/internal/core"

// Kind distinguishes the five simulated object types. It determines the
// default physical constants at construction and the collision role.
type Kind int

const (
	KindPlayer Kind = iota
	KindRock
	KindShot
	KindRadarPulse
	KindWormhole
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRock:
		return "rock"
	case KindShot:
		return "shot"
	case KindRadarPulse:
		return "radar"
	case KindWormhole:
		return "wormhole"
	default:
		return "unknown"
	}
}

// Subsystem is the ship system the single activate key drives.
// Only meaningful for the player actor.
type Subsystem int

const (
	SubsystemEngines Subsystem = iota
	SubsystemWeapons
	SubsystemRadar
)

// String returns a human-readable name for the subsystem.
func (s Subsystem) String() string {
	switch s {
	case SubsystemEngines:
		return "engines"
	case SubsystemWeapons:
		return "weapons"
	case SubsystemRadar:
		return "radar"
	default:
		return "unknown"
	}
}

// Actor is the single entity type for everything in the simulation.
//
// Life carries a double meaning: for the player, rocks and the wormhole
// it is hitpoints (<= 0 means dead), for shots and radar pulses it is
// the time left to live in seconds. Kind-specific constructors below set
// the defaults; after creation only Life changes.
type Actor struct {
	Kind   Kind
	Sys    Subsystem // player only; ignored for other kinds
	Pos    core.Vec2
	Facing float64 // radians, 0 = up
	Vel    core.Vec2
	AngVel float64 // radians per tick, not per second
	BBox   float64 // collision radius
	Layer  int     // draw layer
	Life   float64
}

// NewPlayer returns the player ship at the field center, radar selected.
func NewPlayer() Actor {
	return Actor{
		Kind:  KindPlayer,
		Sys:   SubsystemRadar,
		BBox:  PlayerBBox,
		Layer: PlayerLayer,
		Life:  PlayerLife,
	}
}

// NewRock returns a rock with default parameters at the origin.
// The spawner positions it and assigns its drift velocity.
func NewRock() Actor {
	return Actor{
		Kind:  KindRock,
		BBox:  RockBBox,
		Layer: RockLayer,
		Life:  RockLife,
	}
}

// NewShot returns a spinning shot projectile.
func NewShot() Actor {
	return Actor{
		Kind:   KindShot,
		AngVel: ShotAngVel,
		BBox:   ShotBBox,
		Layer:  ShotLayer,
		Life:   ShotLife,
	}
}

// NewRadarPulse returns a radar ping with the caller-supplied draw layer.
// Layers increase by two per pulse so concentric rings keep a stable
// stacking order.
func NewRadarPulse(layer int) Actor {
	return Actor{
		Kind:   KindRadarPulse,
		AngVel: ShotAngVel,
		BBox:   RadarBBox,
		Layer:  layer,
		Life:   RadarLife,
	}
}

// NewWormhole returns the level-exit wormhole. It shares the player's
// default life constant but is only ever killed by player proximity,
// never by time.
func NewWormhole() Actor {
	return Actor{
		Kind:  KindWormhole,
		BBox:  WormholeBBox,
		Layer: WormholeLayer,
		Life:  WormholeLife,
	}
}
