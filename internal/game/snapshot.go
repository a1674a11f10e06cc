package game

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"

	"github.com/avelisk/systems-critical/internal/core"
)

// ActorView is the read-only, render-facing projection of one actor.
type ActorView struct {
	Kind   Kind
	Pos    core.Vec2
	Facing float64
	Layer  int
	Scale  float64 // radar pulses only: current ring radius multiplier
}

// Snapshot captures everything the presentation layer needs for one
// frame, plus enough state for determinism verification and replay.
type Snapshot struct {
	Tick      uint64
	Level     int
	Score     int
	Sys       Subsystem
	Player    ActorView
	Shots     []ActorView
	Radar     []ActorView
	Rocks     []ActorView
	Wormholes []ActorView
}

// Snapshot returns the current frame's read-only view of the world.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Level:     s.level,
		Score:     s.score,
		Sys:       s.player.Sys,
		Player:    viewOf(s.player),
		Shots:     viewsOf(s.shots),
		Radar:     viewsOf(s.radar),
		Rocks:     viewsOf(s.rocks),
		Wormholes: viewsOf(s.wormholes),
	}
}

func viewOf(a Actor) ActorView {
	v := ActorView{
		Kind:   a.Kind,
		Pos:    a.Pos,
		Facing: a.Facing,
		Layer:  a.Layer,
	}
	if a.Kind == KindRadarPulse {
		v.Scale = pulseScale(a.Life)
	}
	return v
}

func viewsOf(actors []Actor) []ActorView {
	views := make([]ActorView, len(actors))
	for i, a := range actors {
		views[i] = viewOf(a)
	}
	return views
}

// pulseScale derives the expanding-ring size of a radar pulse from its
// remaining life. The integer part of the elapsed time restarts the ring
// growth each second, giving the repeating sweep effect.
func pulseScale(life float64) float64 {
	elapsed := RadarLife - life
	return (math.Trunc(elapsed) + frac(elapsed+1)) * 10
}

func frac(x float64) float64 {
	return x - math.Trunc(x)
}

// Hash folds the snapshot into a single value for determinism checks:
// two runs with equal seeds and inputs must produce equal hashes.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%d|%d|", snap.Tick, snap.Level, snap.Score, snap.Sys)
	hashView(h, snap.Player)
	for _, group := range [][]ActorView{snap.Shots, snap.Radar, snap.Rocks, snap.Wormholes} {
		fmt.Fprintf(h, "#%d|", len(group))
		for _, v := range group {
			hashView(h, v)
		}
	}
	return h.Sum64()
}

func hashView(h io.Writer, v ActorView) {
	fmt.Fprintf(h, "%d:%.6f:%.6f:%.6f:%d|", v.Kind, v.Pos.X, v.Pos.Y, v.Facing, v.Layer)
}
