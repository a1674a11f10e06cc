package game

import "math"

// Integrate advances one actor by dt seconds: clamps velocity to
// MaxPhysicsVel, integrates position, and applies angular velocity.
//
// The angular step is a fixed per-tick increment, not scaled by dt. Under
// the fixed 1/60s timestep the spin is deterministic; changing the tick
// rate changes the spin speed, which is accepted.
func Integrate(a *Actor, dt float64) {
	normSq := a.Vel.Len2()
	if normSq > MaxPhysicsVel*MaxPhysicsVel {
		a.Vel = a.Vel.Scale(MaxPhysicsVel / math.Sqrt(normSq))
	}
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
	a.Facing += a.AngVel
}

// WrapPosition wraps an actor's position to the field bounds, so leaving
// one edge re-enters at the opposite edge. Exactly one correction is
// applied per axis; an actor that overshoots by more than a full field
// width in one tick is not fully re-wrapped.
func WrapPosition(a *Actor, fieldW, fieldH float64) {
	xBound := fieldW / 2
	yBound := fieldH / 2
	if a.Pos.X > xBound {
		a.Pos.X -= fieldW
	} else if a.Pos.X < -xBound {
		a.Pos.X += fieldW
	}
	if a.Pos.Y > yBound {
		a.Pos.Y -= fieldH
	} else if a.Pos.Y < -yBound {
		a.Pos.Y += fieldH
	}
}

// DecayLife counts down a timed actor's remaining life. Applied each tick
// to shots and radar pulses only; other kinds lose life to collisions.
func DecayLife(a *Actor, dt float64) {
	a.Life -= dt
}
