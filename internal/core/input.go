package core

// InputState is the level-triggered input snapshot consumed by one
// simulation tick. The platform rebuilds it every frame from whatever
// input device it fronts; the simulation only reads it.
//
// Fire and radar are held flags, not edge triggers: while held, the
// corresponding action re-fires automatically each time its cooldown
// elapses.
type InputState struct {
	Turn   int  // -1 left, 0 neutral, 1 right
	Thrust int  // 0 idle, 1 thrusting
	Fire   bool // weapons trigger held
	Radar  bool // radar trigger held
}
