package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The field dimensions are in world units, not terminal
// cells; the presentation layer owns the world-to-cell mapping.
type RuntimeConfig struct {
	FieldW   float64 // Playing field width in world units
	FieldH   float64 // Playing field height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with the stock field size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   800,
		FieldH:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the platform layer
	}
}
