package game

// Fixed design parameters of the simulation. These are deliberately not
// configurable: game balance is part of the game, not of the platform.
const (
	// Dt is the fixed simulation timestep in seconds. The step function
	// always advances by exactly this much regardless of wall-clock
	// frame timing.
	Dt = 1.0 / 60.0

	// Life defaults. Life is hitpoints for the player, rocks and the
	// wormhole, and a countdown in seconds for shots and radar pulses.
	PlayerLife   = 1.0
	RockLife     = 1.0
	WormholeLife = 1.0
	ShotLife     = 2.0
	RadarLife    = 3.0

	// Collision radii in world units.
	PlayerBBox   = 12.0
	RockBBox     = 12.0
	WormholeBBox = 16.0
	ShotBBox     = 6.0
	RadarBBox    = 6.0

	// Draw layers. Radar pulses get their layer assigned at spawn so
	// concentric pulses stack in creation order.
	PlayerLayer   = 500
	RockLayer     = 500
	WormholeLayer = 495
	ShotLayer     = 500

	// Spin applied to shots and radar pulses, in radians per tick.
	// Intentionally not scaled by Dt; the spin is frame-coupled.
	ShotAngVel = 0.1

	// Movement.
	MaxPhysicsVel  = 200.0 // velocity clamp, world units per second
	ShotSpeed      = 200.0
	PlayerThrust   = 100.0 // acceleration, world units per second²
	PlayerTurnRate = 3.0   // radians per second
	MaxRockVel     = 50.0
	MaxWormholeVel = 25.0

	// Cooldowns in seconds.
	ShotCooldown  = 0.5
	RadarCooldown = 0.4

	// Wave layout: spawn band around the player and the starting wave.
	SpawnMinRadius = 100.0
	SpawnMaxRadius = 250.0
	StartingRocks  = 5

	// Scoring.
	RockScore     = 1
	LevelEndScore = 10
)
