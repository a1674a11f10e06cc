package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/avelisk/systems-critical/internal/core"
)

// spawnInBand places one actor at a uniform random angle and a uniform
// random distance in [minRadius, maxRadius) from the exclusion center.
// Positions may land outside the field bounds; the next physics pass
// wraps them, so no wrapping happens here.
func spawnInBand(rng *rand.Rand, a *Actor, exclusion core.Vec2, minRadius, maxRadius float64) {
	angle := rng.Float64() * 2 * math.Pi
	distance := rng.Float64()*(maxRadius-minRadius) + minRadius
	a.Pos = exclusion.Add(core.VecFromAngle(angle).Scale(distance))
}

// SpawnRocks creates count rocks in an annulus around the exclusion
// center (nominally the player), each with a random drift velocity.
// An inverted radius band is a programming error and panics.
func SpawnRocks(rng *rand.Rand, count int, exclusion core.Vec2, minRadius, maxRadius float64) []Actor {
	if maxRadius <= minRadius {
		panic(fmt.Sprintf("game: inverted spawn radius band [%v, %v)", minRadius, maxRadius))
	}
	rocks := make([]Actor, 0, count)
	for i := 0; i < count; i++ {
		rock := NewRock()
		spawnInBand(rng, &rock, exclusion, minRadius, maxRadius)
		rock.Vel = core.RandomVec(rng, MaxRockVel)
		rocks = append(rocks, rock)
	}
	return rocks
}

// SpawnWormholes creates count wormholes the same way as rocks, with a
// slower drift velocity. The wormhole's velocity is assigned but never
// integrated; the wormhole sits still once spawned. Kept as-is rather
// than fixed, so replays of recorded runs stay faithful.
func SpawnWormholes(rng *rand.Rand, count int, exclusion core.Vec2, minRadius, maxRadius float64) []Actor {
	if maxRadius <= minRadius {
		panic(fmt.Sprintf("game: inverted spawn radius band [%v, %v)", minRadius, maxRadius))
	}
	wormholes := make([]Actor, 0, count)
	for i := 0; i < count; i++ {
		wormhole := NewWormhole()
		spawnInBand(rng, &wormhole, exclusion, minRadius, maxRadius)
		wormhole.Vel = core.RandomVec(rng, MaxWormholeVel)
		wormholes = append(wormholes, wormhole)
	}
	return wormholes
}
