// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D vector in world coordinates (origin at field center, Y up).
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Len2 returns the squared length, avoiding the square root where only
// comparisons are needed.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// VecFromAngle returns the unit vector for the given angle in radians.
// Angle 0 points straight up (+Y), increasing clockwise when rendered,
// so facing and sprite rotation stay consistent.
func VecFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: math.Cos(angle)}
}

// RandomVec returns a vector with uniform random direction and uniform
// random magnitude in [0, maxMagnitude). Note the distribution is not
// uniform over the disk; short vectors are over-represented.
func RandomVec(rng *rand.Rand, maxMagnitude float64) Vec2 {
	angle := rng.Float64() * 2 * math.Pi
	mag := rng.Float64() * maxMagnitude
	return VecFromAngle(angle).Scale(mag)
}
