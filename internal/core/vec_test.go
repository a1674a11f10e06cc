package core

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestVecFromAngleConvention(t *testing.T) {
	// Angle 0 must point straight up (+Y), not +X.
	up := VecFromAngle(0)
	if math.Abs(up.X) > epsilon || math.Abs(up.Y-1) > epsilon {
		t.Errorf("VecFromAngle(0) = %v, want (0, 1)", up)
	}

	// π/2 points right (+X).
	right := VecFromAngle(math.Pi / 2)
	if math.Abs(right.X-1) > epsilon || math.Abs(right.Y) > epsilon {
		t.Errorf("VecFromAngle(π/2) = %v, want (1, 0)", right)
	}

	// π points down (-Y).
	down := VecFromAngle(math.Pi)
	if math.Abs(down.X) > epsilon || math.Abs(down.Y+1) > epsilon {
		t.Errorf("VecFromAngle(π) = %v, want (0, -1)", down)
	}
}

func TestVecFromAngleUnitLength(t *testing.T) {
	for _, angle := range []float64{0, 0.3, 1.1, 2.7, 3.9, 5.5} {
		v := VecFromAngle(angle)
		if math.Abs(v.Len()-1) > epsilon {
			t.Errorf("VecFromAngle(%v) has length %v, want 1", angle, v.Len())
		}
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: -3, Y: 0.5}

	sum := a.Add(b)
	if sum.X != -2 || sum.Y != 2.5 {
		t.Errorf("Add = %v, want (-2, 2.5)", sum)
	}

	diff := a.Sub(b)
	if diff.X != 4 || diff.Y != 1.5 {
		t.Errorf("Sub = %v, want (4, 1.5)", diff)
	}

	scaled := a.Scale(2)
	if scaled.X != 2 || scaled.Y != 4 {
		t.Errorf("Scale = %v, want (2, 4)", scaled)
	}
}

func TestVecLen(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len = %v, want 5", v.Len())
	}
	if v.Len2() != 25 {
		t.Errorf("Len2 = %v, want 25", v.Len2())
	}
}

func TestRandomVecMagnitudeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const maxMag = 50.0

	for i := 0; i < 1000; i++ {
		v := RandomVec(rng, maxMag)
		if v.Len() >= maxMag {
			t.Fatalf("RandomVec magnitude %v >= max %v", v.Len(), maxMag)
		}
	}
}

func TestRandomVecDirectionSpread(t *testing.T) {
	// All four quadrants should be hit over many samples.
	rng := rand.New(rand.NewSource(7))
	var quadrants [4]int
	for i := 0; i < 4000; i++ {
		v := RandomVec(rng, 10)
		switch {
		case v.X >= 0 && v.Y >= 0:
			quadrants[0]++
		case v.X < 0 && v.Y >= 0:
			quadrants[1]++
		case v.X < 0 && v.Y < 0:
			quadrants[2]++
		default:
			quadrants[3]++
		}
	}
	for i, n := range quadrants {
		if n < 500 {
			t.Errorf("quadrant %d hit only %d times out of 4000", i, n)
		}
	}
}
