package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units, y axis up
type Vec2 struct {
	X, Y float64
}

// Zero2 is the zero vector
var Zero2 = Vec2{}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2DistSq(a, b Vec2) float64 {
	return V2MagSq(V2Sub(a, b))
}

// V2Rotate rotates v counter-clockwise by radians
func V2Rotate(v Vec2, radians float64) Vec2 {
	sin, cos := math.Sincos(radians)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2ClampAxes clamps each component to [-1, 1]
func V2ClampAxes(v Vec2) Vec2 {
	return Vec2{Clamp(v.X, -1, 1), Clamp(v.Y, -1, 1)}
}

// V2ClampUnit scales v down onto the unit disc when its magnitude exceeds 1
func V2ClampUnit(v Vec2) Vec2 {
	magSq := V2MagSq(v)
	if magSq <= 1 {
		return v
	}
	return V2Scale(v, 1/math.Sqrt(magSq))
}

// V2ClampAxisPair applies axis clamping then unit disc clamping, the contract of a movement axis pair
func V2ClampAxisPair(v Vec2) Vec2 {
	return V2ClampUnit(V2ClampAxes(v))
}

// Clamp limits x to [lo, hi]; NaN collapses to zero
func Clamp(x, lo, hi float64) float64 {
	if x != x {
		return 0
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
