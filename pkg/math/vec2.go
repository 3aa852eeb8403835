package math

import "math"

// Vec2 is a 2D vector. Lathe profiles use X as the radius and Y as the
// height along the axis of revolution.
type Vec2 struct {
	X, Y float32
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
