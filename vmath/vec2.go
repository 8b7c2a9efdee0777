package vmath

import "math"

// Vec2 is a planar vector in world units, +Y up, origin at viewport center
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// LengthSq returns squared length without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns euclidean length
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// DistanceSq returns squared distance between two points
func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

// ClampLength limits vector length to max while preserving direction
func (v Vec2) ClampLength(max float64) Vec2 {
	lsq := v.LengthSq()
	if lsq <= max*max || lsq == 0 {
		return v
	}
	return v.Scale(max / math.Sqrt(lsq))
}

// FromAngle returns a vector of the given length pointing at degrees (0 = +X, 90 = +Y)
func FromAngle(degrees, length float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{length * math.Cos(rad), length * math.Sin(rad)}
}
