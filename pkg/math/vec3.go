// Package math provides the vector type used for vertex attributes.
package math

import "math"

// Vec3 is a 3D vector. Positions, normals and texture coordinates all
// use it; a 2D texture coordinate carries Z = 0.
type Vec3 struct {
	X, Y, Z float32
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Div returns v with every component divided by w.
func (v Vec3) Div(w float32) Vec3 {
	return Vec3{v.X / w, v.Y / w, v.Z / w}
}

// Normalized returns v divided by its length.
// A zero vector yields NaN components.
func (v Vec3) Normalized() Vec3 {
	return v.Div(v.Length())
}
