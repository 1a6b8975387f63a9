package math

import (
	"math"
	"testing"
)

func approxEqual(a, b Vec3) bool {
	const eps = 1e-6
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Div(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := v.Div(2)
	want := Vec3{0.5, 1, 1.5}
	if got != want {
		t.Errorf("Vec3.Div() = %v, want %v", got, want)
	}
}

func TestVec3Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", Vec3{3, 0, 0}, Vec3{1, 0, 0}},
		{"planar", Vec3{3, 4, 0}, Vec3{0.6, 0.8, 0}},
		{"negative", Vec3{0, 0, -2}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if !approxEqual(got, tt.want) {
				t.Errorf("Vec3.Normalized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3NormalizedZero(t *testing.T) {
	n := Vec3{}.Normalized()
	if !math.IsNaN(float64(n.X)) || !math.IsNaN(float64(n.Y)) || !math.IsNaN(float64(n.Z)) {
		t.Errorf("Vec3{}.Normalized() = %v, want NaN components", n)
	}
}

func TestVec3Immutable(t *testing.T) {
	v := Vec3{0, 5, 0}
	_ = v.Normalized()
	_ = v.Div(5)
	if v != (Vec3{0, 5, 0}) {
		t.Errorf("receiver modified: %v", v)
	}
}
