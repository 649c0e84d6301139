package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, -3, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); !got.Equals(NewVec3(-3, 7, -3)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Dot(b); got != 1*4+2*-5+3*6 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Length(); math.Abs(got-math.Sqrt(14)) > 1e-12 {
		t.Errorf("Length: got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "x cross y is z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "y cross z is x",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "anti-commutative",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(1, 0, 0),
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "general vectors",
			a:        NewVec3(1, 2, 3),
			b:        NewVec3(4, 5, 6),
			expected: NewVec3(-3, 6, -3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !got.Equals(tt.expected) {
				t.Errorf("Cross: got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Normalize: length %f", v.Length())
	}
	if !v.Equals(NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Normalize: got %v", v)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if !zero.IsZero() {
		t.Errorf("Normalize of zero vector: got %v", zero)
	}
}

func TestVec3_Basis(t *testing.T) {
	// Include directions near the coordinate axes, where the original
	// beam-basis construction divided by zero
	testDirections := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
		NewVec3(0, 0, -1),
		NewVec3(1e-12, 0, 1),
		NewVec3(0.577, 0.577, 0.577),
		NewVec3(-2, 5, 0.1),
	}

	for _, d := range testDirections {
		u0, u1 := d.Basis()

		if math.Abs(u0.Length()-1.0) > 1e-12 || math.Abs(u1.Length()-1.0) > 1e-12 {
			t.Errorf("Basis(%v): axes not unit length: %f, %f", d, u0.Length(), u1.Length())
		}
		if math.Abs(u0.Dot(u1)) > 1e-12 {
			t.Errorf("Basis(%v): axes not orthogonal: %g", d, u0.Dot(u1))
		}
		if math.Abs(u0.Dot(d.Normalize())) > 1e-12 || math.Abs(u1.Dot(d.Normalize())) > 1e-12 {
			t.Errorf("Basis(%v): axes not perpendicular to direction", d)
		}
	}

	u0, u1 := NewVec3(0, 0, 0).Basis()
	if !u0.IsZero() || !u1.IsZero() {
		t.Errorf("Basis of zero vector: got %v, %v", u0, u1)
	}
}

func TestRay_At(t *testing.T) {
	r := Ray{Position: NewVec3(1, 2, 3), Direction: NewVec3(0, 0, 2)}
	if got := r.At(1.5); !got.Equals(NewVec3(1, 2, 6)) {
		t.Errorf("At: got %v", got)
	}
}

func TestRay_AppendKey(t *testing.T) {
	r := Ray{PathKey: "base"}
	r.AppendKey("42")
	if r.PathKey != "base42" {
		t.Errorf("AppendKey: got %q", r.PathKey)
	}

	long := make([]byte, PathKeyMax)
	for i := range long {
		long[i] = 'x'
	}
	r.PathKey = string(long)
	r.AppendKey("overflow")
	if len(r.PathKey) != PathKeyMax {
		t.Errorf("AppendKey overflow: key length %d", len(r.PathKey))
	}
}
