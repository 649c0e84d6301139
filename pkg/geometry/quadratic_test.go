package geometry

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name          string
		a, b, c       float64
		expectOK      bool
		expectedPlus  float64
		expectedMinus float64
	}{
		{
			name: "distinct roots",
			a:    1, b: -3, c: 2, // (t-1)(t-2)
			expectOK:     true,
			expectedPlus: 2, expectedMinus: 1,
		},
		{
			name: "negative leading coefficient",
			a:    -1, b: 3, c: -2, // same roots, flipped parabola
			expectOK:     true,
			expectedPlus: 1, expectedMinus: 2,
		},
		{
			name: "double root",
			a:    1, b: -4, c: 4,
			expectOK:     true,
			expectedPlus: 2, expectedMinus: 2,
		},
		{
			name: "no real roots",
			a:    1, b: 0, c: 1,
			expectOK: false,
		},
		{
			name: "roots of both signs",
			a:    1, b: 0, c: -4,
			expectOK:     true,
			expectedPlus: 2, expectedMinus: -2,
		},
		{
			name: "double root at zero",
			a:    1, b: 0, c: 0,
			expectOK:     true,
			expectedPlus: 0, expectedMinus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plus, minus, ok := solveQuadratic(tt.a, tt.b, tt.c)
			if ok != tt.expectOK {
				t.Fatalf("ok = %t, expected %t", ok, tt.expectOK)
			}
			if !ok {
				return
			}
			if math.Abs(plus-tt.expectedPlus) > 1e-12 {
				t.Errorf("plus root = %g, expected %g", plus, tt.expectedPlus)
			}
			if math.Abs(minus-tt.expectedMinus) > 1e-12 {
				t.Errorf("minus root = %g, expected %g", minus, tt.expectedMinus)
			}
		})
	}
}

// The Citardauq form must keep the small root accurate when b² dwarfs 4ac.
func TestSolveQuadratic_NearCancellation(t *testing.T) {
	// t² - 1e8·t + 1 = 0: roots ≈ 1e8 and 1e-8
	plus, minus, ok := solveQuadratic(1, -1e8, 1)
	if !ok {
		t.Fatal("expected real roots")
	}
	if math.Abs(plus-1e8) > 1 {
		t.Errorf("large root = %g, expected ~1e8", plus)
	}
	// The naive formula loses all precision here; the Citardauq form keeps
	// the small root to full relative accuracy
	if math.Abs(minus-1e-8) > 1e-16 {
		t.Errorf("small root = %g, expected 1e-8", minus)
	}
}
