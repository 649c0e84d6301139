package material

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultCatalog_Lookup(t *testing.T) {
	catalog := DefaultCatalog()

	if _, ok := catalog.Lookup("N-BK7"); !ok {
		t.Error("N-BK7 missing from the default catalog")
	}
	if _, ok := catalog.Lookup("fused-silica"); !ok {
		t.Error("fused-silica missing from the default catalog")
	}
	if _, ok := catalog.Lookup("unobtainium"); ok {
		t.Error("lookup of an unknown glass succeeded")
	}
}

func TestLoadCatalog(t *testing.T) {
	const file = `
glasses:
  - name: test-sellmeier
    model: sellmeier
    coefficients: [1.03961212, 0.231792344, 1.01046945, 0.00600069867, 0.0200179144, 103.560653]
  - name: test-polynomial
    model: polynomial
    coefficients: [2.1045254, 9.5251763e-3, 8.5795589e-3, 1.2770234e-4, -2.2841020e-6, 1.2397250e-7]
`
	catalog, err := LoadCatalog(strings.NewReader(file))
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	// The test entries duplicate N-BK7 and fused silica coefficients, so
	// the loaded glasses must agree with the built-ins
	loaded, ok := catalog.Lookup("test-sellmeier")
	if !ok {
		t.Fatal("loaded sellmeier glass missing")
	}
	want, _ := NBK7.Index(550e-9)
	got, err := loaded.Index(550e-9)
	if err != nil {
		t.Fatalf("loaded glass index: %v", err)
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("loaded sellmeier index %f, expected %f", got, want)
	}

	poly, ok := catalog.Lookup("test-polynomial")
	if !ok {
		t.Fatal("loaded polynomial glass missing")
	}
	want, _ = FusedSilica.Index(550e-9)
	got, err = poly.Index(550e-9)
	if err != nil {
		t.Fatalf("loaded glass index: %v", err)
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("loaded polynomial index %f, expected %f", got, want)
	}

	// Built-ins remain available after a merge
	if _, ok := catalog.Lookup("SF2"); !ok {
		t.Error("built-in SF2 lost after merging a file")
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{
			name: "unknown model",
			file: "glasses:\n  - name: g\n    model: cauchy\n    coefficients: [1, 2, 3, 4, 5, 6]\n",
		},
		{
			name: "wrong coefficient count",
			file: "glasses:\n  - name: g\n    model: sellmeier\n    coefficients: [1, 2, 3]\n",
		},
		{
			name: "duplicate name",
			file: "glasses:\n  - name: g\n    model: sellmeier\n    coefficients: [1, 2, 3, 4, 5, 6]\n  - name: g\n    model: sellmeier\n    coefficients: [1, 2, 3, 4, 5, 6]\n",
		},
		{
			name: "missing name",
			file: "glasses:\n  - model: sellmeier\n    coefficients: [1, 2, 3, 4, 5, 6]\n",
		},
		{
			name: "not yaml",
			file: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(tt.file)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
