package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/trace"
)

func TestSpectrograph_SourceCones(t *testing.T) {
	bench, err := Spectrograph()
	if err != nil {
		t.Fatalf("Spectrograph failed: %v", err)
	}

	rays := bench.Source()
	// 19 rays per cone (axial + shells of 6 and 12) for each wavelength
	expected := 19 * len(spectrographWavelengths)
	if len(rays) != expected {
		t.Errorf("source rays = %d, expected %d", len(rays), expected)
	}

	keys := make(map[string]bool)
	for _, r := range rays {
		keys[r.PathKey] = true
	}
	if len(keys) != len(spectrographWavelengths) {
		t.Errorf("distinct path keys = %d, expected one per wavelength", len(keys))
	}
}

func TestSpectrograph_EchelleFansOrdersOut(t *testing.T) {
	bench, err := Spectrograph()
	if err != nil {
		t.Fatalf("Spectrograph failed: %v", err)
	}

	// Run only the collimator and echelle stages
	c := trace.NewCollection(bench.Source()...)
	trace.Run(c, bench.Stages[:2], nil)

	if c.Len() == 0 {
		t.Fatal("no rays survived the echelle")
	}

	// Each survivor carries an order suffix on top of its source key, and
	// several distinct orders are represented
	orders := make(map[string]bool)
	for _, r := range c.Rays() {
		if len(r.PathKey) == 0 {
			t.Fatal("survivor lost its path key")
		}
		orders[r.PathKey] = true
	}
	if len(orders) <= len(spectrographWavelengths) {
		t.Errorf("distinct keys after the echelle = %d, expected an order fan", len(orders))
	}
	// Diffracted rays pick up out-of-plane components from the tilted
	// grating
	sawOutOfPlane := false
	for _, r := range c.Rays() {
		if math.Abs(r.Position.Z) > 1e-12 || math.Abs(r.Direction.Z) > 1e-9 {
			sawOutOfPlane = true
			break
		}
	}
	if !sawOutOfPlane {
		t.Error("echelle left every ray in the xy plane")
	}
}

func TestSpectrograph_OrderKeysStayWithinLimit(t *testing.T) {
	bench, err := Spectrograph()
	if err != nil {
		t.Fatalf("Spectrograph failed: %v", err)
	}

	c := trace.NewCollection(bench.Source()...)
	trace.Run(c, bench.Stages[:2], nil)

	for _, r := range c.Rays() {
		if len(r.PathKey) > 80 {
			t.Fatalf("path key overflow: %d chars", len(r.PathKey))
		}
		// The appended order must be parseable off the end of the key
		if !strings.ContainsAny(r.PathKey[len(r.PathKey)-2:], "0123456789") {
			t.Fatalf("path key %q does not end in an order", r.PathKey)
		}
	}
}

func TestSpectrograph_FullTrace(t *testing.T) {
	bench, err := Spectrograph()
	if err != nil {
		t.Fatalf("Spectrograph failed: %v", err)
	}

	rays, lines := bench.Trace(1)

	// The bench apertures cull aggressively; whatever survives must have
	// been impacted onto the detector plane
	detectorX := bench.Detector.Vertex.X
	for _, r := range rays.Rays() {
		if math.Abs(r.Position.X-detectorX) > 1e-9 {
			t.Fatalf("survivor off the detector plane: %v", r.Position)
		}
	}
	if len(lines.Segments()) == 0 {
		t.Error("trace recorded no segments")
	}

	// Spot reduction over the survivors must not panic and must respect
	// the singleton rule
	spots := trace.SpotSizes(rays.Rays())
	if _, n := trace.MeanSpot(spots); n > len(spots) {
		t.Errorf("contributing clusters %d exceed total %d", n, len(spots))
	}
}
