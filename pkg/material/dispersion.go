package material

import (
	"errors"
	"math"
)

// ErrWavelengthOutOfRange means a dispersion model was queried outside the
// band its coefficients are fitted for. This is a configuration error, not
// a per-ray condition.
var ErrWavelengthOutOfRange = errors.New("wavelength outside dispersion model limits")

// Glass resolves an index of refraction for a vacuum wavelength in meters.
type Glass interface {
	Index(wavelength float64) (float64, error)
}

// Constant is a wavelength-independent index of refraction, for the air
// or vacuum gaps between elements.
type Constant float64

// Index returns the constant index for any wavelength.
func (c Constant) Index(wavelength float64) (float64, error) {
	return float64(c), nil
}

// Polynomial is a six-coefficient power-series dispersion model:
//
//	n² = a₀ + a₁λ² + a₂λ⁻² + a₃λ⁻⁴ + a₄λ⁻⁶ + a₅λ⁻⁸
//
// with λ in micrometers. The coefficients are fitted for 0.3–2.0 µm;
// queries outside that band return ErrWavelengthOutOfRange.
type Polynomial [6]float64

// Index returns the index of refraction for a vacuum wavelength in meters.
func (p Polynomial) Index(wavelength float64) (float64, error) {
	if wavelength < 0.3e-6 || wavelength > 2.0e-6 {
		return 0, ErrWavelengthOutOfRange
	}
	um := wavelength * 1e6
	x := um * um
	n2 := p[0] + p[1]*x + p[2]/x + p[3]/(x*x) + p[4]/(x*x*x) + p[5]/(x*x*x*x)
	return math.Sqrt(n2), nil
}

// Sellmeier is the three-term Sellmeier dispersion model:
//
//	n² = 1 + B₁λ²/(λ²−C₁) + B₂λ²/(λ²−C₂) + B₃λ²/(λ²−C₃)
//
// with λ in micrometers. No validity band is enforced; the caller is
// responsible for staying clear of the resonance poles.
type Sellmeier struct {
	B1, B2, B3 float64
	C1, C2, C3 float64
}

// Index returns the index of refraction for a vacuum wavelength in meters.
func (s Sellmeier) Index(wavelength float64) (float64, error) {
	um := wavelength * 1e6
	x := um * um
	n2 := 1 + (s.B1*x)/(x-s.C1) + (s.B2*x)/(x-s.C2) + (s.B3*x)/(x-s.C3)
	return math.Sqrt(n2), nil
}

// Polynomial coefficient tables
var (
	CaF2 = Polynomial{2.0388472e0, -3.2320997e-3, 6.1568960e-3,
		5.6612714e-5, -4.0951444e-9, 2.2406560e-8}

	TSU2 = Polynomial{2.5310795e0, -1.0750804e-2, 1.4091541e-2,
		2.4479041e-4, -4.3396907e-6, 4.2269287e-7}

	TSU4 = Polynomial{2.5310397e0, -1.0751078e-2, 1.4089396e-2,
		2.4455705e-4, -4.3189009e-6, 4.2184152e-7}

	TSU5 = Polynomial{2.2182723e0, -5.2937745e-3, 8.4751835e-3,
		9.0035648e-5, -2.1638749e-7, 8.8532657e-8}

	TSU6 = Polynomial{2.3863743e0, -9.2750923e-3, 1.2963764e-2,
		2.6012532e-4, -7.1806739e-6, 6.4902518e-7}

	TSU7 = Polynomial{2.5309288e0, -1.0751176e-2, 1.4087125e-2,
		2.4433615e-4, -4.2994607e-6, 4.2104219e-7}

	FusedSilica = Polynomial{2.1045254e0, 9.5251763e-3, 8.5795589e-3,
		1.2770234e-4, -2.2841020e-6, 1.2397250e-7}
)

// Sellmeier coefficient tables
var (
	NBAF10 = Sellmeier{
		B1: 1.58514950e+00, B2: 1.43559385e-01, B3: 1.08521269e+00,
		C1: 9.26681282e-03, C2: 4.24489805e-02, C3: 1.05613573e+02,
	}

	NSF6 = Sellmeier{
		B1: 1.77931763e+00, B2: 3.38149866e-01, B3: 2.08734474e+00,
		C1: 1.33714182e-02, C2: 6.17533621e-02, C3: 1.74017590e+02,
	}

	NBK7 = Sellmeier{
		B1: 1.03961212e+00, B2: 2.31792344e-01, B3: 1.01046945e+00,
		C1: 6.00069867e-03, C2: 2.00179144e-02, C3: 1.03560653e+02,
	}

	SF2 = Sellmeier{
		B1: 1.40301821e+00, B2: 2.31767504e-01, B3: 9.39056586e-01,
		C1: 1.05795466e-02, C2: 4.93226978e-02, C3: 1.12405955e+02,
	}
)
