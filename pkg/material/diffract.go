package material

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// Diffract redirects the ray off a diffraction grating using the grating
// equation and moves it to the hit point. Reflection and transmission are
// handled uniformly: the sign of the incident direction against the
// supplied normal decides which half-space the outgoing ray leaves in.
//
// grating is perpendicular to the grating rulings and its length is the
// spacing between adjacent rulings. It does not need to lie in the surface
// plane; the component along the normal is projected out. wlIncident is
// the incident wavelength, wlOut the reflected or transmitted wavelength
// (equal for reflection), and order selects the diffraction lobe
// (..., -1, 0, +1, ...).
//
// The component of the direction parallel to the rulings is preserved; the
// grating equation is solved in the plane perpendicular to them with the
// wavelengths foreshortened accordingly.
func Diffract(r *core.Ray, hit geometry.Hit, grating core.Vec3, wlIncident, wlOut float64, order int) error {
	r.Position = hit.Point

	n := hit.Normal
	if n.IsZero() {
		return ErrInvalidDiffraction
	}
	n = n.Normalize()

	mag := r.Direction.Length()
	if mag == 0 {
		return ErrZeroDirection
	}
	w0 := r.Direction.Multiply(1 / mag)

	// Effective grating vector in the surface plane; its length is the
	// ruling spacing seen by the in-plane equation
	aPerp := grating.Subtract(n.Multiply(grating.Dot(n)))
	spacing := aPerp.Length()
	if spacing == 0 {
		return ErrInvalidDiffraction
	}
	aHat := aPerp.Multiply(1 / spacing)
	tHat := aHat.Cross(n)

	// The outgoing ray always leaves along +n, so a ray arriving against
	// the normal (alpha < 0) is reflected and a ray arriving along it is
	// transmitted
	alpha := w0.Dot(n)
	beta := w0.Dot(aHat)
	gamma := w0.Dot(tHat) // ruling-parallel component, preserved

	if alpha == 0 {
		return ErrInvalidDiffraction
	}
	if gamma == 1 {
		return ErrInvalidDiffraction
	}

	// Foreshorten the wavelengths into the plane perpendicular to the
	// rulings
	k := 1 / math.Sqrt(1-gamma*gamma)
	wlIn := wlIncident * k
	wlT := wlOut * k

	phiIncident := math.Atan2(beta, -alpha)
	s := (math.Sin(phiIncident)/wlIn + float64(order)/spacing) * wlT
	if math.Abs(s) >= 1 {
		return ErrInvalidDiffraction
	}
	phiOut := math.Asin(s)

	dir := tHat.Multiply(gamma).
		Add(n.Multiply(math.Cos(phiOut) / k)).
		Add(aHat.Multiply(math.Sin(phiOut) / k))
	r.Direction = dir.Multiply(mag)
	return nil
}
