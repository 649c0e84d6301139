// Package material implements the physics applied at a surface
// interaction: mirror reflection, Snell refraction, grating diffraction,
// and terminal impact, plus the dispersion models that supply
// wavelength-dependent indices of refraction.
//
// Every redirection moves the ray to the intersection point first, then
// rewrites its direction. The direction magnitude is preserved, so callers
// may trace with non-unit directions throughout.
package material

import (
	"errors"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

var (
	// ErrTotalInternalReflection means refraction is impossible at this
	// interface for the given index ratio. The ray keeps its direction;
	// only its position has been moved to the intersection point.
	ErrTotalInternalReflection = errors.New("total internal reflection")

	// ErrInvalidDiffraction means the grating geometry is degenerate for
	// this ray: grazing incidence, a ray parallel to the rulings, or an
	// order the grating equation cannot satisfy.
	ErrInvalidDiffraction = errors.New("invalid diffraction geometry")

	// ErrZeroDirection means a redirection was asked to operate on a ray
	// with a null direction vector.
	ErrZeroDirection = errors.New("ray direction is null")
)

// Reflect mirrors the ray about the hit normal and moves it to the hit
// point. The direction magnitude is preserved.
func Reflect(r *core.Ray, hit geometry.Hit) {
	r.Position = hit.Point
	d := r.Direction.Dot(hit.Normal)
	r.Direction = r.Direction.Subtract(hit.Normal.Multiply(2 * d))
}

// Impact moves the ray to the hit point without changing its direction.
// Used on a terminal surface such as a detector plane.
func Impact(r *core.Ray, hit geometry.Hit) {
	r.Position = hit.Point
}
