package geometry

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Sphere represents a spherical surface cap. The vertex lies on the sphere
// and ToCenter points from the vertex to the sphere center, so the radius
// is the length of ToCenter. Only the cap on the vertex side of the center
// is a valid intersection target.
type Sphere struct {
	Vertex   core.Vec3 // vertex position, on the surface
	ToCenter core.Vec3 // vector from the vertex to the sphere center
	Aperture float64   // circular aperture diameter
}

// NewSphere creates a new sphere
func NewSphere(vertex, toCenter core.Vec3, aperture float64) *Sphere {
	return &Sphere{Vertex: vertex, ToCenter: toCenter, Aperture: aperture}
}

// Intersect calculates where the ray crosses the sphere, selecting the
// root on the vertex side of the center.
func (s *Sphere) Intersect(r *core.Ray) (Hit, error) {
	center := s.Vertex.Add(s.ToCenter)
	oc := r.Position.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(oc)
	c := oc.Dot(oc) - s.ToCenter.Dot(s.ToCenter)

	var t float64
	if a == 0 {
		if b == 0 {
			return Hit{}, ErrNoIntersection
		}
		t = -c / b
	} else {
		plus, minus, ok := solveQuadratic(a, b, c)
		if !ok {
			return Hit{}, ErrNoIntersection
		}
		// Prefer the "+" root; fall back to the other root when the
		// candidate point lands on the far cap
		t = plus
		if r.At(t).Subtract(center).Dot(s.ToCenter) >= 0 {
			t = minus
		}
	}

	if t < 0 {
		return Hit{}, ErrNoIntersection
	}
	q := r.At(t)
	fromCenter := q.Subtract(center)
	if fromCenter.Dot(s.ToCenter) >= 0 {
		return Hit{}, ErrNoIntersection
	}

	hit := Hit{Point: q, Normal: fromCenter.Normalize()}

	// Aperture: radial offset from the vertex in the plane perpendicular
	// to the vertex-to-center axis
	axis := s.ToCenter.Normalize()
	w := q.Subtract(s.Vertex)
	w = w.Subtract(axis.Multiply(w.Dot(axis)))
	if w.Length() > s.Aperture/2 {
		return Hit{}, ErrOutsideAperture
	}
	return hit, nil
}
