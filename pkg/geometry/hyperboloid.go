package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Hyperboloid represents a hyperboloidal mirror surface. ToCenter points
// from the vertex to the center; its length is the semi-major axis.
// Eccentricity must be greater than 1. The vertex lies on the surface.
type Hyperboloid struct {
	Vertex       core.Vec3 // vertex position, on the surface
	ToCenter     core.Vec3 // vector from the vertex to the center
	Eccentricity float64   // e > 1
	Aperture     float64   // circular aperture diameter
}

// NewHyperboloid creates a new hyperboloid
func NewHyperboloid(vertex, toCenter core.Vec3, eccentricity, aperture float64) *Hyperboloid {
	return &Hyperboloid{Vertex: vertex, ToCenter: toCenter, Eccentricity: eccentricity, Aperture: aperture}
}

// Intersect calculates where the ray crosses the hyperboloid, selecting the
// root on the branch containing the vertex. The surface is expressed in its
// focus-directrix form: |x - F| = e·((x - center)·axis - semiMajor/e).
func (h *Hyperboloid) Intersect(r *core.Ray) (Hit, error) {
	semiMajor := h.ToCenter.Length()
	if semiMajor == 0 {
		return Hit{}, ErrNoIntersection
	}

	center := h.Vertex.Add(h.ToCenter)
	focus := center.Subtract(h.ToCenter.Multiply(h.Eccentricity))
	axis := h.ToCenter.Multiply(-1 / semiMajor) // points from center through vertex

	e2 := h.Eccentricity * h.Eccentricity
	toDirectrix := r.Position.Subtract(center).Add(h.ToCenter.Multiply(1 / h.Eccentricity))
	toFocus := r.Position.Subtract(focus)

	dAxial := axis.Dot(r.Direction)
	dirAxial := axis.Dot(toDirectrix)

	a := r.Direction.Dot(r.Direction) - e2*dAxial*dAxial
	b := 2 * (r.Direction.Dot(toFocus) - e2*dAxial*dirAxial)
	c := toFocus.Dot(toFocus) - e2*dirAxial*dirAxial

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
		t = plus
		if r.At(t).Subtract(center).Dot(h.ToCenter) >= 0 {
			t = minus
		}
	}

	if t < 0 {
		return Hit{}, ErrNoIntersection
	}
	q := r.At(t)
	if q.Subtract(center).Dot(h.ToCenter) >= 0 {
		return Hit{}, ErrNoIntersection
	}

	// Radial offset from the axis through the vertex
	radial := q.Subtract(h.Vertex)
	radial = radial.Subtract(axis.Multiply(radial.Dot(axis)))
	rad := radial.Length()

	var normal core.Vec3
	if rad == 0 {
		normal = axis
	} else {
		radial = radial.Multiply(1 / rad)
		// r0 is the asymptotic cone scale √(a²(e²−1)); the radial slope
		// of the normal follows from differentiating the surface equation
		r0 := math.Sqrt(semiMajor * semiMajor * (e2 - 1))
		slope := (semiMajor / r0) * (rad / math.Sqrt(r0*r0+rad*rad))
		normal = axis.Subtract(radial.Multiply(slope))
		if normal.IsZero() {
			return Hit{}, ErrNoIntersection
		}
		normal = normal.Normalize()
	}

	if rad > h.Aperture/2 {
		return Hit{}, ErrOutsideAperture
	}
	return Hit{Point: q, Normal: normal}, nil
}
