package geometry

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Paraboloid represents a paraboloidal mirror surface. ToFocus points from
// the vertex to the focus; its length is the focal length and its direction
// is the surface axis.
type Paraboloid struct {
	Vertex   core.Vec3 // vertex position, on the surface
	ToFocus  core.Vec3 // vector from the vertex to the focus
	Aperture float64   // circular aperture diameter
}

// NewParaboloid creates a new paraboloid
func NewParaboloid(vertex, toFocus core.Vec3, aperture float64) *Paraboloid {
	return &Paraboloid{Vertex: vertex, ToFocus: toFocus, Aperture: aperture}
}

// Intersect calculates where the ray crosses the paraboloid. The surface is
// open, so the smaller positive root is selected.
func (p *Paraboloid) Intersect(r *core.Ray) (Hit, error) {
	focal := p.ToFocus.Length()
	if focal == 0 {
		return Hit{}, ErrNoIntersection
	}
	axis := p.ToFocus.Multiply(1 / focal)

	// Offset from the focus; the surface equation in these terms is
	// |x - v - (x-v)·axis axis|² = 4f (x-v)·axis
	w1 := r.Position.Subtract(p.Vertex).Subtract(p.ToFocus)

	dDotAxis := r.Direction.Dot(axis)
	a := r.Direction.Dot(r.Direction) - dDotAxis*dDotAxis
	k := 2*focal + w1.Dot(axis)
	b := 2*r.Direction.Dot(w1) - 2*dDotAxis*k
	c := w1.Dot(w1) - k*k

	var t float64
	if a == 0 {
		if b == 0 {
			return Hit{}, ErrNoIntersection
		}
		t = -c / b
		if t < 0 {
			return Hit{}, ErrNoIntersection
		}
	} else {
		plus, minus, ok := solveQuadratic(a, b, c)
		if !ok {
			return Hit{}, ErrNoIntersection
		}
		t = plus
		if t < 0 || (minus > 0 && minus < t) {
			t = minus
		}
		if t < 0 {
			return Hit{}, ErrNoIntersection
		}
	}

	q := r.At(t)

	// Radial offset from the axis through the vertex
	radial := q.Subtract(p.Vertex)
	radial = radial.Subtract(axis.Multiply(radial.Dot(axis)))
	rad := radial.Length()

	var normal core.Vec3
	if rad == 0 {
		normal = axis
	} else {
		radial = radial.Multiply(1 / rad)
		normal = radial.Multiply(-rad / (2 * focal)).Add(axis).Normalize()
	}

	if rad > p.Aperture/2 {
		return Hit{}, ErrOutsideAperture
	}
	return Hit{Point: q, Normal: normal}, nil
}
