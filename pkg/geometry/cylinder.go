package geometry

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Cylinder represents a cylindrical surface. ToAxis points from the vertex
// perpendicularly to the cylinder axis, so the radius is the length of
// ToAxis. Axis gives the axis direction; it may have any nonzero length and
// need not be exactly perpendicular to ToAxis — the component along ToAxis
// is projected out.
type Cylinder struct {
	Vertex   core.Vec3 // vertex position, on the surface
	ToAxis   core.Vec3 // vector from the vertex to the cylinder axis
	Axis     core.Vec3 // vector parallel to the cylinder axis
	Aperture float64   // circular aperture diameter
}

// NewCylinder creates a new cylinder
func NewCylinder(vertex, toAxis, axis core.Vec3, aperture float64) *Cylinder {
	return &Cylinder{Vertex: vertex, ToAxis: toAxis, Axis: axis, Aperture: aperture}
}

// Intersect calculates where the ray crosses the cylinder, selecting the
// root on the vertex side of the axis.
func (c *Cylinder) Intersect(r *core.Ray) (Hit, error) {
	radius := c.ToAxis.Length()
	if radius == 0 {
		return Hit{}, ErrNoIntersection
	}
	radialAxis := c.ToAxis.Multiply(1 / radius)

	// Orthonormalize the axis direction against the radial axis
	axis := c.Axis.Subtract(radialAxis.Multiply(c.Axis.Dot(radialAxis)))
	if axis.IsZero() {
		return Hit{}, ErrNoIntersection
	}
	axis = axis.Normalize()

	center := c.Vertex.Add(c.ToAxis)
	oc := r.Position.Subtract(center)

	// Project the ray into the plane perpendicular to the axis and solve
	// the circle equation there
	dPerp := r.Direction.Subtract(axis.Multiply(r.Direction.Dot(axis)))
	ocPerp := oc.Subtract(axis.Multiply(oc.Dot(axis)))

	a := dPerp.Dot(dPerp)
	b := 2 * dPerp.Dot(ocPerp)
	cc := ocPerp.Dot(ocPerp) - c.ToAxis.Dot(c.ToAxis)

	var t float64
	if a == 0 {
		if b == 0 {
			return Hit{}, ErrNoIntersection
		}
		t = -cc / b
	} else {
		plus, minus, ok := solveQuadratic(a, b, cc)
		if !ok {
			return Hit{}, ErrNoIntersection
		}
		t = plus
		if r.At(t).Subtract(center).Dot(c.ToAxis) >= 0 {
			t = minus
		}
	}

	if t < 0 {
		return Hit{}, ErrNoIntersection
	}
	q := r.At(t)
	fromCenter := q.Subtract(center)
	if fromCenter.Dot(c.ToAxis) >= 0 {
		return Hit{}, ErrNoIntersection
	}

	normal := fromCenter.Subtract(axis.Multiply(fromCenter.Dot(axis)))
	if normal.IsZero() {
		return Hit{}, ErrNoIntersection
	}

	hit := Hit{Point: q, Normal: normal.Normalize()}

	// Aperture: offset from the vertex in the directions tangent to the
	// surface there (everything but the radial component)
	lateral := fromCenter.Subtract(radialAxis.Multiply(fromCenter.Dot(radialAxis)))
	if lateral.Length() > c.Aperture/2 {
		return Hit{}, ErrOutsideAperture
	}
	return hit, nil
}
