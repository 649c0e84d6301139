package geometry

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Plane represents a flat surface with a circular aperture
type Plane struct {
	Vertex   core.Vec3 // vertex position, center of the aperture
	Normal   core.Vec3 // normal vector to the plane (any nonzero length)
	Aperture float64   // circular aperture diameter
}

// NewPlane creates a new plane
func NewPlane(vertex, normal core.Vec3, aperture float64) *Plane {
	return &Plane{Vertex: vertex, Normal: normal, Aperture: aperture}
}

// Intersect calculates where the ray crosses the plane.
// The ray must reach the plane by a positive multiple of its direction.
func (p *Plane) Intersect(r *core.Ray) (Hit, error) {
	denom := r.Direction.Dot(p.Normal)
	if denom == 0 {
		return Hit{}, ErrNoIntersection
	}

	t := (p.Vertex.Dot(p.Normal) - r.Position.Dot(p.Normal)) / denom
	if t < 0 {
		return Hit{}, ErrNoIntersection
	}

	if p.Normal.IsZero() {
		return Hit{}, ErrNoIntersection
	}

	q := r.At(t)
	hit := Hit{Point: q, Normal: p.Normal.Normalize()}

	// q lies on the plane, so the full offset from the vertex is the
	// in-plane radial distance
	if q.Subtract(p.Vertex).Length() > p.Aperture/2 {
		return Hit{}, ErrOutsideAperture
	}
	return hit, nil
}
