// Package geometry implements ray intersections with the quadric optical
// surfaces: planes, spheres, paraboloids, cylinders, and hyperboloids.
//
// Every surface carries a vertex and a circular aperture diameter centered
// on the vertex. Intersections never mutate the ray; they return the
// intersection point and the unit outward normal, or one of the two
// sentinel errors below. The caller is responsible for ordering surface
// interactions; no occlusion testing is performed.
package geometry

import (
	"errors"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Hit is a successful ray-surface intersection
type Hit struct {
	Point  core.Vec3 // intersection point
	Normal core.Vec3 // unit outward normal at the intersection point
}

var (
	// ErrOutsideAperture means the ray intersects the surface, but outside
	// its circular aperture. The caller typically drops the ray.
	ErrOutsideAperture = errors.New("intersection outside surface aperture")

	// ErrNoIntersection means the ray has no intersection with the surface
	// for any positive parameter on the correct branch.
	ErrNoIntersection = errors.New("no intersection with surface")
)

// Surface is the common interface of the five quadric surface types
type Surface interface {
	Intersect(r *core.Ray) (Hit, error)
}
