package trace

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// IntersectFunc resolves a ray against one surface, typically a closure
// over a Surface's Intersect method.
type IntersectFunc func(*core.Ray) (geometry.Hit, error)

// RedirectFunc applies the stage's physics to a ray at its hit. A non-nil
// error drops the ray.
type RedirectFunc func(*core.Ray, geometry.Hit) error

// ExpandFunc replaces one ray at its hit with any number of successor
// rays, for stages that fan a ray out — a grating traced over several
// orders. Returning no rays drops the ray.
type ExpandFunc func(*core.Ray, geometry.Hit) []*core.Ray

// Stage walks the collection through one surface interaction: each ray is
// intersected, dropped if it misses or falls outside the aperture, and
// redirected otherwise. Redirection errors (total internal reflection,
// invalid diffraction) also drop the ray. When log is non-nil the segment
// from the ray's position to the hit point is recorded for surviving
// intersections.
func Stage(c *Collection, intersect IntersectFunc, redirect RedirectFunc, log *Lines) {
	kept := c.rays[:0]
	for _, r := range c.rays {
		hit, err := intersect(r)
		if err != nil {
			continue
		}
		if log != nil {
			log.Add(r.Position, hit.Point, r.Red, r.Green, r.Blue)
		}
		if err := redirect(r, hit); err != nil {
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(c.rays); i++ {
		c.rays[i] = nil
	}
	c.rays = kept
}

// ExpandStage walks the collection through a surface interaction that may
// multiply rays: each surviving intersection hands the ray to expand, and
// the returned successors replace it in the collection.
func ExpandStage(c *Collection, intersect IntersectFunc, expand ExpandFunc, log *Lines) {
	var next []*core.Ray
	for _, r := range c.rays {
		hit, err := intersect(r)
		if err != nil {
			continue
		}
		if log != nil {
			log.Add(r.Position, hit.Point, r.Red, r.Green, r.Blue)
		}
		next = append(next, expand(r, hit)...)
	}
	c.rays = next
}
