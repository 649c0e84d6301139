// Package trace drives rays through an ordered sequence of surface
// interactions and reduces the survivors: an owning ray collection with
// in-place culling, the intersect-then-redirect stage walker, a
// line-segment log for 3-D rendering of ray paths, and spot-size
// statistics clustered by ray provenance.
package trace

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Collection is an owning, unordered set of rays. Stages mutate the rays
// in place and remove the ones that miss or leave the system.
type Collection struct {
	rays []*core.Ray
}

// NewCollection creates a collection owning the given rays.
func NewCollection(rays ...*core.Ray) *Collection {
	return &Collection{rays: rays}
}

// Add appends rays to the collection.
func (c *Collection) Add(rays ...*core.Ray) {
	c.rays = append(c.rays, rays...)
}

// Len returns the number of live rays.
func (c *Collection) Len() int {
	return len(c.rays)
}

// Rays returns the live rays. The slice is the collection's own storage;
// it is invalidated by the next mutating call.
func (c *Collection) Rays() []*core.Ray {
	return c.rays
}

// Filter removes every ray for which keep returns false.
func (c *Collection) Filter(keep func(*core.Ray) bool) {
	kept := c.rays[:0]
	for _, r := range c.rays {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	// Let dropped tails be collected
	for i := len(kept); i < len(c.rays); i++ {
		c.rays[i] = nil
	}
	c.rays = kept
}

// split partitions the collection into n roughly equal collections,
// transferring ownership of the rays. Used by the parallel pass.
func (c *Collection) split(n int) []*Collection {
	if n < 1 {
		n = 1
	}
	parts := make([]*Collection, 0, n)
	size := (len(c.rays) + n - 1) / n
	for start := 0; start < len(c.rays); start += size {
		end := min(start+size, len(c.rays))
		part := &Collection{rays: make([]*core.Ray, end-start)}
		copy(part.rays, c.rays[start:end])
		parts = append(parts, part)
	}
	c.rays = nil
	return parts
}
