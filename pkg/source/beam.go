// Package source generates the ray bundles that get traced through an
// optical system: circular beams of parallel rays and cones of rays from a
// point source.
//
// Generated rays share the axis ray's wavelength and color and carry a
// path key identifying the bundle, so rays of common origin can be
// clustered for spot statistics after tracing. A beam's rays share a
// direction, so the key is formed from direction and wavelength; a cone's
// rays share a start position, so the key is formed from position and
// wavelength.
package source

import (
	"fmt"
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// pathKey builds the bundle key from a shared vector and the wavelength,
// in the fixed exponential format clusters are matched on.
func pathKey(v core.Vec3, wavelength float64) string {
	return fmt.Sprintf("%e%e%e%e", v.X, v.Y, v.Z, wavelength)
}

// Beam creates a circular bundle of rays parallel to the axis ray. The
// rays sit on a square lattice with the given pitch, clipped to the beam
// diameter, in the plane through the axis position perpendicular to the
// axis direction.
//
// A null axis direction or non-positive pitch yields no rays.
func Beam(axis core.Ray, diameter, pitch float64) []*core.Ray {
	if axis.Direction.IsZero() || pitch <= 0 {
		return nil
	}

	u0, u1 := axis.Direction.Basis()
	key := pathKey(axis.Direction, axis.Wavelength)

	var rays []*core.Ray
	n := int(math.Floor(diameter / 2 / pitch))
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			x, y := float64(i)*pitch, float64(j)*pitch
			if math.Hypot(x, y) > diameter/2 {
				continue
			}

			r := axis
			r.Position = axis.Position.Add(u0.Multiply(x)).Add(u1.Multiply(y))
			r.PathKey = key
			rays = append(rays, &r)
		}
	}
	return rays
}
