package source

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

const deg2rad = math.Pi / 180

// Cone creates a cone of rays diverging from the apex ray's position,
// centered on its direction. diameterDeg is the full cone angle and
// stepDeg the angular pitch, both in degrees.
//
// The axial ray is emitted first. Each shell j at polar angle j·step
// carries ⌊sin(θⱼ)·2π/step⌋ rays equally spaced in azimuth, so the ray
// density per solid angle stays roughly constant across shells. Every
// emitted direction has the magnitude of the apex direction.
//
// A null apex direction or non-positive pitch yields no rays.
func Cone(apex core.Ray, diameterDeg, stepDeg float64) []*core.Ray {
	mag := apex.Direction.Length()
	if mag == 0 || stepDeg <= 0 {
		return nil
	}

	key := pathKey(apex.Position, apex.Wavelength)

	axial := apex
	axial.PathKey = key
	rays := []*core.Ray{&axial}

	// Orientation of the apex direction, used to rotate shell offsets
	// from the z-aligned frame they are built in
	unit := apex.Direction.Multiply(1 / mag)
	azimuth := math.Atan2(unit.Y, unit.X)
	elevation := math.Asin(unit.Z)
	u0, u1, u2 := coneFrame(azimuth, elevation)

	step := stepDeg * deg2rad
	shells := int(math.Floor(diameterDeg * deg2rad / 2 / step))
	for j := 1; j <= shells; j++ {
		polar := float64(j) * step
		m := int(math.Floor(math.Sin(polar) * 2 * math.Pi / step))
		for k := 0; k < m; k++ {
			az := float64(k) * (2 * math.Pi / float64(m))
			alt := math.Pi/2 - polar

			// Chord from the frame pole to the shell direction
			shell := core.NewVec3(
				math.Cos(alt)*math.Cos(az),
				math.Cos(alt)*math.Sin(az),
				math.Sin(alt),
			)
			chord := shell.Subtract(core.NewVec3(0, 0, 1))

			r := apex
			r.Direction = core.NewVec3(
				apex.Direction.X+mag*chord.Dot(u0),
				apex.Direction.Y+mag*chord.Dot(u1),
				apex.Direction.Z+mag*chord.Dot(u2),
			)
			r.PathKey = key
			rays = append(rays, &r)
		}
	}
	return rays
}

// coneFrame returns the rows of the rotation taking the z-aligned shell
// frame onto a direction with the given azimuth and elevation.
func coneFrame(azimuth, elevation float64) (core.Vec3, core.Vec3, core.Vec3) {
	u0 := core.NewVec3(
		math.Cos(math.Pi/2-azimuth),
		math.Cos(azimuth)*math.Cos(math.Pi/2-elevation),
		math.Cos(azimuth)*math.Sin(math.Pi/2-elevation),
	)
	u1 := core.NewVec3(
		math.Sin(-(math.Pi/2 - azimuth)),
		math.Cos(-(math.Pi/2-azimuth))*math.Cos(math.Pi/2-elevation),
		math.Cos(-(math.Pi/2-azimuth))*math.Sin(math.Pi/2-elevation),
	)
	u2 := core.NewVec3(
		0,
		math.Sin(-(math.Pi/2 - elevation)),
		math.Cos(math.Pi/2-elevation),
	)
	return u0, u1, u2
}
