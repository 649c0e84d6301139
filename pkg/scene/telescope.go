package scene

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/detector"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/material"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// Telescope builds a Cassegrain telescope: a 2 m parabolic primary, a
// hyperbolic secondary folding the beam back through the primary's
// central hole, a BK7 field lens and beam-splitter cube, and a CCD at the
// final focus. Three parallel beams at 800, 600, and 400 nm model a
// distant on-axis star.
func Telescope() (*Bench, error) {
	primary := geometry.NewParaboloid(
		core.NewVec3(0, 0, 0), core.NewVec3(3.0432, 0, 0), 2.0)
	secondary := geometry.NewHyperboloid(
		core.NewVec3(2.6314+0.3e-3, 0, 0), core.NewVec3(-0.9007, 0, 0), 1.4577, 0.279)
	flat1 := geometry.NewPlane(
		core.NewVec3(0.420+66.0e-3, 0, 0), core.NewVec3(1, 0, 0), 50.0e-3)
	sphere1 := geometry.NewSphere(
		core.NewVec3(0.420+63.0e-3, 0, 0), core.NewVec3(-100.0e-3, 0, 0), 50.0e-3)
	cube0 := geometry.NewPlane(
		core.NewVec3(0.420+15.0e-3+30e-3, 0, 0), core.NewVec3(1, 0, 0), 30.0e-3)
	cube1 := geometry.NewPlane(
		core.NewVec3(0.420+15.0e-3, 0, 0), core.NewVec3(1, 0, 0), 30.0e-3)

	ccd, err := detector.New(
		core.NewVec3(0.420, 0, 0),
		core.NewVec3(0, 0, -4.0e-6),
		core.NewVec3(0, 4.0e-6, 0),
		1000, 1000)
	if err != nil {
		return nil, err
	}

	src := func() []*core.Ray {
		axis := core.Ray{Position: core.NewVec3(1, 0, 0), Direction: core.NewVec3(-1, 0, 0)}
		var rays []*core.Ray
		for _, b := range []struct {
			wavelength       float64
			red, green, blue uint8
		}{
			{800e-9, 200, 40, 0},
			{600e-9, 40, 200, 0},
			{400e-9, 0, 40, 200},
		} {
			beam := axis
			beam.Wavelength = b.wavelength
			beam.Red, beam.Green, beam.Blue = b.red, b.green, b.blue
			rays = append(rays, source.Beam(beam, 2.1, 0.07)...)
		}
		return rays
	}

	// The secondary shadows the middle of the primary; cull those rays
	// before the first mirror
	hole := func(c *trace.Collection, log *trace.Lines) {
		c.Filter(func(r *core.Ray) bool {
			return math.Hypot(r.Position.Y, r.Position.Z) >= 0.254
		})
	}

	return &Bench{
		Name:     "telescope",
		Source:   src,
		Detector: ccd,
		Stages: []trace.StageFunc{
			hole,
			reflectStage(primary),
			reflectStage(secondary),
			refractStage(flat1, indexAir, material.NBK7),
			refractStage(sphere1, material.NBK7, indexAir),
			refractStage(cube0, indexAir, material.NBK7),
			refractStage(cube1, material.NBK7, indexAir),
			impactStage(ccd.Plane()),
		},
	}, nil
}
