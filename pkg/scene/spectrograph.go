package scene

import (
	"fmt"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/detector"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/material"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// Echelle order range traced through the spectrograph. The grating stage
// fans every ray out over all orders and lets the downstream apertures
// keep the ones that land in the camera.
const (
	echelleOrderMin = 40
	echelleOrderMax = 99
)

// spectrographWavelengths sample the fiber spectrum across the visible
// band, colored by region for the line log.
var spectrographWavelengths = []struct {
	wavelength       float64
	red, green, blue uint8
}{
	{490e-9, 0, 0, 255},
	{530e-9, 0, 0, 255},
	{570e-9, 0, 255, 255},
	{610e-9, 0, 255, 0},
	{650e-9, 0, 255, 0},
	{690e-9, 255, 255, 0},
}

// Spectrograph builds a fiber-fed echelle spectrograph: a parabolic
// collimator, an echelle grating traced over a range of orders, a fold
// mirror, a second pass off the collimator pair, a cross-dispersion
// grating separating the orders, a refractive camera, and a CCD.
//
// The camera glasses use band-limited polynomial dispersion models, so
// the source wavelengths are validated up front; a wavelength outside the
// models' band is a configuration error.
func Spectrograph() (*Bench, error) {
	for _, pt := range spectrographWavelengths {
		for _, glass := range []material.Glass{material.CaF2, material.TSU2, material.TSU4,
			material.TSU5, material.TSU6, material.TSU7, material.FusedSilica} {
			if _, err := glass.Index(pt.wavelength); err != nil {
				return nil, fmt.Errorf("source wavelength %g: %w", pt.wavelength, err)
			}
		}
	}

	collimator1 := geometry.NewParaboloid(
		core.NewVec3(0.29657, -1.04348, 0), core.NewVec3(-0.91404, 1.08932, 0), 0.6096)
	echelle := geometry.NewPlane(
		core.NewVec3(-0.75515, -0.04119, 0), core.NewVec3(0.2927321, -0.3367498, -0.8949344), 0.456)
	fold := geometry.NewPlane(
		core.NewVec3(-0.57391, 0.03844, 0), core.NewVec3(0.6427876, -0.7660444, 0), 0.160)
	collimator2 := geometry.NewParaboloid(
		core.NewVec3(0.35973, -1.11213, 0), core.NewVec3(-0.91404, 1.08932, 0), 0.6096)
	crossDisp := geometry.NewPlane(
		core.NewVec3(-0.30893, 0, 0), core.NewVec3(0.9426415, -0.3338069, 0), 0.260)

	// The echelle ruling-normal vector need not lie in the grating plane;
	// the diffraction routine projects it there
	echelleVec := core.NewVec3(0.65606, -0.75471, 0).Normalize().Multiply(1.901141e-5)
	crossDispVec := core.NewVec3(0, -1, 0).Multiply(4.0e-6)

	// Camera lens surfaces, front to back
	camera := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0.0e-3, 0, 0), core.NewVec3(310.085e-3, 0, 0), 256.0e-3),
		geometry.NewSphere(core.NewVec3(37.19e-3, 0, 0), core.NewVec3(3010.0e-3, 0, 0), 256.0e-3),
		geometry.NewSphere(core.NewVec3(216.54e-3, 0, 0), core.NewVec3(294.167e-3, 0, 0), 212.0e-3),
		geometry.NewSphere(core.NewVec3(224.44e-3, 0, 0), core.NewVec3(137.589e-3, 0, 0), 196.0e-3),
		geometry.NewSphere(core.NewVec3(292.64e-3, 0, 0), core.NewVec3(-279.363e-3, 0, 0), 196.0e-3),
		geometry.NewSphere(core.NewVec3(303.61e-3, 0, 0), core.NewVec3(774.610e-3, 0, 0), 188.0e-3),
		geometry.NewSphere(core.NewVec3(603.79e-3, 0, 0), core.NewVec3(175.180e-3, 0, 0), 173.0e-3),
		geometry.NewSphere(core.NewVec3(663.37e-3, 0, 0), core.NewVec3(-153.651e-3, 0, 0), 173.0e-3),
		geometry.NewSphere(core.NewVec3(670.79e-3, 0, 0), core.NewVec3(-348.256e-3, 0, 0), 173.0e-3),
		geometry.NewSphere(core.NewVec3(755.55e-3, 0, 0), core.NewVec3(-196.175e-3, 0, 0), 82.0e-3),
		geometry.NewSphere(core.NewVec3(760.10e-3, 0, 0), core.NewVec3(-769.560e-3, 0, 0), 92.0e-3),
		geometry.NewSphere(core.NewVec3(767.36e-3, 0, 0), core.NewVec3(-144.410e-3, 0, 0), 78.0e-3),
	}
	fieldFlattener := geometry.NewCylinder(
		core.NewVec3(776.48e-3, 0, 0), core.NewVec3(-280.0e-3, 0, 0), core.NewVec3(0, 1, 0), 73.9e-3)

	ccd, err := detector.New(
		core.NewVec3(783.48e-3-2.0e-3, 0, 0),
		core.NewVec3(0, 15.0e-6, 0),
		core.NewVec3(0, 0, 15.0e-6),
		4096, 4096)
	if err != nil {
		return nil, err
	}

	src := func() []*core.Ray {
		var rays []*core.Ray
		for _, pt := range spectrographWavelengths {
			apex := core.Ray{
				Position:   core.NewVec3(-0.611, 0.054, 0),
				Direction:  core.NewVec3(0.7790, -1.1973, 0),
				Wavelength: pt.wavelength,
				Red:        pt.red, Green: pt.green, Blue: pt.blue,
			}
			rays = append(rays, source.Cone(apex, 10.0, 2.0)...)
		}
		return rays
	}

	// The echelle replaces each incident ray with one ray per reachable
	// order, keyed so that order clusters stay separate in the spot
	// statistics
	echelleStage := func(c *trace.Collection, log *trace.Lines) {
		trace.ExpandStage(c,
			func(r *core.Ray) (geometry.Hit, error) { return echelle.Intersect(r) },
			func(r *core.Ray, hit geometry.Hit) []*core.Ray {
				var out []*core.Ray
				for order := echelleOrderMin; order <= echelleOrderMax; order++ {
					split := *r
					split.AppendKey(fmt.Sprintf("%d", order))
					if err := material.Diffract(&split, hit, echelleVec,
						r.Wavelength, r.Wavelength, order); err != nil {
						continue
					}
					out = append(out, &split)
				}
				return out
			}, log)
	}

	// The echelle works in near-littrow: diffracted orders return to the
	// first collimator, refocus onto the fold mirror, and head out through
	// the second collimator to the cross disperser
	stages := []trace.StageFunc{
		reflectStage(collimator1),
		echelleStage,
		reflectStage(collimator1),
		reflectStage(fold),
		reflectStage(collimator2),
		diffractStage(crossDisp, crossDispVec, +1),
	}

	// Camera glass sequence: the media on each side of every surface
	gaps := []material.Glass{
		indexAir, material.CaF2, indexAir,
		material.TSU2, material.CaF2, material.TSU4, indexAir,
		material.TSU5, material.TSU6, indexAir,
		material.TSU7, indexAir, material.FusedSilica,
	}
	for i, sphere := range camera {
		stages = append(stages, refractStage(sphere, gaps[i], gaps[i+1]))
	}
	stages = append(stages,
		refractStage(fieldFlattener, material.FusedSilica, indexVacuum),
		impactStage(ccd.Plane()),
	)

	return &Bench{
		Name:     "spectrograph",
		Source:   src,
		Detector: ccd,
		Stages:   stages,
	}, nil
}
