// Package scene assembles example optical benches: a Cassegrain telescope
// and an echelle spectrograph. Each bench couples a ray source, an ordered
// stage pipeline, and a detector; the driver traces the bench and reduces
// the surviving rays.
package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/detector"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/material"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// Indices of the gaps between optical elements.
const (
	indexAir    = material.Constant(1.000293)
	indexVacuum = material.Constant(1.000)
)

// Bench is a complete optical setup ready to trace.
type Bench struct {
	Name     string
	Source   func() []*core.Ray
	Stages   []trace.StageFunc
	Detector *detector.Detector
}

// Trace generates a fresh ray set and walks it through the stage
// pipeline, sequentially when workers is 1 and in parallel otherwise
// (workers <= 0 selects one worker per CPU). Returns the surviving rays
// and the traced line segments.
func (b *Bench) Trace(workers int) (*trace.Collection, *trace.Lines) {
	c := trace.NewCollection(b.Source()...)
	log := &trace.Lines{}
	if workers != 1 {
		trace.RunParallel(c, b.Stages, workers, log)
	} else {
		trace.Run(c, b.Stages, log)
	}
	return c, log
}

// Expose bins the surviving rays into the bench detector and reports how
// many landed on the pixel grid.
func (b *Bench) Expose(c *trace.Collection) int {
	landed := 0
	for _, r := range c.Rays() {
		if b.Detector.Expose(r.Position) {
			landed++
		}
	}
	return landed
}

// reflectStage builds a mirror stage over a surface.
func reflectStage(s geometry.Surface) trace.StageFunc {
	return func(c *trace.Collection, log *trace.Lines) {
		trace.Stage(c,
			func(r *core.Ray) (geometry.Hit, error) { return s.Intersect(r) },
			func(r *core.Ray, hit geometry.Hit) error {
				material.Reflect(r, hit)
				return nil
			}, log)
	}
}

// refractStage builds a refracting stage over a surface between two media.
func refractStage(s geometry.Surface, from, to material.Glass) trace.StageFunc {
	return func(c *trace.Collection, log *trace.Lines) {
		trace.Stage(c,
			func(r *core.Ray) (geometry.Hit, error) { return s.Intersect(r) },
			func(r *core.Ray, hit geometry.Hit) error {
				nFrom, err := from.Index(r.Wavelength)
				if err != nil {
					return err
				}
				nTo, err := to.Index(r.Wavelength)
				if err != nil {
					return err
				}
				return material.Refract(r, hit, nFrom/nTo)
			}, log)
	}
}

// diffractStage builds a grating stage at a single order.
func diffractStage(s geometry.Surface, grating core.Vec3, order int) trace.StageFunc {
	return func(c *trace.Collection, log *trace.Lines) {
		trace.Stage(c,
			func(r *core.Ray) (geometry.Hit, error) { return s.Intersect(r) },
			func(r *core.Ray, hit geometry.Hit) error {
				return material.Diffract(r, hit, grating, r.Wavelength, r.Wavelength, order)
			}, log)
	}
}

// impactStage builds the terminal detector stage.
func impactStage(s geometry.Surface) trace.StageFunc {
	return func(c *trace.Collection, log *trace.Lines) {
		trace.Stage(c,
			func(r *core.Ray) (geometry.Hit, error) { return s.Intersect(r) },
			func(r *core.Ray, hit geometry.Hit) error {
				material.Impact(r, hit)
				return nil
			}, log)
	}
}
