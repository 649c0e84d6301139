// Package detector implements the flat pixel-grid detector that terminates
// a trace: exposure binning of ray impacts, FITS image serialization, and
// a grayscale preview export.
package detector

import (
	"errors"
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// ErrInvalidDetector means the pixel axis vectors do not span a plane.
var ErrInvalidDetector = errors.New("detector pixel axes are parallel")

// Exposure constants: counts added per ray impact, and the level at which
// a pixel stops accumulating.
const (
	exposureStep = 100
	exposureMax  = 65000
)

// Detector is a flat detector with a rectangular grid of pixels. The pixel
// axis vectors give the pixel pitch along each axis; they need not be unit
// length. The vertex sits at the center of the grid.
type Detector struct {
	Vertex core.Vec3
	PixelX core.Vec3 // pixel axis vector; length is the pixel pitch in x
	PixelY core.Vec3 // pixel axis vector; length is the pixel pitch in y
	NX, NY int       // pixel counts

	plane  geometry.Plane
	buffer []uint16
}

// New creates a detector and derives its impact plane: the plane through
// the vertex with normal PixelX × PixelY, whose aperture conservatively
// covers the whole grid. Returns ErrInvalidDetector when the pixel axes
// are parallel.
func New(vertex, pixelX, pixelY core.Vec3, nx, ny int) (*Detector, error) {
	normal := pixelX.Cross(pixelY)
	if normal.IsZero() {
		return nil, ErrInvalidDetector
	}

	d := &Detector{
		Vertex: vertex,
		PixelX: pixelX,
		PixelY: pixelY,
		NX:     nx,
		NY:     ny,
		plane: geometry.Plane{
			Vertex:   vertex,
			Normal:   normal.Normalize(),
			Aperture: 2 * (float64(nx)*pixelX.Length() + float64(ny)*pixelY.Length()),
		},
		buffer: make([]uint16, nx*ny),
	}
	return d, nil
}

// Plane returns the detector's impact plane for use as a trace stage.
func (d *Detector) Plane() *geometry.Plane {
	return &d.plane
}

// Expose bins an impact position into the pixel grid. Positions are
// projected onto the pixel axes and offset so the vertex is the grid
// center. In-bounds pixels accumulate a fixed exposure step until they
// saturate. Reports whether the position landed on a pixel.
func (d *Detector) Expose(p core.Vec3) bool {
	w := p.Subtract(d.Vertex)

	i := int(math.Floor(w.Dot(d.PixelX)/d.PixelX.Dot(d.PixelX))) + d.NX/2
	j := int(math.Floor(w.Dot(d.PixelY)/d.PixelY.Dot(d.PixelY))) + d.NY/2

	if i < 0 || i >= d.NX || j < 0 || j >= d.NY {
		return false
	}

	if v := d.buffer[j*d.NX+i]; v < exposureMax {
		d.buffer[j*d.NX+i] = v + exposureStep
	}
	return true
}

// At returns the accumulated counts of pixel (i, j).
func (d *Detector) At(i, j int) uint16 {
	return d.buffer[j*d.NX+i]
}

// Reset zeroes the image buffer.
func (d *Detector) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
}

// Pixels returns the image buffer in row-major order. The slice is the
// detector's own storage; callers must not hold it across a Reset.
func (d *Detector) Pixels() []uint16 {
	return d.buffer
}
