package trace

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Segment is one traced ray path segment with its display color.
type Segment struct {
	P0, P1           core.Vec3
	Red, Green, Blue uint8
}

// Lines is an append-only log of traced segments, suitable for rendering
// the ray paths in an external 3-D viewer.
type Lines struct {
	segments []Segment
}

// Add records a segment.
func (l *Lines) Add(p0, p1 core.Vec3, red, green, blue uint8) {
	l.segments = append(l.segments, Segment{P0: p0, P1: p1, Red: red, Green: green, Blue: blue})
}

// Segments returns the recorded segments.
func (l *Lines) Segments() []Segment {
	return l.segments
}

// Merge appends another log's segments.
func (l *Lines) Merge(other *Lines) {
	l.segments = append(l.segments, other.segments...)
}
