package material

import (
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		ray      core.Ray
		hit      geometry.Hit
		expected core.Vec3
	}{
		{
			name:     "head-on reversal",
			ray:      core.Ray{Position: core.NewVec3(0, 0, 0), Direction: core.NewVec3(1, 0, 0)},
			hit:      geometry.Hit{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(-1, 0, 0)},
			expected: core.NewVec3(-1, 0, 0),
		},
		{
			name:     "45 degree mirror",
			ray:      core.Ray{Position: core.NewVec3(0, 1, 0), Direction: core.NewVec3(1, -1, 0)},
			hit:      geometry.Hit{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(0, 1, 0)},
			expected: core.NewVec3(1, 1, 0),
		},
		{
			name:     "non-unit direction preserved",
			ray:      core.Ray{Position: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -5)},
			hit:      geometry.Hit{Point: core.NewVec3(0, 0, -2), Normal: core.NewVec3(0, 0, 1)},
			expected: core.NewVec3(0, 0, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reflect(&tt.ray, tt.hit)

			if tt.ray.Position != tt.hit.Point {
				t.Errorf("position = %v, expected %v", tt.ray.Position, tt.hit.Point)
			}
			if !tt.ray.Direction.Equals(tt.expected) {
				t.Errorf("direction = %v, expected %v", tt.ray.Direction, tt.expected)
			}
		})
	}
}

func TestReflect_Properties(t *testing.T) {
	normal := core.NewVec3(0.2, -0.4, 1).Normalize()
	hit := geometry.Hit{Point: core.NewVec3(1, 2, 3), Normal: normal}

	directions := []core.Vec3{
		core.NewVec3(1, 0, -2),
		core.NewVec3(-0.3, 0.9, -0.1),
		core.NewVec3(0, 0, -7),
	}

	for _, d := range directions {
		ray := core.Ray{Position: core.NewVec3(0, 0, 0), Direction: d}
		Reflect(&ray, hit)

		// Magnitude preserved
		if math.Abs(ray.Direction.Length()-d.Length()) > 1e-12 {
			t.Errorf("direction %v: magnitude %f -> %f", d, d.Length(), ray.Direction.Length())
		}
		// Angle to the normal negated
		if math.Abs(ray.Direction.Dot(normal)+d.Dot(normal)) > 1e-12 {
			t.Errorf("direction %v: normal component not negated", d)
		}
	}
}

func TestImpact(t *testing.T) {
	ray := core.Ray{Position: core.NewVec3(0, 0, 0), Direction: core.NewVec3(1, 2, 3)}
	hit := geometry.Hit{Point: core.NewVec3(4, 5, 6), Normal: core.NewVec3(0, 0, 1)}

	Impact(&ray, hit)

	if ray.Position != hit.Point {
		t.Errorf("position = %v, expected %v", ray.Position, hit.Point)
	}
	if !ray.Direction.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("direction changed: %v", ray.Direction)
	}
}
