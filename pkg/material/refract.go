package material

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// Refract bends the ray through the surface according to Snell's law and
// moves it to the hit point. ratio is the index of refraction of the
// incident medium divided by that of the transmission medium. hit.Normal
// must be unit length; its orientation does not matter — it is flipped to
// face the incident side internally.
//
// Returns ErrTotalInternalReflection when the refracted angle would exceed
// 90°; the ray direction is left unchanged in that case.
func Refract(r *core.Ray, hit geometry.Hit, ratio float64) error {
	r.Position = hit.Point

	mag := r.Direction.Length()
	if mag == 0 {
		return ErrZeroDirection
	}

	// Unit vector from the surface back toward the ray origin
	u := r.Direction.Multiply(-1 / mag)

	// Orient the normal into the incident half-space
	n := hit.Normal
	if u.Dot(n) < 0 {
		n = n.Negate()
	}

	// |u × n| is the sine of the incidence angle
	w := u.Cross(n)
	sinIncident := w.Length()

	sinTransmit := ratio * sinIncident
	if math.Abs(sinTransmit) >= 1 {
		return ErrTotalInternalReflection
	}
	theta := math.Asin(sinTransmit)

	if sinIncident > 0 {
		// v is the in-plane tangent on the transmission side
		v := w.Multiply(1 / sinIncident).Cross(n)
		r.Direction = n.Negate().Multiply(math.Cos(theta)).
			Add(v.Multiply(math.Sin(theta))).
			Multiply(mag)
	} else {
		// Normal incidence: straight through
		r.Direction = n.Negate().Multiply(mag)
	}
	return nil
}
