package core

import "math"

// SelfIntersectionBias is how far a reflected or refracted ray starts from
// the hit point, along the normal, so it does not re-hit the same surface.
const SelfIntersectionBias = 0.001

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vector
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Reflect returns the mirror reflection of r about the hit normal.
// r.Direction and the hit normal must be unit vectors.
func (r Ray) Reflect(hit Interaction) Ray {
	normal := hit.Normal()
	// r = d - 2*dot(d,n)*n
	direction := r.Direction.Subtract(normal.Multiply(2 * r.Direction.Dot(normal))).Unit()
	return Ray{Origin: biasedOrigin(hit), Direction: direction}
}

// Refract returns the ray transmitted through the hit surface by Snell's law,
// going from a medium of index n1 into one of index n2. r.Direction and the
// hit normal must be unit vectors.
//
// Total internal reflection is not detected: past the critical angle the
// direction is NaN. Use SafeRefract or TotalInternalReflection to guard.
func (r Ray) Refract(hit Interaction, n1, n2 float64) Ray {
	normal := hit.Normal()
	ratio := n1 / n2
	cosI := r.Direction.Dot(normal)

	tangent := r.Direction.Subtract(normal.Multiply(cosI)).Multiply(ratio)
	cosT := math.Sqrt(1 - ratio*ratio*(1-cosI*cosI))
	direction := tangent.Subtract(normal.Multiply(cosT)).Unit()

	return Ray{Origin: biasedOrigin(hit), Direction: direction}
}

// SafeRefract is Refract that returns ErrTotalInternalReflection instead of
// a NaN direction.
func (r Ray) SafeRefract(hit Interaction, n1, n2 float64) (Ray, error) {
	if TotalInternalReflection(r.Direction, hit.Normal(), n1, n2) {
		return Ray{}, ErrTotalInternalReflection
	}
	return r.Refract(hit, n1, n2), nil
}

// TotalInternalReflection reports whether a unit direction meeting a surface
// with unit normal, going from index n1 into n2, lies past the critical angle.
func TotalInternalReflection(direction, normal Vector, n1, n2 float64) bool {
	ratio := n1 / n2
	cosI := direction.Dot(normal)
	return ratio*ratio*(1-cosI*cosI) > 1
}

func biasedOrigin(hit Interaction) Vector {
	return hit.Position().Add(hit.Normal().Multiply(SelfIntersectionBias))
}
