package core

import "math"

// DegreesToRadians converts the angle argument of Rotate.
const DegreesToRadians = 0.0174532925

// Translate returns a translation by (x, y, z). The offset sits in the last
// row, matching the row-vector convention of Vector.Transform.
func Translate(x, y, z float64) Mat4 {
	return NewMat4FromRows(
		NewDirection(1, 0, 0),
		NewDirection(0, 1, 0),
		NewDirection(0, 0, 1),
		NewPoint(x, y, z),
	)
}

// Scale returns a scaling by (x, y, z)
func Scale(x, y, z float64) Mat4 {
	return NewMat4FromRows(
		NewDirection(x, 0, 0),
		NewDirection(0, y, 0),
		NewDirection(0, 0, z),
		NewPoint(0, 0, 0),
	)
}

// Rotate returns a rotation of angle degrees about axis (Rodrigues' formula).
// The axis must be a unit vector.
func Rotate(angle float64, axis Vector) Mat4 {
	cosA := math.Cos(angle * DegreesToRadians)
	sinA := math.Sin(angle * DegreesToRadians)
	oneMinusCos := 1 - cosA
	x, y, z := axis.I, axis.J, axis.K

	var r Mat4
	r.M[0][0] = cosA + oneMinusCos*x*x
	r.M[1][0] = oneMinusCos*x*y - sinA*z
	r.M[2][0] = oneMinusCos*x*z + sinA*y

	r.M[0][1] = oneMinusCos*y*x + sinA*z
	r.M[1][1] = cosA + oneMinusCos*y*y
	r.M[2][1] = oneMinusCos*y*z - sinA*x

	r.M[0][2] = oneMinusCos*z*x - sinA*y
	r.M[1][2] = oneMinusCos*z*y + sinA*x
	r.M[2][2] = cosA + oneMinusCos*z*z

	r.M[3][3] = 1
	return r
}
