package core

import (
	"fmt"
	"math"
)

// Vector is a homogeneous 3D vector. H is the homogeneous coordinate:
// 1 for points, 0 for directions.
//
// H is never validated or renormalized. Every operation except Homogenise
// carries H through unchanged from the left operand, so callers must keep it
// consistent across a computation.
type Vector struct {
	I, J, K, H float64
}

// NewVector creates a new Vector
func NewVector(i, j, k, h float64) Vector {
	return Vector{I: i, J: j, K: k, H: h}
}

// NewPoint creates a point (H = 1)
func NewPoint(i, j, k float64) Vector {
	return Vector{I: i, J: j, K: k, H: 1}
}

// NewDirection creates a direction (H = 0)
func NewDirection(i, j, k float64) Vector {
	return Vector{I: i, J: j, K: k, H: 0}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.I + other.I, v.J + other.J, v.K + other.K, v.H}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.I - other.I, v.J - other.J, v.K - other.K, v.H}
}

// Negate returns the negative of the vector, keeping H
func (v Vector) Negate() Vector {
	return Vector{-v.I, -v.J, -v.K, v.H}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.I * scalar, v.J * scalar, v.K * scalar, v.H}
}

// Divide returns the vector divided by a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.I / scalar, v.J / scalar, v.K / scalar, v.H}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vector) MultiplyVec(other Vector) Vector {
	return Vector{v.I * other.I, v.J * other.J, v.K * other.K, v.H}
}

// DivideVec returns component-wise division of two vectors
func (v Vector) DivideVec(other Vector) Vector {
	return Vector{v.I / other.I, v.J / other.J, v.K / other.K, v.H}
}

// Dot returns the dot product of the spatial components
func (v Vector) Dot(other Vector) float64 {
	return v.I*other.I + v.J*other.J + v.K*other.K
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		I: v.J*other.K - v.K*other.J,
		J: v.K*other.I - v.I*other.K,
		K: v.I*other.J - v.J*other.I,
		H: v.H,
	}
}

// Modulus returns the Euclidean length of the spatial components
func (v Vector) Modulus() float64 {
	return math.Sqrt(v.I*v.I + v.J*v.J + v.K*v.K)
}

// Unit returns a vector of length 1 in the same direction, keeping H.
// A zero-length vector yields NaN components; use SafeUnit to detect that.
func (v Vector) Unit() Vector {
	mod := v.Modulus()
	return Vector{v.I / mod, v.J / mod, v.K / mod, v.H}
}

// SafeUnit is Unit that reports ErrZeroLength instead of producing NaN
func (v Vector) SafeUnit() (Vector, error) {
	if v.Modulus() == 0 {
		return v, ErrZeroLength
	}
	return v.Unit(), nil
}

// Homogenise divides the spatial components by H and sets H to 1, in place.
// H = 0 yields Inf/NaN components; use SafeHomogenise to detect that.
func (v *Vector) Homogenise() {
	v.I /= v.H
	v.J /= v.H
	v.K /= v.H
	v.H = 1
}

// SafeHomogenise homogenises the vector, leaving it untouched and returning
// ErrZeroHomogeneous when H is zero.
func (v *Vector) SafeHomogenise() error {
	if v.H == 0 {
		return ErrZeroHomogeneous
	}
	v.Homogenise()
	return nil
}

// Transform treats the vector as a 1x4 row and returns v × m
func (v Vector) Transform(m Mat4) Vector {
	var out [4]float64
	row := [4]float64{v.I, v.J, v.K, v.H}
	for c := 0; c < 4; c++ {
		for k := 0; k < 4; k++ {
			out[c] += row[k] * m.M[k][c]
		}
	}
	return Vector{out[0], out[1], out[2], out[3]}
}

// Equal reports exact component-wise equality, H included
func (v Vector) Equal(other Vector) bool {
	return v.I == other.I && v.J == other.J && v.K == other.K && v.H == other.H
}

// ApproxEqual reports whether every component, H included, is within tol
func (v Vector) ApproxEqual(other Vector, tol float64) bool {
	return ApproxEqual(v.I, other.I, tol) &&
		ApproxEqual(v.J, other.J, tol) &&
		ApproxEqual(v.K, other.K, tol) &&
		ApproxEqual(v.H, other.H, tol)
}

// IsFinite reports whether no component is NaN or infinite
func (v Vector) IsFinite() bool {
	return isFinite(v.I) && isFinite(v.J) && isFinite(v.K) && isFinite(v.H)
}

func (v Vector) String() string {
	return fmt.Sprintf("[%g %g %g %g]", v.I, v.J, v.K, v.H)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
