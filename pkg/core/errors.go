package core

import "errors"

// Numeric edge cases reported by the Safe* variants. The unchecked operations
// let the same conditions propagate as IEEE Inf/NaN.
var (
	// ErrZeroLength is returned when normalizing a vector of length 0.
	ErrZeroLength = errors.New("core: zero-length vector")

	// ErrZeroHomogeneous is returned when homogenising a vector with H = 0.
	ErrZeroHomogeneous = errors.New("core: zero homogeneous coordinate")

	// ErrSingular is returned when a matrix has no inverse.
	ErrSingular = errors.New("core: matrix is singular")

	// ErrTotalInternalReflection is returned when refraction has no
	// transmitted ray because the incidence angle exceeds the critical angle.
	ErrTotalInternalReflection = errors.New("core: total internal reflection")
)
