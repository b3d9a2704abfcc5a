package core

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the default absolute tolerance for approximate comparisons.
const Epsilon = 1e-9

// ApproxEqual reports whether a and b are within tol of each other
func ApproxEqual(a, b, tol float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}
