package xcomplex

import "math"

// IsNaN reports whether either part of c is NaN and neither is an infinity.
func (c Complex) IsNaN() bool {
	switch {
	case math.IsInf(c.Re, 0) || math.IsInf(c.Im, 0):
		return false
	case math.IsNaN(c.Re) || math.IsNaN(c.Im):
		return true
	}

	return false
}

// IsInf reports whether either part of c is an infinity.
func (c Complex) IsInf() bool {
	return math.IsInf(c.Re, 0) || math.IsInf(c.Im, 0)
}
