package xcomplex

import "math"

// Complex represents a point in the complex plane as the pair Re + Im·i.
// Any pair of float64 values is a valid Complex; the built-in == operator
// compares field-wise, so values with NaN components compare unequal to
// themselves, as IEEE-754 requires.
type Complex struct {
	Re float64
	Im float64
}

// New returns the complex number re + im·i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromPolar returns the complex number with magnitude r and angle theta.
func FromPolar(r, theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{Re: r * c, Im: r * s}
}

// FromComplex128 converts a native complex128 value.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Complex128 converts c to a native complex128 value.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// Add returns the sum c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{Re: c.Re + d.Re, Im: c.Im + d.Im}
}

// Sub returns the difference c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{Re: c.Re - d.Re, Im: c.Im - d.Im}
}

// Mul returns the product c·d.
func (c Complex) Mul(d Complex) Complex {
	return Complex{
		Re: c.Re*d.Re - c.Im*d.Im,
		Im: c.Re*d.Im + c.Im*d.Re,
	}
}

// Div returns the quotient c/d. The denominator Re²+Im² is computed once
// and reused for both components. Division by the zero complex value is
// not special-cased: the result components follow float64 division and
// become ±Inf or NaN.
func (c Complex) Div(d Complex) Complex {
	den := d.Re*d.Re + d.Im*d.Im
	return Complex{
		Re: (c.Re*d.Re + c.Im*d.Im) / den,
		Im: (c.Im*d.Re - c.Re*d.Im) / den,
	}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// Norm returns the Euclidean magnitude sqrt(Re²+Im²) of c, computed
// without premature overflow or underflow for extreme components.
func (c Complex) Norm() float64 {
	return math.Hypot(c.Re, c.Im)
}

// NormSq returns the squared magnitude Re²+Im², skipping the square root.
func (c Complex) NormSq() float64 {
	return c.Re*c.Re + c.Im*c.Im
}

// Arg returns the principal argument of c, in the range (-π, π].
func (c Complex) Arg() float64 {
	return math.Atan2(c.Im, c.Re)
}

// Polar returns the magnitude and principal argument of c, so that
// FromPolar(c.Polar()) reconstructs c up to rounding.
func (c Complex) Polar() (r, theta float64) {
	return c.Norm(), c.Arg()
}
