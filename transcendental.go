package xcomplex

import "math"

// Exp returns e**c, the base-e exponential of c.
func (c Complex) Exp() Complex {
	e := math.Exp(c.Re)
	s, cs := math.Sincos(c.Im)
	return Complex{Re: e * cs, Im: e * s}
}

// Ln returns the principal natural logarithm of c: the real part is the
// log of the magnitude, the imaginary part the argument in (-π, π].
// For the zero complex value the real part is -Inf, following math.Log(0).
func (c Complex) Ln() Complex {
	return Complex{Re: math.Log(c.Norm()), Im: c.Arg()}
}

// Sqrt returns the principal square root of c, computed in polar form
// with the half angle. The principal branch has non-negative real part.
func (c Complex) Sqrt() Complex {
	r := math.Sqrt(c.Norm())
	s, cs := math.Sincos(c.Arg() / 2)
	return Complex{Re: r * cs, Im: r * s}
}

// Powi returns c raised to the integer power n, through the polar form
// Norm()ⁿ·(cos nθ + i·sin nθ). The exponent may be zero or negative;
// Powi(0) is (1, 0) for every finite c, including the zero complex value.
func (c Complex) Powi(n int) Complex {
	e := math.Pow(c.Norm(), float64(n))
	s, cs := math.Sincos(c.Arg() * float64(n))
	return Complex{Re: e * cs, Im: e * s}
}

// Powf returns c raised to the real power x, through the polar form
// Norm()ˣ·(cos xθ + i·sin xθ). The branch cut along the negative real
// axis is inherited from Arg.
func (c Complex) Powf(x float64) Complex {
	e := math.Pow(c.Norm(), x)
	s, cs := math.Sincos(c.Arg() * x)
	return Complex{Re: e * cs, Im: e * s}
}

// Powc returns the complex power of c with exponent e, computed as
// Ln(c)·Exp(e). Powi and Powf share the same Norm/Arg branch behavior.
func (c Complex) Powc(e Complex) Complex {
	return c.Ln().Mul(e.Exp())
}
