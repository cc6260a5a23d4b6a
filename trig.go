package xcomplex

import "math"

// Sin returns the sine of c.
func (c Complex) Sin() Complex {
	s, cs := math.Sincos(c.Re)
	return Complex{Re: s * math.Cosh(c.Im), Im: cs * math.Sinh(c.Im)}
}

// Cos returns the cosine of c.
func (c Complex) Cos() Complex {
	s, cs := math.Sincos(c.Re)
	return Complex{Re: cs * math.Cosh(c.Im), Im: -s * math.Sinh(c.Im)}
}

// Tan returns the tangent of c, as the quotient Sin(c)/Cos(c).
func (c Complex) Tan() Complex {
	return c.Sin().Div(c.Cos())
}

// Sinh returns the hyperbolic sine of c.
func (c Complex) Sinh() Complex {
	s, cs := math.Sincos(c.Im)
	return Complex{Re: math.Sinh(c.Re) * cs, Im: math.Cosh(c.Re) * s}
}

// Cosh returns the hyperbolic cosine of c.
func (c Complex) Cosh() Complex {
	s, cs := math.Sincos(c.Im)
	return Complex{Re: math.Cosh(c.Re) * cs, Im: math.Sinh(c.Re) * s}
}

// Tanh returns the hyperbolic tangent of c, as the quotient Sinh(c)/Cosh(c).
func (c Complex) Tanh() Complex {
	return c.Sinh().Div(c.Cosh())
}
