// Package xcomplex provides a Complex value type over float64 components,
// with field arithmetic and the elementary analytic functions: exponential,
// logarithm, powers, square root, and the trigonometric and hyperbolic
// family.
//
// All operations are pure functions over immutable values and never fail:
// edge cases such as division by the zero complex value or the logarithm of
// zero resolve through IEEE-754 special values (NaN, ±Inf) propagated by the
// component-wise formulas. The zero Complex value is ready to use.
//
// Because Complex is a plain pair of float64 fields, the built-in ==
// operator performs field-wise comparison with the usual float semantics,
// and values may be copied and shared across goroutines freely.
package xcomplex
