package xcomplex

import (
	"math"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxTolf(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	diff := got.Sub(want).Norm()
	if !(diff <= tol) {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, diff)...)
	}
}

func assertApproxFloatTolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if !(math.Abs(got-want) <= tol) {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}
