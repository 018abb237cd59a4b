package wr

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// Linspace returns n evenly spaced points from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// QuadLegendre integrates f over [min, max] with an n point Gauss-Legendre
// rule. Unlike quad.Fixed it stops at the first evaluation error or
// non-finite integrand value and returns it.
func QuadLegendre(f func(x float64) (float64, error), min, max float64, n int) (float64, error) {
	if n <= 0 {
		return 0, errors.Newf("quad: non-positive number of locations (%d)", n)
	} else if min > max {
		return 0, errors.Newf("quad: min > max (%v > %v)", min, max)
	} else if min == max {
		return 0, nil
	}
	xs := make([]float64, n)
	weights := make([]float64, n)
	quad.Legendre{}.FixedLocations(xs, weights, min, max)

	var integral float64
	for i, x := range xs {
		v, err := f(x)
		if err != nil {
			return 0, err
		}
		if !isFinite(v) {
			return 0, errors.Newf("non-finite integrand %v at x=%v", v, x)
		}
		integral += weights[i] * v
	}
	return integral, nil
}
