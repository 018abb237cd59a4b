package wr

import (
	"fmt"
	"math"
)

// Shape is a trial or test function of the spatial variable with closed form
// first and second derivatives.
type Shape interface {
	Value(x float64) float64
	Deriv(x float64) float64
	Deriv2(x float64) float64
	// Support returns the interval outside of which the function vanishes.
	// Integrals against the function are only evaluated over it.
	Support() (lo, hi float64)
	String() string
}

// Basis is an ordered set of shape functions. It is generated once per
// solve and not modified afterwards.
type Basis []Shape

// Sample returns sum(coeffs[i] * b[i](x)).
func (b Basis) Sample(coeffs []float64, x float64) float64 {
	u := 0.0
	for i, c := range coeffs {
		u += c * b[i].Value(x)
	}
	return u
}

// Sine is the Index-th member of the sine family on Dom:
//
//	sin(Index*pi*(x - a)/(b - a))
//
// It vanishes at both ends of the domain, so weighted sums of sines only
// ever approximate the homogeneous part of a Dirichlet problem.
type Sine struct {
	Index int
	Dom   Domain
}

func (s Sine) freq() float64 { return float64(s.Index) * math.Pi / s.Dom.Len() }

func (s Sine) Value(x float64) float64 {
	if x == s.Dom.A || x == s.Dom.B {
		return 0
	}
	return math.Sin(s.freq() * (x - s.Dom.A))
}

func (s Sine) Deriv(x float64) float64 {
	k := s.freq()
	return k * math.Cos(k*(x-s.Dom.A))
}

func (s Sine) Deriv2(x float64) float64 {
	k := s.freq()
	return -k * k * math.Sin(k*(x-s.Dom.A))
}

func (s Sine) Support() (lo, hi float64) { return s.Dom.A, s.Dom.B }

func (s Sine) String() string {
	return fmt.Sprintf("sin(%d*pi*(x - %g)/%g)", s.Index, s.Dom.A, s.Dom.Len())
}

// Indicator is the characteristic function of the closed interval
// [Lo, Hi]. Neighboring indicators both take the value 1 at their shared
// end point.
type Indicator struct {
	Lo, Hi float64
}

func (s Indicator) Value(x float64) float64 {
	if s.Lo <= x && x <= s.Hi {
		return 1
	}
	return 0
}

func (s Indicator) Deriv(x float64) float64   { return 0 }
func (s Indicator) Deriv2(x float64) float64  { return 0 }
func (s Indicator) Support() (lo, hi float64) { return s.Lo, s.Hi }
func (s Indicator) String() string            { return fmt.Sprintf("1[%g, %g]", s.Lo, s.Hi) }

// Monomial is x^Power over Dom.
type Monomial struct {
	Power int
	Dom   Domain
}

func ipow(x float64, n int) float64 {
	if n < 0 {
		return 0
	}
	v := 1.0
	for i := 0; i < n; i++ {
		v *= x
	}
	return v
}

func (s Monomial) Value(x float64) float64 { return ipow(x, s.Power) }

func (s Monomial) Deriv(x float64) float64 {
	if s.Power == 0 {
		return 0
	}
	return float64(s.Power) * ipow(x, s.Power-1)
}

func (s Monomial) Deriv2(x float64) float64 {
	if s.Power < 2 {
		return 0
	}
	return float64(s.Power*(s.Power-1)) * ipow(x, s.Power-2)
}

func (s Monomial) Support() (lo, hi float64) { return s.Dom.A, s.Dom.B }
func (s Monomial) String() string            { return fmt.Sprintf("x^%d", s.Power) }

// SineBasis returns the first n members of the sine family on d.
func SineBasis(d Domain, n int) Basis {
	b := make(Basis, n)
	for i := range b {
		b[i] = Sine{Index: i + 1, Dom: d}
	}
	return b
}

// IndicatorBasis partitions d into n equal, non-overlapping subintervals
// and returns their indicator functions in order.
func IndicatorBasis(d Domain, n int) Basis {
	edges := Linspace(d.A, d.B, n+1)
	b := make(Basis, n)
	for i := range b {
		b[i] = Indicator{Lo: edges[i], Hi: edges[i+1]}
	}
	return b
}

// MonomialBasis returns 1, x, ..., x^(n-1).
func MonomialBasis(d Domain, n int) Basis {
	b := make(Basis, n)
	for i := range b {
		b[i] = Monomial{Power: i, Dom: d}
	}
	return b
}

// CollocationNodes returns the n interior points of n+2 evenly spaced
// points on d; the end points are left out because the boundary condition
// fixes the solution there.
func CollocationNodes(d Domain, n int) []float64 {
	xs := Linspace(d.A, d.B, n+2)
	return append([]float64{}, xs[1:len(xs)-1]...)
}
