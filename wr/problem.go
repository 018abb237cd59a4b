// Package wr approximates solutions of one dimensional, second order linear
// boundary value problems
//
//	p(x)u'' + q(x)u' + r(x)u = f(x),  u(a) = ua,  u(b) = ub
//
// with classical weighted-residual schemes. A problem is discretized onto a
// finite trial basis, the residual is tested against a scheme specific set
// of test functions and the resulting linear system is solved for the basis
// weights.
package wr

import (
	"math"

	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/cockroachdb/errors"
)

// MinPoints is the smallest accepted number of solution samples.
const MinPoints = 4

var (
	// ErrInvalidInput marks problems rejected before assembly.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSingular is returned in strict mode when the assembled system
	// cannot be solved.
	ErrSingular = errors.New("singular system")
)

type BoundaryType int

const (
	Dirichlet BoundaryType = iota
	Neumann
)

func (t BoundaryType) String() string {
	switch t {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	}
	return "unknown"
}

// Domain is the closed interval [A, B].
type Domain struct {
	A, B float64
}

func (d Domain) Len() float64 { return d.B - d.A }

func (d Domain) Validate() error {
	if math.IsNaN(d.A) || math.IsNaN(d.B) || math.IsInf(d.A, 0) || math.IsInf(d.B, 0) {
		return errors.Wrapf(ErrInvalidInput, "domain bounds must be finite (a=%v, b=%v)", d.A, d.B)
	}
	if d.A >= d.B {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidInput, "domain needs a < b (a=%v, b=%v)", d.A, d.B),
			"swap the interval ends",
		)
	}
	return nil
}

// Boundary holds the prescribed values at both ends of the domain. Only
// Dirichlet conditions are enforced.
type Boundary struct {
	Type  BoundaryType
	Left  float64
	Right float64
}

func NewDirichlet(left, right float64) Boundary {
	return Boundary{Type: Dirichlet, Left: left, Right: right}
}

func (b Boundary) Validate() error {
	if b.Type != Dirichlet {
		return errors.Wrapf(ErrInvalidInput, "unsupported boundary condition %v", b.Type)
	}
	if math.IsNaN(b.Left) || math.IsNaN(b.Right) || math.IsInf(b.Left, 0) || math.IsInf(b.Right, 0) {
		return errors.Wrapf(ErrInvalidInput, "boundary values must be finite (ua=%v, ub=%v)", b.Left, b.Right)
	}
	return nil
}

// Lift returns the straight line through the boundary values at x:
//
//	ua + (ub - ua)(x - a)/(b - a)
//
// Adding it to a solution of the homogeneous problem restores the boundary
// values.
func (b Boundary) Lift(d Domain, x float64) float64 {
	return b.Left + (b.Right-b.Left)*(x-d.A)/d.Len()
}

// Operator holds the coefficients of L[u] = P u'' + Q u' + R u and the
// source term F.
type Operator struct {
	P, Q, R, F expr.Expr
}

// NewOperator parses the four expressions.
func NewOperator(p, q, r, f string) (*Operator, error) {
	srcs := []struct {
		name string
		src  string
	}{{"p", p}, {"q", q}, {"r", r}, {"f", f}}
	exprs := make([]expr.Expr, len(srcs))
	for i, s := range srcs {
		e, err := expr.Parse(s.src)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "coefficient %s", s.name), ErrInvalidInput)
		}
		exprs[i] = e
	}
	return &Operator{P: exprs[0], Q: exprs[1], R: exprs[2], F: exprs[3]}, nil
}

// CoerceOperator builds an operator from loosely typed values (see
// expr.Coerce). A non-symbolic value, such as a sampled array given as the
// source term, is reported with expr.ErrNotSymbolic.
func CoerceOperator(p, q, r, f any) (*Operator, error) {
	vals := []struct {
		name string
		v    any
	}{{"p", p}, {"q", q}, {"r", r}, {"f", f}}
	exprs := make([]expr.Expr, len(vals))
	for i, v := range vals {
		e, err := expr.Coerce(v.v)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "coefficient %s", v.name), ErrInvalidInput)
		}
		exprs[i] = e
	}
	return &Operator{P: exprs[0], Q: exprs[1], R: exprs[2], F: exprs[3]}, nil
}

func (op *Operator) validate() error {
	if op == nil {
		return errors.Wrap(ErrInvalidInput, "missing operator")
	}
	for name, e := range map[string]expr.Expr{"p": op.P, "q": op.Q, "r": op.R, "f": op.F} {
		if e == nil {
			return errors.Mark(errors.Wrapf(expr.ErrNotSymbolic, "coefficient %s", name), ErrInvalidInput)
		}
	}
	return nil
}

// L returns p(x)*d2u + q(x)*du + r(x)*u.
func (op *Operator) L(x, u, du, d2u float64) (float64, error) {
	p, q, r, err := coeffs(op, x)
	if err != nil {
		return 0, err
	}
	return p*d2u + q*du + r*u, nil
}

// Apply returns L[s](x).
func (op *Operator) Apply(s Shape, x float64) (float64, error) {
	return op.L(x, s.Value(x), s.Deriv(x), s.Deriv2(x))
}

// Source returns f(x).
func (op *Operator) Source(x float64) (float64, error) { return op.F.Eval(x) }

// Problem is a complete stationary boundary value problem.
type Problem struct {
	Domain   Domain
	NPoints  int
	Boundary Boundary
	Operator *Operator
}

// Validate reports every input error as ErrInvalidInput; nothing is
// assembled for an invalid problem.
func (p *Problem) Validate() error {
	if err := p.Domain.Validate(); err != nil {
		return err
	}
	if p.NPoints < MinPoints {
		return errors.WithHint(
			errors.Wrapf(ErrInvalidInput, "need at least %d points, got %d", MinPoints, p.NPoints),
			"increase the number of points",
		)
	}
	if err := p.Boundary.Validate(); err != nil {
		return err
	}
	return p.Operator.validate()
}

// NBase returns the number of basis functions used for the problem.
func (p *Problem) NBase() int { return NBase(p.NPoints) }

// NBase returns max(3, nPoints-2).
func NBase(nPoints int) int {
	if n := nPoints - 2; n > 3 {
		return n
	}
	return 3
}

// Grid returns the NPoints evenly spaced sample positions.
func (p *Problem) Grid() []float64 { return Linspace(p.Domain.A, p.Domain.B, p.NPoints) }
