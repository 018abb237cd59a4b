// Package timestep advances the heat and wave equations
//
//	u_t  = u_xx + f(x)
//	u_tt = lambda^2 u_xx + f(x)
//
// in time by restating every implicit step as a stationary boundary value
// problem and handing it to a wr.Solver.
package timestep

import (
	"math"

	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
)

// InterpPoints bounds the number of grid samples the previous state is
// interpolated through.
const InterpPoints = 6

// Series is the sampled solution at successive time levels.
type Series struct {
	Scheme wr.Scheme
	// X holds the sample positions shared by every snapshot.
	X []float64
	// Times[k] is the time of Snapshots[k].
	Times     []float64
	Snapshots [][]float64
}

// Params holds the inputs shared by both equations. F and U0 are given as
// expression strings (or any value expr.Coerce accepts).
type Params struct {
	F, U0   any
	Domain  wr.Domain
	UA, UB  float64
	NPoints int
	Dt      float64
	Steps   int
	Scheme  wr.Scheme
}

func (p *Params) validate() error {
	if err := p.Domain.Validate(); err != nil {
		return err
	}
	if p.NPoints < wr.MinPoints {
		return errors.Wrapf(wr.ErrInvalidInput, "need at least %d points, got %d", wr.MinPoints, p.NPoints)
	}
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return errors.WithHint(
			errors.Wrapf(wr.ErrInvalidInput, "time step must be positive and finite, got %v", p.Dt),
			"set dt to a small positive value such as 0.01",
		)
	}
	if p.Steps < 0 {
		return errors.Wrapf(wr.ErrInvalidInput, "negative step count %d", p.Steps)
	}
	return nil
}

// coerce converts a loosely typed expression input, marking failures as
// invalid input.
func coerce(name string, v any) (expr.Expr, error) {
	e, err := expr.Coerce(v)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s", name), wr.ErrInvalidInput)
	}
	return e, nil
}

func (p *Params) problem(op *wr.Operator) *wr.Problem {
	return &wr.Problem{
		Domain:   p.Domain,
		NPoints:  p.NPoints,
		Boundary: wr.NewDirichlet(p.UA, p.UB),
		Operator: op,
	}
}

func (p *Params) lift(xs []float64) []float64 {
	b := wr.NewDirichlet(p.UA, p.UB)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = b.Lift(p.Domain, x)
	}
	return out
}

func (s *Series) push(t float64, u []float64) {
	s.Times = append(s.Times, t)
	s.Snapshots = append(s.Snapshots, u)
}

func add(u, v []float64) []float64 {
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] + v[i]
	}
	return out
}

// interpIndices returns k indices spread evenly over [0, n-1], truncated
// towards zero.
func interpIndices(n, k int) []int {
	pos := wr.Linspace(0, float64(n-1), k)
	idx := make([]int, len(pos))
	for i, v := range pos {
		idx[i] = int(v)
	}
	return idx
}

// interpolate returns the polynomial through at most InterpPoints samples of
// u on xs.
func interpolate(xs, u []float64) (*expr.Lagrange, error) {
	idx := interpIndices(len(xs), min(InterpPoints, len(xs)))
	px := make([]float64, len(idx))
	pu := make([]float64, len(idx))
	for i, j := range idx {
		px[i], pu[i] = xs[j], u[j]
	}
	return expr.NewLagrange(px, pu)
}
