package timestep

import (
	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
)

// HeatParams describes u_t = u_xx + f on p.Domain with u(x, 0) = U0.
type HeatParams struct {
	Params
}

// Heat integrates the heat equation with implicit Euler steps. Snapshot 0 is
// U0 sampled on the grid. From u^n every step interpolates u^n and solves
//
//	u'' + u/dt = u^n/dt + f
//
// with s, so the returned series has exactly Steps+1 snapshots.
func Heat(s *wr.Solver, p *HeatParams) (*Series, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	f, err := coerce("f", p.F)
	if err != nil {
		return nil, err
	}
	u0, err := coerce("u0", p.U0)
	if err != nil {
		return nil, err
	}

	xs := wr.Linspace(p.Domain.A, p.Domain.B, p.NPoints)
	u, err := expr.Sample(u0, xs)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "sampling initial condition"), wr.ErrInvalidInput)
	}

	series := &Series{Scheme: p.Scheme, X: xs}
	series.push(0, u)
	log := s.Log()
	for n := 1; n <= p.Steps; n++ {
		prev, err := interpolate(xs, u)
		if err != nil {
			return nil, errors.Wrapf(err, "interpolating step %d", n-1)
		}
		op := &wr.Operator{
			P: expr.Const(1),
			Q: expr.Const(0),
			R: expr.Const(1 / p.Dt),
			F: expr.Sum(expr.Scale(1/p.Dt, prev), f),
		}
		sol, err := s.Solve(p.problem(op), p.Scheme)
		if err != nil {
			return nil, errors.Wrapf(err, "heat step %d", n)
		}
		u = sol.U
		series.push(float64(n)*p.Dt, u)
		log.Debugw("heat step", logger.FieldStep, n, logger.FieldSingular, sol.Singular, logger.FieldCount, len(sol.Failures))
	}
	return series, nil
}
