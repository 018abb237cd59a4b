package timestep

import (
	"math"

	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
)

// WaveParams describes u_tt = Lambda^2 u_xx + f with u(x, 0) = U0 and
// u_t(x, 0) = V0.
type WaveParams struct {
	Params
	V0     any
	Lambda float64
}

// Wave integrates the wave equation. The first two snapshots are U0 and one
// Taylor step U0 + dt*V0; every later one solves
//
//	-lambda^2 u'' + u/dt^2 = f
//
// with s. The straight line between the boundary values is added to every
// snapshot, including the ones s already corrected. The later snapshots do
// not depend on the earlier ones.
func Wave(s *wr.Solver, p *WaveParams) (*Series, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(p.Lambda) || math.IsInf(p.Lambda, 0) {
		return nil, errors.Wrapf(wr.ErrInvalidInput, "wave speed must be finite, got %v", p.Lambda)
	}
	f, err := coerce("f", p.F)
	if err != nil {
		return nil, err
	}
	u0, err := coerce("u0", p.U0)
	if err != nil {
		return nil, err
	}
	v0, err := coerce("v0", p.V0)
	if err != nil {
		return nil, err
	}

	xs := wr.Linspace(p.Domain.A, p.Domain.B, p.NPoints)
	lift := p.lift(xs)
	prev, err := expr.Sample(u0, xs)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "sampling initial displacement"), wr.ErrInvalidInput)
	}
	vel, err := expr.Sample(v0, xs)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "sampling initial velocity"), wr.ErrInvalidInput)
	}

	series := &Series{Scheme: p.Scheme, X: xs}
	series.push(0, add(prev, lift))
	if p.Steps == 0 {
		return series, nil
	}
	cur := make([]float64, len(prev))
	for i := range cur {
		cur[i] = prev[i] + p.Dt*vel[i]
	}
	series.push(p.Dt, add(cur, lift))

	op := &wr.Operator{
		P: expr.Const(-p.Lambda * p.Lambda),
		Q: expr.Const(0),
		R: expr.Const(1 / (p.Dt * p.Dt)),
		F: f,
	}
	log := s.Log()
	for n := 2; n <= p.Steps; n++ {
		sol, err := s.Solve(p.problem(op), p.Scheme)
		if err != nil {
			return nil, errors.Wrapf(err, "wave step %d", n)
		}
		series.push(float64(n)*p.Dt, add(sol.U, lift))
		log.Debugw("wave step", logger.FieldStep, n, logger.FieldSingular, sol.Singular, logger.FieldCount, len(sol.Failures))
	}
	return series, nil
}
