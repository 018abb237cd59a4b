package wr

import (
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Solution is the approximation produced by one scheme.
type Solution struct {
	Scheme Scheme
	// X holds the evenly spaced sample positions and U the approximate
	// solution at each of them.
	X []float64
	U []float64
	// Coeffs holds one weight per basis function.
	Coeffs []float64
	// Failures lists the system entries that were zeroed during assembly.
	Failures []*CellError
	// Singular is set when the system could not be solved and the
	// coefficients fell back to zero.
	Singular bool
	// Illconditioned is set when the solve succeeded with a condition
	// number above gonum's tolerance.
	Illconditioned bool
}

// SolveSystem solves sys.A*c = sys.B. A singular system or a non-finite
// result is reported with ErrSingular. An ill-conditioned but solvable
// system returns the coefficients together with a mat.Condition error.
//
// gonum reports an exactly singular LU factorization as an infinite
// condition number, so that case is singular too.
func SolveSystem(sys *System) ([]float64, error) {
	var c mat.VecDense
	err := c.SolveVec(sys.A, sys.B)
	var cond mat.Condition
	if err != nil && (!errors.As(err, &cond) || !isFinite(float64(cond))) {
		return nil, errors.Mark(errors.Wrap(err, "solving assembled system"), ErrSingular)
	}
	coeffs := make([]float64, c.Len())
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
		if !isFinite(coeffs[i]) {
			return nil, errors.Wrapf(ErrSingular, "non-finite coefficient c[%d]=%v", i, coeffs[i])
		}
	}
	return coeffs, err
}

// Reconstruct samples the weighted sum of the basis at xs.
func Reconstruct(basis Basis, coeffs, xs []float64) []float64 {
	u := make([]float64, len(xs))
	for i, x := range xs {
		u[i] = basis.Sample(coeffs, x)
	}
	return u
}

// Solver runs the complete stationary pipeline: validation, basis
// generation, assembly, solution, reconstruction and boundary correction.
// A Solver keeps no state between calls.
type Solver struct {
	Assembler
	// Logger receives debug output; nil disables logging.
	Logger *zap.SugaredLogger
}

// Log returns the solver's logger, or a no-op logger when none is set.
func (s *Solver) Log() *zap.SugaredLogger {
	if s.Logger == nil {
		return logger.Nop()
	}
	return s.Logger
}

// Solve approximates p with scheme. Input errors are returned before
// anything is assembled. Unless the solver is strict, entries that cannot be
// computed are zeroed and a singular system yields zero coefficients, so the
// solution degrades to the boundary lift.
func (s *Solver) Solve(p *Problem, scheme Scheme) (*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !scheme.valid() {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown scheme %d", int(scheme))
	}
	log := s.Log().With(logger.FieldScheme, scheme.String())

	method := scheme.Method()
	n := p.NBase()
	basis := method.Basis(p.Domain, n)

	sys, err := method.Assemble(&s.Assembler, p.Operator, p.Domain, basis)
	if err != nil {
		return nil, errors.Wrapf(err, "assembling %v system", scheme)
	}
	if len(sys.Failures) > 0 {
		log.Debugw("zeroed system entries", logger.FieldCount, len(sys.Failures), logger.FieldError, sys.Failures[0].Error())
	}

	sol := &Solution{Scheme: scheme, X: p.Grid(), Failures: sys.Failures}
	coeffs, err := SolveSystem(sys)
	var cond mat.Condition
	switch {
	case err == nil:
	case errors.Is(err, ErrSingular):
		if s.Strict {
			return nil, err
		}
		log.Warnw("singular system, using zero coefficients", logger.FieldError, err.Error())
		sol.Singular = true
		coeffs = make([]float64, n)
	case errors.As(err, &cond):
		sol.Illconditioned = true
		log.Debugw("ill-conditioned system", logger.FieldCond, float64(cond))
	default:
		return nil, err
	}
	sol.Coeffs = coeffs

	sol.U = Reconstruct(basis, coeffs, sol.X)
	if method.BoundaryCorrected() {
		for i, x := range sol.X {
			sol.U[i] += p.Boundary.Lift(p.Domain, x)
		}
	}
	log.Debugw("solved", logger.FieldNBase, n, logger.FieldNPoints, p.NPoints, logger.FieldSingular, sol.Singular)
	return sol, nil
}
