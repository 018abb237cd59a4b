// Package compare runs several weighted-residual schemes on one problem and
// measures how far their solutions are from each other and from a known
// exact solution.
package compare

import (
	"math"

	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// RMS returns the root mean square of a - b.
func RMS(a, b []float64) (float64, error) {
	sq, err := squares(a, b)
	if err != nil {
		return 0, err
	}
	m, err := stats.Mean(sq)
	if err != nil {
		return 0, errors.Wrap(err, "rms")
	}
	return math.Sqrt(m), nil
}

// MaxAbs returns the largest |a[i] - b[i]|.
func MaxAbs(a, b []float64) (float64, error) {
	if err := sameLen(a, b); err != nil {
		return 0, err
	}
	d := make(stats.Float64Data, len(a))
	for i := range a {
		d[i] = math.Abs(a[i] - b[i])
	}
	m, err := d.Max()
	if err != nil {
		return 0, errors.Wrap(err, "max abs")
	}
	return m, nil
}

func sameLen(a, b []float64) error {
	if len(a) != len(b) {
		return errors.Newf("length mismatch (%d != %d)", len(a), len(b))
	}
	return nil
}

func squares(a, b []float64) ([]float64, error) {
	if err := sameLen(a, b); err != nil {
		return nil, err
	}
	sq := make([]float64, len(a))
	for i := range a {
		d := a[i] - b[i]
		sq[i] = d * d
	}
	return sq, nil
}

// Entry is the outcome of one scheme.
type Entry struct {
	Solution *wr.Solution
	// RMSExact and MaxExact measure the distance to the exact solution;
	// they are NaN when no exact solution was given.
	RMSExact float64
	MaxExact float64
	// RMSRef is the distance to the reference (first) scheme.
	RMSRef float64
}

// Summary describes the spread of the per scheme errors. The errors are
// measured against the exact solution when there is one and against the
// reference scheme otherwise, in which case Best and Worst are picked among
// the other schemes.
type Summary struct {
	Mean, Median, StdDev float64
	Best, Worst          wr.Scheme
}

type Report struct {
	X         []float64
	Exact     []float64 // nil without an exact solution
	Reference wr.Scheme
	Entries   []Entry
	Summary   Summary
}

// Schemes solves p with every scheme in schemes, in order. The first scheme
// is the reference the others are compared to. exact may be nil.
func Schemes(s *wr.Solver, p *wr.Problem, schemes []wr.Scheme, exact expr.Expr) (*Report, error) {
	if len(schemes) == 0 {
		return nil, errors.Wrap(wr.ErrInvalidInput, "no schemes to compare")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r := &Report{X: p.Grid(), Reference: schemes[0]}
	if exact != nil {
		ex, err := expr.Sample(exact, r.X)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "sampling exact solution"), wr.ErrInvalidInput)
		}
		r.Exact = ex
	}

	for _, scheme := range schemes {
		sol, err := s.Solve(p, scheme)
		if err != nil {
			return nil, errors.Wrapf(err, "solving with %v", scheme)
		}
		e := Entry{Solution: sol, RMSExact: math.NaN(), MaxExact: math.NaN()}
		if r.Exact != nil {
			if e.RMSExact, err = RMS(sol.U, r.Exact); err != nil {
				return nil, err
			}
			if e.MaxExact, err = MaxAbs(sol.U, r.Exact); err != nil {
				return nil, err
			}
		}
		r.Entries = append(r.Entries, e)
	}

	ref := r.Entries[0].Solution.U
	for i := range r.Entries {
		rms, err := RMS(r.Entries[i].Solution.U, ref)
		if err != nil {
			return nil, err
		}
		r.Entries[i].RMSRef = rms
	}

	if err := r.summarize(); err != nil {
		return nil, err
	}
	return r, nil
}

// Errors returns the error of each entry used by the summary.
func (r *Report) Errors() []float64 {
	errs := make([]float64, len(r.Entries))
	for i, e := range r.Entries {
		if r.Exact != nil {
			errs[i] = e.RMSExact
		} else {
			errs[i] = e.RMSRef
		}
	}
	return errs
}

func (r *Report) summarize() error {
	errs := r.Errors()
	var err error
	if r.Summary.Mean, err = stats.Mean(errs); err != nil {
		return errors.Wrap(err, "summary mean")
	}
	if r.Summary.Median, err = stats.Median(errs); err != nil {
		return errors.Wrap(err, "summary median")
	}
	if r.Summary.StdDev, err = stats.StandardDeviation(errs); err != nil {
		return errors.Wrap(err, "summary deviation")
	}
	// without an exact solution the reference is at distance zero from
	// itself, so it only competes when it is alone
	first := 0
	if r.Exact == nil && len(errs) > 1 {
		first = 1
	}
	best, worst := first, first
	for i := first; i < len(errs); i++ {
		if errs[i] < errs[best] {
			best = i
		}
		if errs[i] > errs[worst] {
			worst = i
		}
	}
	r.Summary.Best = r.Entries[best].Solution.Scheme
	r.Summary.Worst = r.Entries[worst].Solution.Scheme
	return nil
}
