package wr

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// CellError records a matrix or load vector entry that could not be
// computed. Col is -1 for load vector entries.
type CellError struct {
	Row, Col int
	Err      error
}

func (e *CellError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("load entry b[%d]: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("matrix entry A[%d,%d]: %v", e.Row, e.Col, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// System is the assembled linear system A*c = B.
type System struct {
	A *mat.Dense
	B *mat.VecDense
	// Failures lists the entries that were set to zero because they could
	// not be computed.
	Failures []*CellError
}

func newSystem(n int) *System {
	return &System{A: mat.NewDense(n, n, nil), B: mat.NewVecDense(n, nil)}
}

// Assembler builds linear systems from a kernel and a pair of bases.
type Assembler struct {
	// QuadPoints is the number of Gauss-Legendre points used per test
	// function support. Zero selects 4n+20 for an n function basis.
	QuadPoints int
	// Strict makes assembly fail on the first entry that cannot be
	// computed. By default such an entry is set to zero and assembly
	// continues.
	Strict bool
}

func (as *Assembler) quadPoints(n int) int {
	if as.QuadPoints > 0 {
		return as.QuadPoints
	}
	return 4*n + 20
}

// set stores the result of one entry computation, applying the failure
// policy. Col < 0 addresses the load vector.
func (as *Assembler) set(sys *System, row, col int, v float64, err error) error {
	if err == nil && !isFinite(v) {
		err = errors.Newf("non-finite value %v", v)
	}
	if err != nil {
		cerr := &CellError{Row: row, Col: col, Err: err}
		if as.Strict {
			return cerr
		}
		sys.Failures = append(sys.Failures, cerr)
		v = 0
	}
	if col < 0 {
		sys.B.SetVec(row, v)
	} else {
		sys.A.Set(row, col, v)
	}
	return nil
}

// Integral builds
//
//	A[i,j] = integral of k.VolIntU(w=test[i], u=trial[j])
//	b[i]   = integral of k.VolInt(w=test[i])
//
// over the support of each test function. The two bases must have the same
// length.
func (as *Assembler) Integral(k Kernel, trial, test Basis) (*System, error) {
	if len(trial) != len(test) {
		return nil, errors.AssertionFailedf("trial and test bases differ in size (%d != %d)", len(trial), len(test))
	}
	n := len(trial)
	sys := newSystem(n)
	npts := as.quadPoints(n)
	for i, w := range test {
		lo, hi := w.Support()
		for j, u := range trial {
			v, err := QuadLegendre(func(x float64) (float64, error) {
				return k.VolIntU(&KernelParams{
					X: x,
					U: u.Value(x), GradU: u.Deriv(x), Grad2U: u.Deriv2(x),
					W: w.Value(x), GradW: w.Deriv(x), Grad2W: w.Deriv2(x),
				})
			}, lo, hi, npts)
			if err := as.set(sys, i, j, v, err); err != nil {
				return nil, err
			}
		}
		v, err := QuadLegendre(func(x float64) (float64, error) {
			return k.VolInt(&KernelParams{X: x, W: w.Value(x), GradW: w.Deriv(x), Grad2W: w.Deriv2(x)})
		}, lo, hi, npts)
		if err := as.set(sys, i, -1, v, err); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

// Pointwise builds the collocation system A[i,j] = L[trial[j]](nodes[i]),
// b[i] = f(nodes[i]) without any integration.
func (as *Assembler) Pointwise(op *Operator, trial Basis, nodes []float64) (*System, error) {
	if len(trial) != len(nodes) {
		return nil, errors.AssertionFailedf("basis and node count differ (%d != %d)", len(trial), len(nodes))
	}
	sys := newSystem(len(trial))
	for i, x := range nodes {
		for j, u := range trial {
			v, err := op.Apply(u, x)
			if err := as.set(sys, i, j, v, err); err != nil {
				return nil, err
			}
		}
		v, err := op.Source(x)
		if err := as.set(sys, i, -1, v, err); err != nil {
			return nil, err
		}
	}
	return sys, nil
}
