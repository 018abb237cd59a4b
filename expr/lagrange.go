package expr

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Lagrange is the interpolating polynomial through the points (Xs[k], Ys[k])
// written in Lagrange form:
//
//	         (x - x1)    (x - x2)
//	sum y0 * --------- * --------- * ...
//	         (x0 - x1)   (x0 - x2)
//
// It is the unique polynomial of degree len(Xs)-1 through the points.
type Lagrange struct {
	Xs []float64
	Ys []float64
}

// NewLagrange copies xs and ys. The interpolation points must be distinct.
func NewLagrange(xs, ys []float64) (*Lagrange, error) {
	if len(xs) != len(ys) {
		return nil, errors.Newf("interpolation needs equal length x and y (got %d and %d)", len(xs), len(ys))
	} else if len(xs) == 0 {
		return nil, errors.New("interpolation needs at least one point")
	}
	seen := make(map[float64]bool, len(xs))
	for _, x := range xs {
		if seen[x] {
			return nil, errors.Newf("duplicate interpolation point x=%v", x)
		}
		seen[x] = true
	}
	return &Lagrange{
		Xs: append([]float64{}, xs...),
		Ys: append([]float64{}, ys...),
	}, nil
}

// node returns the value at x of the k-th cardinal polynomial (1 at Xs[k]
// and 0 at every other interpolation point).
func (l *Lagrange) node(k int, x float64) float64 {
	u := 1.0
	xk := l.Xs[k]
	for i, x0 := range l.Xs {
		if i == k {
			continue
		}
		u *= (x - x0) / (xk - x0)
	}
	return u
}

func (l *Lagrange) Eval(x float64) (float64, error) {
	u := 0.0
	for k, y := range l.Ys {
		u += y * l.node(k, x)
	}
	return u, nil
}

func (l *Lagrange) String() string {
	pts := make([]string, len(l.Xs))
	for i := range l.Xs {
		pts[i] = fmt.Sprintf("(%.4g, %.4g)", l.Xs[i], l.Ys[i])
	}
	return "interp[" + strings.Join(pts, " ") + "]"
}
