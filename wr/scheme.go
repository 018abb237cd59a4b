package wr

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Scheme selects how the residual of the trial solution is tested.
type Scheme int

const (
	RayleighRitz Scheme = iota
	Galerkin
	Collocation
	Subdomain
	LeastSquares
	Moments
)

// Schemes lists every scheme in declaration order.
var Schemes = []Scheme{RayleighRitz, Galerkin, Collocation, Subdomain, LeastSquares, Moments}

var schemeNames = map[Scheme]string{
	RayleighRitz: "rayleigh-ritz",
	Galerkin:     "galerkin",
	Collocation:  "collocation",
	Subdomain:    "subdomain",
	LeastSquares: "least-squares",
	Moments:      "moments",
}

// schemeAliases also accepts the Portuguese scheme labels.
var schemeAliases = map[string]Scheme{
	"ritz":              RayleighRitz,
	"rayleighritz":      RayleighRitz,
	"colocação":         Collocation,
	"colocacao":         Collocation,
	"subdomínios":       Subdomain,
	"subdominios":       Subdomain,
	"mínimos quadrados": LeastSquares,
	"minimos quadrados": LeastSquares,
	"leastsquares":      LeastSquares,
	"momentos":          Moments,
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseScheme looks a scheme up by name, ignoring case.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range schemeNames {
		if n == key {
			return s, nil
		}
	}
	if s, ok := schemeAliases[key]; ok {
		return s, nil
	}
	return 0, errors.WithHint(
		errors.Wrapf(ErrInvalidInput, "unknown scheme %q", name),
		"use one of rayleigh-ritz, galerkin, collocation, subdomain, least-squares, moments",
	)
}

// Method is the strategy behind a scheme.
type Method interface {
	// Basis returns the n trial functions used by the scheme on d.
	Basis(d Domain, n int) Basis
	// Assemble builds the linear system for op over the trial basis.
	Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error)
	// BoundaryCorrected reports whether the boundary lift is added to the
	// reconstructed solution.
	BoundaryCorrected() bool
}

// Method returns the strategy for s. It panics for values outside the
// declared schemes.
func (s Scheme) Method() Method {
	switch s {
	case RayleighRitz:
		return rayleighRitz{}
	case Galerkin:
		return galerkin{}
	case Collocation:
		return collocation{}
	case Subdomain:
		return subdomain{}
	case LeastSquares:
		return leastSquares{}
	case Moments:
		return moments{}
	}
	panic("wr: unknown scheme " + s.String())
}

func (s Scheme) valid() bool {
	_, ok := schemeNames[s]
	return ok
}

type rayleighRitz struct{}

func (rayleighRitz) Basis(d Domain, n int) Basis { return SineBasis(d, n) }
func (rayleighRitz) BoundaryCorrected() bool      { return true }

func (rayleighRitz) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Integral(&RitzKernel{Op: op}, trial, trial)
}

// galerkin leaves the boundary lift out of its solution, unlike its
// siblings; this matches the observed behavior and is kept as is.
type galerkin struct{}

func (galerkin) Basis(d Domain, n int) Basis { return SineBasis(d, n) }
func (galerkin) BoundaryCorrected() bool      { return false }

func (galerkin) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Integral(&GalerkinKernel{Op: op}, trial, trial)
}

// collocation returns the raw homogeneous sum as well.
type collocation struct{}

func (collocation) Basis(d Domain, n int) Basis { return SineBasis(d, n) }
func (collocation) BoundaryCorrected() bool      { return false }

func (collocation) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Pointwise(op, trial, CollocationNodes(d, len(trial)))
}

// subdomain uses the indicators of the subintervals both as trial and as
// test functions. Indicators do not vanish at the domain ends, so the lift
// does not pin the end values.
type subdomain struct{}

func (subdomain) Basis(d Domain, n int) Basis { return IndicatorBasis(d, n) }
func (subdomain) BoundaryCorrected() bool      { return true }

func (subdomain) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Integral(&ResidualKernel{Op: op}, trial, IndicatorBasis(d, len(trial)))
}

type leastSquares struct{}

func (leastSquares) Basis(d Domain, n int) Basis { return SineBasis(d, n) }
func (leastSquares) BoundaryCorrected() bool      { return true }

func (leastSquares) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Integral(&LeastSquaresKernel{Op: op}, trial, trial)
}

// moments weights the residual with 1, x, x^2, ...
type moments struct{}

func (moments) Basis(d Domain, n int) Basis { return SineBasis(d, n) }
func (moments) BoundaryCorrected() bool      { return true }

func (moments) Assemble(as *Assembler, op *Operator, d Domain, trial Basis) (*System, error) {
	return as.Integral(&ResidualKernel{Op: op}, trial, MonomialBasis(d, len(trial)))
}
