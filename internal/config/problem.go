package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/timestep"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
)

// ProblemFile is the TOML description of a problem:
//
//	scheme   = "galerkin"
//	a        = 0
//	b        = 1
//	ua       = 0
//	ub       = 0
//	n_points = 20
//	p        = "-1"
//	f        = "sin(pi*x)"
//	exact    = "sin(pi*x)/pi^2"
//
//	[time]
//	u0    = "sin(pi*x)"
//	v0    = "0"
//	dt    = 0.01
//	steps = 10
//
// Expression fields accept strings and numbers. They are decoded as any so
// that a sampled array is reported as a non-symbolic value instead of
// failing inside the decoder. Missing p, q and r default to 1, 0 and 0.
type ProblemFile struct {
	Scheme  string  `toml:"scheme"`
	A       float64 `toml:"a"`
	B       float64 `toml:"b"`
	UA      float64 `toml:"ua"`
	UB      float64 `toml:"ub"`
	NPoints int     `toml:"n_points"`

	P     any `toml:"p"`
	Q     any `toml:"q"`
	R     any `toml:"r"`
	F     any `toml:"f"`
	Exact any `toml:"exact"`

	Time TimeSection `toml:"time"`

	// set holds the dotted keys given explicitly, so that a zero value can
	// be told apart from a missing one.
	set map[string]bool
}

// TimeSection holds the inputs of the time steppers.
type TimeSection struct {
	U0     any     `toml:"u0"`
	V0     any     `toml:"v0"`
	Dt     float64 `toml:"dt"`
	Steps  int     `toml:"steps"`
	Lambda float64 `toml:"lambda"`
}

// ReadProblem decodes the problem file at path.
func ReadProblem(path string) (*ProblemFile, error) {
	var pf ProblemFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode problem file %s", path)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, errors.Wrapf(err, "problem file %s", path)
	}
	pf.markDefined(md)
	return &pf, nil
}

// DecodeProblem decodes a problem from TOML text.
func DecodeProblem(data string) (*ProblemFile, error) {
	var pf ProblemFile
	md, err := toml.Decode(data, &pf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode problem")
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	pf.markDefined(md)
	return &pf, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return errors.WithHint(
		errors.Newf("unknown keys: %s", strings.Join(names, ", ")),
		"check the key names against the problem file layout",
	)
}

func (pf *ProblemFile) markDefined(md toml.MetaData) {
	for _, k := range md.Keys() {
		pf.MarkSet(k.String())
	}
}

// MarkSet records keys (in the dotted form used by the file, such as
// "time.steps") as explicitly given. Apply never replaces them.
func (pf *ProblemFile) MarkSet(keys ...string) {
	if pf.set == nil {
		pf.set = make(map[string]bool)
	}
	for _, k := range keys {
		pf.set[k] = true
	}
}

func (pf *ProblemFile) isSet(key string) bool { return pf.set[key] }

func orDefault(v any, def string) any {
	if v == nil {
		return def
	}
	return v
}

// Apply fills the unset fields from the configuration defaults. Steps and
// lambda may legitimately be zero, so they are only filled when they are
// zero and were not marked as set.
func (pf *ProblemFile) Apply(c *Config) {
	if pf.Scheme == "" {
		pf.Scheme = c.Solver.Scheme
	}
	if pf.NPoints == 0 {
		pf.NPoints = c.Solver.NPoints
	}
	if pf.Time.Dt == 0 {
		pf.Time.Dt = c.Time.Dt
	}
	if pf.Time.Steps == 0 && !pf.isSet("time.steps") {
		pf.Time.Steps = c.Time.Steps
	}
	if pf.Time.Lambda == 0 && !pf.isSet("time.lambda") {
		pf.Time.Lambda = c.Time.Lambda
	}
}

// ParseScheme returns the scheme named in the file.
func (pf *ProblemFile) ParseScheme() (wr.Scheme, error) { return wr.ParseScheme(pf.Scheme) }

func (pf *ProblemFile) domain() wr.Domain { return wr.Domain{A: pf.A, B: pf.B} }

// Problem builds the stationary problem.
func (pf *ProblemFile) Problem() (*wr.Problem, error) {
	op, err := wr.CoerceOperator(orDefault(pf.P, "1"), orDefault(pf.Q, "0"), orDefault(pf.R, "0"), pf.F)
	if err != nil {
		return nil, err
	}
	p := &wr.Problem{
		Domain:   pf.domain(),
		NPoints:  pf.NPoints,
		Boundary: wr.NewDirichlet(pf.UA, pf.UB),
		Operator: op,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ExactSolution returns the exact solution expression, or nil when the
// file has none.
func (pf *ProblemFile) ExactSolution() (expr.Expr, error) {
	if pf.Exact == nil {
		return nil, nil
	}
	e, err := expr.Coerce(pf.Exact)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "exact"), wr.ErrInvalidInput)
	}
	return e, nil
}

func (pf *ProblemFile) params() (timestep.Params, error) {
	scheme, err := pf.ParseScheme()
	if err != nil {
		return timestep.Params{}, err
	}
	return timestep.Params{
		F:       pf.F,
		U0:      pf.Time.U0,
		Domain:  pf.domain(),
		UA:      pf.UA,
		UB:      pf.UB,
		NPoints: pf.NPoints,
		Dt:      pf.Time.Dt,
		Steps:   pf.Time.Steps,
		Scheme:  scheme,
	}, nil
}

// Heat returns the heat equation parameters.
func (pf *ProblemFile) Heat() (*timestep.HeatParams, error) {
	p, err := pf.params()
	if err != nil {
		return nil, err
	}
	return &timestep.HeatParams{Params: p}, nil
}

// Wave returns the wave equation parameters.
func (pf *ProblemFile) Wave() (*timestep.WaveParams, error) {
	p, err := pf.params()
	if err != nil {
		return nil, err
	}
	return &timestep.WaveParams{Params: p, V0: pf.Time.V0, Lambda: pf.Time.Lambda}, nil
}
