// Package expr holds the algebraic expressions of one spatial variable x
// that describe operator coefficients, source terms and initial conditions.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Var is the name of the free variable.
const Var = "x"

var (
	// ErrParse is returned for expressions that cannot be compiled.
	ErrParse = errors.New("unparsable expression")
	// ErrNotSymbolic is returned when a value that should be an algebraic
	// expression is something else (e.g. a sampled numeric array).
	ErrNotSymbolic = errors.New("value is not an algebraic expression")
)

// Expr is a real valued function of x.
type Expr interface {
	Eval(x float64) (float64, error)
	String() string
}

// Const is a constant expression.
type Const float64

func (c Const) Eval(float64) (float64, error) { return float64(c), nil }
func (c Const) String() string                { return strconv.FormatFloat(float64(c), 'g', -1, 64) }

// Parsed is an expression compiled from source text. A Parsed value reuses
// its virtual machine and environment between calls, so it is not safe for
// concurrent use.
type Parsed struct {
	src     string
	program *vm.Program
	machine vm.VM
	env     map[string]any
}

func newEnv() map[string]any {
	return map[string]any{
		Var:  0.0,
		"pi": math.Pi,
		"e":  math.E,
	}
}

var unary = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"exp":  math.Exp,
	"ln":   math.Log,
	"log":  math.Log,
	"sqrt": math.Sqrt,
}

func functions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary))
	for name, fn := range unary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, errors.Newf("%s expects 1 argument, got %d", name, len(params))
			}
			v, err := toFloat(params[0])
			if err != nil {
				return nil, errors.Wrapf(err, "%s", name)
			}
			return fn(v), nil
		}))
	}
	return opts
}

// Parse compiles src. Besides x, the constants pi and e and the usual
// elementary functions are available (abs, floor and ceil are expr
// builtins); both ^ and ** denote powers. Expressions that cannot yield a
// number, such as comparisons, are rejected.
func Parse(src string) (*Parsed, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, errors.Wrap(ErrParse, "empty expression")
	}
	env := newEnv()
	opts := append([]expr.Option{expr.Env(env), expr.AsFloat64()}, functions()...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(ErrParse, "%q: %v", src, err),
			"expressions use the single variable x, e.g. sin(pi*x) or x^2 + 1",
		)
	}
	return &Parsed{src: src, program: program, env: env}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) *Parsed {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Parsed) Eval(x float64) (float64, error) {
	p.env[Var] = x
	out, err := p.machine.Run(p.program, p.env)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q at x=%v", p.src, x)
	}
	v, err := toFloat(out)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q at x=%v", p.src, x)
	}
	return v, nil
}

func (p *Parsed) String() string { return p.src }

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, errors.Newf("non-numeric value %v (%T)", v, v)
}

type sum []Expr

// Sum returns the pointwise sum of terms.
func Sum(terms ...Expr) Expr { return sum(terms) }

func (s sum) Eval(x float64) (float64, error) {
	tot := 0.0
	for _, t := range s {
		v, err := t.Eval(x)
		if err != nil {
			return 0, err
		}
		tot += v
	}
	return tot, nil
}

func (s sum) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = "(" + t.String() + ")"
	}
	return strings.Join(parts, " + ")
}

type scaled struct {
	k float64
	e Expr
}

// Scale returns k*e.
func Scale(k float64, e Expr) Expr { return scaled{k: k, e: e} }

func (s scaled) Eval(x float64) (float64, error) {
	v, err := s.e.Eval(x)
	if err != nil {
		return 0, err
	}
	return s.k * v, nil
}

func (s scaled) String() string { return fmt.Sprintf("%g*(%s)", s.k, s.e) }

// Coerce converts loosely typed input (as decoded from a problem file or
// handed over by a front end) into an Expr. Strings are parsed and numbers
// become constants. Sampled arrays and any other values are rejected with
// ErrNotSymbolic rather than being interpreted.
func Coerce(v any) (Expr, error) {
	switch t := v.(type) {
	case Expr:
		return t, nil
	case string:
		return Parse(t)
	case float64:
		return Const(t), nil
	case float32:
		return Const(float64(t)), nil
	case int:
		return Const(float64(t)), nil
	case int64:
		return Const(float64(t)), nil
	case nil:
		return nil, errors.Wrap(ErrNotSymbolic, "missing expression")
	case []float64, []any, []int, []int64:
		return nil, errors.WithHint(
			errors.Wrapf(ErrNotSymbolic, "got a numeric array (%T)", v),
			"give the source term as an expression string such as \"sin(pi*x)\"",
		)
	}
	return nil, errors.Wrapf(ErrNotSymbolic, "got %T", v)
}

// Sample evaluates e at every point of xs.
func Sample(e Expr, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := e.Eval(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
