// Package commands implements the wrsolve subcommands.
package commands

import (
	"github.com/Vini9-6/solucao-edp/internal/config"
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is the state shared by the subcommands of one invocation.
type env struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	runID string
}

func (e *env) solver() *wr.Solver {
	return &wr.Solver{
		Assembler: wr.Assembler{
			QuadPoints: e.cfg.Solver.QuadPoints,
			Strict:     e.cfg.Solver.Strict,
		},
		Logger: e.log,
	}
}

// NewRootCmd builds the wrsolve command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "wrsolve",
		Short: "Weighted-residual solver for 1D second order linear problems",
		Long: `wrsolve approximates p(x)u'' + q(x)u' + r(x)u = f(x) on [a, b] with
Dirichlet conditions u(a) = ua, u(b) = ub, and steps the heat and wave
equations in time on top of the same solver.

Schemes: rayleigh-ritz, galerkin, collocation, subdomain, least-squares,
moments.

Examples:
  wrsolve solve --p=-1 --f="sin(pi*x)" --scheme galerkin
  wrsolve compare --problem poisson.toml --exact="sin(pi*x)/pi^2"
  wrsolve heat --u0="sin(pi*x)" --f=0 --dt 0.01 --steps 20
  wrsolve wave --u0="x*(1-x)" --v0=0 --f=0 --lambda 1 --format csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.init(cmd)
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v, -vv)")
	root.PersistentFlags().String("config", "", "Config file (default ./wrsolve.toml)")
	root.PersistentFlags().String("format", "", "Output format: table or csv")
	root.PersistentFlags().Bool("strict", false, "Fail on system entries that cannot be computed")

	root.AddCommand(newSolveCmd(e))
	root.AddCommand(newCompareCmd(e))
	root.AddCommand(newHeatCmd(e))
	root.AddCommand(newWaveCmd(e))
	return root
}

func (e *env) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.NewViper(path)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		v.Set("output.format", f.Value.String())
	}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		v.Set("solver.strict", f.Value.String() == "true")
	}
	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = cfg.Log.Verbosity
	}
	e.cfg = cfg
	e.runID = uuid.New().String()
	e.log = logger.NewWithWriter(cmd.ErrOrStderr(), verbosity, cfg.Log.JSON).With(
		logger.FieldRunID, e.runID,
		logger.FieldCommand, cmd.Name(),
	)
	e.log.Infow("starting", logger.FieldFile, v.ConfigFileUsed())
	return nil
}

// problemFlags registers the flags describing a stationary problem.
func problemFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("problem", "", "TOML problem file; flags override its values")
	f.String("scheme", "", "Weighted-residual scheme")
	f.Float64("a", 0, "Left end of the domain")
	f.Float64("b", 1, "Right end of the domain")
	f.Float64("ua", 0, "Value at the left end")
	f.Float64("ub", 0, "Value at the right end")
	f.Int("n-points", 0, "Number of solution samples (default from config)")
	f.String("f", "", "Source term")
}

// operatorFlags registers the coefficients of a stationary operator.
func operatorFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("p", "", "Coefficient of u'' (default 1)")
	f.String("q", "", "Coefficient of u' (default 0)")
	f.String("r", "", "Coefficient of u (default 0)")
}

// timeFlags registers the flags of the time steppers.
func timeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("u0", "", "Initial condition")
	f.Float64("dt", 0, "Time step (default from config)")
	f.Int("steps", 0, "Number of time steps (default from config)")
}

// loadProblem reads --problem if given, applies the flags that were set on
// the command line and fills the rest from the configuration.
func (e *env) loadProblem(cmd *cobra.Command) (*config.ProblemFile, error) {
	flags := cmd.Flags()
	pf := &config.ProblemFile{B: 1}
	if path, _ := flags.GetString("problem"); path != "" {
		var err error
		if pf, err = config.ReadProblem(path); err != nil {
			return nil, err
		}
		e.log.Debugw("read problem", logger.FieldFile, path)
	}

	// each flag is applied only when given, under its problem file key
	changed := func(name, key string) bool {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			return false
		}
		pf.MarkSet(key)
		return true
	}
	str := func(name, key string, dst *any) {
		if changed(name, key) {
			v, _ := flags.GetString(name)
			*dst = v
		}
	}
	num := func(name, key string, dst *float64) {
		if changed(name, key) {
			*dst, _ = flags.GetFloat64(name)
		}
	}
	integer := func(name, key string, dst *int) {
		if changed(name, key) {
			*dst, _ = flags.GetInt(name)
		}
	}

	if changed("scheme", "scheme") {
		pf.Scheme, _ = flags.GetString("scheme")
	}
	num("a", "a", &pf.A)
	num("b", "b", &pf.B)
	num("ua", "ua", &pf.UA)
	num("ub", "ub", &pf.UB)
	integer("n-points", "n_points", &pf.NPoints)
	str("p", "p", &pf.P)
	str("q", "q", &pf.Q)
	str("r", "r", &pf.R)
	str("f", "f", &pf.F)
	str("exact", "exact", &pf.Exact)
	str("u0", "time.u0", &pf.Time.U0)
	str("v0", "time.v0", &pf.Time.V0)
	num("dt", "time.dt", &pf.Time.Dt)
	integer("steps", "time.steps", &pf.Time.Steps)
	num("lambda", "time.lambda", &pf.Time.Lambda)

	pf.Apply(e.cfg)
	return pf, nil
}

func (e *env) scheme(pf *config.ProblemFile) (wr.Scheme, error) {
	s, err := pf.ParseScheme()
	if err != nil {
		return 0, errors.Wrap(err, "--scheme")
	}
	return s, nil
}
