package commands

import (
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newSolveCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a stationary boundary value problem with one scheme",
		Long: `Solve p(x)u'' + q(x)u' + r(x)u = f(x) with Dirichlet conditions and print
the sampled solution followed by the basis weights.

Examples:
  wrsolve solve --p=-1 --f="sin(pi*x)" --scheme galerkin --n-points 11
  wrsolve solve --problem poisson.toml --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runSolve(cmd)
		},
	}
	problemFlags(cmd)
	operatorFlags(cmd)
	return cmd
}

func (e *env) runSolve(cmd *cobra.Command) error {
	pf, err := e.loadProblem(cmd)
	if err != nil {
		return err
	}
	scheme, err := e.scheme(pf)
	if err != nil {
		return err
	}
	p, err := pf.Problem()
	if err != nil {
		return err
	}
	sol, err := e.solver().Solve(p, scheme)
	if err != nil {
		return err
	}
	e.log.Infow("solved", logger.FieldScheme, scheme.String(), logger.FieldNBase, len(sol.Coeffs))

	out := newOutput(cmd.OutOrStdout(), e.cfg.Output)
	if sol.Singular && !out.csv() {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println("singular system: the solution is the boundary lift only")
	}
	return out.solution(sol)
}
