package commands

import (
	"github.com/Vini9-6/solucao-edp/compare"
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/spf13/cobra"
)

func newCompareCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Solve one problem with several schemes and compare the results",
		Long: `Run the schemes on the same problem and report the root mean square and
maximum differences against an exact solution (--exact) and against the
first scheme.

Examples:
  wrsolve compare --p=-1 --f="sin(pi*x)" --exact="sin(pi*x)/pi^2"
  wrsolve compare --problem poisson.toml --schemes galerkin,collocation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runCompare(cmd)
		},
	}
	problemFlags(cmd)
	operatorFlags(cmd)
	cmd.Flags().String("exact", "", "Exact solution to measure the errors against")
	cmd.Flags().StringSlice("schemes", nil, "Schemes to run; the first is the reference (default all)")
	return cmd
}

func (e *env) runCompare(cmd *cobra.Command) error {
	pf, err := e.loadProblem(cmd)
	if err != nil {
		return err
	}
	schemes := wr.Schemes
	if names, _ := cmd.Flags().GetStringSlice("schemes"); len(names) > 0 {
		schemes = make([]wr.Scheme, len(names))
		for i, name := range names {
			if schemes[i], err = wr.ParseScheme(name); err != nil {
				return err
			}
		}
	}
	p, err := pf.Problem()
	if err != nil {
		return err
	}
	exact, err := pf.ExactSolution()
	if err != nil {
		return err
	}

	r, err := compare.Schemes(e.solver(), p, schemes, exact)
	if err != nil {
		return err
	}
	e.log.Infow("compared", logger.FieldCount, len(r.Entries), "best", r.Summary.Best.String())
	return newOutput(cmd.OutOrStdout(), e.cfg.Output).report(r)
}
