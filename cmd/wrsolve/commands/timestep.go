package commands

import (
	"github.com/Vini9-6/solucao-edp/internal/logger"
	"github.com/Vini9-6/solucao-edp/timestep"
	"github.com/spf13/cobra"
)

func newHeatCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heat",
		Short: "Step u_t = u_xx + f in time with implicit Euler",
		Long: `Step the heat equation u_t = u_xx + f(x) from u(x, 0) = u0(x). Every step is
solved as a stationary problem with the selected scheme.

Examples:
  wrsolve heat --u0="sin(pi*x)" --f=0 --dt 0.01 --steps 20
  wrsolve heat --problem rod.toml --scheme least-squares --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := e.loadProblem(cmd)
			if err != nil {
				return err
			}
			params, err := pf.Heat()
			if err != nil {
				return err
			}
			series, err := timestep.Heat(e.solver(), params)
			if err != nil {
				return err
			}
			e.log.Infow("heat done", logger.FieldStep, params.Steps, logger.FieldScheme, params.Scheme.String())
			return newOutput(cmd.OutOrStdout(), e.cfg.Output).series(series)
		},
	}
	problemFlags(cmd)
	timeFlags(cmd)
	return cmd
}

func newWaveCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wave",
		Short: "Step u_tt = lambda^2 u_xx + f in time",
		Long: `Step the wave equation u_tt = lambda^2 u_xx + f(x) from the displacement
u0(x) and velocity v0(x). The first step is an explicit Taylor step; the
following ones are solved as stationary problems with the selected scheme.

Examples:
  wrsolve wave --u0="x*(1-x)" --v0=0 --f=0 --lambda 1 --dt 0.05 --steps 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := e.loadProblem(cmd)
			if err != nil {
				return err
			}
			params, err := pf.Wave()
			if err != nil {
				return err
			}
			series, err := timestep.Wave(e.solver(), params)
			if err != nil {
				return err
			}
			e.log.Infow("wave done", logger.FieldStep, params.Steps, logger.FieldScheme, params.Scheme.String())
			return newOutput(cmd.OutOrStdout(), e.cfg.Output).series(series)
		},
	}
	problemFlags(cmd)
	timeFlags(cmd)
	cmd.Flags().String("v0", "", "Initial velocity")
	cmd.Flags().Float64("lambda", 0, "Wave speed (default from config)")
	return cmd
}
