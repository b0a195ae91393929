package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sprintplan/internal/cli/formatter"
	"github.com/alexanderramin/sprintplan/internal/milp/cbc"
	"github.com/alexanderramin/sprintplan/internal/service"
)

func newSolveCmd(app *App) *cobra.Command {
	var dataDir string
	var outDir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the sprint staffing model and write result files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.SolverCheck != nil {
				if err := app.SolverCheck(); err != nil {
					// A missing engine is an operator condition, not a
					// program fault: report it and finish cleanly
					// without attempting a model.
					if errors.Is(err, cbc.ErrUnavailable) {
						fmt.Fprintf(cmd.OutOrStdout(), "MILP solver engine unavailable: %v\n", err)
						fmt.Fprintln(cmd.OutOrStdout(), "No optimization was attempted.")
						return nil
					}
					return err
				}
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			res, err := app.Plan.Solve(ctx, service.SolveRequest{DataDir: dataDir, OutDir: outDir})
			if err != nil {
				return err
			}

			pal := formatter.NewPalette(app.Color)
			fmt.Fprint(cmd.OutOrStdout(), pal.FormatPlan(res))
			fmt.Fprintf(cmd.OutOrStdout(), "\nResults written to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "data", "Directory containing people.csv, stories.csv, roles.csv, config.yaml")
	cmd.Flags().StringVar(&outDir, "out", "results", "Directory to write result CSVs and summary.txt")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the solve after this duration (0 = no limit)")

	return cmd
}
