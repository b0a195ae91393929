package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sprintplan/internal/cli/formatter"
)

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded planning runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.History.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			pal := formatter.NewPalette(app.Color)
			fmt.Fprint(cmd.OutOrStdout(), pal.FormatRuns(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}
