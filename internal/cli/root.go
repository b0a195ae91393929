package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sprintplan/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Plan    service.PlanService
	History service.HistoryService

	// SolverCheck probes solver-engine availability before a run. Nil
	// disables the probe (tests inject fake solvers).
	SolverCheck func() error

	Logger *slog.Logger

	// Color enables styled terminal output; wiring decides this from
	// whether stdout is a terminal.
	Color bool
}

// NewRootCmd creates the top-level "sprintplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sprintplan",
		Short:         "Sprint staffing optimizer",
		Long:          "Allocates a roster of people to a story backlog for one sprint by solving a mixed-integer linear program.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSolveCmd(app),
		newRunsCmd(app),
	)

	return root
}
