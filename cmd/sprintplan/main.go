package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/sprintplan/internal/cli"
	"github.com/alexanderramin/sprintplan/internal/db"
	"github.com/alexanderramin/sprintplan/internal/milp/cbc"
	"github.com/alexanderramin/sprintplan/internal/repository"
	"github.com/alexanderramin/sprintplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.sprintplan/sprintplan.db
	dbPath := os.Getenv("SPRINTPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".sprintplan", "sprintplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	solverBin := os.Getenv("SPRINTPLAN_SOLVER")
	solver := cbc.New(solverBin, logger)

	runRepo := repository.NewSQLitePlanRunRepo(database)

	app := &cli.App{
		Plan:        service.NewPlanService(solver, runRepo, logger, service.NewLogUseCaseObserver(os.Stderr)),
		History:     service.NewHistoryService(runRepo),
		SolverCheck: solver.Available,
		Logger:      logger,
		Color:       isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
