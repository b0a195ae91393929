// Package service orchestrates planning runs: ingestion, requirement
// derivation, model construction, the solve call, extraction, output
// writing, and run-history recording.
package service

import (
	"context"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/planner"
)

// SolveRequest names the input and output directories for one run.
type SolveRequest struct {
	DataDir string
	OutDir  string
}

// PlanService runs the full plan-solve-report pipeline.
type PlanService interface {
	Solve(ctx context.Context, req SolveRequest) (*planner.PlanResult, error)
}

// HistoryService lists past planning runs.
type HistoryService interface {
	ListRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error)
}
