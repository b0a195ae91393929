package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/sprintplan/internal/dataset"
	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/milp"
	"github.com/alexanderramin/sprintplan/internal/planner"
	"github.com/alexanderramin/sprintplan/internal/report"
	"github.com/alexanderramin/sprintplan/internal/repository"
)

type planService struct {
	solver   milp.Solver
	runs     repository.PlanRunRepo
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewPlanService wires the pipeline dependencies. The runs repository may
// be nil, in which case runs are not recorded.
func NewPlanService(solver milp.Solver, runs repository.PlanRunRepo, logger *slog.Logger, observers ...UseCaseObserver) PlanService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &planService{
		solver:   solver,
		runs:     runs,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Solve(ctx context.Context, req SolveRequest) (*planner.PlanResult, error) {
	start := time.Now()
	res, err := s.solve(ctx, req)

	fields := map[string]any{"data_dir": req.DataDir, "out_dir": req.OutDir}
	if res != nil {
		fields["status"] = string(res.Status)
		fields["stories_selected"] = len(res.Selected)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_solve",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: start,
	})
	return res, err
}

func (s *planService) solve(ctx context.Context, req SolveRequest) (*planner.PlanResult, error) {
	data, err := dataset.Load(req.DataDir)
	if err != nil {
		return nil, fmt.Errorf("loading planning data: %w", err)
	}

	reqs := planner.ComputeRequirements(data, s.logger)
	model := planner.BuildModel(data, reqs, s.logger)

	sol, err := s.solver.Solve(ctx, model.Problem)
	if err != nil {
		return nil, fmt.Errorf("solving model: %w", err)
	}

	res := planner.Extract(data, model, sol)
	if err := report.WriteResults(req.OutDir, res); err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}

	if s.runs != nil {
		run := &domain.PlanRun{
			ID:              uuid.NewString(),
			CreatedAt:       time.Now(),
			Status:          string(res.Status),
			Objective:       res.Objective,
			DeliveredValue:  res.Summary.DeliveredValue,
			ActivePeople:    res.Summary.ActivePeople,
			StoriesSelected: res.Summary.StoriesSelected,
			StoriesEligible: res.Summary.StoriesEligible,
			DataDir:         req.DataDir,
			OutDir:          req.OutDir,
		}
		// Run history is a convenience; failing to record it does not
		// invalidate an otherwise completed run.
		if err := s.runs.Create(ctx, run); err != nil {
			s.logger.Warn("recording plan run failed", "error", err)
		}
	}

	return res, nil
}

type historyService struct {
	runs repository.PlanRunRepo
}

// NewHistoryService creates a HistoryService over the runs repository.
func NewHistoryService(runs repository.PlanRunRepo) HistoryService {
	return &historyService{runs: runs}
}

func (s *historyService) ListRuns(ctx context.Context, limit int) ([]*domain.PlanRun, error) {
	return s.runs.List(ctx, limit)
}
