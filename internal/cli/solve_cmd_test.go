package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/milp/cbc"
	"github.com/alexanderramin/sprintplan/internal/planner"
	"github.com/alexanderramin/sprintplan/internal/service"
)

type stubPlanService struct {
	res *planner.PlanResult
	err error
	req service.SolveRequest
}

func (s *stubPlanService) Solve(_ context.Context, req service.SolveRequest) (*planner.PlanResult, error) {
	s.req = req
	return s.res, s.err
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSolveCmd_SolverUnavailableExitsCleanly(t *testing.T) {
	app := &App{
		SolverCheck: func() error {
			return fmt.Errorf("%w: %q not on PATH", cbc.ErrUnavailable, "cbc")
		},
	}

	out, err := execute(t, app, "solve")

	require.NoError(t, err, "a missing engine must not fail the process")
	assert.Contains(t, out, "MILP solver engine unavailable")
	assert.Contains(t, out, "No optimization was attempted.")
}

func TestSolveCmd_OtherCheckErrorsPropagate(t *testing.T) {
	app := &App{
		SolverCheck: func() error { return errors.New("engine exploded") },
	}

	_, err := execute(t, app, "solve")

	assert.EqualError(t, err, "engine exploded")
}

func TestSolveCmd_RendersResult(t *testing.T) {
	stub := &stubPlanService{
		res: &planner.PlanResult{
			Status: "Optimal",
			Selected: []planner.SelectedStory{
				{StoryID: "S1", Points: 5, Value: 100, Owner: "ana"},
			},
			Utilization: []planner.PersonUtilization{
				{PersonID: "ana", Role: domain.RoleBackend, HoursUsed: 20, Capacity: 60, Utilization: 0.333, Active: true, Released: true},
			},
			Summary: planner.Summary{Status: "Optimal", Objective: 90, DeliveredValue: 100, ActivePeople: 1, StoriesSelected: 1, StoriesEligible: 2},
		},
	}
	app := &App{Plan: stub}

	out, err := execute(t, app, "solve", "--data", "testdata", "--out", "testout")

	require.NoError(t, err)
	assert.Equal(t, service.SolveRequest{DataDir: "testdata", OutDir: "testout"}, stub.req)
	assert.Contains(t, out, "SPRINT PLAN")
	assert.Contains(t, out, "Stories selected: 1 / 2")
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "Results written to testout")
}

func TestSolveCmd_SolveErrorPropagates(t *testing.T) {
	stub := &stubPlanService{err: errors.New("invalid planning data")}
	app := &App{Plan: stub}

	_, err := execute(t, app, "solve")

	assert.EqualError(t, err, "invalid planning data")
}
