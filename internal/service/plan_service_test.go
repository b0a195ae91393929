package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprintplan/internal/dataset"
	"github.com/alexanderramin/sprintplan/internal/milp"
	"github.com/alexanderramin/sprintplan/internal/report"
	"github.com/alexanderramin/sprintplan/internal/repository"
	"github.com/alexanderramin/sprintplan/internal/testutil"
)

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		dataset.PeopleFile: "person,role,capacity_hours\n" +
			"ana,BE,60\n" +
			"carla,FE,50\n" +
			"dan,QA,40\n" +
			"eva,TL,20\n",
		dataset.StoriesFile: "story_id,points,value,depends_on\n" +
			"S1,5,100,\n" +
			"S2,3,60,S1\n",
		dataset.RolesFile: "role,share_of_hours,meeting_load_per_story_hours,bug_hours_per_bug\n" +
			"BE,0.4,0,2\n" +
			"FE,0.3,0,2\n" +
			"QA,0.2,1,3\n" +
			"TL,0.1,0.5,0\n",
		dataset.ConfigFile: `hours_per_point: 10
bugs_per_sprint: 4
max_points_per_dev: 13
lambda_people_penalty: 10
require_release_for_roles: [BE, FE]
min_hours_to_count_release: 4
qa_coverage_factor: 1.2
wip_factor_QA_capacity: 0.8
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestPlanService_SolvePipeline(t *testing.T) {
	dataDir := writeDataDir(t)
	outDir := filepath.Join(t.TempDir(), "results")
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLitePlanRunRepo(database)

	fake := &testutil.FakeSolver{
		Status: milp.StatusOptimal,
		Values: map[string]float64{
			"z_S1": 1, "y_ana": 1, "y_carla": 1, "y_dan": 1, "y_eva": 1,
			"owner_ana_S1": 1, "rel_ana": 1,
			"x_ana_S1": 20, "x_carla_S1": 15, "x_dan_S1": 13, "x_eva_S1": 5.5,
		},
	}
	svc := NewPlanService(fake, runs, nil)

	res, err := svc.Solve(context.Background(), SolveRequest{DataDir: dataDir, OutDir: outDir})
	require.NoError(t, err)

	assert.Equal(t, milp.StatusOptimal, res.Status)
	require.Len(t, res.Selected, 1)
	assert.Equal(t, "S1", res.Selected[0].StoryID)
	assert.Equal(t, "ana", res.Selected[0].Owner)
	assert.InDelta(t, 60.0, res.Objective, 1e-9) // 100 - 10 x 4 active

	// The solver saw the assembled model.
	require.NotNil(t, fake.LastProblem)
	_, ok := fake.LastProblem.Constraint("dep_S2_on_S1")
	assert.True(t, ok)

	// Output files landed on disk.
	for _, name := range []string{report.SelectedFile, report.AssignmentsFile, report.UtilizationFile, report.SummaryFile} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	// The run was recorded.
	recorded, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "Optimal", recorded[0].Status)
	assert.Equal(t, 1, recorded[0].StoriesSelected)
	assert.Equal(t, 2, recorded[0].StoriesEligible)
	assert.Equal(t, dataDir, recorded[0].DataDir)
}

func TestPlanService_InfeasibleRunCompletes(t *testing.T) {
	dataDir := writeDataDir(t)
	outDir := filepath.Join(t.TempDir(), "results")
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLitePlanRunRepo(database)

	fake := &testutil.FakeSolver{Status: milp.StatusInfeasible}
	svc := NewPlanService(fake, runs, nil)

	res, err := svc.Solve(context.Background(), SolveRequest{DataDir: dataDir, OutDir: outDir})
	require.NoError(t, err, "a non-optimal status is an outcome, not a failure")

	assert.Equal(t, milp.StatusInfeasible, res.Status)
	assert.Empty(t, res.Selected)

	recorded, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, "Infeasible", recorded[0].Status)
}

func TestPlanService_InvalidDataAborts(t *testing.T) {
	dataDir := writeDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, dataset.PeopleFile),
		[]byte("person,role,capacity_hours\nana,NOPE,60\n"), 0o644))
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLitePlanRunRepo(database)

	svc := NewPlanService(&testutil.FakeSolver{Status: milp.StatusOptimal}, runs, nil)

	_, err := svc.Solve(context.Background(), SolveRequest{DataDir: dataDir, OutDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `role "NOPE" not defined`)

	// Aborted runs are not recorded.
	recorded, err := runs.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recorded)
}

func TestPlanService_NilRunsRepo(t *testing.T) {
	dataDir := writeDataDir(t)

	svc := NewPlanService(&testutil.FakeSolver{Status: milp.StatusOptimal}, nil, nil)

	res, err := svc.Solve(context.Background(), SolveRequest{DataDir: dataDir, OutDir: filepath.Join(t.TempDir(), "results")})
	require.NoError(t, err)
	assert.Equal(t, milp.StatusOptimal, res.Status)
}
