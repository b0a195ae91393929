package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validDataset() *Dataset {
	return &Dataset{
		Roles: []RoleRecord{
			{Role: "BE", ShareOfHours: "0.4", MeetingLoadPerStoryHours: "0", BugHoursPerBug: "2", Line: 2},
			{Role: "QA", ShareOfHours: "0.2", MeetingLoadPerStoryHours: "1", BugHoursPerBug: "3", Line: 3},
		},
		People: []PersonRecord{
			{Person: "ana", Role: "BE", CapacityHours: "60", Line: 2},
			{Person: "dan", Role: "QA", CapacityHours: "40", Line: 3},
		},
		Stories: []StoryRecord{
			{StoryID: "S1", Points: "5", Value: "100", Line: 2},
			{StoryID: "S2", Points: "3", Value: "60", DependsOn: "S1", Line: 3},
		},
		Config: ConfigRecord{
			HoursPerPoint:          floatPtr(10),
			BugsPerSprint:          intPtr(4),
			MaxPointsPerDev:        intPtr(13),
			LambdaPeoplePenalty:    floatPtr(10),
			RequireReleaseForRoles: []string{"BE"},
			MinHoursToCountRelease: floatPtr(4),
			QACoverageFactor:       floatPtr(1.2),
			WIPFactorQACapacity:    floatPtr(0.8),
		},
	}
}

func TestValidateDataset_Valid(t *testing.T) {
	assert.Empty(t, ValidateDataset(validDataset()))
}

func TestValidateDataset_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ds *Dataset)
		wantErr string
	}{
		{
			name:    "missing person id",
			mutate:  func(ds *Dataset) { ds.People[0].Person = "" },
			wantErr: "people.csv line 2: person is required",
		},
		{
			name:    "unknown role reference",
			mutate:  func(ds *Dataset) { ds.People[1].Role = "OPS" },
			wantErr: `people.csv line 3: role "OPS" not defined in roles.csv`,
		},
		{
			name:    "non-numeric capacity",
			mutate:  func(ds *Dataset) { ds.People[0].CapacityHours = "forty" },
			wantErr: `people.csv line 2: capacity_hours: invalid number "forty"`,
		},
		{
			name:    "negative capacity",
			mutate:  func(ds *Dataset) { ds.People[0].CapacityHours = "-1" },
			wantErr: "people.csv line 2: capacity_hours must be >= 0",
		},
		{
			name:    "duplicate story",
			mutate:  func(ds *Dataset) { ds.Stories[1].StoryID = "S1" },
			wantErr: `stories.csv line 3: duplicate story_id "S1"`,
		},
		{
			name:    "fractional points",
			mutate:  func(ds *Dataset) { ds.Stories[0].Points = "2.5" },
			wantErr: `stories.csv line 2: points: invalid integer "2.5"`,
		},
		{
			name:    "self dependency",
			mutate:  func(ds *Dataset) { ds.Stories[0].DependsOn = "S1" },
			wantErr: "stories.csv line 2: depends_on must not reference the story itself",
		},
		{
			name:    "missing config key",
			mutate:  func(ds *Dataset) { ds.Config.HoursPerPoint = nil },
			wantErr: "config.yaml: hours_per_point is required",
		},
		{
			name:    "release role unknown",
			mutate:  func(ds *Dataset) { ds.Config.RequireReleaseForRoles = []string{"FE"} },
			wantErr: `config.yaml: require_release_for_roles: role "FE" not defined in roles.csv`,
		},
		{
			name:    "duplicate role",
			mutate:  func(ds *Dataset) { ds.Roles[1].Role = "BE" },
			wantErr: `roles.csv line 3: duplicate role "BE"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := validDataset()
			tt.mutate(ds)

			errs := ValidateDataset(ds)

			require.NotEmpty(t, errs)
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			assert.Contains(t, msgs, tt.wantErr)
		})
	}
}

func TestValidateDataset_CollectsAllErrors(t *testing.T) {
	ds := validDataset()
	ds.People[0].Person = ""
	ds.Stories[0].Points = "x"
	ds.Config.BugsPerSprint = nil

	errs := ValidateDataset(ds)

	assert.Len(t, errs, 3)
}
