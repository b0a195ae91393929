package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/testutil"
)

func TestComputeRequirements_RequiredHours(t *testing.T) {
	data := testutil.SprintFixture()

	reqs := ComputeRequirements(data, nil)

	// S1 is 5 points x 10 hours/point = 50 total hours.
	assert.InDelta(t, 20.0, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleBackend}], 1e-9)
	assert.InDelta(t, 15.0, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleFrontend}], 1e-9)
	// QA: 0.2 * 50 * 1.2 coverage factor + 1h meeting load.
	assert.InDelta(t, 13.0, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleQA}], 1e-9)
	// TL: 0.1 * 50 + 0.5h meeting load.
	assert.InDelta(t, 5.5, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleTeamLead}], 1e-9)
	assert.InDelta(t, 0.0, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleArchitect}], 1e-9)
}

func TestComputeRequirements_EffectiveCapacity(t *testing.T) {
	data := testutil.SprintFixture()

	reqs := ComputeRequirements(data, nil)

	// BE: 120 raw - 4 bugs x 2h.
	assert.InDelta(t, 112.0, reqs.EffectiveCapacity[domain.RoleBackend], 1e-9)
	assert.InDelta(t, 42.0, reqs.EffectiveCapacity[domain.RoleFrontend], 1e-9)
	// QA: 40 - 4x3 = 28, below the 40 x 0.8 = 32 WIP ceiling.
	assert.InDelta(t, 28.0, reqs.EffectiveCapacity[domain.RoleQA], 1e-9)
	assert.InDelta(t, 20.0, reqs.EffectiveCapacity[domain.RoleTeamLead], 1e-9)
	assert.InDelta(t, 120.0, reqs.RawCapacity[domain.RoleBackend], 1e-9)
}

func TestComputeRequirements_QAWIPCapBinds(t *testing.T) {
	data := testutil.SprintFixture()
	data.Config.WIPFactorQACapacity = 0.5

	reqs := ComputeRequirements(data, nil)

	// 40 x 0.5 = 20 is tighter than the bug-reserved 28.
	assert.InDelta(t, 20.0, reqs.EffectiveCapacity[domain.RoleQA], 1e-9)
}

func TestComputeRequirements_ForbiddenStoryExcluded(t *testing.T) {
	data := testutil.SprintFixture()
	data.Config.ForbidPoints = map[int]bool{8: true}

	reqs := ComputeRequirements(data, nil)

	for key := range reqs.Required {
		require.NotEqual(t, "S3", key.StoryID, "forbidden story must not generate requirements")
	}
}

func TestComputeRequirements_ZeroHeadcountRole(t *testing.T) {
	data := testutil.SprintFixture()
	// Give the architect role a real share with nobody to cover it.
	for i := range data.Roles {
		if data.Roles[i].ID == domain.RoleArchitect {
			data.Roles[i].ShareOfHours = 0.1
		}
	}

	reqs := ComputeRequirements(data, nil)

	assert.InDelta(t, 0.0, reqs.RawCapacity[domain.RoleArchitect], 1e-9)
	assert.InDelta(t, 0.0, reqs.EffectiveCapacity[domain.RoleArchitect], 1e-9)
	assert.InDelta(t, 5.0, reqs.Required[RequirementKey{StoryID: "S1", Role: domain.RoleArchitect}], 1e-9)
}
