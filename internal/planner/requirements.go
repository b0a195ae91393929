// Package planner is the optimization core: it derives per-story staffing
// requirements and per-role effective capacities, assembles the MILP that
// selects and staffs stories for one period, and translates a solved
// assignment back into business-facing views.
package planner

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/sprintplan/internal/domain"
)

// RequirementKey addresses the required hours of one role on one story.
type RequirementKey struct {
	StoryID string
	Role    domain.RoleID
}

// Requirements holds the derived staffing inputs of the model: required
// hours per (story, role), and per-role capacity before and after bug
// reservation and the QA throughput cap.
type Requirements struct {
	Required          map[RequirementKey]float64
	RawCapacity       map[domain.RoleID]float64
	EffectiveCapacity map[domain.RoleID]float64
}

// ComputeRequirements derives requirements and capacities from the domain
// snapshot.
//
// Required hours for a (story, role) pair are the story's total hours
// (points x hours-per-point) scaled by the role's share, with QA further
// scaled by the coverage factor. Roles carrying a per-story meeting load
// have those fixed hours added on top.
//
// Effective capacity is the role's summed person capacity minus the hours
// reserved for expected bug work; QA is additionally capped at raw
// capacity times the WIP factor, a throughput ceiling independent of hour
// availability.
func ComputeRequirements(data *domain.SprintData, logger *slog.Logger) *Requirements {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := data.Config
	eligible := data.EligibleStories()
	byRole := data.PeopleByRole()

	required := make(map[RequirementKey]float64, len(eligible)*len(data.Roles))
	for _, s := range eligible {
		totalHours := float64(s.Points) * cfg.HoursPerPoint
		for _, r := range data.Roles {
			hours := r.ShareOfHours * totalHours
			if r.ID == domain.RoleQA {
				hours *= cfg.QACoverageFactor
			}
			if r.MeetingLoadPerStoryHours > 0 {
				hours += r.MeetingLoadPerStoryHours
			}
			required[RequirementKey{StoryID: s.ID, Role: r.ID}] = hours
		}
	}

	raw := make(map[domain.RoleID]float64, len(data.Roles))
	effective := make(map[domain.RoleID]float64, len(data.Roles))
	for _, r := range data.Roles {
		var capSum float64
		for _, p := range byRole[r.ID] {
			capSum += p.CapacityHours
		}
		raw[r.ID] = capSum
		effective[r.ID] = capSum - float64(cfg.BugsPerSprint)*r.BugHoursPerBug
	}
	if qaRaw, ok := raw[domain.RoleQA]; ok {
		if capped := qaRaw * cfg.WIPFactorQACapacity; capped < effective[domain.RoleQA] {
			effective[domain.RoleQA] = capped
		}
	}

	// A role that stories demand hours from but nobody holds cannot be
	// covered; the model omits its constraints, so flag the likely
	// misconfiguration here.
	for _, r := range data.Roles {
		if len(byRole[r.ID]) == 0 && r.ShareOfHours > 0 {
			logger.Warn("role demanded by stories has nobody assigned; coverage will not be enforced",
				"role", string(r.ID))
		}
	}

	return &Requirements{Required: required, RawCapacity: raw, EffectiveCapacity: effective}
}
