package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintplan/internal/domain"
)

// Convert builds the immutable domain snapshot from a validated dataset.
// It must only be called after ValidateDataset returned no errors; the
// parse error paths here are a backstop, not a second validation pass.
func Convert(ds *Dataset) (*domain.SprintData, error) {
	data := &domain.SprintData{}

	for _, r := range ds.Roles {
		share, err := strconv.ParseFloat(r.ShareOfHours, 64)
		if err != nil {
			return nil, fmt.Errorf("role %s: share_of_hours: %w", r.Role, err)
		}
		meeting, err := strconv.ParseFloat(r.MeetingLoadPerStoryHours, 64)
		if err != nil {
			return nil, fmt.Errorf("role %s: meeting_load_per_story_hours: %w", r.Role, err)
		}
		bug, err := strconv.ParseFloat(r.BugHoursPerBug, 64)
		if err != nil {
			return nil, fmt.Errorf("role %s: bug_hours_per_bug: %w", r.Role, err)
		}
		data.Roles = append(data.Roles, domain.Role{
			ID:                       domain.RoleID(r.Role),
			ShareOfHours:             share,
			MeetingLoadPerStoryHours: meeting,
			BugHoursPerBug:           bug,
		})
	}

	for _, p := range ds.People {
		capacity, err := strconv.ParseFloat(p.CapacityHours, 64)
		if err != nil {
			return nil, fmt.Errorf("person %s: capacity_hours: %w", p.Person, err)
		}
		data.People = append(data.People, domain.Person{
			ID:            p.Person,
			Role:          domain.RoleID(p.Role),
			CapacityHours: capacity,
		})
	}

	for _, s := range ds.Stories {
		points, err := strconv.Atoi(s.Points)
		if err != nil {
			return nil, fmt.Errorf("story %s: points: %w", s.StoryID, err)
		}
		value, err := strconv.ParseFloat(s.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("story %s: value: %w", s.StoryID, err)
		}
		data.Stories = append(data.Stories, domain.Story{
			ID:        s.StoryID,
			Points:    points,
			Value:     value,
			DependsOn: strings.TrimSpace(s.DependsOn),
		})
	}

	cfg := ds.Config
	data.Config = domain.PlanConfig{
		HoursPerPoint:          *cfg.HoursPerPoint,
		BugsPerSprint:          *cfg.BugsPerSprint,
		MaxPointsPerDev:        *cfg.MaxPointsPerDev,
		LambdaPeoplePenalty:    *cfg.LambdaPeoplePenalty,
		MinHoursToCountRelease: *cfg.MinHoursToCountRelease,
		QACoverageFactor:       *cfg.QACoverageFactor,
		WIPFactorQACapacity:    *cfg.WIPFactorQACapacity,
		RequireReleaseRoles:    make(map[domain.RoleID]bool, len(cfg.RequireReleaseForRoles)),
		ForbidPoints:           make(map[int]bool, len(cfg.ForbidPoints)),
	}
	for _, role := range cfg.RequireReleaseForRoles {
		data.Config.RequireReleaseRoles[domain.RoleID(role)] = true
	}
	for _, pts := range cfg.ForbidPoints {
		data.Config.ForbidPoints[pts] = true
	}

	return data, nil
}

// Load reads, validates, and converts a data directory in one step. A
// non-empty validation result aborts with all problems joined into a
// single error.
func Load(dir string) (*domain.SprintData, error) {
	ds, err := LoadDataset(dir)
	if err != nil {
		return nil, err
	}
	if errs := ValidateDataset(ds); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid planning data:\n  %s", strings.Join(msgs, "\n  "))
	}
	return Convert(ds)
}
