package dataset

import (
	"fmt"
	"strconv"
)

// ValidateDataset checks every record for missing required fields,
// non-numeric values, and role references that do not exist. It returns
// all problems found; the run aborts atomically when the list is
// non-empty. No field is silently coerced to a default.
func ValidateDataset(ds *Dataset) []error {
	var errs []error

	roles := make(map[string]bool, len(ds.Roles))
	errs = append(errs, validateRoles(ds.Roles, roles)...)
	errs = append(errs, validatePeople(ds.People, roles)...)
	errs = append(errs, validateStories(ds.Stories)...)
	errs = append(errs, validateConfig(&ds.Config, roles)...)

	return errs
}

func validateRoles(records []RoleRecord, roles map[string]bool) []error {
	var errs []error
	for _, r := range records {
		prefix := fmt.Sprintf("%s line %d", RolesFile, r.Line)

		if r.Role == "" {
			errs = append(errs, fmt.Errorf("%s: role is required", prefix))
		} else if roles[r.Role] {
			errs = append(errs, fmt.Errorf("%s: duplicate role %q", prefix, r.Role))
		} else {
			roles[r.Role] = true
		}

		errs = append(errs, requireNumber(prefix, "share_of_hours", r.ShareOfHours, 0)...)
		errs = append(errs, requireNumber(prefix, "meeting_load_per_story_hours", r.MeetingLoadPerStoryHours, 0)...)
		errs = append(errs, requireNumber(prefix, "bug_hours_per_bug", r.BugHoursPerBug, 0)...)
	}
	return errs
}

func validatePeople(records []PersonRecord, roles map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool, len(records))
	for _, p := range records {
		prefix := fmt.Sprintf("%s line %d", PeopleFile, p.Line)

		if p.Person == "" {
			errs = append(errs, fmt.Errorf("%s: person is required", prefix))
		} else if seen[p.Person] {
			errs = append(errs, fmt.Errorf("%s: duplicate person %q", prefix, p.Person))
		} else {
			seen[p.Person] = true
		}

		if p.Role == "" {
			errs = append(errs, fmt.Errorf("%s: role is required", prefix))
		} else if !roles[p.Role] {
			errs = append(errs, fmt.Errorf("%s: role %q not defined in %s", prefix, p.Role, RolesFile))
		}

		errs = append(errs, requireNumber(prefix, "capacity_hours", p.CapacityHours, 0)...)
	}
	return errs
}

func validateStories(records []StoryRecord) []error {
	var errs []error
	seen := make(map[string]bool, len(records))
	for _, s := range records {
		prefix := fmt.Sprintf("%s line %d", StoriesFile, s.Line)

		if s.StoryID == "" {
			errs = append(errs, fmt.Errorf("%s: story_id is required", prefix))
		} else if seen[s.StoryID] {
			errs = append(errs, fmt.Errorf("%s: duplicate story_id %q", prefix, s.StoryID))
		} else {
			seen[s.StoryID] = true
		}

		if s.Points == "" {
			errs = append(errs, fmt.Errorf("%s: points is required", prefix))
		} else if v, err := strconv.Atoi(s.Points); err != nil {
			errs = append(errs, fmt.Errorf("%s: points: invalid integer %q", prefix, s.Points))
		} else if v < 0 {
			errs = append(errs, fmt.Errorf("%s: points must not be negative", prefix))
		}

		errs = append(errs, requireNumber(prefix, "value", s.Value, negativeAllowed)...)

		if s.DependsOn == s.StoryID && s.StoryID != "" {
			errs = append(errs, fmt.Errorf("%s: depends_on must not reference the story itself", prefix))
		}
	}
	return errs
}

func validateConfig(cfg *ConfigRecord, roles map[string]bool) []error {
	var errs []error
	missing := func(key string) {
		errs = append(errs, fmt.Errorf("%s: %s is required", ConfigFile, key))
	}

	if cfg.HoursPerPoint == nil {
		missing("hours_per_point")
	} else if *cfg.HoursPerPoint <= 0 {
		errs = append(errs, fmt.Errorf("%s: hours_per_point must be positive", ConfigFile))
	}
	if cfg.BugsPerSprint == nil {
		missing("bugs_per_sprint")
	} else if *cfg.BugsPerSprint < 0 {
		errs = append(errs, fmt.Errorf("%s: bugs_per_sprint must not be negative", ConfigFile))
	}
	if cfg.MaxPointsPerDev == nil {
		missing("max_points_per_dev")
	} else if *cfg.MaxPointsPerDev <= 0 {
		errs = append(errs, fmt.Errorf("%s: max_points_per_dev must be positive", ConfigFile))
	}
	if cfg.LambdaPeoplePenalty == nil {
		missing("lambda_people_penalty")
	}
	if cfg.MinHoursToCountRelease == nil {
		missing("min_hours_to_count_release")
	} else if *cfg.MinHoursToCountRelease < 0 {
		errs = append(errs, fmt.Errorf("%s: min_hours_to_count_release must not be negative", ConfigFile))
	}
	if cfg.QACoverageFactor == nil {
		missing("qa_coverage_factor")
	} else if *cfg.QACoverageFactor < 0 {
		errs = append(errs, fmt.Errorf("%s: qa_coverage_factor must not be negative", ConfigFile))
	}
	if cfg.WIPFactorQACapacity == nil {
		missing("wip_factor_QA_capacity")
	} else if *cfg.WIPFactorQACapacity < 0 {
		errs = append(errs, fmt.Errorf("%s: wip_factor_QA_capacity must not be negative", ConfigFile))
	}

	for _, role := range cfg.RequireReleaseForRoles {
		if !roles[role] {
			errs = append(errs, fmt.Errorf("%s: require_release_for_roles: role %q not defined in %s", ConfigFile, role, RolesFile))
		}
	}

	return errs
}

const negativeAllowed = -1e30

// requireNumber validates a required numeric field with a lower bound.
// Pass negativeAllowed to accept any finite value.
func requireNumber(prefix, field, raw string, min float64) []error {
	if raw == "" {
		return []error{fmt.Errorf("%s: %s is required", prefix, field)}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return []error{fmt.Errorf("%s: %s: invalid number %q", prefix, field, raw)}
	}
	if v < min {
		return []error{fmt.Errorf("%s: %s must be >= %g", prefix, field, min)}
	}
	return nil
}
