package domain

// Person is a roster member with a role and an hour budget for the period.
type Person struct {
	ID            string
	Role          RoleID
	CapacityHours float64
}

// Story is a unit of deliverable work. DependsOn, when non-empty, names the
// story that must be selected in the same period for this one to be
// selectable.
type Story struct {
	ID        string
	Points    int
	Value     float64
	DependsOn string
}

// Role carries the staffing profile shared by everyone holding it.
type Role struct {
	ID                       RoleID
	ShareOfHours             float64
	MeetingLoadPerStoryHours float64
	BugHoursPerBug           float64
}

// Dependency is an ordered (dependent, predecessor) story pair.
type Dependency struct {
	StoryID       string
	PredecessorID string
}

// PlanConfig holds the scalar tuning parameters for one planning run.
type PlanConfig struct {
	HoursPerPoint          float64
	BugsPerSprint          int
	MaxPointsPerDev        int
	LambdaPeoplePenalty    float64
	RequireReleaseRoles    map[RoleID]bool
	MinHoursToCountRelease float64
	QACoverageFactor       float64
	WIPFactorQACapacity    float64
	ForbidPoints           map[int]bool
}

// SprintData is the immutable domain snapshot for one planning run. It is
// constructed once by the dataset loader and passed by reference through
// requirement calculation, model construction, and extraction.
type SprintData struct {
	People  []Person
	Stories []Story
	Roles   []Role
	Config  PlanConfig
}

// Forbidden reports whether a story is excluded from the run outright
// because its point estimate is in the configured forbidden set.
func (d *SprintData) Forbidden(s Story) bool {
	return d.Config.ForbidPoints[s.Points]
}

// EligibleStories returns the stories that survive forbidden-point
// filtering, in input order. Only these may appear in the model or in any
// output view.
func (d *SprintData) EligibleStories() []Story {
	eligible := make([]Story, 0, len(d.Stories))
	for _, s := range d.Stories {
		if !d.Forbidden(s) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// Dependencies splits the declared dependencies into the pairs that will be
// enforced and the pairs dropped because the predecessor was filtered out.
// A dependency declared by an excluded story is itself dropped.
func (d *SprintData) Dependencies() (kept, dropped []Dependency) {
	eligible := make(map[string]bool, len(d.Stories))
	for _, s := range d.EligibleStories() {
		eligible[s.ID] = true
	}
	for _, s := range d.Stories {
		if s.DependsOn == "" || !eligible[s.ID] {
			continue
		}
		dep := Dependency{StoryID: s.ID, PredecessorID: s.DependsOn}
		if eligible[s.DependsOn] {
			kept = append(kept, dep)
		} else {
			dropped = append(dropped, dep)
		}
	}
	return kept, dropped
}

// PeopleByRole groups the roster by role, preserving input order within
// each group. Roles with nobody assigned are absent from the map.
func (d *SprintData) PeopleByRole() map[RoleID][]Person {
	byRole := make(map[RoleID][]Person)
	for _, p := range d.People {
		byRole[p.Role] = append(byRole[p.Role], p)
	}
	return byRole
}

// Developers returns the roster members holding a developer role, in input
// order.
func (d *SprintData) Developers() []Person {
	var devs []Person
	for _, p := range d.People {
		if p.Role.IsDeveloper() {
			devs = append(devs, p)
		}
	}
	return devs
}

// RoleByID looks up a role profile. The second return is false when the
// role is not configured.
func (d *SprintData) RoleByID(id RoleID) (Role, bool) {
	for _, r := range d.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
