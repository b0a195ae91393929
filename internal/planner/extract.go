package planner

import (
	"math"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/milp"
)

// binaryThreshold interprets relaxation noise on binary variables.
const binaryThreshold = 0.5

// hoursTolerance suppresses numerical noise on allocation variables.
const hoursTolerance = 1e-4

// SelectedStory is one row of the selection view.
type SelectedStory struct {
	StoryID string
	Points  int
	Value   float64
	Owner   string
}

// Assignment is one row of the assignment view.
type Assignment struct {
	PersonID string
	Role     domain.RoleID
	StoryID  string
	Hours    float64
}

// PersonUtilization is one row of the utilization view.
type PersonUtilization struct {
	PersonID    string
	Role        domain.RoleID
	HoursUsed   float64
	Capacity    float64
	Utilization float64
	Active      bool
	Released    bool
}

// Summary is the run-level report: solve outcome, headline counts, and the
// echoed parameters.
type Summary struct {
	Status          milp.Status
	Objective       float64
	DeliveredValue  float64
	ActivePeople    int
	StoriesSelected int
	StoriesEligible int
	Dependencies    int
	Config          domain.PlanConfig
}

// PlanResult bundles the three reporting views with the summary.
type PlanResult struct {
	Status      milp.Status
	Objective   float64
	Selected    []SelectedStory
	Assignments []Assignment
	Utilization []PersonUtilization
	Summary     Summary
}

// Extract interprets a solved assignment into the reporting views. For any
// status other than optimal the views are empty and the summary still
// carries the verbatim status, so downstream reporting never fails on an
// infeasible or unbounded outcome.
func Extract(data *domain.SprintData, m *Model, sol *milp.Solution) *PlanResult {
	status := milp.StatusUndefined
	objective := 0.0
	if sol != nil {
		status = sol.Status
		objective = sol.Objective
	}

	res := &PlanResult{Status: status, Objective: objective}
	res.Summary = Summary{
		Status:          status,
		Objective:       objective,
		StoriesEligible: len(m.Stories),
		Dependencies:    len(m.Deps),
		Config:          data.Config,
	}
	if status != milp.StatusOptimal {
		return res
	}

	devs := data.Developers()
	for _, s := range m.Stories {
		if sol.Value(m.Selected[s.ID]) <= binaryThreshold {
			continue
		}
		owner := ""
		for _, d := range devs {
			if sol.Value(m.Owner[PersonStory{PersonID: d.ID, StoryID: s.ID}]) > binaryThreshold {
				owner = d.ID
				break
			}
		}
		res.Selected = append(res.Selected, SelectedStory{
			StoryID: s.ID,
			Points:  s.Points,
			Value:   s.Value,
			Owner:   owner,
		})
		res.Summary.DeliveredValue += s.Value
	}

	for _, person := range data.People {
		for _, s := range m.Stories {
			hrs := sol.Value(m.Hours[PersonStory{PersonID: person.ID, StoryID: s.ID}])
			if hrs > hoursTolerance {
				res.Assignments = append(res.Assignments, Assignment{
					PersonID: person.ID,
					Role:     person.Role,
					StoryID:  s.ID,
					Hours:    round2(hrs),
				})
			}
		}
	}

	for _, person := range data.People {
		var used float64
		for _, s := range m.Stories {
			used += sol.Value(m.Hours[PersonStory{PersonID: person.ID, StoryID: s.ID}])
		}
		utilization := 0.0
		if person.CapacityHours > 0 {
			utilization = used / person.CapacityHours
		}
		active := sol.Value(m.Active[person.ID]) > binaryThreshold
		released := false
		if rel, ok := m.Released[person.ID]; ok {
			released = sol.Value(rel) > binaryThreshold
		}
		res.Utilization = append(res.Utilization, PersonUtilization{
			PersonID:    person.ID,
			Role:        person.Role,
			HoursUsed:   round2(used),
			Capacity:    person.CapacityHours,
			Utilization: round3(utilization),
			Active:      active,
			Released:    released,
		})
		if active {
			res.Summary.ActivePeople++
		}
	}

	res.Summary.StoriesSelected = len(res.Selected)
	return res
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
