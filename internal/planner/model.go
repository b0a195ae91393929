package planner

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/milp"
)

// PersonStory keys variables indexed by a (person, story) pair.
type PersonStory struct {
	PersonID string
	StoryID  string
}

// Model is the assembled optimization problem together with the typed
// variable containers needed to read a solution back. Only eligible
// stories and enforced dependencies appear anywhere in it.
type Model struct {
	Problem *milp.Problem

	// Hours holds the continuous allocation variables over every
	// (person, eligible story) pair.
	Hours map[PersonStory]*milp.Var
	// Selected and Active are the story-inclusion and person-activation
	// binaries.
	Selected map[string]*milp.Var
	Active   map[string]*milp.Var
	// Owner and Released exist for developer-role people only; ownership
	// is undefined for other roles.
	Owner    map[PersonStory]*milp.Var
	Released map[string]*milp.Var

	// Stories are the eligible stories in input order; Deps the enforced
	// dependency pairs; DroppedDeps the pairs relaxed because their
	// predecessor was filtered out.
	Stories     []domain.Story
	Deps        []domain.Dependency
	DroppedDeps []domain.Dependency
}

// BuildModel declares the decision variables, the objective, and the full
// constraint set over the domain snapshot and its derived requirements.
// Construction is deterministic: identical inputs produce an identical
// problem, row for row.
//
// The model maximizes delivered story value minus a penalty per activated
// person, subject to per-person and per-role capacity, per-story role
// coverage, single accountable ownership with an hours floor, a points
// ceiling per owner, mandatory release for active developers, and
// same-period dependency precedence.
func BuildModel(data *domain.SprintData, reqs *Requirements, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := data.Config
	byRole := data.PeopleByRole()
	devs := data.Developers()
	kept, dropped := data.Dependencies()

	m := &Model{
		Problem:     milp.NewProblem("sprint_planning"),
		Hours:       make(map[PersonStory]*milp.Var),
		Selected:    make(map[string]*milp.Var),
		Active:      make(map[string]*milp.Var),
		Owner:       make(map[PersonStory]*milp.Var),
		Released:    make(map[string]*milp.Var),
		Stories:     data.EligibleStories(),
		Deps:        kept,
		DroppedDeps: dropped,
	}
	p := m.Problem

	for _, dep := range dropped {
		logger.Warn("dependency predecessor excluded by forbidden points; precedence not enforced",
			"story", dep.StoryID, "predecessor", dep.PredecessorID)
	}

	// Variables.
	for _, person := range data.People {
		for _, s := range m.Stories {
			key := PersonStory{PersonID: person.ID, StoryID: s.ID}
			m.Hours[key] = p.NewContinuous(fmt.Sprintf("x_%s_%s", person.ID, s.ID), 0)
		}
	}
	for _, s := range m.Stories {
		m.Selected[s.ID] = p.NewBinary("z_" + s.ID)
	}
	for _, person := range data.People {
		m.Active[person.ID] = p.NewBinary("y_" + person.ID)
	}
	for _, d := range devs {
		for _, s := range m.Stories {
			key := PersonStory{PersonID: d.ID, StoryID: s.ID}
			m.Owner[key] = p.NewBinary(fmt.Sprintf("owner_%s_%s", d.ID, s.ID))
		}
		m.Released[d.ID] = p.NewBinary("rel_" + d.ID)
	}

	// Objective: delivered value minus the activation penalty.
	var obj milp.Expr
	for _, s := range m.Stories {
		obj = obj.Plus(s.Value, m.Selected[s.ID])
	}
	for _, person := range data.People {
		obj = obj.Plus(-cfg.LambdaPeoplePenalty, m.Active[person.ID])
	}
	p.Objective = obj

	// Per-person capacity, gated by the active flag: an inactive person
	// contributes zero hours everywhere.
	for _, person := range data.People {
		var expr milp.Expr
		for _, s := range m.Stories {
			expr = expr.Plus(1, m.Hours[PersonStory{PersonID: person.ID, StoryID: s.ID}])
		}
		expr = expr.Plus(-person.CapacityHours, m.Active[person.ID])
		p.AddConstraint("cap_"+person.ID, expr, milp.LE, 0)
	}

	// Per-story role coverage, waived when the story is not selected.
	// Roles with nobody assigned are omitted entirely.
	for _, s := range m.Stories {
		for _, r := range data.Roles {
			people := byRole[r.ID]
			if len(people) == 0 {
				continue
			}
			var expr milp.Expr
			for _, person := range people {
				expr = expr.Plus(1, m.Hours[PersonStory{PersonID: person.ID, StoryID: s.ID}])
			}
			expr = expr.Plus(-reqs.Required[RequirementKey{StoryID: s.ID, Role: r.ID}], m.Selected[s.ID])
			p.AddConstraint(fmt.Sprintf("req_%s_%s", r.ID, s.ID), expr, milp.GE, 0)
		}
	}

	// Aggregate role capacity after bug reservation and the QA cap.
	for _, r := range data.Roles {
		people := byRole[r.ID]
		if len(people) == 0 {
			continue
		}
		var expr milp.Expr
		for _, person := range people {
			for _, s := range m.Stories {
				expr = expr.Plus(1, m.Hours[PersonStory{PersonID: person.ID, StoryID: s.ID}])
			}
		}
		p.AddConstraint(fmt.Sprintf("rolecap_%s", r.ID), expr, milp.LE, reqs.EffectiveCapacity[r.ID])
	}

	// Ownership: exactly one developer owner per selected story, none for
	// unselected ones, and an owner must personally clear the hours floor.
	for _, s := range m.Stories {
		var owners milp.Expr
		for _, d := range devs {
			key := PersonStory{PersonID: d.ID, StoryID: s.ID}
			owners = owners.Plus(1, m.Owner[key])

			var hoursFloor milp.Expr
			hoursFloor = hoursFloor.Plus(1, m.Hours[key])
			hoursFloor = hoursFloor.Plus(-cfg.MinHoursToCountRelease, m.Owner[key])
			p.AddConstraint(fmt.Sprintf("owner_hours_%s_%s", d.ID, s.ID), hoursFloor, milp.GE, 0)
		}
		owners = owners.Plus(-1, m.Selected[s.ID])
		p.AddConstraint("owner_one_"+s.ID, owners, milp.EQ, 0)
	}

	// Per-owner workload ceiling in points.
	for _, d := range devs {
		var expr milp.Expr
		for _, s := range m.Stories {
			expr = expr.Plus(float64(s.Points), m.Owner[PersonStory{PersonID: d.ID, StoryID: s.ID}])
		}
		p.AddConstraint("points_cap_"+d.ID, expr, milp.LE, float64(cfg.MaxPointsPerDev))
	}

	// Release discipline: rel is bounded above by owning anything and
	// below by being active, so an active developer must own a story.
	for _, d := range devs {
		var link milp.Expr
		link = link.Plus(1, m.Released[d.ID])
		for _, s := range m.Stories {
			link = link.Plus(-1, m.Owner[PersonStory{PersonID: d.ID, StoryID: s.ID}])
		}
		p.AddConstraint("rel_link_"+d.ID, link, milp.LE, 0)

		var active milp.Expr
		active = active.Plus(1, m.Released[d.ID])
		active = active.Plus(-1, m.Active[d.ID])
		p.AddConstraint("rel_active_"+d.ID, active, milp.GE, 0)
	}

	// Dependency precedence within the period.
	for _, dep := range kept {
		var expr milp.Expr
		expr = expr.Plus(1, m.Selected[dep.StoryID])
		expr = expr.Plus(-1, m.Selected[dep.PredecessorID])
		p.AddConstraint(fmt.Sprintf("dep_%s_on_%s", dep.StoryID, dep.PredecessorID), expr, milp.LE, 0)
	}

	return m
}
