package testutil

import (
	"context"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

// FakeSolver implements milp.Solver with a scripted outcome. Values are
// keyed by semantic variable name; unnamed variables read as zero. The
// objective is recomputed from the assignment so scripted solutions stay
// self-consistent.
type FakeSolver struct {
	Status milp.Status
	Values map[string]float64
	Err    error

	// LastProblem records the most recently solved problem for
	// inspection.
	LastProblem *milp.Problem
}

func (f *FakeSolver) Solve(_ context.Context, p *milp.Problem) (*milp.Solution, error) {
	f.LastProblem = p
	if f.Err != nil {
		return nil, f.Err
	}

	values := make([]float64, len(p.Vars()))
	for _, v := range p.Vars() {
		if x, ok := f.Values[v.Name]; ok {
			values[v.Index()] = x
		}
	}
	obj := 0.0
	for _, t := range p.Objective {
		obj += t.Coef * values[t.Var.Index()]
	}
	return milp.NewSolution(f.Status, obj, values), nil
}
