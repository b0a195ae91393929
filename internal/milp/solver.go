package milp

import "context"

// Status is the outcome reported by a solver engine. Every status must be
// handled explicitly by callers; only StatusOptimal carries a usable
// variable assignment.
type Status string

const (
	StatusOptimal    Status = "Optimal"
	StatusInfeasible Status = "Infeasible"
	StatusUnbounded  Status = "Unbounded"
	StatusNotSolved  Status = "Not Solved"
	StatusUndefined  Status = "Undefined"
)

// Solution is the result of one solve: a status, the objective value, and
// a value for every declared variable when the status is optimal.
type Solution struct {
	Status    Status
	Objective float64
	values    []float64
}

// NewSolution builds a solution over a problem's variables. The values
// slice is indexed by Var.Index; a short or nil slice reads as zero, which
// keeps extraction well-defined for infeasible and unbounded outcomes.
func NewSolution(status Status, objective float64, values []float64) *Solution {
	return &Solution{Status: status, Objective: objective, values: values}
}

// Value returns the solved value of v, or 0 when the solution carries no
// assignment for it.
func (s *Solution) Value(v *Var) float64 {
	if s == nil || v == nil || v.index >= len(s.values) {
		return 0
	}
	return s.values[v.index]
}

// Eval computes a linear expression's value under the solution.
func (s *Solution) Eval(e Expr) float64 {
	total := 0.0
	for _, t := range e {
		total += t.Coef * s.Value(t.Var)
	}
	return total
}

// Satisfies reports whether the solution meets the constraint within tol.
func (s *Solution) Satisfies(c Constraint, tol float64) bool {
	lhs := s.Eval(c.Expr)
	switch c.Sen {
	case LE:
		return lhs <= c.RHS+tol
	case GE:
		return lhs >= c.RHS-tol
	default:
		return lhs >= c.RHS-tol && lhs <= c.RHS+tol
	}
}

// Solver executes a MILP search over an assembled problem. The call is
// synchronous and may run long; cancellation is the caller's concern via
// ctx, and a cancelled solve surfaces as a non-optimal status or an error,
// never a partial assignment.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}
