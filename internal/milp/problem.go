// Package milp defines the declarative form of a mixed-integer linear
// program: typed variables, linear expressions, one objective, and a
// constraint set. It says nothing about how the search is performed; that
// is the Solver's job.
package milp

import "fmt"

// VarKind distinguishes continuous from binary decision variables.
type VarKind int

const (
	Continuous VarKind = iota
	Binary
)

// Var is a single decision variable. Vars are created through Problem and
// identified by pointer; Name exists for diagnostics and constraint
// inspection, not for lookup by the solver.
type Var struct {
	index int
	Name  string
	Kind  VarKind
	Low   float64
	Up    float64
}

// Index is the variable's position in its problem's variable list.
func (v *Var) Index() int { return v.index }

// Term is one coefficient-variable product inside a linear expression.
type Term struct {
	Coef float64
	Var  *Var
}

// Expr is a linear expression, the sum of its terms.
type Expr []Term

// Plus appends a term to the expression.
func (e Expr) Plus(coef float64, v *Var) Expr {
	return append(e, Term{Coef: coef, Var: v})
}

// Sense is a constraint comparison direction.
type Sense int

const (
	LE Sense = iota // expression <= rhs
	GE              // expression >= rhs
	EQ              // expression == rhs
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Constraint is a named linear constraint: Expr Sense RHS.
type Constraint struct {
	Name string
	Expr Expr
	Sen  Sense
	RHS  float64
}

// Problem is an assembled optimization problem. The objective is always
// maximized; minimization problems negate their objective.
type Problem struct {
	Name        string
	vars        []*Var
	Objective   Expr
	constraints []Constraint
}

// NewProblem creates an empty maximization problem.
func NewProblem(name string) *Problem {
	return &Problem{Name: name}
}

// NewContinuous declares a continuous variable bounded below by low.
func (p *Problem) NewContinuous(name string, low float64) *Var {
	v := &Var{index: len(p.vars), Name: name, Kind: Continuous, Low: low, Up: infinity}
	p.vars = append(p.vars, v)
	return v
}

// NewBinary declares a 0/1 variable.
func (p *Problem) NewBinary(name string) *Var {
	v := &Var{index: len(p.vars), Name: name, Kind: Binary, Low: 0, Up: 1}
	p.vars = append(p.vars, v)
	return v
}

// AddConstraint records a named constraint. Names must be unique within a
// problem; they are how tests and diagnostics address individual rows.
func (p *Problem) AddConstraint(name string, expr Expr, sen Sense, rhs float64) {
	p.constraints = append(p.constraints, Constraint{Name: name, Expr: expr, Sen: sen, RHS: rhs})
}

// Vars returns the declared variables in declaration order.
func (p *Problem) Vars() []*Var { return p.vars }

// Constraints returns the constraint set in insertion order.
func (p *Problem) Constraints() []Constraint { return p.constraints }

// Constraint looks up a constraint by name. The second return is false
// when no constraint with that name exists.
func (p *Problem) Constraint(name string) (Constraint, bool) {
	for _, c := range p.constraints {
		if c.Name == name {
			return c, true
		}
	}
	return Constraint{}, false
}

// infinity is the upper bound used for unbounded continuous variables.
const infinity = 1e30
