package cbc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

// WriteLP renders a problem in CPLEX LP format. Variables are emitted
// under solver-safe names ("v0", "v1", ...) keyed by declaration index, so
// semantic names never have to survive the round trip through the engine.
func WriteLP(p *milp.Problem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\\ %s\n", p.Name)
	b.WriteString("Maximize\n")
	b.WriteString(" obj: ")
	writeExpr(&b, p.Objective)
	b.WriteString("\nSubject To\n")

	for _, c := range p.Constraints() {
		fmt.Fprintf(&b, " %s: ", sanitizeName(c.Name))
		writeExpr(&b, c.Expr)
		fmt.Fprintf(&b, " %s %s\n", lpSense(c.Sen), formatCoef(c.RHS))
	}

	var binaries []string
	var bounds []string
	for _, v := range p.Vars() {
		name := lpName(v)
		if v.Kind == milp.Binary {
			binaries = append(binaries, name)
			continue
		}
		if v.Low != 0 {
			bounds = append(bounds, fmt.Sprintf(" %s >= %s", name, formatCoef(v.Low)))
		}
	}
	if len(bounds) > 0 {
		b.WriteString("Bounds\n")
		for _, line := range bounds {
			b.WriteString(line + "\n")
		}
	}
	if len(binaries) > 0 {
		b.WriteString("Binaries\n")
		b.WriteString(" " + strings.Join(binaries, " ") + "\n")
	}
	b.WriteString("End\n")

	return b.String()
}

func writeExpr(b *strings.Builder, e milp.Expr) {
	if len(e) == 0 {
		b.WriteString("0 v0")
		return
	}
	for i, t := range e {
		coef := t.Coef
		if i == 0 {
			if coef < 0 {
				b.WriteString("- ")
				coef = -coef
			}
		} else if coef < 0 {
			b.WriteString(" - ")
			coef = -coef
		} else {
			b.WriteString(" + ")
		}
		fmt.Fprintf(b, "%s %s", formatCoef(coef), lpName(t.Var))
	}
}

func lpName(v *milp.Var) string {
	return "v" + strconv.Itoa(v.Index())
}

func lpSense(s milp.Sense) string {
	switch s {
	case milp.LE:
		return "<="
	case milp.GE:
		return ">="
	default:
		return "="
	}
}

func formatCoef(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}

// sanitizeName replaces characters the LP format reserves. Constraint
// names come from domain identifiers, which may carry dashes or dots.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
