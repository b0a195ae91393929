package cbc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

func TestWriteLP(t *testing.T) {
	p := milp.NewProblem("demo")
	x := p.NewContinuous("x", 0)
	z := p.NewBinary("z")
	y := p.NewBinary("y")

	var obj milp.Expr
	obj = obj.Plus(100, z).Plus(-10, y)
	p.Objective = obj

	var cap_ milp.Expr
	cap_ = cap_.Plus(1, x).Plus(-60, y)
	p.AddConstraint("cap_ana", cap_, milp.LE, 0)

	var cover milp.Expr
	cover = cover.Plus(1, x).Plus(-20, z)
	p.AddConstraint("req_BE_S-1", cover, milp.GE, 0)

	var one milp.Expr
	one = one.Plus(1, z)
	p.AddConstraint("owner_one", one, milp.EQ, 1)

	lp := WriteLP(p)

	want := "\\ demo\n" +
		"Maximize\n" +
		" obj: 100 v1 - 10 v2\n" +
		"Subject To\n" +
		" cap_ana: 1 v0 - 60 v2 <= 0\n" +
		" req_BE_S_1: 1 v0 - 20 v1 >= 0\n" +
		" owner_one: 1 v1 = 1\n" +
		"Binaries\n" +
		" v1 v2\n" +
		"End\n"
	assert.Equal(t, want, lp)
}

func TestWriteLP_BoundsSection(t *testing.T) {
	p := milp.NewProblem("bounds")
	v := p.NewContinuous("v", 2.5)
	var obj milp.Expr
	p.Objective = obj.Plus(1, v)

	var c milp.Expr
	p.AddConstraint("row", c.Plus(1, v), milp.LE, 10)

	lp := WriteLP(p)

	assert.Contains(t, lp, "Bounds\n v0 >= 2.5\n")
	assert.NotContains(t, lp, "Binaries")
}

func TestWriteLP_EmptyObjective(t *testing.T) {
	p := milp.NewProblem("empty")
	v := p.NewContinuous("v", 0)
	var c milp.Expr
	p.AddConstraint("row", c.Plus(1, v), milp.LE, 1)

	lp := WriteLP(p)

	assert.Contains(t, lp, " obj: 0 v0\n")
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "dep_S_2_on_S_1", sanitizeName("dep_S-2_on_S.1"))
	assert.Equal(t, "_", sanitizeName(""))
}
