// Package cbc adapts the COIN-OR CBC command-line engine to the milp
// Solver contract. The engine is an external binary: the adapter writes
// the problem in LP format to a scratch directory, runs one blocking
// solve, and parses the solution file back into a typed assignment.
package cbc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

// DefaultBinary is the engine executable looked up on PATH when no
// explicit path is configured.
const DefaultBinary = "cbc"

// ErrUnavailable reports that the engine binary cannot be found. This is
// an operator-recoverable condition, not a program fault; callers are
// expected to report it and exit cleanly without building a model.
var ErrUnavailable = errors.New("cbc solver binary not found")

// Adapter runs CBC as a subprocess.
type Adapter struct {
	binary string
	logger *slog.Logger
}

// New creates an adapter for the given engine binary. An empty binary
// falls back to DefaultBinary.
func New(binary string, logger *slog.Logger) *Adapter {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{binary: binary, logger: logger}
}

// Available checks that the engine binary can be resolved. It wraps
// ErrUnavailable so callers can branch on the condition.
func (a *Adapter) Available() error {
	if _, err := exec.LookPath(a.binary); err != nil {
		return fmt.Errorf("%w: %q not on PATH (install coinor-cbc or set SPRINTPLAN_SOLVER)", ErrUnavailable, a.binary)
	}
	return nil
}

// Solve writes the problem to disk, runs the engine once, and parses the
// outcome. A context cancellation or deadline kills the subprocess and
// surfaces as a not-solved status rather than an error, per the adapter
// contract.
func (a *Adapter) Solve(ctx context.Context, p *milp.Problem) (*milp.Solution, error) {
	dir, err := os.MkdirTemp("", "sprintplan-cbc-")
	if err != nil {
		return nil, fmt.Errorf("creating solver scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	modelPath := filepath.Join(dir, "model.lp")
	solPath := filepath.Join(dir, "solution.txt")
	if err := os.WriteFile(modelPath, []byte(WriteLP(p)), 0o644); err != nil {
		return nil, fmt.Errorf("writing LP file: %w", err)
	}

	cmd := exec.CommandContext(ctx, a.binary, modelPath, "solve", "solu", solPath)
	out, runErr := cmd.CombinedOutput()
	if runErr != nil {
		if ctx.Err() != nil {
			a.logger.Warn("solve interrupted", "reason", ctx.Err())
			return milp.NewSolution(milp.StatusNotSolved, 0, nil), nil
		}
		return nil, fmt.Errorf("running %s: %w\n%s", a.binary, runErr, out)
	}

	f, err := os.Open(solPath)
	if err != nil {
		return nil, fmt.Errorf("opening solution file: %w\nsolver output:\n%s", err, out)
	}
	defer f.Close()

	status, values, err := parseSolution(f, len(p.Vars()))
	if err != nil {
		return nil, fmt.Errorf("parsing solution: %w", err)
	}
	return milp.NewSolution(status, objectiveOf(p, values), values), nil
}

// objectiveOf recomputes the objective from the assignment, sidestepping
// sign-convention differences between CBC versions.
func objectiveOf(p *milp.Problem, values []float64) float64 {
	obj := 0.0
	for _, t := range p.Objective {
		if t.Var.Index() < len(values) {
			obj += t.Coef * values[t.Var.Index()]
		}
	}
	return obj
}
