package cbc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

// parseSolution reads a CBC solution file. The first line names the
// outcome ("Optimal - objective value 42", "Infeasible - ...", "Stopped on
// time limit - ..."); the remaining lines are "index name value cost"
// rows. Values are keyed back to variables through the vN naming scheme.
//
// The objective reported in the header is ignored: CBC prints it in its
// internal (minimization) sign convention depending on version, so the
// caller recomputes the objective from the variable assignment instead.
func parseSolution(r io.Reader, varCount int) (milp.Status, []float64, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return milp.StatusUndefined, nil, fmt.Errorf("reading solution header: %w", err)
		}
		return milp.StatusUndefined, nil, fmt.Errorf("solution file is empty")
	}
	status := parseStatusLine(scanner.Text())

	values := make([]float64, varCount)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		// fields: row index, variable name, value, reduced cost.
		name := fields[1]
		if !strings.HasPrefix(name, "v") {
			continue
		}
		idx, err := strconv.Atoi(name[1:])
		if err != nil || idx < 0 || idx >= varCount {
			continue
		}
		val, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return status, nil, fmt.Errorf("parsing value for %s: %w", name, err)
		}
		values[idx] = val
	}
	if err := scanner.Err(); err != nil {
		return status, nil, fmt.Errorf("reading solution rows: %w", err)
	}
	return status, values, nil
}

func parseStatusLine(line string) milp.Status {
	lower := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.HasPrefix(lower, "optimal"):
		return milp.StatusOptimal
	case strings.Contains(lower, "infeasible"):
		return milp.StatusInfeasible
	case strings.HasPrefix(lower, "unbounded"):
		return milp.StatusUnbounded
	case strings.HasPrefix(lower, "stopped"):
		return milp.StatusNotSolved
	default:
		return milp.StatusUndefined
	}
}
