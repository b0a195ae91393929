// Package report writes the solved plan to disk: three tabular CSV files
// (selected stories, assignments, person utilization) and a plain-text
// summary of the run.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintplan/internal/planner"
)

// Output file names inside the results directory.
const (
	SelectedFile    = "selected_stories.csv"
	AssignmentsFile = "assignments.csv"
	UtilizationFile = "person_utilization.csv"
	SummaryFile     = "summary.txt"
)

// WriteResults writes all four output files into dir, creating it if
// needed. On a non-optimal run the CSVs still appear with headers and no
// rows, so downstream consumers see a complete, empty result rather than
// missing files.
func WriteResults(dir string, res *planner.PlanResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	selected := make([][]string, 0, len(res.Selected))
	for _, s := range res.Selected {
		selected = append(selected, []string{
			s.StoryID,
			strconv.Itoa(s.Points),
			formatFloat(s.Value),
			s.Owner,
		})
	}
	if err := writeCSV(filepath.Join(dir, SelectedFile),
		[]string{"story_id", "points", "value", "owner"}, selected); err != nil {
		return err
	}

	assignments := make([][]string, 0, len(res.Assignments))
	for _, a := range res.Assignments {
		assignments = append(assignments, []string{
			a.PersonID,
			string(a.Role),
			a.StoryID,
			formatFloat(a.Hours),
		})
	}
	if err := writeCSV(filepath.Join(dir, AssignmentsFile),
		[]string{"person", "role", "story_id", "hours"}, assignments); err != nil {
		return err
	}

	utilization := make([][]string, 0, len(res.Utilization))
	for _, u := range res.Utilization {
		utilization = append(utilization, []string{
			u.PersonID,
			string(u.Role),
			formatFloat(u.HoursUsed),
			formatFloat(u.Capacity),
			formatFloat(u.Utilization),
			boolFlag(u.Active),
			boolFlag(u.Released),
		})
	}
	if err := writeCSV(filepath.Join(dir, UtilizationFile),
		[]string{"person", "role", "hours_used", "capacity", "utilization", "active", "release"}, utilization); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, SummaryFile), []byte(FormatSummary(&res.Summary)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", SummaryFile, err)
	}
	return nil
}

// FormatSummary renders the plain-text run summary.
func FormatSummary(s *planner.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "Objective (value - lambda*people): %.3f\n", s.Objective)
	fmt.Fprintf(&b, "Delivered value: %.3f\n", s.DeliveredValue)
	fmt.Fprintf(&b, "Active people: %d\n", s.ActivePeople)
	fmt.Fprintf(&b, "Stories selected: %d / %d\n", s.StoriesSelected, s.StoriesEligible)
	fmt.Fprintf(&b, "Dependencies respected: %d\n", s.Dependencies)
	b.WriteString("\nParameters:\n")
	fmt.Fprintf(&b, "  hours_per_point=%.4f\n", s.Config.HoursPerPoint)
	fmt.Fprintf(&b, "  lambda_people_penalty=%g\n", s.Config.LambdaPeoplePenalty)
	fmt.Fprintf(&b, "  bugs_per_sprint=%d\n", s.Config.BugsPerSprint)
	fmt.Fprintf(&b, "  max_points_per_dev=%d\n", s.Config.MaxPointsPerDev)
	fmt.Fprintf(&b, "  qa_coverage_factor=%g\n", s.Config.QACoverageFactor)
	fmt.Fprintf(&b, "  wip_factor_QA_capacity=%g\n", s.Config.WIPFactorQACapacity)
	return b.String()
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
