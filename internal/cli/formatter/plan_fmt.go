// Package formatter renders planning results for the terminal.
package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintplan/internal/domain"
	"github.com/alexanderramin/sprintplan/internal/milp"
	"github.com/alexanderramin/sprintplan/internal/planner"
)

// FormatPlan renders the run outcome: a summary block, then the selection
// and utilization tables when a solution exists.
func (p Palette) FormatPlan(res *planner.PlanResult) string {
	var b strings.Builder

	s := res.Summary
	b.WriteString(p.Header.Render("SPRINT PLAN") + "\n")
	fmt.Fprintf(&b, "Status: %s\n", p.StatusIndicator(s.Status))
	fmt.Fprintf(&b, "Objective (value - lambda*people): %.3f\n", s.Objective)
	fmt.Fprintf(&b, "Delivered value: %.3f\n", s.DeliveredValue)
	fmt.Fprintf(&b, "Active people: %d\n", s.ActivePeople)
	fmt.Fprintf(&b, "Stories selected: %d / %d\n", s.StoriesSelected, s.StoriesEligible)
	fmt.Fprintf(&b, "Dependencies respected: %d\n", s.Dependencies)

	if s.Status != milp.StatusOptimal {
		b.WriteString("\n" + p.Dim.Render("No solution to report.") + "\n")
		return b.String()
	}

	b.WriteString("\n" + p.Header.Render("SELECTED STORIES") + "\n")
	rows := make([][]string, 0, len(res.Selected))
	for _, sel := range res.Selected {
		rows = append(rows, []string{
			p.Bold.Render(sel.StoryID),
			fmt.Sprintf("%d", sel.Points),
			fmt.Sprintf("%.1f", sel.Value),
			sel.Owner,
		})
	}
	b.WriteString(p.RenderTable([]string{"STORY", "POINTS", "VALUE", "OWNER"}, rows))

	b.WriteString("\n" + p.Header.Render("UTILIZATION") + "\n")
	rows = rows[:0]
	for _, u := range res.Utilization {
		rows = append(rows, []string{
			u.PersonID,
			string(u.Role),
			fmt.Sprintf("%.1f", u.HoursUsed),
			fmt.Sprintf("%.1f", u.Capacity),
			p.utilizationCell(u.Utilization),
			flag(u.Active),
			flag(u.Released),
		})
	}
	b.WriteString(p.RenderTable([]string{"PERSON", "ROLE", "USED", "CAP", "UTIL", "ACTIVE", "REL"}, rows))

	return b.String()
}

// FormatRuns renders the run-history listing.
func (p Palette) FormatRuns(runs []*domain.PlanRun) string {
	if len(runs) == 0 {
		return p.Dim.Render("No recorded runs.") + "\n"
	}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Status,
			fmt.Sprintf("%.3f", r.Objective),
			fmt.Sprintf("%.1f", r.DeliveredValue),
			fmt.Sprintf("%d", r.ActivePeople),
			fmt.Sprintf("%d/%d", r.StoriesSelected, r.StoriesEligible),
			r.DataDir,
		})
	}
	return p.RenderTable([]string{"WHEN", "STATUS", "OBJECTIVE", "VALUE", "PEOPLE", "STORIES", "DATA"}, rows)
}

func (p Palette) utilizationCell(u float64) string {
	cell := fmt.Sprintf("%.0f%%", u*100)
	switch {
	case u > 0.95:
		return p.Red.Render(cell)
	case u > 0.75:
		return p.Yellow.Render(cell)
	default:
		return p.Green.Render(cell)
	}
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
