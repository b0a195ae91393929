package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/sprintplan/internal/milp"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Palette is the set of styles applied to rendered output. The zero value
// renders everything unstyled, which is what non-TTY output uses.
type Palette struct {
	Header lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Red    lipgloss.Style
	Dim    lipgloss.Style
	Bold   lipgloss.Style
}

// NewPalette returns the styled palette when color is enabled and the
// plain zero palette otherwise.
func NewPalette(color bool) Palette {
	if !color {
		return Palette{}
	}
	return Palette{
		Header: lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Green:  lipgloss.NewStyle().Foreground(ColorGreen),
		Yellow: lipgloss.NewStyle().Foreground(ColorYellow),
		Red:    lipgloss.NewStyle().Foreground(ColorRed),
		Dim:    lipgloss.NewStyle().Foreground(ColorDim),
		Bold:   lipgloss.NewStyle().Foreground(ColorFg).Bold(true),
	}
}

// StatusIndicator renders a colored solve-status marker.
func (p Palette) StatusIndicator(status milp.Status) string {
	switch status {
	case milp.StatusOptimal:
		return p.Green.Render("● " + string(status))
	case milp.StatusInfeasible, milp.StatusUnbounded:
		return p.Red.Render("● " + string(status))
	default:
		return p.Yellow.Render("● " + string(status))
	}
}
