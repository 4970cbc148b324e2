// Package render formats impact reports for the terminal: a styled
// numeric summary, historical comparisons, and an ASCII map of the
// concentric destruction zones.
package render

import "github.com/charmbracelet/lipgloss"

// Impact palette - ember oranges over scorched grays.
var (
	colorEmber    = lipgloss.Color("#FF6B35") // headers, impact point
	colorFlame    = lipgloss.Color("#F7931E") // highlights
	colorWarning  = lipgloss.Color("#F4D03F") // severe values
	colorAsh      = lipgloss.Color("#8A8D91") // muted text, borders
	colorDanger   = lipgloss.Color("#E74C3C") // extinction-class callouts
	colorSteelSky = lipgloss.Color("#5DA9E9") // labels
)

// Styles holds the pre-configured lipgloss styles used by the renderer.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Muted   lipgloss.Style
	Box     lipgloss.Style
}

func newStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorEmber),
		Section: lipgloss.NewStyle().Bold(true).Foreground(colorFlame),
		Label:   lipgloss.NewStyle().Foreground(colorSteelSky),
		Value:   lipgloss.NewStyle().Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning),
		Danger:  lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
		Muted:   lipgloss.NewStyle().Foreground(colorAsh),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAsh).
			Padding(0, 1),
	}
}

// plainStyles renders everything unstyled, for NO_COLOR terminals and
// machine-readable output.
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Section: plain,
		Label:   plain,
		Value:   plain,
		Warning: plain,
		Danger:  plain,
		Muted:   plain,
		Box:     plain,
	}
}
