package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the core UI styles
var Theme = struct {
	App        lipgloss.Style
	Title      lipgloss.Style
	Column     lipgloss.Style
	Focused    lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Sentinel   lipgloss.Style
	Help       lipgloss.Style
}{
	App: lipgloss.NewStyle().
		Padding(1, 2),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7B61FF")).
		MarginBottom(1),
	Column: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#666666")).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7B61FF")).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Bold(true),
	Unselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
	Sentinel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5F5F")).
		Italic(true),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5A9")),
}

// Apply recolors the theme from the configured palette.
func Apply(primary, selected, muted, border string) {
	Theme.Title = Theme.Title.Foreground(lipgloss.Color(primary))
	Theme.Column = Theme.Column.BorderForeground(lipgloss.Color(muted))
	Theme.Focused = Theme.Focused.BorderForeground(lipgloss.Color(border))
	Theme.Selected = Theme.Selected.Foreground(lipgloss.Color(selected))
	Theme.Unselected = Theme.Unselected.Foreground(lipgloss.Color(muted))
}
