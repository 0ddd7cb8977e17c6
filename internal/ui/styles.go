package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	ColorRed      = "#E50914" // Accent
	ColorWhite    = "255"
	ColorGray     = "245" // Secondary text
	ColorDarkGray = "238"
)

// Styles holds the lipgloss styles used by the browse view.
type Styles struct {
	Title    lipgloss.Style
	Prompt   lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Category lipgloss.Style
	Help     lipgloss.Style
	Warning  lipgloss.Style
	Query    lipgloss.Style
}

// DefaultStyles returns the coloured theme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Query:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(ColorWhite)),
	}
}

// NoColorStyles returns unstyled components.
func NoColorStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle(),
		Prompt:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Item:     lipgloss.NewStyle(),
		Category: lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle(),
		Warning:  lipgloss.NewStyle(),
		Query:    lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
