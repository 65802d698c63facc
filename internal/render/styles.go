package render

import "charm.land/lipgloss/v2"

// Palette
var (
	colTitle = lipgloss.Color("#8B5CF6") // Purple
	colDim   = lipgloss.Color("#94A3B8") // Slate
	colGood  = lipgloss.Color("#22C55E") // Green
	colWarn  = lipgloss.Color("#F97316") // Orange
	colBad   = lipgloss.Color("#F43F5E") // Rose
	colBar   = lipgloss.Color("#14B8A6") // Teal
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colTitle)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colDim)
	goodStyle    = lipgloss.NewStyle().Foreground(colGood)
	warnStyle    = lipgloss.NewStyle().Foreground(colWarn)
	badStyle     = lipgloss.NewStyle().Foreground(colBad)
	barStyle     = lipgloss.NewStyle().Foreground(colBar)
)
