package ui

import "github.com/charmbracelet/lipgloss"

// Phosphor palette
var (
	ColorBright  = lipgloss.Color("#00FF41")
	ColorGreen   = lipgloss.Color("#00CC33")
	ColorMid     = lipgloss.Color("#008F11")
	ColorDim     = lipgloss.Color("#004A0A")
	ColorContact = lipgloss.Color("#00FFAA")
	ColorWarning = lipgloss.Color("#FFAA00")
	ColorAlert   = lipgloss.Color("#FF3300")
)

var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusActive = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleStatusAlert = lipgloss.NewStyle().
				Foreground(ColorAlert).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#00AA22"))

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleContactName = lipgloss.NewStyle().
				Foreground(ColorContact)
)
