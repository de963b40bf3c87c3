package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oddlab/anomaly-radar/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, demo, active bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"S", "tart"},
		{"X", " stop"},
		{"C", "ompass"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	var badge string
	if active {
		badge = StyleStatusActive.Render("ACTIVE")
	} else {
		badge = StyleStatusIdle.Render("IDLE")
	}

	mode := ""
	if demo {
		mode = StyleMenuLabel.Render("demo mode") + "  "
	}

	left := StyleMenuKey.Render(title) + menu
	right := mode + badge + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
