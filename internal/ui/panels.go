package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oddlab/anomaly-radar/internal/sensor"
)

// RenderRadarPanel wraps radar content with a styled border. The radar
// itself renders externally to avoid an import cycle.
func RenderRadarPanel(width, height int, radarContent, legend string) string {
	content := radarContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderSpectroPanel wraps the spectrogram raster with a border.
func RenderSpectroPanel(width, height int, spectroContent string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(spectroContent)
}

// RenderContactsPanel renders the tracked contact list, strongest first.
func RenderContactsPanel(contacts []*sensor.Contact, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 2 {
		innerH = 2
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, StylePanelTitle.Render(fmt.Sprintf("CONTACTS [%d]", len(contacts))))

	if len(contacts) == 0 {
		lines = append(lines, StyleHelp.Render(" nothing in range"))
	}

	nameW := innerW - 15
	if nameW < 4 {
		nameW = 4
	}
	for _, c := range contacts {
		if len(lines) >= innerH {
			break
		}
		name := c.DisplayName()
		if len(name) > nameW {
			name = name[:nameW]
		}
		line := StyleContactName.Render(fmt.Sprintf(" %-*s", nameW, name)) +
			StyleLabel.Render(fmt.Sprintf("%4ddBm ~%4.1fm", int(c.RSSI), c.Distance))
		lines = append(lines, line)
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// JoinColumn stacks panels vertically.
func JoinColumn(panels ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// ComposeLayout joins the left and right panels horizontally, with the
// menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, left, right, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
