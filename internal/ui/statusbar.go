package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusData is everything the status line displays.
type StatusData struct {
	Active  bool
	LastMag byte      // strongest spectral bin last frame
	Echo    float64   // smoothed echo strength [0, 1]
	Field   float64   // last field magnitude, µT
	FieldOK bool      // a magnetometer reading has arrived
	Alert   bool      // field currently above threshold
	Events  int       // proximity events this session
	Sweep   float64   // sweep angle in degrees
	History []float64 // field magnitude history for the sparkline
	Notices []string  // disabled sensors
}

// RenderStatusBar renders the bottom status line.
func RenderStatusBar(width int, d StatusData) string {
	var state string
	if d.Active {
		state = StyleStatusActive.Render("[ACTIVE]")
	} else {
		state = StyleStatusIdle.Render("[IDLE]")
	}

	field := "mag: --"
	if d.FieldOK {
		field = fmt.Sprintf("mag: %.0fµT", d.Field)
	}
	if d.Alert {
		field = StyleStatusAlert.Render(field + " !")
	}

	info := fmt.Sprintf(" peak: %d  echo: %.2f  %s  events: %d  sweep: %ddeg",
		d.LastMag, d.Echo, field, d.Events, int(d.Sweep))

	spark := ""
	if len(d.History) > 0 {
		spark = "  " + StyleLabel.Render(Sparkline(d.History, 24))
	}

	notice := ""
	if len(d.Notices) > 0 {
		notice = "  " + StyleStatusIdle.Render("no "+strings.Join(shortNames(d.Notices), ","))
	}

	content := state + StyleStatusBar.Foreground(ColorGreen).Render(info) + spark + notice

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

// shortNames reduces "mic: no such device" notices to the sensor name.
func shortNames(notices []string) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		if i := strings.IndexByte(n, ':'); i > 0 {
			n = n[:i]
		}
		out = append(out, n)
	}
	return out
}

// Sparkline renders the trailing values as a compact character graph.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}
	return sb.String()
}
