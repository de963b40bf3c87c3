package radar

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oddlab/anomaly-radar/internal/config"
	"github.com/oddlab/anomaly-radar/internal/sensor"
)

var (
	colorBright  = lipgloss.Color("#00FF41")
	colorMid     = lipgloss.Color("#008F11")
	colorDim     = lipgloss.Color("#004A0A")
	colorContact = lipgloss.Color("#00FFAA")

	styleCenter  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRing    = lipgloss.NewStyle().Foreground(colorMid)
	styleDot     = lipgloss.NewStyle().Foreground(colorDim)
	styleContact = lipgloss.NewStyle().Foreground(colorContact).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorContact)
	styleLabelHi = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
)

const maxLabelLen = 8

type blip struct {
	col, row int
	contact  *sensor.Contact
	label    string
	labelCol int
	labelRow int
}

// Render produces the complete radar display as a styled string. Blips
// are the tracked proximity contacts; their bearing is hash-derived and
// their radius comes from the RSSI distance estimate, so a contact sits
// still between updates instead of jittering.
func Render(width, height int, contacts []*sensor.Contact, sweep *Sweep, maxRange float64) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := float64(min(centerX-1, int(float64(centerY-1)/config.AspectRatio)))
	if radius < 3 {
		radius = 3
	}

	ringRadii := make([]float64, config.RingCount)
	for i := range ringRadii {
		ringRadii[i] = radius * float64(i+1) / float64(config.RingCount)
	}

	blips := placeBlips(contacts, centerX, centerY, radius, width, maxRange)

	type labelCell struct {
		blipIdx int
		charIdx int
	}
	labelMap := make(map[int]labelCell)
	for i, b := range blips {
		for ci := 0; ci < len(b.label); ci++ {
			labelMap[b.labelRow*width+b.labelCol+ci] = labelCell{blipIdx: i, charIdx: ci}
		}
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if lc, ok := labelMap[row*width+col]; ok {
				b := blips[lc.blipIdx]
				ch := b.label[lc.charIdx]
				if sweep.Intensity(CellAngle(col, row, centerX, centerY)) > 0.5 {
					sb.WriteString(styleLabelHi.Render(string(ch)))
				} else {
					sb.WriteString(styleLabel.Render(string(ch)))
				}
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius, ringRadii, sweep, blips))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// placeBlips computes blip positions and drops labels that would
// overlap an already placed one.
func placeBlips(contacts []*sensor.Contact, centerX, centerY int, radius float64, width int, maxRange float64) []blip {
	blips := make([]blip, 0, len(contacts))

	type segment struct{ start, end int }
	occupied := make(map[int][]segment)

	overlaps := func(row, start, end int) bool {
		for _, seg := range occupied[row] {
			if start < seg.end && end > seg.start {
				return true
			}
		}
		return false
	}

	for _, c := range contacts {
		r := MetersToRadius(c.Distance, maxRange, radius)
		col := centerX + int(math.Round(r*math.Sin(c.Bearing)))
		row := centerY - int(math.Round(r*math.Cos(c.Bearing)*config.AspectRatio))

		label := c.Callsign()
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}

		lc := col + 2
		if lc+len(label) >= width {
			lc = col - len(label) - 1
		}
		if lc < 0 {
			lc = 0
		}
		if overlaps(row, lc, lc+len(label)) {
			label = ""
		}

		b := blip{col: col, row: row, contact: c, label: label, labelCol: lc, labelRow: row}
		blips = append(blips, b)

		occupied[row] = append(occupied[row], segment{col, col + 1})
		if label != "" {
			occupied[row] = append(occupied[row], segment{lc, lc + len(label)})
		}
	}

	return blips
}

func renderCell(col, row, centerX, centerY int, radius float64, ringRadii []float64, sweep *Sweep, blips []blip) string {
	dist := CellDistance(col, row, centerX, centerY)
	angle := CellAngle(col, row, centerX, centerY)

	for _, b := range blips {
		if col == b.col && row == b.row {
			if sweep.Intensity(angle) > 0.5 {
				return styleLabelHi.Render("*")
			}
			return styleContact.Render("*")
		}
	}

	if dist > radius+0.5 {
		return " "
	}

	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}

	if col == centerX {
		return renderSweepChar('|', sweep, angle)
	}
	if row == centerY {
		return renderSweepChar('-', sweep, angle)
	}

	for _, ringR := range ringRadii {
		if math.Abs(dist-ringR) < 0.8 {
			return renderSweepChar(RingChar(angle), sweep, angle)
		}
	}

	return renderSweepChar('.', sweep, angle)
}

func renderSweepChar(ch rune, sweep *Sweep, angle float64) string {
	color := sweepColor(sweep.Intensity(angle))
	if color == "" {
		if ch == '.' {
			return styleDot.Render(".")
		}
		return styleRing.Render(string(ch))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(ch))
}

func sweepColor(intensity float64) string {
	switch {
	case intensity <= 0:
		return ""
	case intensity > 0.8:
		return "#00FF41"
	case intensity > 0.5:
		return "#00CC33"
	case intensity > 0.3:
		return "#00AA22"
	default:
		return "#005511"
	}
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int, maxRange float64) string {
	legend := styleLabel.Render("* contact") + "  " +
		styleRing.Render(ringLegend(maxRange))

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}

func ringLegend(maxRange float64) string {
	return fmt.Sprintf("rings %.0fm apart", maxRange/float64(config.RingCount))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
