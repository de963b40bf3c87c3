package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderFieldPanel renders the magnetometer view: a compass ring with a
// needle along the horizontal field component and the magnitude below.
// Without a reading it shows a placeholder — the magnetometer is the
// sensor most machines don't have.
func RenderFieldPanel(width, height int, x, y, magnitude float64, ok bool, alert float64) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}
	innerH := height - 2
	if innerH < 5 {
		innerH = 5
	}

	title := StylePanelTitle.Render("FIELD COMPASS")
	lines := []string{title, ""}

	if !ok {
		lines = append(lines, StyleHelp.Render("  no magnetometer readings"))
		lines = append(lines, StyleHelp.Render("  (IIO device absent or silent)"))
	} else {
		compassH := innerH - 5
		if compassH < 5 {
			compassH = 5
		}
		compassW := innerW
		if compassW > compassH*3 {
			compassW = compassH * 3
		}

		heading := math.Atan2(x, y)
		if heading < 0 {
			heading += 2 * math.Pi
		}

		needle := renderNeedleCompass(compassW, compassH, heading, magnitude >= alert)
		pad := (innerW - compassW) / 2
		if pad < 0 {
			pad = 0
		}
		prefix := strings.Repeat(" ", pad)
		for _, cl := range strings.Split(needle, "\n") {
			lines = append(lines, prefix+cl)
		}

		label := fmt.Sprintf("%.1fµT  %s", magnitude, headingName(heading))
		sty := StyleValue
		if magnitude >= alert {
			label += "  ALERT"
			sty = StyleStatusAlert
		}
		lpad := (innerW - len(label)) / 2
		if lpad < 0 {
			lpad = 0
		}
		lines = append(lines, "", strings.Repeat(" ", lpad)+sty.Render(label))
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

// renderNeedleCompass draws the ring, cardinal markers and needle.
func renderNeedleCompass(width, height int, angle float64, hot bool) string {
	grid := make([][]byte, height)
	isNeedle := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]byte, width)
		isNeedle[i] = make([]bool, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	fcx := float64(width) / 2.0
	fcy := float64(height) / 2.0
	rx := fcx - 2.0
	ry := fcy - 1.5
	if rx < 3 {
		rx = 3
	}
	if ry < 2 {
		ry = 2
	}

	steps := 72
	for i := 0; i < steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		col := int(math.Round(fcx + rx*math.Sin(a)))
		row := int(math.Round(fcy - ry*math.Cos(a)))
		if col >= 0 && col < width && row >= 0 && row < height && grid[row][col] == ' ' {
			grid[row][col] = compassRingChar(a)
		}
	}

	cx := int(math.Round(fcx))
	cy := int(math.Round(fcy))

	setGrid(grid, width, height, cx, cy-int(math.Round(ry))-1, 'N')
	setGrid(grid, width, height, cx, cy+int(math.Round(ry))+1, 'S')
	setGrid(grid, width, height, cx+int(math.Round(rx))+1, cy, 'E')
	setGrid(grid, width, height, cx-int(math.Round(rx))-1, cy, 'W')
	setGrid(grid, width, height, cx, cy, '+')

	// Needle from center toward the field heading
	shaftSteps := int(math.Max(rx, ry) * 0.85)
	if shaftSteps < 2 {
		shaftSteps = 2
	}
	tipCol, tipRow := cx, cy
	for s := 1; s <= shaftSteps; s++ {
		t := float64(s) / float64(shaftSteps) * 0.85
		col := int(math.Round(fcx + t*rx*math.Sin(angle)))
		row := int(math.Round(fcy - t*ry*math.Cos(angle)))
		if col >= 0 && col < width && row >= 0 && row < height {
			grid[row][col] = needleChar(angle)
			isNeedle[row][col] = true
			tipCol, tipRow = col, row
		}
	}
	grid[tipRow][tipCol] = needleTip(angle)
	isNeedle[tipRow][tipCol] = true

	needleColor := ColorBright
	if hot {
		needleColor = ColorAlert
	}
	needleSty := lipgloss.NewStyle().Foreground(needleColor).Bold(true)
	ringSty := lipgloss.NewStyle().Foreground(ColorDim)
	markSty := lipgloss.NewStyle().Foreground(ColorBright).Bold(true)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			ch := grid[row][col]
			switch {
			case ch == 'N' || ch == 'S' || ch == 'E' || ch == 'W' || ch == '+':
				sb.WriteString(markSty.Render(string(ch)))
			case isNeedle[row][col]:
				sb.WriteString(needleSty.Render(string(ch)))
			case ch != ' ':
				sb.WriteString(ringSty.Render(string(ch)))
			default:
				sb.WriteByte(' ')
			}
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func setGrid(grid [][]byte, w, h, col, row int, ch byte) {
	if col >= 0 && col < w && row >= 0 && row < h {
		grid[row][col] = ch
	}
}

func compassRingChar(a float64) byte {
	sector := int(math.Round(a/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '-'
	case 2, 6:
		return '|'
	case 1, 5:
		return '\\'
	default:
		return '/'
	}
}

func needleChar(a float64) byte {
	for a < 0 {
		a += 2 * math.Pi
	}
	sector := int(math.Round(a/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '|'
	case 2, 6:
		return '-'
	case 1, 5:
		return '\\'
	default:
		return '/'
	}
}

func needleTip(a float64) byte {
	for a < 0 {
		a += 2 * math.Pi
	}
	sector := int(math.Round(a/(math.Pi/4))) % 8
	switch sector {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	default:
		return '\\'
	}
}

func headingName(a float64) string {
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int(math.Round(a/(math.Pi/4))) % 8
	return dirs[idx]
}
