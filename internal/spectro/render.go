package spectro

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws the framebuffer as truecolor half-block cells. Each text
// row carries two pixel rows: the upper pixel is the foreground of '▀',
// the lower pixel its background, so a w×h buffer occupies w×h/2 cells.
// Cells no frame has ever reached render as empty space.
func Render(f *Framebuffer) string {
	var sb strings.Builder
	rows := f.Height() / 2

	for r := 0; r < rows; r++ {
		for x := 0; x < f.Width(); x++ {
			yTop := 2 * r
			yBot := yTop + 1
			if f.Alpha(x, yTop) == 0 && f.Alpha(x, yBot) == 0 {
				sb.WriteByte(' ')
				continue
			}
			sty := lipgloss.NewStyle().
				Foreground(lipgloss.Color(f.At(x, yTop).Hex())).
				Background(lipgloss.Color(f.At(x, yBot).Hex()))
			sb.WriteString(sty.Render("▀"))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
