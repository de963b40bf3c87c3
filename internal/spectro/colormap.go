package spectro

import (
	"fmt"
	"math"
)

// Color is an 8-bit RGB triple. Alpha is implied full opacity wherever
// a Color is written into the framebuffer.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #RRGGBB string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MapToColor maps a normalized magnitude in [0, 1] to a full-intensity
// rainbow color: hue = v*360 with saturation and brightness pinned at 1.
// Callers clamp the input; the mapping itself has no error path.
func MapToColor(v float64) Color {
	return hsvToRGB(v*360, 1, 1)
}

// hsvToRGB converts hue in degrees [0, 360) with saturation and value in
// [0, 1] to RGB using the standard six-sector decomposition. The hue
// wraps, so 360 and 0 land in the same sector.
func hsvToRGB(h, s, v float64) Color {
	sector := int(math.Floor(h/60)) % 6
	f := h/60 - math.Floor(h/60)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return Color{channel(r), channel(g), channel(b)}
}

func channel(x float64) uint8 {
	n := int(math.Round(x * 255))
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
