package radar

import (
	"math"

	"github.com/oddlab/anomaly-radar/internal/config"
)

// CellDistance computes the distance from a cell to the radar center,
// accounting for terminal aspect ratio.
func CellDistance(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	return math.Sqrt(dx*dx + dy*dy)
}

// CellAngle computes the angle from center to a cell.
// Returns radians in [0, 2π), where 0=north, increasing clockwise.
func CellAngle(col, row, centerX, centerY int) float64 {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// RingChar returns the ring outline character for a given angle.
func RingChar(angle float64) rune {
	sector := int(math.Round(NormalizeAngle(angle)/(math.Pi/4))) % 8
	switch sector {
	case 0, 4: // N, S
		return '-'
	case 2, 6: // E, W
		return '|'
	case 1, 5: // NE, SW
		return '/'
	default: // SE, NW
		return '\\'
	}
}

// NormalizeAngle wraps an angle to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// MetersToRadius converts a distance in meters to radar cells, clamping
// at the outer edge.
func MetersToRadius(meters, maxRange, radarRadius float64) float64 {
	if meters > maxRange {
		return radarRadius
	}
	return (meters / maxRange) * radarRadius
}
