package radar

import "math"

// Sweep holds the rotating sweep line state. The angle advances by a
// fixed step on every active display tick and wraps at 2π; while the
// session is idle nobody calls Advance, so the sweep freezes in place.
type Sweep struct {
	Angle float64 // Current angle in radians [0, 2π), 0=north, clockwise
	Step  float64 // Advance per tick in radians
	Trail float64 // Trailing glow arc in radians
}

// NewSweep creates a sweep starting at 0 degrees (north).
func NewSweep(stepDeg, trailDeg float64) *Sweep {
	return &Sweep{
		Step:  stepDeg * math.Pi / 180,
		Trail: trailDeg * math.Pi / 180,
	}
}

// Advance moves the sweep one tick forward.
func (s *Sweep) Advance() {
	s.Angle = NormalizeAngle(s.Angle + s.Step)
}

// Degrees returns the current sweep angle in degrees.
func (s *Sweep) Degrees() float64 {
	return s.Angle * 180 / math.Pi
}

// Intensity returns the glow intensity [0, 1] for a given cell angle.
// The glow falls off linearly from 1.0 at the sweep head to 0 at the
// end of the trail; cells outside the trail return 0.
func (s *Sweep) Intensity(cellAngle float64) float64 {
	diff := NormalizeAngle(s.Angle - cellAngle)
	if diff > s.Trail {
		return 0
	}
	return 1.0 - diff/s.Trail
}
