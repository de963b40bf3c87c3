package sensor

import tea "github.com/charmbracelet/bubbletea"

// FrameMsg delivers one spectral frame: ordered byte magnitudes, one
// per frequency bin, low frequencies first.
type FrameMsg struct {
	Bins []byte
}

// FieldMsg delivers one magnetometer reading in microtesla.
type FieldMsg struct {
	X, Y, Z   float64
	Magnitude float64
}

// ProximityMsg reports a near-field advertisement.
type ProximityMsg struct {
	ID   string
	Name string
	RSSI float64
}

// ErrorMsg reports a sensor that failed and was disabled. The session
// keeps running without it.
type ErrorMsg struct {
	Sensor string
	Err    error
}

// Source is a sensor feed. Start acquires the underlying resource and
// begins delivering messages through the program; Stop releases it.
// A stopped source drops any in-flight readings instead of sending.
type Source interface {
	Start(p *tea.Program) error
	Stop()
}
