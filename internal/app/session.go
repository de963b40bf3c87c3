package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oddlab/anomaly-radar/internal/config"
	"github.com/oddlab/anomaly-radar/internal/sensor"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "ACTIVE"
	}
	return "IDLE"
}

// Options carries the tunable thresholds and toggles.
type Options struct {
	NearRSSI float64 // dBm at or above which an advertisement counts as near-field
	MagAlert float64 // µT field magnitude that triggers an alert
	MaxRange float64 // radar range in meters
	Mute     bool    // suppress alert tones
}

// Session owns every acquired sensor handle and the single idle/active
// state; Start and Stop are the only transitions. Sensors that fail to
// open are recorded and skipped — the session still activates and the
// rendering core runs with whatever feeds it got.
type Session struct {
	state State
	demo  bool
	opts  Options

	mic  *sensor.MicSource
	mag  *sensor.MagSource
	prox *sensor.ProxScanner
	mock *sensor.MockSource

	disabled []string
}

// NewSession creates an idle session.
func NewSession(demo bool, opts Options) *Session {
	return &Session{demo: demo, opts: opts}
}

// Start acquires all sensor feeds and activates the session. Calling
// it while already active is a no-op.
func (s *Session) Start(p *tea.Program) {
	if s.state == StateActive {
		return
	}
	s.disabled = s.disabled[:0]

	if s.demo {
		s.mock = sensor.NewMockSource(config.FFTSize/2, s.opts.MagAlert)
		if err := s.mock.Start(p); err != nil {
			s.mock = nil
			s.disable("demo", err)
		}
	} else {
		s.mic = sensor.NewMicSource()
		if err := s.mic.Start(p); err != nil {
			s.mic = nil
			s.disable("mic", err)
		}

		s.mag = sensor.NewMagSource(config.MagPollInterval)
		if err := s.mag.Start(p); err != nil {
			s.mag = nil
			s.disable("mag", err)
		}

		s.prox = sensor.NewProxScanner(s.opts.NearRSSI)
		if err := s.prox.Start(p); err != nil {
			s.prox = nil
			s.disable("prox", err)
		}
	}

	s.state = StateActive
}

// Stop releases every acquired feed and idles the session. Safe to
// call when already idle; sources tolerate a second Stop themselves.
func (s *Session) Stop() {
	if s.state == StateIdle {
		return
	}

	if s.mock != nil {
		s.mock.Stop()
		s.mock = nil
	}
	if s.mic != nil {
		s.mic.Stop()
		s.mic = nil
	}
	if s.mag != nil {
		s.mag.Stop()
		s.mag = nil
	}
	if s.prox != nil {
		s.prox.Stop()
		s.prox = nil
	}

	s.state = StateIdle
}

func (s *Session) disable(name string, err error) {
	s.disabled = append(s.disabled, fmt.Sprintf("%s: %v", name, err))
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Active reports whether the session is running.
func (s *Session) Active() bool { return s.state == StateActive }

// Disabled lists the sensors that failed to open on the last Start.
func (s *Session) Disabled() []string { return s.disabled }
