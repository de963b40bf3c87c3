package sensor

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oddlab/anomaly-radar/internal/config"
)

var mockTagNames = []string{
	"keyfob", "beacon-7", "AirTag", "Tile Tracker", "badge-A3",
	"Ruuvi 4F:20", "smart-tag", "lanyard-2",
}

// mockTone is one synthetic spectral component drifting through the bins.
type mockTone struct {
	center float64 // bin position
	drift  float64 // bins per emission
	width  float64 // gaussian width in bins
	level  float64 // peak magnitude [0, 1]
}

// mockTag is a synthetic proximity contact that comes and goes.
type mockTag struct {
	id       string
	name     string
	baseRSSI float64
	phase    float64
	active   bool
}

// MockSource fabricates all three sensor feeds for demo mode: spectral
// frames with drifting tones over a noise floor, a wobbling magnetic
// field with occasional spikes, and sporadic near-field tags.
type MockSource struct {
	program  *tea.Program
	bins     int
	magAlert float64
	tones    []mockTone
	tags     []mockTag
	running  bool
	cancel   context.CancelFunc
}

// NewMockSource creates a demo feed emitting frames of the given bin
// count. magAlert is used to shape occasional above-threshold spikes.
func NewMockSource(bins int, magAlert float64) *MockSource {
	tones := make([]mockTone, 3+rand.Intn(3))
	for i := range tones {
		tones[i] = mockTone{
			center: rand.Float64() * float64(bins) * 0.6,
			drift:  (rand.Float64() - 0.3) * float64(bins) / 400,
			width:  4 + rand.Float64()*12,
			level:  0.5 + rand.Float64()*0.5,
		}
	}

	perm := rand.Perm(len(mockTagNames))
	tags := make([]mockTag, 4)
	for i := range tags {
		tags[i] = mockTag{
			id:       randomAddr(),
			name:     mockTagNames[perm[i]],
			baseRSSI: -30 - rand.Float64()*20,
			phase:    rand.Float64() * 2 * math.Pi,
		}
	}

	return &MockSource{bins: bins, magAlert: magAlert, tones: tones, tags: tags}
}

// Start begins emitting synthetic readings on a ticker goroutine.
func (s *MockSource) Start(p *tea.Program) error {
	s.program = p
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockSource) loop(ctx context.Context) {
	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running {
				return
			}
			t += config.FrameInterval.Seconds()
			s.emitFrame()
			s.emitField(t)
			s.emitTags(t)
		}
	}
}

func (s *MockSource) emitFrame() {
	bins := make([]byte, s.bins)
	for i := range bins {
		// Noise floor fading toward high frequencies.
		floor := 0.18 * (1 - 0.6*float64(i)/float64(s.bins))
		v := floor * rand.Float64()
		for _, tone := range s.tones {
			d := (float64(i) - tone.center) / tone.width
			v += tone.level * math.Exp(-d*d)
		}
		if v > 1 {
			v = 1
		}
		bins[i] = byte(math.Round(v * 255))
	}

	for j := range s.tones {
		s.tones[j].center += s.tones[j].drift
		if s.tones[j].center < 0 || s.tones[j].center > float64(s.bins) {
			s.tones[j].drift = -s.tones[j].drift
		}
	}

	if s.program != nil {
		s.program.Send(FrameMsg{Bins: bins})
	}
}

func (s *MockSource) emitField(t float64) {
	// Earth-ish baseline with slow wobble.
	base := 48.0 + 6*math.Sin(t*0.4)
	if rand.Float64() < 0.01 {
		// Rare spike past the alert threshold.
		base = s.magAlert * (1.05 + rand.Float64()*0.3)
	}

	// Split the magnitude over a slowly rotating vector.
	theta := t * 0.25
	x := base * math.Cos(theta) * 0.8
	y := base * math.Sin(theta) * 0.8
	z := math.Sqrt(math.Max(base*base-x*x-y*y, 0))

	if s.program != nil {
		s.program.Send(FieldMsg{X: x, Y: y, Z: z, Magnitude: base})
	}
}

func (s *MockSource) emitTags(t float64) {
	for i := range s.tags {
		tag := &s.tags[i]

		if rand.Float64() < 0.008 {
			tag.active = !tag.active
		}
		if !tag.active {
			continue
		}

		rssi := tag.baseRSSI + 4*math.Sin(t*0.7+tag.phase) + (rand.Float64()-0.5)*3
		if s.program != nil {
			s.program.Send(ProximityMsg{ID: tag.id, Name: tag.name, RSSI: rssi})
		}
	}
}

// Stop halts the feed.
func (s *MockSource) Stop() {
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}

func randomAddr() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
