package sensor

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const iioRoot = "/sys/bus/iio/devices"

// MagSource reads a magnetometer through the Linux IIO sysfs interface.
// Most laptops have none, so Start failing is the common case; the
// session simply runs without field readings.
type MagSource struct {
	program  *tea.Program
	dir      string
	scale    float64
	interval time.Duration
	running  bool
	cancel   context.CancelFunc
}

// NewMagSource creates a magnetometer poller with the given period.
func NewMagSource(interval time.Duration) *MagSource {
	return &MagSource{interval: interval}
}

// Start locates an IIO device exposing in_magn_* channels and begins
// polling it in a goroutine. Readings arrive as FieldMsg in µT.
func (s *MagSource) Start(p *tea.Program) error {
	dir, scale, err := findMagnetometer()
	if err != nil {
		return err
	}

	s.program = p
	s.dir = dir
	s.scale = scale
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MagSource) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running {
				return
			}
			s.read()
		}
	}
}

func (s *MagSource) read() {
	x, errX := s.axis("x")
	y, errY := s.axis("y")
	z, errZ := s.axis("z")
	if errX != nil || errY != nil || errZ != nil {
		return
	}

	msg := FieldMsg{
		X: x, Y: y, Z: z,
		Magnitude: math.Sqrt(x*x + y*y + z*z),
	}
	if s.program != nil {
		s.program.Send(msg)
	}
}

func (s *MagSource) axis(name string) (float64, error) {
	raw, err := readSysfsFloat(filepath.Join(s.dir, "in_magn_"+name+"_raw"))
	if err != nil {
		return 0, err
	}
	// IIO scale converts raw counts to Gauss; µT = Gauss * 100.
	return raw * s.scale * 100, nil
}

// findMagnetometer scans the IIO bus for a device with magnetometer
// channels and returns its directory and scale factor.
func findMagnetometer() (string, float64, error) {
	matches, err := filepath.Glob(filepath.Join(iioRoot, "iio:device*"))
	if err != nil || len(matches) == 0 {
		return "", 0, errors.New("no IIO devices present")
	}

	for _, dir := range matches {
		if _, err := os.Stat(filepath.Join(dir, "in_magn_x_raw")); err != nil {
			continue
		}
		scale := 1.0
		if v, err := readSysfsFloat(filepath.Join(dir, "in_magn_scale")); err == nil {
			scale = v
		}
		return dir, scale, nil
	}
	return "", 0, errors.New("no IIO magnetometer found")
}

func readSysfsFloat(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
}

// Stop halts polling. Safe to call more than once.
func (s *MagSource) Stop() {
	s.running = false
	if s.cancel != nil {
		s.cancel()
	}
}
