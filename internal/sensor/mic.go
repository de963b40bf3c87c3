package sensor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/malgo"

	"github.com/oddlab/anomaly-radar/internal/config"
	"github.com/oddlab/anomaly-radar/internal/dsp"
)

// MicSource captures microphone audio and emits spectral FrameMsgs.
// Mono S16 samples accumulate into an FFT window; consecutive windows
// overlap by half so the spectrogram scrolls smoothly. Frame emission
// is throttled to config.FrameInterval regardless of the capture rate.
type MicSource struct {
	program  *tea.Program
	ctx      *malgo.AllocatedContext
	device   *malgo.Device
	analyzer *dsp.Analyzer
	window   []float64
	filled   int
	lastEmit time.Time
	running  bool
}

// NewMicSource creates a microphone source for the default capture device.
func NewMicSource() *MicSource {
	return &MicSource{
		analyzer: dsp.NewAnalyzer(config.FFTSize),
		window:   make([]float64, config.FFTSize),
	}
}

// Start opens the default capture device and begins streaming. Frames
// are delivered from the capture callback via program.Send.
func (s *MicSource) Start(p *tea.Program) error {
	s.program = p

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("init audio context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = config.SampleRate
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, frameCount uint32) {
			s.onSamples(input, frameCount)
		},
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		_ = ctx.Uninit()
		return fmt.Errorf("open capture device: %w", err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		return fmt.Errorf("start capture device: %w", err)
	}

	s.ctx = ctx
	s.device = device
	s.running = true
	return nil
}

func (s *MicSource) onSamples(input []byte, frameCount uint32) {
	if !s.running {
		return
	}

	for i := 0; i < int(frameCount) && 2*i+1 < len(input); i++ {
		v := int16(uint16(input[2*i]) | uint16(input[2*i+1])<<8)
		s.window[s.filled] = float64(v) / 32768
		s.filled++
		if s.filled == len(s.window) {
			s.emit()
			half := len(s.window) / 2
			copy(s.window, s.window[half:])
			s.filled = half
		}
	}
}

func (s *MicSource) emit() {
	now := time.Now()
	if now.Sub(s.lastEmit) < config.FrameInterval {
		return
	}
	s.lastEmit = now

	bins := s.analyzer.Frame(s.window)
	if s.program != nil {
		s.program.Send(FrameMsg{Bins: bins})
	}
}

// Stop halts capture and releases the device. Safe to call when never
// started or already stopped.
func (s *MicSource) Stop() {
	s.running = false
	if s.device != nil {
		s.device.Uninit()
		s.device = nil
	}
	if s.ctx != nil {
		_ = s.ctx.Uninit()
		s.ctx.Free()
		s.ctx = nil
	}
}
