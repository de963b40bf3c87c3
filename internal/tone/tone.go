// Package tone synthesizes the short alert beep played when a field
// or proximity threshold trips.
package tone

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

// Player owns the audio output context. Beeps are rate-limited so a
// noisy sensor can't turn the alert into a siren.
type Player struct {
	ctx      *oto.Context
	cooldown time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewPlayer opens the default audio output. Callers treat an error as
// "no tones this session" and move on.
func NewPlayer(cooldown time.Duration) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio output: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, cooldown: cooldown}, nil
}

// Beep plays a sine burst at the given frequency. Calls landing inside
// the cooldown window are dropped silently.
func (p *Player) Beep(freq float64, dur time.Duration) {
	if p == nil {
		return
	}

	p.mu.Lock()
	if time.Since(p.last) < p.cooldown {
		p.mu.Unlock()
		return
	}
	p.last = time.Now()
	p.mu.Unlock()

	buf := synthesize(freq, dur)
	player := p.ctx.NewPlayer(bytes.NewReader(buf))
	player.Play()
	go func() {
		time.Sleep(dur + 50*time.Millisecond)
		_ = player.Close()
	}()
}

// synthesize renders a sine burst with a linear attack/decay envelope
// so the beep starts and ends without clicks.
func synthesize(freq float64, dur time.Duration) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	ramp := n / 10
	if ramp < 1 {
		ramp = 1
	}

	buf := make([]byte, n*2)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < ramp {
			env = float64(i) / float64(ramp)
		} else if n-1-i < ramp {
			env = float64(n-1-i) / float64(ramp)
		}

		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * env * 0.4
		s := int16(v * math.MaxInt16)
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	return buf
}
