package tone

import (
	"testing"
	"time"
)

func TestSynthesizeLengthAndEnvelope(t *testing.T) {
	dur := 100 * time.Millisecond
	buf := synthesize(880, dur)

	wantSamples := int(float64(sampleRate) * dur.Seconds())
	if len(buf) != wantSamples*2 {
		t.Fatalf("buffer length = %d bytes, want %d", len(buf), wantSamples*2)
	}

	// The envelope starts and ends at zero amplitude.
	first := int16(uint16(buf[0]) | uint16(buf[1])<<8)
	last := int16(uint16(buf[len(buf)-2]) | uint16(buf[len(buf)-1])<<8)
	if first != 0 {
		t.Errorf("first sample = %d, want 0", first)
	}
	if last != 0 {
		t.Errorf("last sample = %d, want 0", last)
	}

	// Somewhere in the middle the tone is actually audible.
	peak := int16(0)
	for i := 0; i+1 < len(buf); i += 2 {
		s := int16(uint16(buf[i]) | uint16(buf[i+1])<<8)
		if s > peak {
			peak = s
		}
	}
	if peak < 5000 {
		t.Errorf("peak amplitude %d, expected an audible tone", peak)
	}
}

func TestNilPlayerBeepIsNoop(t *testing.T) {
	var p *Player
	// Must not panic: a nil player is how a failed audio open degrades.
	p.Beep(880, 10*time.Millisecond)
}
