package dsp

import (
	"math"
	"testing"
)

func TestHammingShape(t *testing.T) {
	w := Hamming(64)
	if len(w) != 64 {
		t.Fatalf("len = %d, want 64", len(w))
	}

	// Symmetric, endpoints at 0.08, peak in the middle.
	for i := range w {
		if d := math.Abs(w[i] - w[len(w)-1-i]); d > 1e-12 {
			t.Errorf("window not symmetric at %d: diff %g", i, d)
		}
	}
	if math.Abs(w[0]-0.08) > 1e-9 {
		t.Errorf("endpoint = %g, want 0.08", w[0])
	}
	for _, v := range w {
		if v > 1.0000001 {
			t.Errorf("window value %g exceeds 1", v)
		}
	}
}

func TestHammingDegenerate(t *testing.T) {
	if Hamming(0) != nil {
		t.Error("Hamming(0) should be nil")
	}
	if w := Hamming(1); len(w) != 1 || w[0] != 1 {
		t.Errorf("Hamming(1) = %v, want [1]", w)
	}
}

func TestAnalyzerFrameLength(t *testing.T) {
	a := NewAnalyzer(256)
	if a.Bins() != 128 {
		t.Fatalf("Bins() = %d, want 128", a.Bins())
	}
	frame := a.Frame(make([]float64, 256))
	if len(frame) != 128 {
		t.Fatalf("frame length = %d, want 128", len(frame))
	}
}

func TestAnalyzerSilence(t *testing.T) {
	a := NewAnalyzer(256)
	frame := a.Frame(make([]float64, 256))
	for i, v := range frame {
		if v != 0 {
			t.Fatalf("bin %d = %d for silence, want 0", i, v)
		}
	}
}

func TestAnalyzerTonePeaksAtItsBin(t *testing.T) {
	const size = 512
	a := NewAnalyzer(size)

	// A full-scale tone centered exactly on bin 32 (bin k holds
	// frequency index k+1 since DC is dropped).
	const k = 32
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(k+1) * float64(i) / size)
	}

	frame := a.Frame(samples)

	peak := 0
	for i, v := range frame {
		if v > frame[peak] {
			peak = i
		}
	}
	if peak != k {
		t.Fatalf("peak at bin %d, want %d", peak, k)
	}
	if frame[k] < 200 {
		t.Errorf("full-scale tone bin = %d, expected near 255", frame[k])
	}
	// Far away from the tone the floor should be much lower.
	if frame[k/4] > frame[k]/2 {
		t.Errorf("spectral floor %d too close to peak %d", frame[k/4], frame[k])
	}
}

func TestAnalyzerShortWindowZeroPadded(t *testing.T) {
	a := NewAnalyzer(128)
	frame := a.Frame(make([]float64, 10))
	if len(frame) != 64 {
		t.Fatalf("frame length = %d, want 64", len(frame))
	}
	for _, v := range frame {
		if v != 0 {
			t.Fatal("zero-padded silence should stay silent")
		}
	}
}
